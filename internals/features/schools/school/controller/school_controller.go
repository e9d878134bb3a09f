package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/schools/school/dto"
	"schoolhub_backend/internals/features/schools/school/model"
	userModel "schoolhub_backend/internals/features/users/user/model"
	helper "schoolhub_backend/internals/helpers"
)

type SchoolController struct {
	DB *gorm.DB
}

func NewSchoolController(db *gorm.DB) *SchoolController {
	return &SchoolController{DB: db}
}

var validate = validator.New()

const schoolCountColumns = `schools.*,
	(SELECT COUNT(*) FROM users u WHERE u.school_id = schools.id) AS user_count,
	(SELECT COUNT(*) FROM students st WHERE st.school_id = schools.id) AS student_count,
	(SELECT COUNT(*) FROM teachers t WHERE t.school_id = schools.id) AS teacher_count,
	(SELECT COUNT(*) FROM classes c WHERE c.school_id = schools.id) AS class_count`

// =============================
// List schools
// =============================
// GET /api/schools?page=&limit=&search=
func (ctrl *SchoolController) GetSchools(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 10, 100)

	q := ctrl.DB.WithContext(c.Context()).Model(&model.SchoolModel{})
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		q = q.Where("name ILIKE ? OR address ILIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count schools: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch schools")
	}

	var schools []dto.SchoolWithCounts
	if err := q.Select(schoolCountColumns).
		Order("name").Limit(p.Limit).Offset(p.Offset).
		Find(&schools).Error; err != nil {
		log.Printf("[ERROR] list schools: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch schools")
	}

	return c.JSON(fiber.Map{
		"schools":    schools,
		"pagination": helper.BuildSimplePagination(total, p),
	})
}

// =============================
// Get school by ID
// =============================
func (ctrl *SchoolController) GetSchoolByID(c *fiber.Ctx) error {
	var school dto.SchoolWithCounts
	err := ctrl.DB.WithContext(c.Context()).Model(&model.SchoolModel{}).
		Select(schoolCountColumns).
		Where("schools.id = ?", c.Params("id")).
		First(&school).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "School not found")
		}
		log.Printf("[ERROR] get school: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch school")
	}
	return c.JSON(school)
}

// =============================
// Create school
// =============================
func (ctrl *SchoolController) CreateSchool(c *fiber.Ctx) error {
	var body dto.CreateSchoolRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	school := body.ToModel()
	if err := ctrl.DB.WithContext(c.Context()).Create(&school).Error; err != nil {
		log.Printf("[ERROR] create school: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create school")
	}

	return helper.JsonCreated(c, "School created successfully", fiber.Map{
		"school": school,
	})
}

// =============================
// Update school
// =============================
func (ctrl *SchoolController) UpdateSchool(c *fiber.Ctx) error {
	var body dto.UpdateSchoolRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var school model.SchoolModel
	if err := ctrl.DB.WithContext(c.Context()).First(&school, c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "School not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch school")
	}

	if body.Name != nil {
		school.Name = *body.Name
	}
	if body.Address != nil {
		school.Address = body.Address
	}
	if body.Phone != nil {
		school.Phone = body.Phone
	}
	if body.Email != nil {
		school.Email = body.Email
	}
	if body.Website != nil {
		school.Website = body.Website
	}
	if body.PrincipalName != nil {
		school.PrincipalName = body.PrincipalName
	}
	if body.EstablishedYear != nil {
		school.EstablishedYear = body.EstablishedYear
	}
	if body.EducationSystem != nil {
		school.EducationSystem = *body.EducationSystem
	}
	if body.IsActive != nil {
		school.IsActive = *body.IsActive
	}

	if err := ctrl.DB.WithContext(c.Context()).Save(&school).Error; err != nil {
		log.Printf("[ERROR] update school: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update school")
	}

	return helper.JsonMessage(c, "School updated successfully", fiber.Map{
		"school": school,
	})
}

// =============================
// Delete school
// =============================
// Refused while any user still references the school. The check runs
// before the delete so a rejection never mutates anything.
func (ctrl *SchoolController) DeleteSchool(c *fiber.Ctx) error {
	var school model.SchoolModel
	if err := ctrl.DB.WithContext(c.Context()).First(&school, c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "School not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch school")
	}

	var userCount int64
	if err := ctrl.DB.WithContext(c.Context()).Model(&userModel.UserModel{}).
		Where("school_id = ?", school.ID).Count(&userCount).Error; err != nil {
		log.Printf("[ERROR] delete school pre-check: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete school")
	}
	if userCount > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest,
			"Cannot delete school with existing users. Please transfer or remove users first.")
	}

	if err := ctrl.DB.WithContext(c.Context()).Delete(&school).Error; err != nil {
		log.Printf("[ERROR] delete school: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete school")
	}

	return helper.JsonMessage(c, "School deleted successfully")
}

// =============================
// School statistics
// =============================
// GET /api/schools/:id/stats
func (ctrl *SchoolController) GetSchoolStats(c *fiber.Ctx) error {
	id := c.Params("id")

	var stats dto.SchoolStats
	err := ctrl.DB.WithContext(c.Context()).Raw(`
		SELECT
			(SELECT COUNT(*) FROM users WHERE school_id = ?) AS total_users,
			(SELECT COUNT(*) FROM students WHERE school_id = ?) AS total_students,
			(SELECT COUNT(*) FROM teachers WHERE school_id = ?) AS total_teachers,
			(SELECT COUNT(*) FROM classes WHERE school_id = ?) AS total_classes,
			(SELECT COUNT(*) FROM subjects WHERE school_id = ?) AS total_subjects
	`, id, id, id, id, id).Scan(&stats).Error
	if err != nil {
		log.Printf("[ERROR] school stats: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch school statistics")
	}

	return c.JSON(stats)
}
