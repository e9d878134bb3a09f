package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/features/academics/teacher/dto"
	"schoolhub_backend/internals/features/academics/teacher/model"
	userModel "schoolhub_backend/internals/features/users/user/model"
	helper "schoolhub_backend/internals/helpers"
	"schoolhub_backend/internals/middlewares/tenant"
)

type TeacherController struct {
	DB *gorm.DB
}

func NewTeacherController(db *gorm.DB) *TeacherController {
	return &TeacherController{DB: db}
}

var validate = validator.New()

const teacherRowColumns = `teachers.id, teachers.employee_id, teachers.department,
	teachers.hire_date, teachers.salary, teachers.created_at,
	users.first_name, users.last_name, users.email, users.phone, users.is_active`

// =============================
// List teachers
// =============================
// GET /api/teachers?page=&limit=&department=&search=
func (ctrl *TeacherController) GetTeachers(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 10, 100)

	q := ctrl.DB.WithContext(c.Context()).Model(&model.TeacherModel{}).
		Joins("JOIN users ON teachers.user_id = users.id").
		Scopes(tenant.ScopeColumn(c, "teachers.school_id"))
	if department := c.Query("department"); department != "" {
		q = q.Where("teachers.department = ?", department)
	}
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		q = q.Where("users.first_name ILIKE ? OR users.last_name ILIKE ? OR teachers.employee_id ILIKE ?",
			like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count teachers: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	var rows []dto.TeacherRow
	if err := q.Select(teacherRowColumns).
		Order("teachers.created_at DESC").Limit(p.Limit).Offset(p.Offset).
		Scan(&rows).Error; err != nil {
		log.Printf("[ERROR] list teachers: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return c.JSON(fiber.Map{
		"teachers":   rows,
		"pagination": helper.BuildPagination(total, p),
	})
}

// =============================
// Get teacher by ID
// =============================
func (ctrl *TeacherController) GetTeacherByID(c *fiber.Ctx) error {
	var row dto.TeacherRow
	err := ctrl.DB.WithContext(c.Context()).Model(&model.TeacherModel{}).
		Select(teacherRowColumns).
		Joins("JOIN users ON teachers.user_id = users.id").
		Where("teachers.id = ?", c.Params("id")).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return c.JSON(row)
}

// =============================
// Create teacher
// =============================
func (ctrl *TeacherController) CreateTeacher(c *fiber.Ctx) error {
	var body dto.CreateTeacherRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var dup int64
	if err := ctrl.DB.WithContext(c.Context()).Model(&model.TeacherModel{}).
		Where("employee_id = ?", body.EmployeeID).Count(&dup).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if dup > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Employee ID already exists")
	}

	var user userModel.UserModel
	if err := ctrl.DB.WithContext(c.Context()).
		Select("id", "role", "school_id").First(&user, body.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if user.Role != constants.RoleTeacher {
		return helper.JsonError(c, fiber.StatusBadRequest, "User must have teacher role")
	}

	schoolID := body.SchoolID
	if schoolID == nil {
		schoolID = user.SchoolID
	}
	teacher := model.TeacherModel{
		UserID:     body.UserID,
		EmployeeID: &body.EmployeeID,
		Department: &body.Department,
		HireDate:   body.HireDate,
		Salary:     body.Salary,
		SchoolID:   schoolID,
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&teacher).Error; err != nil {
		log.Printf("[ERROR] create teacher: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return helper.JsonCreated(c, "Teacher created successfully", fiber.Map{
		"teacher": teacher,
	})
}

// =============================
// Update teacher
// =============================
func (ctrl *TeacherController) UpdateTeacher(c *fiber.Ctx) error {
	var body dto.UpdateTeacherRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var teacher model.TeacherModel
	if err := ctrl.DB.WithContext(c.Context()).First(&teacher, c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	if body.Department != nil {
		teacher.Department = body.Department
	}
	if body.HireDate != nil {
		teacher.HireDate = body.HireDate
	}
	if body.Salary != nil {
		teacher.Salary = body.Salary
	}
	if body.SchoolID != nil {
		teacher.SchoolID = body.SchoolID
	}

	if err := ctrl.DB.WithContext(c.Context()).Save(&teacher).Error; err != nil {
		log.Printf("[ERROR] update teacher: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.JsonMessage(c, "Teacher updated successfully", fiber.Map{
		"teacher": teacher,
	})
}

// =============================
// Delete teacher
// =============================
func (ctrl *TeacherController) DeleteTeacher(c *fiber.Ctx) error {
	res := ctrl.DB.WithContext(c.Context()).Delete(&model.TeacherModel{}, c.Params("id"))
	if res.Error != nil {
		log.Printf("[ERROR] delete teacher: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
	}
	return helper.JsonMessage(c, "Teacher deleted successfully")
}
