package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/academics/classes/dto"
	"schoolhub_backend/internals/features/academics/classes/model"
	teacherModel "schoolhub_backend/internals/features/academics/teacher/model"
	subjectModel "schoolhub_backend/internals/features/schools/subject/model"
	helper "schoolhub_backend/internals/helpers"
	"schoolhub_backend/internals/middlewares/tenant"
)

type ClassController struct {
	DB *gorm.DB
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db}
}

var validate = validator.New()

const classRowColumns = `classes.id, classes.name, classes.room_number, classes.schedule_days,
	classes.start_time, classes.end_time, classes.max_students, classes.semester,
	classes.academic_year, classes.created_at,
	subjects.name AS subject_name, subjects.code AS subject_code,
	users.first_name AS teacher_first_name, users.last_name AS teacher_last_name`

func classRowQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&model.ClassModel{}).
		Joins("LEFT JOIN subjects ON classes.subject_id = subjects.id").
		Joins("LEFT JOIN teachers ON classes.teacher_id = teachers.id").
		Joins("LEFT JOIN users ON teachers.user_id = users.id")
}

// =============================
// List classes
// =============================
// GET /api/classes?page=&limit=&semester=&academicYear=&search=
func (ctrl *ClassController) GetClasses(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 10, 100)

	q := classRowQuery(ctrl.DB.WithContext(c.Context())).
		Scopes(tenant.ScopeColumn(c, "classes.school_id"))
	if semester := c.Query("semester"); semester != "" {
		q = q.Where("classes.semester = ?", semester)
	}
	if academicYear := c.Query("academicYear"); academicYear != "" {
		q = q.Where("classes.academic_year = ?", academicYear)
	}
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		q = q.Where("classes.name ILIKE ? OR subjects.name ILIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count classes: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	var rows []dto.ClassRow
	if err := q.Select(classRowColumns).
		Order("classes.created_at DESC").Limit(p.Limit).Offset(p.Offset).
		Scan(&rows).Error; err != nil {
		log.Printf("[ERROR] list classes: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	for i := range rows {
		rows[i].ResolveTeacherName()
	}

	return c.JSON(fiber.Map{
		"classes":    rows,
		"pagination": helper.BuildPagination(total, p),
	})
}

// =============================
// Get class by ID
// =============================
func (ctrl *ClassController) GetClassByID(c *fiber.Ctx) error {
	var row dto.ClassRow
	err := classRowQuery(ctrl.DB.WithContext(c.Context())).
		Select(classRowColumns).
		Where("classes.id = ?", c.Params("id")).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	row.ResolveTeacherName()
	return c.JSON(row)
}

// =============================
// Create class
// =============================
// Subject and teacher references are checked up front so a broken FK
// surfaces as a 404 instead of a driver error.
func (ctrl *ClassController) CreateClass(c *fiber.Ctx) error {
	var body dto.CreateClassRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var subjectCount int64
	if err := ctrl.DB.WithContext(c.Context()).Model(&subjectModel.SubjectModel{}).
		Where("id = ?", body.SubjectID).Count(&subjectCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if subjectCount == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Subject not found")
	}

	if body.TeacherID != nil {
		var teacherCount int64
		if err := ctrl.DB.WithContext(c.Context()).Model(&teacherModel.TeacherModel{}).
			Where("id = ?", *body.TeacherID).Count(&teacherCount).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
		}
		if teacherCount == 0 {
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
		}
	}

	schoolID := body.SchoolID
	if schoolID == nil {
		schoolID = helper.GetSchoolID(c)
	}
	class := model.ClassModel{
		Name:         body.Name,
		SubjectID:    body.SubjectID,
		TeacherID:    body.TeacherID,
		SchoolID:     schoolID,
		RoomNumber:   body.RoomNumber,
		ScheduleDays: body.ScheduleDays,
		StartTime:    body.StartTime,
		EndTime:      body.EndTime,
		MaxStudents:  body.MaxStudents,
		Semester:     body.Semester,
		AcademicYear: body.AcademicYear,
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&class).Error; err != nil {
		log.Printf("[ERROR] create class: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return helper.JsonCreated(c, "Class created successfully", fiber.Map{
		"class": class,
	})
}

// =============================
// Update class
// =============================
func (ctrl *ClassController) UpdateClass(c *fiber.Ctx) error {
	var body dto.UpdateClassRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var class model.ClassModel
	if err := ctrl.DB.WithContext(c.Context()).First(&class, c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	if body.SubjectID != nil {
		var subjectCount int64
		if err := ctrl.DB.WithContext(c.Context()).Model(&subjectModel.SubjectModel{}).
			Where("id = ?", *body.SubjectID).Count(&subjectCount).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
		}
		if subjectCount == 0 {
			return helper.JsonError(c, fiber.StatusNotFound, "Subject not found")
		}
		class.SubjectID = *body.SubjectID
	}
	if body.TeacherID != nil {
		var teacherCount int64
		if err := ctrl.DB.WithContext(c.Context()).Model(&teacherModel.TeacherModel{}).
			Where("id = ?", *body.TeacherID).Count(&teacherCount).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
		}
		if teacherCount == 0 {
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
		}
		class.TeacherID = body.TeacherID
	}

	if body.Name != nil {
		class.Name = *body.Name
	}
	if body.RoomNumber != nil {
		class.RoomNumber = body.RoomNumber
	}
	if body.ScheduleDays != nil {
		class.ScheduleDays = body.ScheduleDays
	}
	if body.StartTime != nil {
		class.StartTime = *body.StartTime
	}
	if body.EndTime != nil {
		class.EndTime = *body.EndTime
	}
	if body.MaxStudents != nil {
		class.MaxStudents = *body.MaxStudents
	}
	if body.Semester != nil {
		class.Semester = *body.Semester
	}
	if body.AcademicYear != nil {
		class.AcademicYear = *body.AcademicYear
	}

	if err := ctrl.DB.WithContext(c.Context()).Save(&class).Error; err != nil {
		log.Printf("[ERROR] update class: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.JsonMessage(c, "Class updated successfully", fiber.Map{
		"class": class,
	})
}

// =============================
// Delete class
// =============================
func (ctrl *ClassController) DeleteClass(c *fiber.Ctx) error {
	res := ctrl.DB.WithContext(c.Context()).Delete(&model.ClassModel{}, c.Params("id"))
	if res.Error != nil {
		log.Printf("[ERROR] delete class: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
	}
	return helper.JsonMessage(c, "Class deleted successfully")
}
