package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/features/academics/student/dto"
	"schoolhub_backend/internals/features/academics/student/model"
	userModel "schoolhub_backend/internals/features/users/user/model"
	helper "schoolhub_backend/internals/helpers"
	"schoolhub_backend/internals/middlewares/tenant"
)

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

var validate = validator.New()

const studentRowColumns = `students.id, students.student_id, students.grade_level,
	students.date_of_birth, students.address, students.emergency_contact,
	students.emergency_phone, students.created_at,
	users.first_name, users.last_name, users.email, users.phone, users.is_active`

// =============================
// List students
// =============================
// GET /api/students?page=&limit=&gradeLevel=&search=
func (ctrl *StudentController) GetStudents(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 10, 100)

	q := ctrl.DB.WithContext(c.Context()).Model(&model.StudentModel{}).
		Joins("JOIN users ON students.user_id = users.id").
		Scopes(tenant.ScopeColumn(c, "students.school_id"))
	if gradeLevel := c.Query("gradeLevel"); gradeLevel != "" {
		q = q.Where("students.grade_level = ?", gradeLevel)
	}
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		q = q.Where("users.first_name ILIKE ? OR users.last_name ILIKE ? OR students.student_id ILIKE ?",
			like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count students: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	var rows []dto.StudentRow
	if err := q.Select(studentRowColumns).
		Order("students.created_at DESC").Limit(p.Limit).Offset(p.Offset).
		Scan(&rows).Error; err != nil {
		log.Printf("[ERROR] list students: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return c.JSON(fiber.Map{
		"students":   rows,
		"pagination": helper.BuildPagination(total, p),
	})
}

// =============================
// Get student by ID
// =============================
func (ctrl *StudentController) GetStudentByID(c *fiber.Ctx) error {
	var row dto.StudentRow
	err := ctrl.DB.WithContext(c.Context()).Model(&model.StudentModel{}).
		Select(studentRowColumns).
		Joins("JOIN users ON students.user_id = users.id").
		Where("students.id = ?", c.Params("id")).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return c.JSON(row)
}

// =============================
// Create student
// =============================
// The user row must already exist with the student role.
func (ctrl *StudentController) CreateStudent(c *fiber.Ctx) error {
	var body dto.CreateStudentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var dup int64
	if err := ctrl.DB.WithContext(c.Context()).Model(&model.StudentModel{}).
		Where("student_id = ?", body.StudentID).Count(&dup).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if dup > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Student ID already exists")
	}

	var user userModel.UserModel
	if err := ctrl.DB.WithContext(c.Context()).
		Select("id", "role", "school_id").First(&user, body.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if user.Role != constants.RoleStudent {
		return helper.JsonError(c, fiber.StatusBadRequest, "User must have student role")
	}

	schoolID := body.SchoolID
	if schoolID == nil {
		schoolID = user.SchoolID
	}
	student := model.StudentModel{
		UserID:           body.UserID,
		StudentID:        body.StudentID,
		GradeLevel:       body.GradeLevel,
		DateOfBirth:      body.DateOfBirth,
		Address:          body.Address,
		EmergencyContact: body.EmergencyContact,
		EmergencyPhone:   body.EmergencyPhone,
		ParentID:         body.ParentID,
		ClassID:          body.ClassID,
		SchoolID:         schoolID,
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&student).Error; err != nil {
		log.Printf("[ERROR] create student: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return helper.JsonCreated(c, "Student created successfully", fiber.Map{
		"student": student,
	})
}

// =============================
// Update student
// =============================
func (ctrl *StudentController) UpdateStudent(c *fiber.Ctx) error {
	var body dto.UpdateStudentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var student model.StudentModel
	if err := ctrl.DB.WithContext(c.Context()).First(&student, c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	if body.GradeLevel != nil {
		student.GradeLevel = body.GradeLevel
	}
	if body.DateOfBirth != nil {
		student.DateOfBirth = body.DateOfBirth
	}
	if body.Address != nil {
		student.Address = body.Address
	}
	if body.EmergencyContact != nil {
		student.EmergencyContact = body.EmergencyContact
	}
	if body.EmergencyPhone != nil {
		student.EmergencyPhone = body.EmergencyPhone
	}
	if body.ParentID != nil {
		student.ParentID = body.ParentID
	}
	if body.ClassID != nil {
		student.ClassID = body.ClassID
	}

	if err := ctrl.DB.WithContext(c.Context()).Save(&student).Error; err != nil {
		log.Printf("[ERROR] update student: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.JsonMessage(c, "Student updated successfully", fiber.Map{
		"student": student,
	})
}

// =============================
// Delete student
// =============================
func (ctrl *StudentController) DeleteStudent(c *fiber.Ctx) error {
	res := ctrl.DB.WithContext(c.Context()).Delete(&model.StudentModel{}, c.Params("id"))
	if res.Error != nil {
		log.Printf("[ERROR] delete student: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}
	return helper.JsonMessage(c, "Student deleted successfully")
}
