package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classModel "schoolhub_backend/internals/features/academics/classes/model"
	"schoolhub_backend/internals/features/academics/grade/dto"
	"schoolhub_backend/internals/features/academics/grade/model"
	studentModel "schoolhub_backend/internals/features/academics/student/model"
	helper "schoolhub_backend/internals/helpers"
)

type GradeController struct {
	DB *gorm.DB
}

func NewGradeController(db *gorm.DB) *GradeController {
	return &GradeController{DB: db}
}

var validate = validator.New()

const gradeRowColumns = `grades.id, grades.assignment_name, grades.points_earned,
	grades.points_possible, grades.grade_percentage, grades.letter_grade,
	grades.graded_at, grades.comments,
	classes.name AS class_name, subjects.name AS subject_name,
	stu.first_name AS student_first_name, stu.last_name AS student_last_name,
	tu.first_name AS teacher_first_name, tu.last_name AS teacher_last_name`

func gradeRowQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&model.GradeModel{}).
		Joins("JOIN classes ON grades.class_id = classes.id").
		Joins("JOIN subjects ON classes.subject_id = subjects.id").
		Joins("JOIN students ON grades.student_id = students.id").
		Joins("JOIN users stu ON students.user_id = stu.id").
		Joins("LEFT JOIN teachers ON grades.graded_by = teachers.id").
		Joins("LEFT JOIN users tu ON teachers.user_id = tu.id")
}

func (ctrl *GradeController) listGrades(c *fiber.Ctx, q *gorm.DB) error {
	p := helper.ResolvePaging(c, 10, 100)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count grades: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	var rows []dto.GradeRow
	if err := q.Select(gradeRowColumns).
		Order("grades.graded_at DESC").Limit(p.Limit).Offset(p.Offset).
		Scan(&rows).Error; err != nil {
		log.Printf("[ERROR] list grades: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	for i := range rows {
		rows[i].ResolveNames()
	}

	return c.JSON(fiber.Map{
		"grades":     rows,
		"pagination": helper.BuildPagination(total, p),
	})
}

// =============================
// List grades
// =============================
// GET /api/grades?page=&limit=&studentId=&classId=
func (ctrl *GradeController) GetGrades(c *fiber.Ctx) error {
	q := gradeRowQuery(ctrl.DB.WithContext(c.Context()))
	if studentID := c.Query("studentId"); studentID != "" {
		q = q.Where("grades.student_id = ?", studentID)
	}
	if classID := c.Query("classId"); classID != "" {
		q = q.Where("grades.class_id = ?", classID)
	}
	return ctrl.listGrades(c, q)
}

// GET /api/grades/student/:studentId
func (ctrl *GradeController) GetStudentGrades(c *fiber.Ctx) error {
	q := gradeRowQuery(ctrl.DB.WithContext(c.Context())).
		Where("grades.student_id = ?", c.Params("studentId"))
	if classID := c.Query("classId"); classID != "" {
		q = q.Where("grades.class_id = ?", classID)
	}
	return ctrl.listGrades(c, q)
}

// GET /api/grades/class/:classId
func (ctrl *GradeController) GetClassGrades(c *fiber.Ctx) error {
	q := gradeRowQuery(ctrl.DB.WithContext(c.Context())).
		Where("grades.class_id = ?", c.Params("classId"))
	return ctrl.listGrades(c, q)
}

// =============================
// Add grade
// =============================
// The percentage and letter are derived from the points on every write.
func (ctrl *GradeController) CreateGrade(c *fiber.Ctx) error {
	var body dto.CreateGradeRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var studentCount int64
	if err := ctrl.DB.WithContext(c.Context()).Model(&studentModel.StudentModel{}).
		Where("id = ?", body.StudentID).Count(&studentCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if studentCount == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}

	var classCount int64
	if err := ctrl.DB.WithContext(c.Context()).Model(&classModel.ClassModel{}).
		Where("id = ?", body.ClassID).Count(&classCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if classCount == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
	}

	gradedBy := helper.GetUserID(c)
	grade := model.GradeModel{
		StudentID:      body.StudentID,
		ClassID:        body.ClassID,
		AssignmentName: body.AssignmentName,
		PointsEarned:   body.PointsEarned,
		PointsPossible: body.PointsPossible,
		GradedBy:       &gradedBy,
		Comments:       body.Comments,
	}
	grade.Recompute()

	if err := ctrl.DB.WithContext(c.Context()).Create(&grade).Error; err != nil {
		log.Printf("[ERROR] create grade: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return helper.JsonCreated(c, "Grade added successfully", fiber.Map{
		"grade": grade,
	})
}

// =============================
// Update grade
// =============================
func (ctrl *GradeController) UpdateGrade(c *fiber.Ctx) error {
	var body dto.UpdateGradeRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var grade model.GradeModel
	if err := ctrl.DB.WithContext(c.Context()).First(&grade, c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Grade not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	if body.PointsEarned != nil {
		grade.PointsEarned = *body.PointsEarned
	}
	if body.PointsPossible != nil {
		grade.PointsPossible = *body.PointsPossible
	}
	if body.Comments != nil {
		grade.Comments = body.Comments
	}
	grade.Recompute()

	if err := ctrl.DB.WithContext(c.Context()).Save(&grade).Error; err != nil {
		log.Printf("[ERROR] update grade: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return helper.JsonMessage(c, "Grade updated successfully", fiber.Map{
		"grade": grade,
	})
}
