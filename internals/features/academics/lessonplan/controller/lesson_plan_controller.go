package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/features/academics/lessonplan/dto"
	"schoolhub_backend/internals/features/academics/lessonplan/model"
	teacherModel "schoolhub_backend/internals/features/academics/teacher/model"
	helper "schoolhub_backend/internals/helpers"
)

type LessonPlanController struct {
	DB *gorm.DB
}

func NewLessonPlanController(db *gorm.DB) *LessonPlanController {
	return &LessonPlanController{DB: db}
}

var validate = validator.New()

const lessonPlanRowColumns = `lesson_plans.*,
	subjects.name AS subject_name, classes.name AS class_name,
	users.first_name AS teacher_first_name, users.last_name AS teacher_last_name,
	schools.name AS school_name`

func lessonPlanRowQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&model.LessonPlanModel{}).
		Joins("LEFT JOIN subjects ON lesson_plans.subject_id = subjects.id").
		Joins("LEFT JOIN classes ON lesson_plans.class_id = classes.id").
		Joins("LEFT JOIN teachers ON lesson_plans.teacher_id = teachers.id").
		Joins("LEFT JOIN users ON teachers.user_id = users.id").
		Joins("LEFT JOIN schools ON lesson_plans.school_id = schools.id")
}

func (ctrl *LessonPlanController) listLessonPlans(c *fiber.Ctx, q *gorm.DB) error {
	p := helper.ResolvePaging(c, 10, 100)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count lesson plans: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch lesson plans")
	}

	var rows []dto.LessonPlanRow
	if err := q.Select(lessonPlanRowColumns).
		Order("lesson_plans.lesson_date DESC, lesson_plans.created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Scan(&rows).Error; err != nil {
		log.Printf("[ERROR] list lesson plans: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch lesson plans")
	}

	return c.JSON(fiber.Map{
		"lessonPlans": rows,
		"pagination":  helper.BuildSimplePagination(total, p),
	})
}

// =============================
// List lesson plans
// =============================
// GET /api/lesson-plans?page=&limit=&search=&classId=&subjectId=&teacherId=&status=
func (ctrl *LessonPlanController) GetLessonPlans(c *fiber.Ctx) error {
	q := lessonPlanRowQuery(ctrl.DB.WithContext(c.Context()))
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		q = q.Where("lesson_plans.title ILIKE ? OR lesson_plans.description ILIKE ?", like, like)
	}
	if classID := c.Query("classId"); classID != "" {
		q = q.Where("lesson_plans.class_id = ?", classID)
	}
	if subjectID := c.Query("subjectId"); subjectID != "" {
		q = q.Where("lesson_plans.subject_id = ?", subjectID)
	}
	if teacherID := c.Query("teacherId"); teacherID != "" {
		q = q.Where("lesson_plans.teacher_id = ?", teacherID)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("lesson_plans.status = ?", status)
	}
	return ctrl.listLessonPlans(c, q)
}

// GET /api/lesson-plans/teacher/:teacherId
func (ctrl *LessonPlanController) GetTeacherLessonPlans(c *fiber.Ctx) error {
	q := lessonPlanRowQuery(ctrl.DB.WithContext(c.Context())).
		Where("lesson_plans.teacher_id = ?", c.Params("teacherId"))
	if status := c.Query("status"); status != "" {
		q = q.Where("lesson_plans.status = ?", status)
	}
	return ctrl.listLessonPlans(c, q)
}

// GET /api/lesson-plans/class/:classId
func (ctrl *LessonPlanController) GetClassLessonPlans(c *fiber.Ctx) error {
	q := lessonPlanRowQuery(ctrl.DB.WithContext(c.Context())).
		Where("lesson_plans.class_id = ?", c.Params("classId"))
	if status := c.Query("status"); status != "" {
		q = q.Where("lesson_plans.status = ?", status)
	}
	return ctrl.listLessonPlans(c, q)
}

// =============================
// Get lesson plan by ID
// =============================
func (ctrl *LessonPlanController) GetLessonPlanByID(c *fiber.Ctx) error {
	var row dto.LessonPlanRow
	err := lessonPlanRowQuery(ctrl.DB.WithContext(c.Context())).
		Select(lessonPlanRowColumns).
		Where("lesson_plans.id = ?", c.Params("id")).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Lesson plan not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch lesson plan")
	}
	return c.JSON(row)
}

// =============================
// Create lesson plan
// =============================
// The teacher profile of the caller owns the plan; its school tags it.
func (ctrl *LessonPlanController) CreateLessonPlan(c *fiber.Ctx) error {
	var body dto.CreateLessonPlanRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var teacher teacherModel.TeacherModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("user_id = ?", helper.GetUserID(c)).First(&teacher).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusForbidden, "Teacher profile not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create lesson plan")
	}

	duration := 45
	if body.DurationMinutes != nil {
		duration = *body.DurationMinutes
	}
	status := model.StatusDraft
	if body.Status != nil {
		status = *body.Status
	}
	plan := model.LessonPlanModel{
		Title:           body.Title,
		Description:     body.Description,
		SubjectID:       body.SubjectID,
		ClassID:         body.ClassID,
		TeacherID:       teacher.ID,
		SchoolID:        teacher.SchoolID,
		Objectives:      body.Objectives,
		Materials:       body.Materials,
		Activities:      body.Activities,
		Assessment:      body.Assessment,
		Homework:        body.Homework,
		DurationMinutes: duration,
		LessonDate:      body.LessonDate,
		Status:          status,
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&plan).Error; err != nil {
		log.Printf("[ERROR] create lesson plan: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create lesson plan")
	}

	return helper.JsonCreated(c, "Lesson plan created successfully", fiber.Map{
		"lessonPlan": plan,
	})
}

// canMutatePlan checks the owning teacher's user against the principal.
func (ctrl *LessonPlanController) canMutatePlan(c *fiber.Ctx, plan *model.LessonPlanModel) (bool, error) {
	role := helper.GetUserRole(c)
	if role == constants.RoleSuperAdmin || role == constants.RoleSchoolAdmin || role == constants.RoleAdmin {
		return true, nil
	}
	var teacher teacherModel.TeacherModel
	if err := ctrl.DB.WithContext(c.Context()).
		Select("user_id").First(&teacher, plan.TeacherID).Error; err != nil {
		return false, err
	}
	return teacher.UserID == helper.GetUserID(c), nil
}

// =============================
// Update lesson plan
// =============================
func (ctrl *LessonPlanController) UpdateLessonPlan(c *fiber.Ctx) error {
	var body dto.UpdateLessonPlanRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var plan model.LessonPlanModel
	if err := ctrl.DB.WithContext(c.Context()).First(&plan, c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Lesson plan not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update lesson plan")
	}

	ok, err := ctrl.canMutatePlan(c, &plan)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update lesson plan")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "Not authorized to update this lesson plan")
	}

	if body.Title != nil {
		plan.Title = *body.Title
	}
	if body.Description != nil {
		plan.Description = body.Description
	}
	if body.Objectives != nil {
		plan.Objectives = body.Objectives
	}
	if body.Materials != nil {
		plan.Materials = body.Materials
	}
	if body.Activities != nil {
		plan.Activities = body.Activities
	}
	if body.Assessment != nil {
		plan.Assessment = body.Assessment
	}
	if body.Homework != nil {
		plan.Homework = body.Homework
	}
	if body.DurationMinutes != nil {
		plan.DurationMinutes = *body.DurationMinutes
	}
	if body.LessonDate != nil {
		plan.LessonDate = body.LessonDate
	}
	if body.Status != nil {
		plan.Status = *body.Status
	}

	if err := ctrl.DB.WithContext(c.Context()).Save(&plan).Error; err != nil {
		log.Printf("[ERROR] update lesson plan: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update lesson plan")
	}
	return helper.JsonMessage(c, "Lesson plan updated successfully")
}

// =============================
// Delete lesson plan
// =============================
func (ctrl *LessonPlanController) DeleteLessonPlan(c *fiber.Ctx) error {
	var plan model.LessonPlanModel
	if err := ctrl.DB.WithContext(c.Context()).First(&plan, c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Lesson plan not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete lesson plan")
	}

	ok, err := ctrl.canMutatePlan(c, &plan)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete lesson plan")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "Not authorized to delete this lesson plan")
	}

	if err := ctrl.DB.WithContext(c.Context()).Delete(&plan).Error; err != nil {
		log.Printf("[ERROR] delete lesson plan: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete lesson plan")
	}
	return helper.JsonMessage(c, "Lesson plan deleted successfully")
}

// =============================
// Lesson plan statistics
// =============================
// GET /api/lesson-plans/stats/overview
func (ctrl *LessonPlanController) GetLessonPlanStats(c *fiber.Ctx) error {
	var stats dto.LessonPlanStats
	err := ctrl.DB.WithContext(c.Context()).Raw(`
		SELECT
			COUNT(*) AS total_lesson_plans,
			COUNT(CASE WHEN status = 'draft' THEN 1 END) AS draft_count,
			COUNT(CASE WHEN status = 'published' THEN 1 END) AS published_count,
			COUNT(CASE WHEN status = 'archived' THEN 1 END) AS archived_count,
			COUNT(CASE WHEN lesson_date >= CURRENT_DATE THEN 1 END) AS upcoming_count,
			COUNT(CASE WHEN lesson_date < CURRENT_DATE THEN 1 END) AS past_count
		FROM lesson_plans
	`).Scan(&stats).Error
	if err != nil {
		log.Printf("[ERROR] lesson plan stats: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch lesson plan statistics")
	}
	return c.JSON(stats)
}
