package controller

import (
	"errors"
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/features/assessments/quiz/dto"
	"schoolhub_backend/internals/features/assessments/quiz/model"
	helper "schoolhub_backend/internals/helpers"
)

type QuizController struct {
	DB *gorm.DB
}

func NewQuizController(db *gorm.DB) *QuizController {
	return &QuizController{DB: db}
}

var validate = validator.New()

// duplicateSubmission reports whether an insert failed on the
// (quiz_id, student_id) unique index. The pre-insert count check cannot
// see a submission racing in between, so the index is the backstop.
func duplicateSubmission(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// isQuizOwner reports whether the principal may mutate the quiz.
func isQuizOwner(c *fiber.Ctx, quiz *model.QuizModel) bool {
	role := helper.GetUserRole(c)
	if role == constants.RoleSuperAdmin || role == constants.RoleSchoolAdmin || role == constants.RoleAdmin {
		return true
	}
	return quiz.CreatedBy == helper.GetUserID(c)
}

// =============================
// List quizzes
// =============================
// GET /api/quizzes
func (ctrl *QuizController) GetQuizzes(c *fiber.Ctx) error {
	var rows []dto.QuizRow
	err := ctrl.DB.WithContext(c.Context()).Model(&model.QuizModel{}).
		Select("quizzes.*, users.first_name, users.last_name").
		Joins("LEFT JOIN users ON quizzes.created_by = users.id").
		Order("quizzes.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		log.Printf("[ERROR] list quizzes: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch quizzes")
	}
	return c.JSON(rows)
}

// =============================
// Get quiz by ID
// =============================
func (ctrl *QuizController) GetQuizByID(c *fiber.Ctx) error {
	var row dto.QuizRow
	err := ctrl.DB.WithContext(c.Context()).Model(&model.QuizModel{}).
		Select("quizzes.*, users.first_name, users.last_name").
		Joins("LEFT JOIN users ON quizzes.created_by = users.id").
		Where("quizzes.id = ?", c.Params("id")).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Quiz not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch quiz")
	}
	return c.JSON(row)
}

// =============================
// Quiz questions
// =============================
// GET /api/quizzes/:id/questions — correct answers stay server-side,
// the question model never serializes them.
func (ctrl *QuizController) GetQuizQuestions(c *fiber.Ctx) error {
	var count int64
	if err := ctrl.DB.WithContext(c.Context()).Model(&model.QuizModel{}).
		Where("id = ?", c.Params("id")).Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch quiz questions")
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Quiz not found")
	}

	var questions []model.QuizQuestionModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("quiz_id = ?", c.Params("id")).
		Order("question_order").
		Find(&questions).Error; err != nil {
		log.Printf("[ERROR] quiz questions: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch quiz questions")
	}
	return c.JSON(fiber.Map{"questions": questions})
}

// =============================
// Create quiz
// =============================
// Quiz and question rows go in as one transaction so a failed question
// insert never leaves a half-created quiz behind.
func (ctrl *QuizController) CreateQuiz(c *fiber.Ctx) error {
	var body dto.CreateQuizRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	eduSystem := body.EducationSystem
	if eduSystem == "" {
		eduSystem = helper.GetEducationSystem(c)
	}
	quiz := model.QuizModel{
		Title:           body.Title,
		Description:     body.Description,
		Subject:         body.Subject,
		ClassLevel:      body.ClassLevel,
		DurationMinutes: body.Duration,
		EducationSystem: eduSystem,
		Status:          "active",
		StartDate:       body.StartDate,
		EndDate:         body.EndDate,
		CreatedBy:       helper.GetUserID(c),
		SchoolID:        helper.GetSchoolID(c),
	}

	err := ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&quiz).Error; err != nil {
			return err
		}
		questions := make([]model.QuizQuestionModel, 0, len(body.Questions))
		for i, q := range body.Questions {
			opts := q.Options
			if opts == nil {
				opts = []string{}
			}
			raw, err := sonic.Marshal(opts)
			if err != nil {
				return err
			}
			questions = append(questions, model.QuizQuestionModel{
				QuizID:        quiz.ID,
				QuestionText:  q.Text,
				QuestionType:  q.Type,
				QuestionOrder: i + 1,
				Options:       raw,
				CorrectAnswer: q.CorrectAnswer,
			})
		}
		return tx.Create(&questions).Error
	})
	if err != nil {
		log.Printf("[ERROR] create quiz: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create quiz")
	}

	return helper.JsonCreated(c, "Quiz created successfully", fiber.Map{
		"quiz": quiz,
	})
}

// =============================
// Update quiz
// =============================
func (ctrl *QuizController) UpdateQuiz(c *fiber.Ctx) error {
	var body dto.UpdateQuizRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var quiz model.QuizModel
	if err := ctrl.DB.WithContext(c.Context()).First(&quiz, c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Quiz not found or unauthorized")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update quiz")
	}
	if !isQuizOwner(c, &quiz) {
		return helper.JsonError(c, fiber.StatusNotFound, "Quiz not found or unauthorized")
	}

	if body.Title != nil {
		quiz.Title = *body.Title
	}
	if body.Description != nil {
		quiz.Description = body.Description
	}
	if body.Subject != nil {
		quiz.Subject = *body.Subject
	}
	if body.ClassLevel != nil {
		quiz.ClassLevel = *body.ClassLevel
	}
	if body.Duration != nil {
		quiz.DurationMinutes = *body.Duration
	}
	if body.Status != nil {
		quiz.Status = *body.Status
	}
	if body.StartDate != nil {
		quiz.StartDate = body.StartDate
	}
	if body.EndDate != nil {
		quiz.EndDate = body.EndDate
	}

	if err := ctrl.DB.WithContext(c.Context()).Save(&quiz).Error; err != nil {
		log.Printf("[ERROR] update quiz: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update quiz")
	}
	return helper.JsonMessage(c, "Quiz updated successfully", fiber.Map{
		"quiz": quiz,
	})
}

// =============================
// Delete quiz
// =============================
func (ctrl *QuizController) DeleteQuiz(c *fiber.Ctx) error {
	var quiz model.QuizModel
	if err := ctrl.DB.WithContext(c.Context()).First(&quiz, c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Quiz not found or unauthorized")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete quiz")
	}
	if !isQuizOwner(c, &quiz) {
		return helper.JsonError(c, fiber.StatusNotFound, "Quiz not found or unauthorized")
	}

	err := ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quiz_id = ?", quiz.ID).Delete(&model.QuizQuestionModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&quiz).Error
	})
	if err != nil {
		log.Printf("[ERROR] delete quiz: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete quiz")
	}
	return helper.JsonMessage(c, "Quiz deleted successfully")
}

// =============================
// Submit quiz
// =============================
// POST /api/quizzes/:id/submit — answers are matched positionally against
// the ordered questions. One submission per student per quiz.
func (ctrl *QuizController) SubmitQuiz(c *fiber.Ctx) error {
	var body dto.SubmitQuizRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var quiz model.QuizModel
	if err := ctrl.DB.WithContext(c.Context()).First(&quiz, c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Quiz not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to submit quiz")
	}
	if !quiz.AvailableAt(time.Now()) {
		return helper.JsonError(c, fiber.StatusNotFound, "Quiz is not available")
	}

	studentID := helper.GetUserID(c)
	var submitted int64
	if err := ctrl.DB.WithContext(c.Context()).Model(&model.QuizSubmissionModel{}).
		Where("quiz_id = ? AND student_id = ?", quiz.ID, studentID).
		Count(&submitted).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to submit quiz")
	}
	if submitted > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Quiz already submitted")
	}

	var questions []model.QuizQuestionModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("quiz_id = ?", quiz.ID).
		Order("question_order").
		Find(&questions).Error; err != nil {
		log.Printf("[ERROR] submit quiz questions: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to submit quiz")
	}
	if len(questions) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Quiz not found")
	}

	score, correct, total := model.ScoreAnswers(questions, body.Answers)

	rawAnswers, err := sonic.Marshal(body.Answers)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to submit quiz")
	}
	submission := model.QuizSubmissionModel{
		QuizID:         quiz.ID,
		StudentID:      studentID,
		Answers:        rawAnswers,
		Score:          score,
		CorrectCount:   correct,
		TotalQuestions: total,
		Graded:         true,
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&submission).Error; err != nil {
		if duplicateSubmission(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Quiz already submitted")
		}
		log.Printf("[ERROR] save submission: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to submit quiz")
	}

	return c.JSON(fiber.Map{
		"message":        "Quiz submitted successfully",
		"score":          score,
		"correctAnswers": correct,
		"totalQuestions": total,
		"submission":     submission,
	})
}

// =============================
// Quiz results
// =============================
// GET /api/quizzes/:id/results — the caller's own submissions.
func (ctrl *QuizController) GetQuizResults(c *fiber.Ctx) error {
	var rows []dto.ResultRow
	err := ctrl.DB.WithContext(c.Context()).Model(&model.QuizSubmissionModel{}).
		Select("quiz_submissions.*, quizzes.title, quizzes.subject").
		Joins("JOIN quizzes ON quiz_submissions.quiz_id = quizzes.id").
		Where("quiz_submissions.quiz_id = ? AND quiz_submissions.student_id = ?",
			c.Params("id"), helper.GetUserID(c)).
		Order("quiz_submissions.submitted_at DESC").
		Scan(&rows).Error
	if err != nil {
		log.Printf("[ERROR] quiz results: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch quiz results")
	}
	return c.JSON(rows)
}
