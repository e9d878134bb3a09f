package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/assessments/quiz/controller"
	authMw "schoolhub_backend/internals/middlewares/auth"
)

func QuizRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewQuizController(db)

	quizzes := api.Group("/quizzes", authMw.AuthMiddleware(db))
	quizzes.Get("/", ctrl.GetQuizzes)
	quizzes.Get("/:id", ctrl.GetQuizByID)
	quizzes.Get("/:id/questions", ctrl.GetQuizQuestions)
	quizzes.Get("/:id/results", ctrl.GetQuizResults)
	quizzes.Post("/", authMw.TeacherOrAdmin(), ctrl.CreateQuiz)
	quizzes.Put("/:id", authMw.TeacherOrAdmin(), ctrl.UpdateQuiz)
	quizzes.Delete("/:id", authMw.TeacherOrAdmin(), ctrl.DeleteQuiz)
	quizzes.Post("/:id/submit", ctrl.SubmitQuiz)
}
