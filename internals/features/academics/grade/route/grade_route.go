package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/academics/grade/controller"
	authMw "schoolhub_backend/internals/middlewares/auth"
)

func GradeRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewGradeController(db)

	grades := api.Group("/grades", authMw.AuthMiddleware(db), authMw.TeacherOrAdmin())
	grades.Get("/", ctrl.GetGrades)
	grades.Get("/student/:studentId", ctrl.GetStudentGrades)
	grades.Get("/class/:classId", ctrl.GetClassGrades)
	grades.Post("/", ctrl.CreateGrade)
	grades.Put("/:id", ctrl.UpdateGrade)
}
