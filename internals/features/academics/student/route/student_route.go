package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/academics/student/controller"
	authMw "schoolhub_backend/internals/middlewares/auth"
)

func StudentRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewStudentController(db)

	students := api.Group("/students", authMw.AuthMiddleware(db), authMw.TeacherOrAdmin())
	students.Get("/", ctrl.GetStudents)
	students.Get("/:id", ctrl.GetStudentByID)
	students.Post("/", ctrl.CreateStudent)
	students.Put("/:id", ctrl.UpdateStudent)
	students.Delete("/:id", authMw.AdminOnly(), ctrl.DeleteStudent)
}
