package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/academics/teacher/controller"
	authMw "schoolhub_backend/internals/middlewares/auth"
)

func TeacherRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTeacherController(db)

	teachers := api.Group("/teachers", authMw.AuthMiddleware(db), authMw.TeacherOrAdmin())
	teachers.Get("/", ctrl.GetTeachers)
	teachers.Get("/:id", ctrl.GetTeacherByID)
	teachers.Post("/", ctrl.CreateTeacher)
	teachers.Put("/:id", ctrl.UpdateTeacher)
	teachers.Delete("/:id", authMw.AdminOnly(), ctrl.DeleteTeacher)
}
