package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/schools/subject/controller"
	authMw "schoolhub_backend/internals/middlewares/auth"
)

func SubjectRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSubjectController(db)

	subjects := api.Group("/subjects", authMw.AuthMiddleware(db))
	subjects.Get("/", ctrl.GetSubjects)
	subjects.Get("/:id", ctrl.GetSubjectByID)
	subjects.Post("/", authMw.TeacherOrAdmin(), ctrl.CreateSubject)
	subjects.Put("/:id", authMw.TeacherOrAdmin(), ctrl.UpdateSubject)
	subjects.Delete("/:id", authMw.AdminOnly(), ctrl.DeleteSubject)
}
