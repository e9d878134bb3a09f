package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/academics/classes/controller"
	authMw "schoolhub_backend/internals/middlewares/auth"
)

func ClassRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewClassController(db)

	classes := api.Group("/classes", authMw.AuthMiddleware(db), authMw.TeacherOrAdmin())
	classes.Get("/", ctrl.GetClasses)
	classes.Get("/:id", ctrl.GetClassByID)
	classes.Post("/", ctrl.CreateClass)
	classes.Put("/:id", ctrl.UpdateClass)
	classes.Delete("/:id", authMw.AdminOnly(), ctrl.DeleteClass)
}
