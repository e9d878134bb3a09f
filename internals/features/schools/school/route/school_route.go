package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/schools/school/controller"
	authMw "schoolhub_backend/internals/middlewares/auth"
)

func SchoolRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSchoolController(db)

	schools := api.Group("/schools", authMw.AuthMiddleware(db))
	schools.Get("/", ctrl.GetSchools)
	schools.Get("/:id", ctrl.GetSchoolByID)
	schools.Get("/:id/stats", ctrl.GetSchoolStats)
	schools.Post("/", authMw.AdminOnly(), ctrl.CreateSchool)
	schools.Put("/:id", authMw.AdminOnly(), ctrl.UpdateSchool)
	schools.Delete("/:id", authMw.AdminOnly(), ctrl.DeleteSchool)
}
