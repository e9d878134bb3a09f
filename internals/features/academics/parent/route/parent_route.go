package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/academics/parent/controller"
	authMw "schoolhub_backend/internals/middlewares/auth"
)

func ParentRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewParentController(db)

	parents := api.Group("/parents", authMw.AuthMiddleware(db))
	parents.Get("/", authMw.TeacherOrAdmin(), ctrl.GetParents)
	parents.Get("/:id", authMw.TeacherOrAdmin(), ctrl.GetParentByID)
	parents.Get("/:id/children", authMw.TeacherOrAdmin(), ctrl.GetParentChildren)
	parents.Post("/", authMw.AdminOnly(), ctrl.CreateParent)
	parents.Put("/:id", authMw.TeacherOrAdmin(), ctrl.UpdateParent)
	parents.Delete("/:id", authMw.AdminOnly(), ctrl.DeleteParent)
}
