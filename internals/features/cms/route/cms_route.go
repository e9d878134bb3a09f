package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/cms/controller"
	authMw "schoolhub_backend/internals/middlewares/auth"
)

// CMSRoutes is admin-only end to end: content authoring, package
// assembly, and platform analytics.
func CMSRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCMSController(db)

	cms := api.Group("/cms", authMw.AuthMiddleware(db), authMw.AdminOnly())
	cms.Post("/content", ctrl.CreateContent)
	cms.Get("/content", ctrl.GetContent)
	cms.Post("/packages", ctrl.CreatePackage)
	cms.Get("/packages", ctrl.GetPackages)
	cms.Get("/analytics", ctrl.GetAnalytics)
}
