package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/users/auth/controller"
	"schoolhub_backend/internals/middlewares"
	authMw "schoolhub_backend/internals/middlewares/auth"
)

func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	auth := api.Group("/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Get("/me", authMw.AuthMiddleware(db), ctrl.Me)
	auth.Put("/change-password", authMw.AuthMiddleware(db), ctrl.ChangePassword)
}
