package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/users/user/controller"
	authMw "schoolhub_backend/internals/middlewares/auth"
)

func UserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserController(db)

	users := api.Group("/users", authMw.AuthMiddleware(db), authMw.AdminOnly())
	users.Get("/", ctrl.GetUsers)
	users.Get("/:id", ctrl.GetUserByID)
	users.Put("/:id", ctrl.UpdateUser)
	users.Put("/:id/deactivate", ctrl.DeactivateUser)
	users.Put("/:id/activate", ctrl.ActivateUser)
}
