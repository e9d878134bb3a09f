package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/notifications/controller"
	authMw "schoolhub_backend/internals/middlewares/auth"
)

func NotificationRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewNotificationController(db)

	notifications := api.Group("/notifications", authMw.AuthMiddleware(db))
	notifications.Get("/", ctrl.GetNotifications)
	notifications.Get("/stats/overview", ctrl.GetNotificationStats)
	notifications.Get("/unread/count", ctrl.GetUnreadCount)
	notifications.Get("/:id", ctrl.GetNotificationByID)
	notifications.Post("/", authMw.TeacherOrAdmin(), ctrl.CreateNotification)
	notifications.Put("/read-all", ctrl.MarkAllRead)
	notifications.Put("/:id/read", ctrl.MarkRead)
	notifications.Delete("/all", ctrl.DeleteAllNotifications)
	notifications.Delete("/:id", ctrl.DeleteNotification)
}
