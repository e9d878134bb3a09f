package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/notifications/dto"
	"schoolhub_backend/internals/features/notifications/model"
	userModel "schoolhub_backend/internals/features/users/user/model"
	helper "schoolhub_backend/internals/helpers"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

var validate = validator.New()

const notificationRowColumns = `notifications.*,
	users.first_name AS sender_first_name, users.last_name AS sender_last_name`

// =============================
// List own notifications
// =============================
// GET /api/notifications?page=&limit=&unreadOnly=
func (ctrl *NotificationController) GetNotifications(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)
	userID := helper.GetUserID(c)

	q := ctrl.DB.WithContext(c.Context()).Model(&model.NotificationModel{}).
		Where("notifications.user_id = ?", userID)
	if c.Query("unreadOnly") == "true" {
		q = q.Where("notifications.is_read = false")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count notifications: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch notifications")
	}

	var rows []dto.NotificationRow
	if err := q.Select(notificationRowColumns).
		Joins("LEFT JOIN users ON notifications.sender_id = users.id").
		Order("notifications.created_at DESC").Limit(p.Limit).Offset(p.Offset).
		Scan(&rows).Error; err != nil {
		log.Printf("[ERROR] list notifications: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch notifications")
	}

	return c.JSON(fiber.Map{
		"notifications": rows,
		"pagination":    helper.BuildSimplePagination(total, p),
	})
}

// =============================
// Get notification by ID
// =============================
// Reading a notification marks it read.
func (ctrl *NotificationController) GetNotificationByID(c *fiber.Ctx) error {
	var row dto.NotificationRow
	err := ctrl.DB.WithContext(c.Context()).Model(&model.NotificationModel{}).
		Select(notificationRowColumns).
		Joins("LEFT JOIN users ON notifications.sender_id = users.id").
		Where("notifications.id = ? AND notifications.user_id = ?",
			c.Params("id"), helper.GetUserID(c)).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Notification not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch notification")
	}

	if !row.IsRead {
		if err := ctrl.DB.WithContext(c.Context()).Model(&model.NotificationModel{}).
			Where("id = ?", row.ID).Update("is_read", true).Error; err != nil {
			log.Printf("[ERROR] mark read: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch notification")
		}
		row.IsRead = true
	}

	return c.JSON(row)
}

// =============================
// Create notifications
// =============================
// POST /api/notifications — the audience is a single user, every user
// holding a role (optionally within one school), or a whole school.
// All rows go in with one bulk insert.
func (ctrl *NotificationController) CreateNotification(c *fiber.Ctx) error {
	var body dto.CreateNotificationRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	notifType := body.Type
	if notifType == "" {
		notifType = model.TypeInfo
	}

	var targetIDs []uint
	switch {
	case body.UserID != nil:
		var count int64
		if err := ctrl.DB.WithContext(c.Context()).Model(&userModel.UserModel{}).
			Where("id = ?", *body.UserID).Count(&count).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create notifications")
		}
		if count == 0 {
			return helper.JsonError(c, fiber.StatusNotFound, "Target user not found")
		}
		targetIDs = []uint{*body.UserID}

	case body.UserRole != nil:
		q := ctrl.DB.WithContext(c.Context()).Model(&userModel.UserModel{}).
			Where("role = ?", *body.UserRole)
		if body.SchoolID != nil {
			q = q.Where("school_id = ?", *body.SchoolID)
		}
		if err := q.Pluck("id", &targetIDs).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create notifications")
		}

	case body.SchoolID != nil:
		if err := ctrl.DB.WithContext(c.Context()).Model(&userModel.UserModel{}).
			Where("school_id = ?", *body.SchoolID).
			Pluck("id", &targetIDs).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create notifications")
		}

	default:
		return helper.JsonError(c, fiber.StatusBadRequest, "Must specify userId, userRole, or schoolId")
	}

	if len(targetIDs) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No target users found")
	}

	senderID := helper.GetUserID(c)
	notifications := make([]model.NotificationModel, 0, len(targetIDs))
	for _, id := range targetIDs {
		notifications = append(notifications, model.NotificationModel{
			UserID:   id,
			Title:    body.Title,
			Message:  body.Message,
			Type:     notifType,
			SenderID: &senderID,
		})
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&notifications).Error; err != nil {
		log.Printf("[ERROR] create notifications: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create notifications")
	}

	return helper.JsonCreated(c, "Notifications created successfully", fiber.Map{
		"count": len(targetIDs),
	})
}

// =============================
// Mark read / read-all
// =============================
func (ctrl *NotificationController) MarkRead(c *fiber.Ctx) error {
	res := ctrl.DB.WithContext(c.Context()).Model(&model.NotificationModel{}).
		Where("id = ? AND user_id = ?", c.Params("id"), helper.GetUserID(c)).
		Update("is_read", true)
	if res.Error != nil {
		log.Printf("[ERROR] mark read: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to mark notification as read")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Notification not found")
	}
	return helper.JsonMessage(c, "Notification marked as read")
}

func (ctrl *NotificationController) MarkAllRead(c *fiber.Ctx) error {
	if err := ctrl.DB.WithContext(c.Context()).Model(&model.NotificationModel{}).
		Where("user_id = ? AND is_read = false", helper.GetUserID(c)).
		Update("is_read", true).Error; err != nil {
		log.Printf("[ERROR] mark all read: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to mark all notifications as read")
	}
	return helper.JsonMessage(c, "All notifications marked as read")
}

// =============================
// Delete one / all
// =============================
func (ctrl *NotificationController) DeleteNotification(c *fiber.Ctx) error {
	res := ctrl.DB.WithContext(c.Context()).
		Where("id = ? AND user_id = ?", c.Params("id"), helper.GetUserID(c)).
		Delete(&model.NotificationModel{})
	if res.Error != nil {
		log.Printf("[ERROR] delete notification: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete notification")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Notification not found")
	}
	return helper.JsonMessage(c, "Notification deleted successfully")
}

func (ctrl *NotificationController) DeleteAllNotifications(c *fiber.Ctx) error {
	if err := ctrl.DB.WithContext(c.Context()).
		Where("user_id = ?", helper.GetUserID(c)).
		Delete(&model.NotificationModel{}).Error; err != nil {
		log.Printf("[ERROR] delete all notifications: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete all notifications")
	}
	return helper.JsonMessage(c, "All notifications deleted successfully")
}

// =============================
// Statistics / unread badge
// =============================
// GET /api/notifications/stats/overview
func (ctrl *NotificationController) GetNotificationStats(c *fiber.Ctx) error {
	var stats dto.NotificationStats
	err := ctrl.DB.WithContext(c.Context()).Raw(`
		SELECT
			COUNT(*) AS total_notifications,
			COUNT(CASE WHEN is_read = false THEN 1 END) AS unread_count,
			COUNT(CASE WHEN type = 'info' THEN 1 END) AS info_count,
			COUNT(CASE WHEN type = 'warning' THEN 1 END) AS warning_count,
			COUNT(CASE WHEN type = 'success' THEN 1 END) AS success_count,
			COUNT(CASE WHEN type = 'error' THEN 1 END) AS error_count
		FROM notifications
		WHERE user_id = ?
	`, helper.GetUserID(c)).Scan(&stats).Error
	if err != nil {
		log.Printf("[ERROR] notification stats: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch notification statistics")
	}
	return c.JSON(stats)
}

// GET /api/notifications/unread/count
func (ctrl *NotificationController) GetUnreadCount(c *fiber.Ctx) error {
	var count int64
	if err := ctrl.DB.WithContext(c.Context()).Model(&model.NotificationModel{}).
		Where("user_id = ? AND is_read = false", helper.GetUserID(c)).
		Count(&count).Error; err != nil {
		log.Printf("[ERROR] unread count: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch unread count")
	}
	return c.JSON(fiber.Map{"unreadCount": count})
}
