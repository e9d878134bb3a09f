package dto

import (
	notificationModel "schoolhub_backend/internals/features/notifications/model"
)

type CreateNotificationRequest struct {
	Title    string  `json:"title" validate:"required,min=1"`
	Message  string  `json:"message" validate:"required,min=1"`
	Type     string  `json:"type" validate:"omitempty,oneof=info warning success error"`
	UserID   *uint   `json:"userId"`
	UserRole *string `json:"userRole" validate:"omitempty,oneof=admin teacher student parent"`
	SchoolID *uint   `json:"schoolId"`
}

// NotificationRow is a notifications row joined with the sender's name.
type NotificationRow struct {
	notificationModel.NotificationModel
	SenderFirstName *string `json:"sender_first_name" gorm:"column:sender_first_name"`
	SenderLastName  *string `json:"sender_last_name" gorm:"column:sender_last_name"`
}

type NotificationStats struct {
	TotalNotifications int64 `json:"total_notifications" gorm:"column:total_notifications"`
	UnreadCount        int64 `json:"unread_count" gorm:"column:unread_count"`
	InfoCount          int64 `json:"info_count" gorm:"column:info_count"`
	WarningCount       int64 `json:"warning_count" gorm:"column:warning_count"`
	SuccessCount       int64 `json:"success_count" gorm:"column:success_count"`
	ErrorCount         int64 `json:"error_count" gorm:"column:error_count"`
}
