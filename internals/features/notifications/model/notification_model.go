package model

import (
	"time"
)

type NotificationModel struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"column:user_id;index;not null" json:"user_id"`
	Title     string    `gorm:"column:title;size:255;not null" json:"title"`
	Message   string    `gorm:"column:message;type:text;not null" json:"message"`
	Type      string    `gorm:"column:type;type:varchar(20);not null;default:'info'" json:"type"`
	IsRead    bool      `gorm:"column:is_read;not null;default:false" json:"is_read"`
	SenderID  *uint     `gorm:"column:sender_id" json:"sender_id,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}

// Notification severities.
const (
	TypeInfo    = "info"
	TypeWarning = "warning"
	TypeSuccess = "success"
	TypeError   = "error"
)

func IsValidType(t string) bool {
	switch t {
	case TypeInfo, TypeWarning, TypeSuccess, TypeError:
		return true
	}
	return false
}
