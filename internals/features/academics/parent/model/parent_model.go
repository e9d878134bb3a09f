package model

import (
	"time"
)

// ParentModel is the one-to-one extension of a users row with role=parent.
type ParentModel struct {
	ID         uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID     uint      `gorm:"column:user_id;uniqueIndex;not null" json:"user_id"`
	Occupation *string   `gorm:"column:occupation;size:100" json:"occupation,omitempty"`
	Workplace  *string   `gorm:"column:workplace;size:255" json:"workplace,omitempty"`
	SchoolID   *uint     `gorm:"column:school_id;index" json:"school_id,omitempty"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ParentModel) TableName() string {
	return "parents"
}
