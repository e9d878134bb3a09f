package model

import (
	"time"
)

type SubjectModel struct {
	ID          uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"column:name;size:255;not null" json:"name"`
	Code        *string   `gorm:"column:code;size:50" json:"code,omitempty"`
	Description *string   `gorm:"column:description;type:text" json:"description,omitempty"`
	SchoolID    *uint     `gorm:"column:school_id;index" json:"school_id,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (SubjectModel) TableName() string {
	return "subjects"
}
