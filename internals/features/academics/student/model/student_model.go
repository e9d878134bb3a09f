package model

import (
	"time"
)

// StudentModel is the one-to-one extension of a users row with role=student.
// A student optionally references a parent and a class.
type StudentModel struct {
	ID               uint       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID           uint       `gorm:"column:user_id;uniqueIndex;not null" json:"user_id"`
	StudentID        string     `gorm:"column:student_id;size:50;not null" json:"student_id"`
	GradeLevel       *string    `gorm:"column:grade_level;size:20" json:"grade_level,omitempty"`
	DateOfBirth      *time.Time `gorm:"column:date_of_birth" json:"date_of_birth,omitempty"`
	Address          *string    `gorm:"column:address;type:text" json:"address,omitempty"`
	EmergencyContact *string    `gorm:"column:emergency_contact;size:255" json:"emergency_contact,omitempty"`
	EmergencyPhone   *string    `gorm:"column:emergency_phone;size:30" json:"emergency_phone,omitempty"`
	ParentID         *uint      `gorm:"column:parent_id;index" json:"parent_id,omitempty"`
	ClassID          *uint      `gorm:"column:class_id;index" json:"class_id,omitempty"`
	SchoolID         *uint      `gorm:"column:school_id;index" json:"school_id,omitempty"`
	CreatedAt        time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (StudentModel) TableName() string {
	return "students"
}
