package model

import (
	"time"
)

// UserModel is the identity row shared by all roles. Role-specific attributes
// live in the students/teachers/parents extension tables.
type UserModel struct {
	ID              uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Email           string    `gorm:"column:email;size:255;uniqueIndex;not null" json:"email"`
	Password        string    `gorm:"column:password;not null" json:"-"`
	FirstName       string    `gorm:"column:first_name;size:100;not null" json:"first_name"`
	LastName        string    `gorm:"column:last_name;size:100;not null" json:"last_name"`
	Role            string    `gorm:"column:role;type:varchar(20);not null;default:'student'" json:"role"`
	Phone           *string   `gorm:"column:phone;size:30" json:"phone,omitempty"`
	IsActive        bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`
	SchoolID        *uint     `gorm:"column:school_id;index" json:"school_id,omitempty"` // nil for super_admin
	EducationSystem string    `gorm:"column:education_system;type:varchar(20);default:'anglophone'" json:"education_system"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) FullName() string {
	return u.FirstName + " " + u.LastName
}
