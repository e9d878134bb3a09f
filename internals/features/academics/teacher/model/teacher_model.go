package model

import (
	"time"
)

// TeacherModel is the one-to-one extension of a users row with role=teacher.
type TeacherModel struct {
	ID         uint       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID     uint       `gorm:"column:user_id;uniqueIndex;not null" json:"user_id"`
	EmployeeID *string    `gorm:"column:employee_id;size:50" json:"employee_id,omitempty"`
	Department *string    `gorm:"column:department;size:100" json:"department,omitempty"`
	HireDate   *time.Time `gorm:"column:hire_date" json:"hire_date,omitempty"`
	Salary     *float64   `gorm:"column:salary;type:numeric(12,2)" json:"salary,omitempty"`
	SchoolID   *uint      `gorm:"column:school_id;index" json:"school_id,omitempty"`
	CreatedAt  time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (TeacherModel) TableName() string {
	return "teachers"
}
