package dto

import "time"

type CreateParentRequest struct {
	Email      string  `json:"email" validate:"required,email"`
	Password   string  `json:"password" validate:"required,min=6"`
	FirstName  string  `json:"firstName" validate:"required,min=1"`
	LastName   string  `json:"lastName" validate:"required,min=1"`
	Phone      *string `json:"phone"`
	Occupation *string `json:"occupation"`
	Workplace  *string `json:"workplace"`
	SchoolID   *uint   `json:"schoolId"`
}

type UpdateParentRequest struct {
	FirstName  *string `json:"firstName" validate:"omitempty,min=1"`
	LastName   *string `json:"lastName" validate:"omitempty,min=1"`
	Phone      *string `json:"phone"`
	Occupation *string `json:"occupation"`
	Workplace  *string `json:"workplace"`
	SchoolID   *uint   `json:"schoolId"`
}

// ParentRow is a parents row joined with its user account and school name.
type ParentRow struct {
	ID         uint      `json:"id" gorm:"column:id"`
	UserID     uint      `json:"user_id" gorm:"column:user_id"`
	FirstName  string    `json:"first_name" gorm:"column:first_name"`
	LastName   string    `json:"last_name" gorm:"column:last_name"`
	Email      string    `json:"email" gorm:"column:email"`
	Phone      *string   `json:"phone" gorm:"column:phone"`
	Occupation *string   `json:"occupation" gorm:"column:occupation"`
	Workplace  *string   `json:"workplace" gorm:"column:workplace"`
	SchoolID   *uint     `json:"school_id" gorm:"column:school_id"`
	SchoolName *string   `json:"school_name" gorm:"column:school_name"`
	IsActive   bool      `json:"is_active" gorm:"column:is_active"`
	CreatedAt  time.Time `json:"created_at" gorm:"column:created_at"`
}

// ChildRow is a students row joined with user, class and school names,
// as returned under a parent's children.
type ChildRow struct {
	ID         uint    `json:"id" gorm:"column:id"`
	StudentID  string  `json:"student_id" gorm:"column:student_id"`
	FirstName  string  `json:"first_name" gorm:"column:first_name"`
	LastName   string  `json:"last_name" gorm:"column:last_name"`
	Email      string  `json:"email" gorm:"column:email"`
	GradeLevel *string `json:"grade_level" gorm:"column:grade_level"`
	ClassName  *string `json:"class_name" gorm:"column:class_name"`
	SchoolName *string `json:"school_name" gorm:"column:school_name"`
}
