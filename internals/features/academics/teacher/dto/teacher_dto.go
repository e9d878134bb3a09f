package dto

import "time"

type CreateTeacherRequest struct {
	UserID     uint       `json:"userId" validate:"required"`
	EmployeeID string     `json:"employeeId" validate:"required,min=1"`
	Department string     `json:"department" validate:"required,min=1"`
	HireDate   *time.Time `json:"hireDate"`
	Salary     *float64   `json:"salary"`
	SchoolID   *uint      `json:"schoolId"`
}

type UpdateTeacherRequest struct {
	Department *string    `json:"department" validate:"omitempty,min=1"`
	HireDate   *time.Time `json:"hireDate"`
	Salary     *float64   `json:"salary"`
	SchoolID   *uint      `json:"schoolId"`
}

// TeacherRow is a teachers row joined with its user account.
type TeacherRow struct {
	ID         uint       `json:"id" gorm:"column:id"`
	EmployeeID *string    `json:"employeeId" gorm:"column:employee_id"`
	FirstName  string     `json:"firstName" gorm:"column:first_name"`
	LastName   string     `json:"lastName" gorm:"column:last_name"`
	Email      string     `json:"email" gorm:"column:email"`
	Phone      *string    `json:"phone" gorm:"column:phone"`
	Department *string    `json:"department" gorm:"column:department"`
	HireDate   *time.Time `json:"hireDate" gorm:"column:hire_date"`
	Salary     *float64   `json:"salary" gorm:"column:salary"`
	IsActive   bool       `json:"isActive" gorm:"column:is_active"`
	CreatedAt  time.Time  `json:"createdAt" gorm:"column:created_at"`
}
