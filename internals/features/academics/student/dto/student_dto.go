package dto

import "time"

type CreateStudentRequest struct {
	UserID           uint       `json:"userId" validate:"required"`
	StudentID        string     `json:"studentId" validate:"required,min=1"`
	GradeLevel       *string    `json:"gradeLevel"`
	DateOfBirth      *time.Time `json:"dateOfBirth"`
	Address          *string    `json:"address"`
	EmergencyContact *string    `json:"emergencyContact"`
	EmergencyPhone   *string    `json:"emergencyPhone"`
	ParentID         *uint      `json:"parentId"`
	ClassID          *uint      `json:"classId"`
	SchoolID         *uint      `json:"schoolId"`
}

type UpdateStudentRequest struct {
	GradeLevel       *string    `json:"gradeLevel"`
	DateOfBirth      *time.Time `json:"dateOfBirth"`
	Address          *string    `json:"address"`
	EmergencyContact *string    `json:"emergencyContact"`
	EmergencyPhone   *string    `json:"emergencyPhone"`
	ParentID         *uint      `json:"parentId"`
	ClassID          *uint      `json:"classId"`
}

// StudentRow is a students row joined with its user account.
type StudentRow struct {
	ID               uint       `json:"id" gorm:"column:id"`
	StudentID        string     `json:"studentId" gorm:"column:student_id"`
	FirstName        string     `json:"firstName" gorm:"column:first_name"`
	LastName         string     `json:"lastName" gorm:"column:last_name"`
	Email            string     `json:"email" gorm:"column:email"`
	Phone            *string    `json:"phone" gorm:"column:phone"`
	GradeLevel       *string    `json:"gradeLevel" gorm:"column:grade_level"`
	DateOfBirth      *time.Time `json:"dateOfBirth" gorm:"column:date_of_birth"`
	Address          *string    `json:"address" gorm:"column:address"`
	EmergencyContact *string    `json:"emergencyContact" gorm:"column:emergency_contact"`
	EmergencyPhone   *string    `json:"emergencyPhone" gorm:"column:emergency_phone"`
	IsActive         bool       `json:"isActive" gorm:"column:is_active"`
	CreatedAt        time.Time  `json:"createdAt" gorm:"column:created_at"`
}
