package dto

import (
	userModel "schoolhub_backend/internals/features/users/user/model"
)

// ================== REQUEST ==================

type RegisterRequest struct {
	Email     string  `json:"email" validate:"required,email"`
	Password  string  `json:"password" validate:"required,min=6"`
	FirstName string  `json:"firstName" validate:"required,min=1"`
	LastName  string  `json:"lastName" validate:"required,min=1"`
	Role      string  `json:"role" validate:"required,oneof=school_admin admin teacher student parent"`
	Phone     *string `json:"phone"`
	SchoolID  *uint   `json:"schoolId"`

	EducationSystem string `json:"educationSystem" validate:"omitempty,oneof=anglophone francophone"`

	// Role-specific extension fields, all optional.
	EmployeeID *string `json:"employeeId"`
	Department *string `json:"department"`
	StudentID  *string `json:"studentId"`
	GradeLevel *string `json:"gradeLevel"`
	Occupation *string `json:"occupation"`
	Workplace  *string `json:"workplace"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

// ================== RESPONSE ==================

type UserResponse struct {
	ID              uint    `json:"id"`
	Email           string  `json:"email"`
	FirstName       string  `json:"firstName"`
	LastName        string  `json:"lastName"`
	Role            string  `json:"role"`
	Phone           *string `json:"phone,omitempty"`
	IsActive        bool    `json:"isActive"`
	SchoolID        *uint   `json:"schoolId,omitempty"`
	EducationSystem string  `json:"educationSystem"`
}

func ToUserResponse(u *userModel.UserModel) UserResponse {
	return UserResponse{
		ID:              u.ID,
		Email:           u.Email,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		Role:            u.Role,
		Phone:           u.Phone,
		IsActive:        u.IsActive,
		SchoolID:        u.SchoolID,
		EducationSystem: u.EducationSystem,
	}
}
