package dto

import (
	"time"

	userModel "schoolhub_backend/internals/features/users/user/model"
)

type UpdateUserRequest struct {
	FirstName *string `json:"firstName" validate:"omitempty,min=1"`
	LastName  *string `json:"lastName" validate:"omitempty,min=1"`
	Phone     *string `json:"phone"`
	Role      *string `json:"role" validate:"omitempty,oneof=super_admin school_admin admin teacher student parent"`
	IsActive  *bool   `json:"isActive"`
}

type UserResponse struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      string    `json:"role"`
	Phone     *string   `json:"phone,omitempty"`
	IsActive  bool      `json:"isActive"`
	SchoolID  *uint     `json:"schoolId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func ToUserResponse(u *userModel.UserModel) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		Phone:     u.Phone,
		IsActive:  u.IsActive,
		SchoolID:  u.SchoolID,
		CreatedAt: u.CreatedAt,
	}
}

func ToUserResponseList(users []userModel.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, ToUserResponse(&users[i]))
	}
	return out
}
