package dto

import (
	schoolModel "schoolhub_backend/internals/features/schools/school/model"
)

type CreateSchoolRequest struct {
	Name            string  `json:"name" validate:"required,min=1"`
	Address         *string `json:"address"`
	Phone           *string `json:"phone"`
	Email           *string `json:"email" validate:"omitempty,email"`
	Website         *string `json:"website" validate:"omitempty,url"`
	PrincipalName   *string `json:"principalName"`
	EstablishedYear *int    `json:"establishedYear" validate:"omitempty,min=1800,max=2100"`
	EducationSystem string  `json:"educationSystem" validate:"omitempty,oneof=anglophone francophone"`
}

type UpdateSchoolRequest struct {
	Name            *string `json:"name" validate:"omitempty,min=1"`
	Address         *string `json:"address"`
	Phone           *string `json:"phone"`
	Email           *string `json:"email" validate:"omitempty,email"`
	Website         *string `json:"website" validate:"omitempty,url"`
	PrincipalName   *string `json:"principalName"`
	EstablishedYear *int    `json:"establishedYear" validate:"omitempty,min=1800,max=2100"`
	EducationSystem *string `json:"educationSystem" validate:"omitempty,oneof=anglophone francophone"`
	IsActive        *bool   `json:"isActive"`
}

// SchoolWithCounts is the list/detail row: the school plus how many rows
// of each dependent table reference it.
type SchoolWithCounts struct {
	schoolModel.SchoolModel
	UserCount    int64 `json:"user_count" gorm:"column:user_count"`
	StudentCount int64 `json:"student_count" gorm:"column:student_count"`
	TeacherCount int64 `json:"teacher_count" gorm:"column:teacher_count"`
	ClassCount   int64 `json:"class_count,omitempty" gorm:"column:class_count"`
}

type SchoolStats struct {
	TotalUsers    int64 `json:"total_users" gorm:"column:total_users"`
	TotalStudents int64 `json:"total_students" gorm:"column:total_students"`
	TotalTeachers int64 `json:"total_teachers" gorm:"column:total_teachers"`
	TotalClasses  int64 `json:"total_classes" gorm:"column:total_classes"`
	TotalSubjects int64 `json:"total_subjects" gorm:"column:total_subjects"`
}

func (r *CreateSchoolRequest) ToModel() schoolModel.SchoolModel {
	eduSystem := r.EducationSystem
	if eduSystem == "" {
		eduSystem = "anglophone"
	}
	return schoolModel.SchoolModel{
		Name:            r.Name,
		Address:         r.Address,
		Phone:           r.Phone,
		Email:           r.Email,
		Website:         r.Website,
		PrincipalName:   r.PrincipalName,
		EstablishedYear: r.EstablishedYear,
		EducationSystem: eduSystem,
		IsActive:        true,
	}
}
