package model

import (
	"time"
)

// SchoolModel is the tenant: the unit of data isolation for all
// non-super-admin principals.
type SchoolModel struct {
	ID              uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name            string    `gorm:"column:name;size:255;not null" json:"name"`
	Address         *string   `gorm:"column:address;type:text" json:"address,omitempty"`
	Phone           *string   `gorm:"column:phone;size:30" json:"phone,omitempty"`
	Email           *string   `gorm:"column:email;size:255" json:"email,omitempty"`
	Website         *string   `gorm:"column:website;size:255" json:"website,omitempty"`
	PrincipalName   *string   `gorm:"column:principal_name;size:255" json:"principal_name,omitempty"`
	EstablishedYear *int      `gorm:"column:established_year" json:"established_year,omitempty"`
	EducationSystem string    `gorm:"column:education_system;type:varchar(20);not null;default:'anglophone'" json:"education_system"`
	IsActive        bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (SchoolModel) TableName() string {
	return "schools"
}
