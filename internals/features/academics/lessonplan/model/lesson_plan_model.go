package model

import (
	"time"
)

// LessonPlanModel carries the pedagogical free-text fields of one planned lesson.
type LessonPlanModel struct {
	ID              uint       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title           string     `gorm:"column:title;size:255;not null" json:"title"`
	Description     *string    `gorm:"column:description;type:text" json:"description,omitempty"`
	SubjectID       uint       `gorm:"column:subject_id;index;not null" json:"subject_id"`
	ClassID         uint       `gorm:"column:class_id;index;not null" json:"class_id"`
	TeacherID       uint       `gorm:"column:teacher_id;index;not null" json:"teacher_id"`
	SchoolID        *uint      `gorm:"column:school_id;index" json:"school_id,omitempty"`
	Objectives      *string    `gorm:"column:objectives;type:text" json:"objectives,omitempty"`
	Materials       *string    `gorm:"column:materials;type:text" json:"materials,omitempty"`
	Activities      *string    `gorm:"column:activities;type:text" json:"activities,omitempty"`
	Assessment      *string    `gorm:"column:assessment;type:text" json:"assessment,omitempty"`
	Homework        *string    `gorm:"column:homework;type:text" json:"homework,omitempty"`
	DurationMinutes int        `gorm:"column:duration_minutes;not null;default:45" json:"duration_minutes"`
	LessonDate      *time.Time `gorm:"column:lesson_date" json:"lesson_date,omitempty"`
	Status          string     `gorm:"column:status;type:varchar(20);not null;default:'draft'" json:"status"`
	CreatedAt       time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (LessonPlanModel) TableName() string {
	return "lesson_plans"
}

// Lesson plan lifecycle states.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

func IsValidStatus(s string) bool {
	return s == StatusDraft || s == StatusPublished || s == StatusArchived
}
