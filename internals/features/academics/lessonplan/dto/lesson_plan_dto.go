package dto

import (
	"time"

	lessonPlanModel "schoolhub_backend/internals/features/academics/lessonplan/model"
)

type CreateLessonPlanRequest struct {
	Title           string     `json:"title" validate:"required,min=1"`
	Description     *string    `json:"description"`
	SubjectID       uint       `json:"subjectId" validate:"required"`
	ClassID         uint       `json:"classId" validate:"required"`
	Objectives      *string    `json:"objectives"`
	Materials       *string    `json:"materials"`
	Activities      *string    `json:"activities"`
	Assessment      *string    `json:"assessment"`
	Homework        *string    `json:"homework"`
	DurationMinutes *int       `json:"durationMinutes" validate:"omitempty,min=1"`
	LessonDate      *time.Time `json:"lessonDate"`
	Status          *string    `json:"status" validate:"omitempty,oneof=draft published archived"`
}

type UpdateLessonPlanRequest struct {
	Title           *string    `json:"title" validate:"omitempty,min=1"`
	Description     *string    `json:"description"`
	Objectives      *string    `json:"objectives"`
	Materials       *string    `json:"materials"`
	Activities      *string    `json:"activities"`
	Assessment      *string    `json:"assessment"`
	Homework        *string    `json:"homework"`
	DurationMinutes *int       `json:"durationMinutes" validate:"omitempty,min=1"`
	LessonDate      *time.Time `json:"lessonDate"`
	Status          *string    `json:"status" validate:"omitempty,oneof=draft published archived"`
}

// LessonPlanRow is a lesson_plans row joined with display names.
type LessonPlanRow struct {
	lessonPlanModel.LessonPlanModel
	SubjectName      *string `json:"subject_name" gorm:"column:subject_name"`
	ClassName        *string `json:"class_name" gorm:"column:class_name"`
	TeacherFirstName *string `json:"teacher_first_name" gorm:"column:teacher_first_name"`
	TeacherLastName  *string `json:"teacher_last_name" gorm:"column:teacher_last_name"`
	SchoolName       *string `json:"school_name" gorm:"column:school_name"`
}

type LessonPlanStats struct {
	TotalLessonPlans int64 `json:"total_lesson_plans" gorm:"column:total_lesson_plans"`
	DraftCount       int64 `json:"draft_count" gorm:"column:draft_count"`
	PublishedCount   int64 `json:"published_count" gorm:"column:published_count"`
	ArchivedCount    int64 `json:"archived_count" gorm:"column:archived_count"`
	UpcomingCount    int64 `json:"upcoming_count" gorm:"column:upcoming_count"`
	PastCount        int64 `json:"past_count" gorm:"column:past_count"`
}
