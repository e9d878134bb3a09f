package dto

import "time"

type QuizQuestionInput struct {
	Text          string   `json:"text" validate:"required,min=1"`
	Type          string   `json:"type" validate:"required,oneof=multiple_choice true_false short_answer essay"`
	Options       []string `json:"options"`
	CorrectAnswer *string  `json:"correct_answer"`
}

type CreateQuizRequest struct {
	Title           string              `json:"title" validate:"required,min=1"`
	Description     *string             `json:"description"`
	Subject         string              `json:"subject" validate:"required,min=1"`
	ClassLevel      int                 `json:"class_level" validate:"required,min=1,max=6"`
	Duration        int                 `json:"duration" validate:"required,min=5,max=180"`
	EducationSystem string              `json:"education_system" validate:"omitempty,oneof=anglophone francophone"`
	StartDate       *time.Time          `json:"start_date"`
	EndDate         *time.Time          `json:"end_date"`
	Questions       []QuizQuestionInput `json:"questions" validate:"required,min=1,dive"`
}

type UpdateQuizRequest struct {
	Title       *string    `json:"title" validate:"omitempty,min=1"`
	Description *string    `json:"description"`
	Subject     *string    `json:"subject" validate:"omitempty,min=1"`
	ClassLevel  *int       `json:"class_level" validate:"omitempty,min=1,max=6"`
	Duration    *int       `json:"duration" validate:"omitempty,min=5,max=180"`
	Status      *string    `json:"status" validate:"omitempty,oneof=active closed"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
}

type SubmitQuizRequest struct {
	Answers []string `json:"answers" validate:"required"`
}

// QuizRow is a quizzes row joined with its creator's name.
type QuizRow struct {
	ID              uint       `json:"id" gorm:"column:id"`
	Title           string     `json:"title" gorm:"column:title"`
	Description     *string    `json:"description" gorm:"column:description"`
	Subject         string     `json:"subject" gorm:"column:subject"`
	ClassLevel      int        `json:"class_level" gorm:"column:class_level"`
	DurationMinutes int        `json:"duration_minutes" gorm:"column:duration_minutes"`
	EducationSystem string     `json:"education_system" gorm:"column:education_system"`
	Status          string     `json:"status" gorm:"column:status"`
	StartDate       *time.Time `json:"start_date" gorm:"column:start_date"`
	EndDate         *time.Time `json:"end_date" gorm:"column:end_date"`
	CreatedBy       uint       `json:"created_by" gorm:"column:created_by"`
	FirstName       *string    `json:"first_name" gorm:"column:first_name"`
	LastName        *string    `json:"last_name" gorm:"column:last_name"`
	CreatedAt       time.Time  `json:"created_at" gorm:"column:created_at"`
}

// ResultRow is a submission joined with its quiz title and subject.
type ResultRow struct {
	ID             uint      `json:"id" gorm:"column:id"`
	QuizID         uint      `json:"quiz_id" gorm:"column:quiz_id"`
	StudentID      uint      `json:"student_id" gorm:"column:student_id"`
	Score          int       `json:"score" gorm:"column:score"`
	CorrectCount   int       `json:"correct_count" gorm:"column:correct_count"`
	TotalQuestions int       `json:"total_questions" gorm:"column:total_questions"`
	SubmittedAt    time.Time `json:"submitted_at" gorm:"column:submitted_at"`
	Title          string    `json:"title" gorm:"column:title"`
	Subject        string    `json:"subject" gorm:"column:subject"`
}
