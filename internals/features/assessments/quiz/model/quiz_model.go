package model

import (
	"strings"
	"time"

	"gorm.io/datatypes"
)

// Canonical quiz schema: subject as free text plus class_level, with an
// optional availability window. Scoring is exact case-insensitive matching
// against each question's stored correct answer.
type QuizModel struct {
	ID              uint       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title           string     `gorm:"column:title;size:255;not null" json:"title"`
	Description     *string    `gorm:"column:description;type:text" json:"description,omitempty"`
	Subject         string     `gorm:"column:subject;size:255;not null" json:"subject"`
	ClassLevel      int        `gorm:"column:class_level;not null" json:"class_level"` // 1..6
	DurationMinutes int        `gorm:"column:duration_minutes;not null;default:30" json:"duration_minutes"`
	EducationSystem string     `gorm:"column:education_system;type:varchar(20);not null;default:'anglophone'" json:"education_system"`
	Status          string     `gorm:"column:status;type:varchar(20);not null;default:'active'" json:"status"`
	StartDate       *time.Time `gorm:"column:start_date" json:"start_date,omitempty"`
	EndDate         *time.Time `gorm:"column:end_date" json:"end_date,omitempty"`
	CreatedBy       uint       `gorm:"column:created_by;index;not null" json:"created_by"`
	SchoolID        *uint      `gorm:"column:school_id;index" json:"school_id,omitempty"`
	CreatedAt       time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (QuizModel) TableName() string {
	return "quizzes"
}

// AvailableAt reports whether the quiz can be taken at the given instant.
func (q *QuizModel) AvailableAt(now time.Time) bool {
	if q.StartDate != nil && now.Before(*q.StartDate) {
		return false
	}
	if q.EndDate != nil && now.After(*q.EndDate) {
		return false
	}
	return true
}

type QuizQuestionModel struct {
	ID            uint           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	QuizID        uint           `gorm:"column:quiz_id;index;not null" json:"quiz_id"`
	QuestionText  string         `gorm:"column:question_text;type:text;not null" json:"question_text"`
	QuestionType  string         `gorm:"column:question_type;type:varchar(20);not null" json:"question_type"`
	QuestionOrder int            `gorm:"column:question_order;not null" json:"question_order"`
	Options       datatypes.JSON `gorm:"column:options" json:"options"`
	CorrectAnswer *string        `gorm:"column:correct_answer;type:text" json:"-"` // never leaked to takers
	CreatedAt     time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (QuizQuestionModel) TableName() string {
	return "quiz_questions"
}

// Question types.
const (
	QuestionMultipleChoice = "multiple_choice"
	QuestionTrueFalse      = "true_false"
	QuestionShortAnswer    = "short_answer"
	QuestionEssay          = "essay"
)

func IsValidQuestionType(t string) bool {
	switch t {
	case QuestionMultipleChoice, QuestionTrueFalse, QuestionShortAnswer, QuestionEssay:
		return true
	}
	return false
}

type QuizSubmissionModel struct {
	ID             uint           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	QuizID         uint           `gorm:"column:quiz_id;index:idx_quiz_student,unique;not null" json:"quiz_id"`
	StudentID      uint           `gorm:"column:student_id;index:idx_quiz_student,unique;not null" json:"student_id"`
	Answers        datatypes.JSON `gorm:"column:answers" json:"answers"`
	Score          int            `gorm:"column:score;not null" json:"score"`
	CorrectCount   int            `gorm:"column:correct_count;not null" json:"correct_count"`
	TotalQuestions int            `gorm:"column:total_questions;not null" json:"total_questions"`
	Graded         bool           `gorm:"column:graded;not null;default:true" json:"graded"`
	SubmittedAt    time.Time      `gorm:"column:submitted_at;autoCreateTime" json:"submitted_at"`
}

func (QuizSubmissionModel) TableName() string {
	return "quiz_submissions"
}

// ScoreAnswers grades submitted answers positionally against the ordered
// questions: exact match, case-insensitive, surrounding whitespace ignored.
// The score is the rounded percentage of correct answers.
func ScoreAnswers(questions []QuizQuestionModel, answers []string) (score, correct, total int) {
	total = len(questions)
	if total == 0 {
		return 0, 0, 0
	}
	for i, q := range questions {
		if q.CorrectAnswer == nil || i >= len(answers) {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(answers[i]), strings.TrimSpace(*q.CorrectAnswer)) {
			correct++
		}
	}
	score = int(float64(correct)/float64(total)*100 + 0.5)
	return score, correct, total
}
