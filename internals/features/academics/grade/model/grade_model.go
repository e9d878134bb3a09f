package model

import (
	"math"
	"time"
)

// GradeModel records one assignment result. grade_percentage and letter_grade
// are always recomputed from the stored points, never editable on their own.
type GradeModel struct {
	ID              uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	StudentID       uint      `gorm:"column:student_id;index;not null" json:"student_id"`
	ClassID         uint      `gorm:"column:class_id;index;not null" json:"class_id"`
	AssignmentName  string    `gorm:"column:assignment_name;size:255;not null" json:"assignment_name"`
	PointsEarned    float64   `gorm:"column:points_earned;type:numeric(8,2);not null" json:"points_earned"`
	PointsPossible  float64   `gorm:"column:points_possible;type:numeric(8,2);not null" json:"points_possible"`
	GradePercentage float64   `gorm:"column:grade_percentage;type:numeric(5,2);not null" json:"grade_percentage"`
	LetterGrade     string    `gorm:"column:letter_grade;size:2;not null" json:"letter_grade"`
	GradedBy        *uint     `gorm:"column:graded_by" json:"graded_by,omitempty"`
	Comments        *string   `gorm:"column:comments;type:text" json:"comments,omitempty"`
	GradedAt        time.Time `gorm:"column:graded_at;autoCreateTime" json:"graded_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (GradeModel) TableName() string {
	return "grades"
}

// ComputePercentage returns earned/possible as a percentage, rounded to two
// decimals. A zero denominator yields 0.
func ComputePercentage(earned, possible float64) float64 {
	if possible <= 0 {
		return 0
	}
	return math.Round(earned/possible*100*100) / 100
}

// LetterForPercentage maps a percentage onto the fixed A-F scale:
// A>=90, B>=80, C>=70, D>=60, else F.
func LetterForPercentage(pct float64) string {
	switch {
	case pct >= 90:
		return "A"
	case pct >= 80:
		return "B"
	case pct >= 70:
		return "C"
	case pct >= 60:
		return "D"
	default:
		return "F"
	}
}

// Recompute refreshes the derived fields from the stored points.
func (g *GradeModel) Recompute() {
	g.GradePercentage = ComputePercentage(g.PointsEarned, g.PointsPossible)
	g.LetterGrade = LetterForPercentage(g.GradePercentage)
}
