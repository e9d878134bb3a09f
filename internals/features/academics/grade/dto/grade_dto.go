package dto

import "time"

type CreateGradeRequest struct {
	StudentID      uint    `json:"studentId" validate:"required"`
	ClassID        uint    `json:"classId" validate:"required"`
	AssignmentName string  `json:"assignmentName" validate:"required,min=1"`
	PointsEarned   float64 `json:"pointsEarned" validate:"min=0"`
	PointsPossible float64 `json:"pointsPossible" validate:"required,gt=0"`
	Comments       *string `json:"comments"`
}

type UpdateGradeRequest struct {
	PointsEarned   *float64 `json:"pointsEarned" validate:"omitempty,min=0"`
	PointsPossible *float64 `json:"pointsPossible" validate:"omitempty,gt=0"`
	Comments       *string  `json:"comments"`
}

// GradeRow is a grades row joined with class, subject, student and teacher names.
type GradeRow struct {
	ID               uint      `json:"id" gorm:"column:id"`
	AssignmentName   string    `json:"assignmentName" gorm:"column:assignment_name"`
	PointsEarned     float64   `json:"pointsEarned" gorm:"column:points_earned"`
	PointsPossible   float64   `json:"pointsPossible" gorm:"column:points_possible"`
	GradePercentage  float64   `json:"gradePercentage" gorm:"column:grade_percentage"`
	LetterGrade      string    `json:"letterGrade" gorm:"column:letter_grade"`
	GradedAt         time.Time `json:"gradedAt" gorm:"column:graded_at"`
	Comments         *string   `json:"comments" gorm:"column:comments"`
	ClassName        *string   `json:"className,omitempty" gorm:"column:class_name"`
	SubjectName      *string   `json:"subjectName,omitempty" gorm:"column:subject_name"`
	StudentFirstName *string   `json:"-" gorm:"column:student_first_name"`
	StudentLastName  *string   `json:"-" gorm:"column:student_last_name"`
	StudentName      *string   `json:"studentName,omitempty" gorm:"-"`
	TeacherFirstName *string   `json:"-" gorm:"column:teacher_first_name"`
	TeacherLastName  *string   `json:"-" gorm:"column:teacher_last_name"`
	TeacherName      *string   `json:"teacherName" gorm:"-"`
}

// ResolveNames folds the joined first/last name pairs into display names.
func (r *GradeRow) ResolveNames() {
	if r.StudentFirstName != nil {
		name := *r.StudentFirstName
		if r.StudentLastName != nil {
			name += " " + *r.StudentLastName
		}
		r.StudentName = &name
	}
	if r.TeacherFirstName != nil {
		name := *r.TeacherFirstName
		if r.TeacherLastName != nil {
			name += " " + *r.TeacherLastName
		}
		r.TeacherName = &name
	}
}
