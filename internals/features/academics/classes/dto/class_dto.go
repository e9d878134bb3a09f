package dto

import (
	"time"

	"github.com/lib/pq"
)

type CreateClassRequest struct {
	Name         string   `json:"name" validate:"required,min=1"`
	SubjectID    uint     `json:"subjectId" validate:"required"`
	TeacherID    *uint    `json:"teacherId"`
	RoomNumber   *string  `json:"roomNumber"`
	ScheduleDays []string `json:"scheduleDays" validate:"required,min=1"`
	StartTime    string   `json:"startTime" validate:"required,len=5"`
	EndTime      string   `json:"endTime" validate:"required,len=5"`
	MaxStudents  int      `json:"maxStudents" validate:"required,min=1"`
	Semester     string   `json:"semester" validate:"required,min=1"`
	AcademicYear string   `json:"academicYear" validate:"required,min=1"`
	SchoolID     *uint    `json:"schoolId"`
}

type UpdateClassRequest struct {
	Name         *string  `json:"name" validate:"omitempty,min=1"`
	SubjectID    *uint    `json:"subjectId"`
	TeacherID    *uint    `json:"teacherId"`
	RoomNumber   *string  `json:"roomNumber"`
	ScheduleDays []string `json:"scheduleDays"`
	StartTime    *string  `json:"startTime" validate:"omitempty,len=5"`
	EndTime      *string  `json:"endTime" validate:"omitempty,len=5"`
	MaxStudents  *int     `json:"maxStudents" validate:"omitempty,min=1"`
	Semester     *string  `json:"semester" validate:"omitempty,min=1"`
	AcademicYear *string  `json:"academicYear" validate:"omitempty,min=1"`
}

// ClassRow is a classes row joined with subject and teacher names.
type ClassRow struct {
	ID               uint      `json:"id" gorm:"column:id"`
	Name             string    `json:"name" gorm:"column:name"`
	RoomNumber       *string   `json:"roomNumber" gorm:"column:room_number"`
	ScheduleDays     pq.StringArray `json:"scheduleDays" gorm:"column:schedule_days;type:text[]"`
	StartTime        string    `json:"startTime" gorm:"column:start_time"`
	EndTime          string    `json:"endTime" gorm:"column:end_time"`
	MaxStudents      int       `json:"maxStudents" gorm:"column:max_students"`
	Semester         string    `json:"semester" gorm:"column:semester"`
	AcademicYear     string    `json:"academicYear" gorm:"column:academic_year"`
	SubjectName      *string   `json:"subjectName" gorm:"column:subject_name"`
	SubjectCode      *string   `json:"subjectCode" gorm:"column:subject_code"`
	TeacherFirstName *string   `json:"-" gorm:"column:teacher_first_name"`
	TeacherLastName  *string   `json:"-" gorm:"column:teacher_last_name"`
	TeacherName      *string   `json:"teacherName" gorm:"-"`
	CreatedAt        time.Time `json:"createdAt" gorm:"column:created_at"`
}

// ResolveTeacherName folds the joined first/last name columns into the
// single teacherName field the SPA renders.
func (r *ClassRow) ResolveTeacherName() {
	if r.TeacherFirstName == nil {
		return
	}
	name := *r.TeacherFirstName
	if r.TeacherLastName != nil {
		name += " " + *r.TeacherLastName
	}
	r.TeacherName = &name
}
