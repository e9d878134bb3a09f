package model

import (
	"time"

	"github.com/lib/pq"
)

// ClassModel belongs to a school and a subject, optionally taught by one teacher.
type ClassModel struct {
	ID           uint           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name         string         `gorm:"column:name;size:255;not null" json:"name"`
	SubjectID    uint           `gorm:"column:subject_id;index;not null" json:"subject_id"`
	TeacherID    *uint          `gorm:"column:teacher_id;index" json:"teacher_id,omitempty"`
	SchoolID     *uint          `gorm:"column:school_id;index" json:"school_id,omitempty"`
	RoomNumber   *string        `gorm:"column:room_number;size:50" json:"room_number,omitempty"`
	ScheduleDays pq.StringArray `gorm:"column:schedule_days;type:text[]" json:"schedule_days"`
	StartTime    string         `gorm:"column:start_time;size:5" json:"start_time"` // "HH:MM"
	EndTime      string         `gorm:"column:end_time;size:5" json:"end_time"`
	MaxStudents  int            `gorm:"column:max_students;not null;default:30" json:"max_students"`
	Semester     string         `gorm:"column:semester;size:50;not null" json:"semester"`
	AcademicYear string         `gorm:"column:academic_year;size:20;not null" json:"academic_year"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ClassModel) TableName() string {
	return "classes"
}
