package model

import (
	"time"
)

// FileModel is the metadata row for one uploaded object. The DB row is the
// source of truth for the original filename and MIME type; the disk path is
// only verified at download time.
type FileModel struct {
	ID           uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Filename     string    `gorm:"column:filename;size:255;not null" json:"filename"`
	OriginalName string    `gorm:"column:original_name;size:255;not null" json:"original_name"`
	FilePath     string    `gorm:"column:file_path;size:512;not null" json:"file_path"`
	FileSize     int64     `gorm:"column:file_size;not null" json:"file_size"`
	MimeType     string    `gorm:"column:mime_type;size:127;not null" json:"mime_type"`
	UploadedBy   uint      `gorm:"column:uploaded_by;index;not null" json:"uploaded_by"`
	RelatedType  string    `gorm:"column:related_type;type:varchar(20);not null;default:'general'" json:"related_type"`
	RelatedID    *uint     `gorm:"column:related_id" json:"related_id,omitempty"`
	SchoolID     *uint     `gorm:"column:school_id;index" json:"school_id,omitempty"`
	IsPublic     bool      `gorm:"column:is_public;not null;default:false" json:"is_public"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (FileModel) TableName() string {
	return "files"
}

// Association targets a file row may point at.
const (
	RelatedLessonPlan = "lesson_plan"
	RelatedQuiz       = "quiz"
	RelatedAssignment = "assignment"
	RelatedGeneral    = "general"
)

func IsValidRelatedType(t string) bool {
	switch t {
	case RelatedLessonPlan, RelatedQuiz, RelatedAssignment, RelatedGeneral:
		return true
	}
	return false
}
