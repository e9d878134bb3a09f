package dto

import (
	fileModel "schoolhub_backend/internals/features/files/file/model"
)

type UpdateFileRequest struct {
	OriginalName *string `json:"originalName" validate:"omitempty,min=1"`
	RelatedType  *string `json:"relatedType" validate:"omitempty,oneof=lesson_plan quiz assignment general"`
	RelatedID    *uint   `json:"relatedId"`
	IsPublic     *bool   `json:"isPublic"`
}

// FileRow is a files row joined with uploader and school names.
type FileRow struct {
	fileModel.FileModel
	UploaderFirstName *string `json:"uploader_first_name" gorm:"column:uploader_first_name"`
	UploaderLastName  *string `json:"uploader_last_name" gorm:"column:uploader_last_name"`
	SchoolName        *string `json:"school_name" gorm:"column:school_name"`
}

type FileStats struct {
	TotalFiles int64 `json:"total_files" gorm:"column:total_files"`
	TotalSize  int64 `json:"total_size" gorm:"column:total_size"`
	ImageCount int64 `json:"image_count" gorm:"column:image_count"`
	PdfCount   int64 `json:"pdf_count" gorm:"column:pdf_count"`
	DocCount   int64 `json:"doc_count" gorm:"column:doc_count"`
	VideoCount int64 `json:"video_count" gorm:"column:video_count"`
	AudioCount int64 `json:"audio_count" gorm:"column:audio_count"`
}
