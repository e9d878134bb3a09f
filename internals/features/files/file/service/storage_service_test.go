package service

import (
	"mime/multipart"
	"testing"

	"schoolhub_backend/internals/constants"
)

func TestValidateUpload(t *testing.T) {
	ok := &multipart.FileHeader{Filename: "report.pdf", Size: 1024}
	if err := ValidateUpload(ok); err != nil {
		t.Errorf("ValidateUpload(pdf, 1KB) = %v, want nil", err)
	}

	tooBig := &multipart.FileHeader{Filename: "report.pdf", Size: constants.MaxUploadSize + 1}
	if err := ValidateUpload(tooBig); err != ErrFileTooLarge {
		t.Errorf("oversized upload: got %v, want ErrFileTooLarge", err)
	}

	badExt := &multipart.FileHeader{Filename: "malware.exe", Size: 10}
	if err := ValidateUpload(badExt); err != ErrInvalidFileType {
		t.Errorf("bad extension: got %v, want ErrInvalidFileType", err)
	}
}

func TestValidateContentUpload(t *testing.T) {
	ok := &multipart.FileHeader{Filename: "slides.pptx", Size: 1024}
	if err := ValidateContentUpload(ok); err != nil {
		t.Errorf("ValidateContentUpload(pptx) = %v, want nil", err)
	}

	// mp4 is fine for general uploads but not CMS content.
	media := &multipart.FileHeader{Filename: "clip.mp4", Size: 1024}
	if err := ValidateContentUpload(media); err != ErrInvalidContentFile {
		t.Errorf("media upload: got %v, want ErrInvalidContentFile", err)
	}

	tooBig := &multipart.FileHeader{Filename: "book.pdf", Size: constants.MaxUploadSize + 1}
	if err := ValidateContentUpload(tooBig); err != ErrFileTooLarge {
		t.Errorf("oversized upload: got %v, want ErrFileTooLarge", err)
	}
}
