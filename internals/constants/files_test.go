package constants

import (
	"testing"
)

func TestIsAllowedUploadExt(t *testing.T) {
	allowed := []string{"report.pdf", "photo.JPG", "notes.docx", "clip.mp4", "archive.zip"}
	for _, name := range allowed {
		if !IsAllowedUploadExt(name) {
			t.Errorf("IsAllowedUploadExt(%q) = false, want true", name)
		}
	}

	rejected := []string{"script.exe", "payload.sh", "deck.pptx", "noext", ""}
	for _, name := range rejected {
		if IsAllowedUploadExt(name) {
			t.Errorf("IsAllowedUploadExt(%q) = true, want false", name)
		}
	}
}

func TestIsAllowedContentExt(t *testing.T) {
	allowed := []string{"lesson.pdf", "slides.pptx", "slides.PPT", "cover.png"}
	for _, name := range allowed {
		if !IsAllowedContentExt(name) {
			t.Errorf("IsAllowedContentExt(%q) = false, want true", name)
		}
	}

	// Media files pass the general whitelist but not the content one.
	rejected := []string{"clip.mp4", "song.mp3", "archive.zip", "notes.txt"}
	for _, name := range rejected {
		if IsAllowedContentExt(name) {
			t.Errorf("IsAllowedContentExt(%q) = true, want false", name)
		}
	}
}
