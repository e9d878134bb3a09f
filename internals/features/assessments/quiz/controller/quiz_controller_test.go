package controller

import (
	"errors"
	"fmt"
	"testing"

	"gorm.io/gorm"
)

func TestDuplicateSubmission(t *testing.T) {
	if !duplicateSubmission(gorm.ErrDuplicatedKey) {
		t.Error("unique-index violation should be treated as a duplicate submission")
	}
	if !duplicateSubmission(fmt.Errorf("insert submission: %w", gorm.ErrDuplicatedKey)) {
		t.Error("wrapped unique-index violation should still match")
	}
	if duplicateSubmission(errors.New("connection reset")) {
		t.Error("unrelated errors must not be reported as duplicates")
	}
	if duplicateSubmission(gorm.ErrRecordNotFound) {
		t.Error("not-found must not be reported as a duplicate")
	}
}
