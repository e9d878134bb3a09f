package service

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"schoolhub_backend/internals/configs"
	"schoolhub_backend/internals/constants"
)

var (
	ErrFileTooLarge       = errors.New("File too large. Maximum size is 10MB.")
	ErrInvalidFileType    = errors.New("Invalid file type. Only images, documents, and media files are allowed.")
	ErrInvalidContentFile = errors.New("Only images, PDFs, and office documents are allowed")
)

// StoredFile describes an upload after it has been written to disk.
type StoredFile struct {
	Filename string
	Path     string
	Size     int64
	MimeType string
}

// ValidateUpload runs the pre-write checks: size cap and extension
// whitelist. It never touches the disk, so a rejected upload leaves
// no trace.
func ValidateUpload(header *multipart.FileHeader) error {
	if header.Size > constants.MaxUploadSize {
		return ErrFileTooLarge
	}
	if !constants.IsAllowedUploadExt(header.Filename) {
		return ErrInvalidFileType
	}
	return nil
}

// ValidateContentUpload checks CMS content uploads, which take a
// narrower extension whitelist than general uploads.
func ValidateContentUpload(header *multipart.FileHeader) error {
	if header.Size > constants.MaxUploadSize {
		return ErrFileTooLarge
	}
	if !constants.IsAllowedContentExt(header.Filename) {
		return ErrInvalidContentFile
	}
	return nil
}

// StoreUpload writes the upload under dir with a collision-free name
// of the form file-<unixms>-<rand><ext>, sniffing the MIME type from
// the content rather than trusting the client header.
func StoreUpload(header *multipart.FileHeader, dir string) (*StoredFile, error) {
	src, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	mtype, err := mimetype.DetectReader(src)
	if err != nil {
		return nil, err
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	name := fmt.Sprintf("file-%d-%d%s", time.Now().UnixMilli(), rand.Int63n(1_000_000_000), ext)
	path := filepath.Join(dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	defer dst.Close()

	size, err := io.Copy(dst, src)
	if err != nil {
		os.Remove(path)
		return nil, err
	}

	return &StoredFile{
		Filename: name,
		Path:     path,
		Size:     size,
		MimeType: mtype.String(),
	}, nil
}

// UploadDir resolves the configured upload root.
func UploadDir() string {
	if configs.UploadDir != "" {
		return configs.UploadDir
	}
	return "./uploads"
}

// ContentDir is where CMS content files live.
func ContentDir() string {
	return filepath.Join(UploadDir(), "content")
}
