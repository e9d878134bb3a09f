package constants

import (
	"path/filepath"
	"strings"
)

// Upload limits shared by the files router and the CMS router.
const MaxUploadSize = 10 * 1024 * 1024 // 10MB

// Extensions accepted for general uploads (images, documents, media).
var AllowedUploadExtensions = map[string]struct{}{
	".jpeg": {}, ".jpg": {}, ".png": {}, ".gif": {},
	".pdf": {}, ".doc": {}, ".docx": {}, ".txt": {},
	".mp4": {}, ".mp3": {}, ".zip": {},
}

// Extensions accepted for CMS content uploads (images, PDFs, office documents).
var AllowedContentExtensions = map[string]struct{}{
	".jpeg": {}, ".jpg": {}, ".png": {}, ".gif": {},
	".pdf": {}, ".doc": {}, ".docx": {}, ".ppt": {}, ".pptx": {},
}

func IsAllowedUploadExt(filename string) bool {
	_, ok := AllowedUploadExtensions[strings.ToLower(filepath.Ext(filename))]
	return ok
}

func IsAllowedContentExt(filename string) bool {
	_, ok := AllowedContentExtensions[strings.ToLower(filepath.Ext(filename))]
	return ok
}
