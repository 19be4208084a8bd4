package model

import (
	"path"
	"strings"
)

// FileType is the coarse category the admin file manager filters on.
type FileType string

const (
	FileImage    FileType = "image"
	FileDocument FileType = "document"
	FileOther    FileType = "other"
)

// UploadedFile is a file stored by the backend and served from /api/files/{name}.
type UploadedFile struct {
	Name      string   `json:"name" validate:"required"`
	Size      int64    `json:"size"`
	Type      FileType `json:"type"`
	CreatedAt string   `json:"created_at"`
	URL       string   `json:"url,omitempty"`
	// Key is the object storage key; it never leaves the backend.
	Key       string   `json:"-"`
}

var (
	imageExts    = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true, ".svg": true}
	documentExts = map[string]bool{".pdf": true, ".doc": true, ".docx": true, ".xls": true, ".xlsx": true, ".ppt": true, ".pptx": true, ".txt": true, ".csv": true}
)

// ClassifyFile derives the FileType from a file name's extension.
func ClassifyFile(name string) FileType {
	ext := strings.ToLower(path.Ext(name))
	switch {
	case imageExts[ext]:
		return FileImage
	case documentExts[ext]:
		return FileDocument
	default:
		return FileOther
	}
}
