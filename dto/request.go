package dto

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
)

// MaxUploadBytes caps accepted receipt uploads at 10 MB.
const MaxUploadBytes = 10 * 1024 * 1024

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".pdf":  true,
	".txt":  true,
}

// UploadRequest represents an incoming receipt upload.
type UploadRequest struct {
	File *multipart.FileHeader `form:"file" binding:"required"`
}

// Validate performs basic validation on the upload before any processing.
func (r *UploadRequest) Validate() error {
	if r.File == nil {
		return ErrNoFileProvided
	}
	ext := strings.ToLower(filepath.Ext(r.File.Filename))
	if !allowedExtensions[ext] {
		return fmt.Errorf("%w: %s", ErrUnsupportedFileType, ext)
	}
	if r.File.Size > MaxUploadBytes {
		return ErrFileTooLarge
	}
	return nil
}
