package utils

import (
	"errors"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/dendisetiawann/kejora-frontend/config"
)

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// ValidateImageUpload checks a menu photo before it is forwarded upstream.
func ValidateImageUpload(fileHeader *multipart.FileHeader) error {
	if fileHeader.Size > config.AppConfig.MaxUploadSize {
		return errors.New("file size exceeds maximum allowed size")
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExtensions[ext] {
		return errors.New("invalid file type. Only images are allowed")
	}

	return nil
}
