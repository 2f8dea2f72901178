package utils

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

var allowedPhotoExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
}

var (
	ErrPhotoTooLarge  = errors.New("file too large (max 5MB)")
	ErrPhotoBadFormat = errors.New("invalid file type. Use PNG/JPG/JPEG/WEBP only")
)

// SavePhoto stores an uploaded profile photo under uploadDir and returns the
// server-generated filename. Only the extension of the client filename is
// trusted, and only after an allowlist check.
func SavePhoto(c *gin.Context, file *multipart.FileHeader, userID int, uploadDir string, maxSize int64) (string, error) {
	if file.Size > maxSize {
		return "", ErrPhotoTooLarge
	}

	ext := strings.ToLower(filepath.Ext(filepath.Base(file.Filename)))
	if !allowedPhotoExtensions[ext] {
		return "", ErrPhotoBadFormat
	}

	if err := os.MkdirAll(uploadDir, os.ModePerm); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("user_%d_%d%s", userID, time.Now().Unix(), ext)
	if err := c.SaveUploadedFile(file, filepath.Join(uploadDir, filename)); err != nil {
		return "", err
	}

	return filename, nil
}

func DeletePhoto(uploadDir, filename string) {
	if filename != "" {
		os.Remove(filepath.Join(uploadDir, filename))
	}
}
