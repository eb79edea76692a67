package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrOutsideStorage is returned for paths that escape the storage root
var ErrOutsideStorage = errors.New("caminho fora do diretório de armazenamento")

// LocalStorage keeps generated documents and signed scans on the local
// filesystem, organised as <subDir>/<yyyy>/<mm>/<uuid><ext>
type LocalStorage struct {
	basePath string
	now      func() time.Time
}

// NewLocalStorage creates a new local storage instance
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &LocalStorage{basePath: basePath, now: time.Now}, nil
}

func (s *LocalStorage) target(subDir, originalName string) (string, error) {
	dir := filepath.Join(s.basePath, subDir, s.now().Format("2006/01"))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}
	ext := strings.ToLower(filepath.Ext(originalName))
	return filepath.Join(dir, uuid.NewString()+ext), nil
}

func (s *LocalStorage) relative(path string) string {
	rel, err := filepath.Rel(s.basePath, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}

// Upload saves a multipart file and returns its relative path
func (s *LocalStorage) Upload(file multipart.File, header *multipart.FileHeader, subDir string) (string, error) {
	path, err := s.target(subDir, header.Filename)
	if err != nil {
		return "", err
	}

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to save file: %w", err)
	}
	return s.relative(path), nil
}

// UploadFromBytes saves bytes under a name derived from filename's extension
func (s *LocalStorage) UploadFromBytes(data []byte, filename string, subDir string) (string, error) {
	path, err := s.target(subDir, filename)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return s.relative(path), nil
}

// FullPath resolves a stored relative path, refusing anything that leaves the root
func (s *LocalStorage) FullPath(relativePath string) (string, error) {
	full := filepath.Join(s.basePath, filepath.FromSlash(relativePath))
	rel, err := filepath.Rel(s.basePath, full)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", ErrOutsideStorage
	}
	return full, nil
}

// Open returns a stored file for reading
func (s *LocalStorage) Open(relativePath string) (*os.File, error) {
	full, err := s.FullPath(relativePath)
	if err != nil {
		return nil, err
	}
	return os.Open(full)
}

// Delete removes a stored file
func (s *LocalStorage) Delete(relativePath string) error {
	full, err := s.FullPath(relativePath)
	if err != nil {
		return err
	}
	return os.Remove(full)
}

// Exists checks if a stored file exists
func (s *LocalStorage) Exists(relativePath string) bool {
	full, err := s.FullPath(relativePath)
	if err != nil {
		return false
	}
	_, err = os.Stat(full)
	return err == nil
}

// ValidContentTypes returns allowed MIME types for signed contract scans
func ValidContentTypes() map[string]bool {
	return map[string]bool{
		"application/pdf": true,
		"image/jpeg":      true,
		"image/jpg":       true,
		"image/png":       true,
	}
}

// MaxFileSize returns the maximum allowed upload size (10MB)
func MaxFileSize() int64 {
	return 10 * 1024 * 1024
}

// IsValidContentType checks if the content type is allowed
func IsValidContentType(contentType string) bool {
	return ValidContentTypes()[contentType]
}
