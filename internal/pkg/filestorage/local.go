package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/halit/campushub/internal/pkg/logger"
)

// LocalStorage saves uploaded files to the local filesystem.
type LocalStorage struct {
	basePath string // root directory for stored files
	baseURL  string // prepended to returned paths when set
}

// NewLocalStorage creates a LocalStorage rooted at basePath. baseURL is
// optional; when provided it is prepended to returned file paths.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}

	return &LocalStorage{
		basePath: basePath,
		baseURL:  baseURL,
	}, nil
}

// SaveFile stores the uploaded file under a generated name and returns its
// accessible path.
func (ls *LocalStorage) SaveFile(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	if fileHeader == nil {
		return "", nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	fullDirPath := ls.basePath
	if subPath != "" {
		fullDirPath = filepath.Join(ls.basePath, subPath)
		if err := os.MkdirAll(fullDirPath, os.ModePerm); err != nil {
			return "", fmt.Errorf("failed to create subdirectory: %w", err)
		}
	}

	// Unique filename to prevent collisions
	ext := filepath.Ext(fileHeader.Filename)
	uniqueFilename := uuid.New().String() + ext
	dstPath := filepath.Join(fullDirPath, uniqueFilename)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	var accessiblePath string
	if ls.baseURL != "" {
		parts := []string{strings.TrimRight(ls.baseURL, "/")}
		if subPath != "" {
			parts = append(parts, subPath)
		}
		parts = append(parts, uniqueFilename)
		accessiblePath = strings.Join(parts, "/")
	} else if subPath != "" {
		accessiblePath = filepath.Join("uploads", subPath, uniqueFilename)
	} else {
		accessiblePath = filepath.Join("uploads", uniqueFilename)
	}

	logger.Debug().
		Str("filename", fileHeader.Filename).
		Str("saved_as", uniqueFilename).
		Msg("File saved")
	return accessiblePath, nil
}

// DeleteFile removes a stored file. Absent files are not an error.
func (ls *LocalStorage) DeleteFile(path string) error {
	if path == "" {
		return nil
	}

	// Strip the base URL back to a filesystem path if needed
	rel := path
	if ls.baseURL != "" && strings.HasPrefix(path, ls.baseURL) {
		rel = strings.TrimLeft(strings.TrimPrefix(path, ls.baseURL), "/")
	}
	rel = strings.TrimPrefix(rel, "uploads/")

	full := filepath.Join(ls.basePath, rel)
	if err := os.Remove(full); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to delete file %s: %w", full, err)
	}
	return nil
}
