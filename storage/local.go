package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// LocalStorage keeps images under a base directory on disk.
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates a local storage instance, creating the base
// directory when needed.
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &LocalStorage{basePath: basePath}, nil
}

// Upload writes an image to disk
func (s *LocalStorage) Upload(ctx context.Context, imageID uuid.UUID, filename string, data io.Reader) (string, error) {
	storagePath := storagePathFor(imageID, filename)
	fullPath := filepath.Join(s.basePath, storagePath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, data); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return storagePath, nil
}

// Download opens a stored image
func (s *LocalStorage) Download(ctx context.Context, storagePath string) (io.ReadCloser, error) {
	file, err := os.Open(filepath.Join(s.basePath, storagePath))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("image not found: %s", storagePath)
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return file, nil
}

// Delete removes a stored image; a missing file is not an error
func (s *LocalStorage) Delete(ctx context.Context, storagePath string) error {
	err := os.Remove(filepath.Join(s.basePath, storagePath))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
