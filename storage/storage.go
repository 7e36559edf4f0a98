// Package storage persists uploaded question images on the local
// filesystem or in S3, selected by configuration.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Storage stores and retrieves question-image blobs.
type Storage interface {
	// Upload stores an image and returns its storage path
	Upload(ctx context.Context, imageID uuid.UUID, filename string, data io.Reader) (string, error)

	// Download retrieves an image by storage path
	Download(ctx context.Context, storagePath string) (io.ReadCloser, error)

	// Delete removes an image by storage path
	Delete(ctx context.Context, storagePath string) error
}

// Backend selects the storage implementation
type Backend string

const (
	BackendLocal Backend = "local"
	BackendS3    Backend = "s3"
)

// Config holds storage configuration
type Config struct {
	Backend      Backend
	LocalPath    string // for local storage
	S3Bucket     string // for S3 storage
	S3Region     string
	AWSAccessKey string
	AWSSecretKey string
}

// New creates a storage instance for the configured backend.
func New(cfg Config) (Storage, error) {
	switch cfg.Backend {
	case BackendLocal:
		return NewLocalStorage(cfg.LocalPath)
	case BackendS3:
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Backend)
	}
}

// NewFromEnv creates a storage instance from environment variables,
// defaulting to local storage for development.
func NewFromEnv() (Storage, error) {
	backend := Backend(os.Getenv("STORAGE_TYPE"))
	if backend == "" {
		backend = BackendLocal
	}

	switch backend {
	case BackendLocal:
		localPath := os.Getenv("STORAGE_LOCAL_PATH")
		if localPath == "" {
			localPath = "./storage/images"
		}
		return NewLocalStorage(localPath)

	case BackendS3:
		cfg := Config{
			Backend:      BackendS3,
			S3Bucket:     os.Getenv("AWS_S3_BUCKET"),
			S3Region:     os.Getenv("AWS_REGION"),
			AWSAccessKey: os.Getenv("AWS_ACCESS_KEY_ID"),
			AWSSecretKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		}
		if cfg.S3Region == "" {
			cfg.S3Region = "us-east-1"
		}
		if cfg.S3Bucket == "" {
			return nil, errors.New("AWS_S3_BUCKET environment variable is required for S3 storage")
		}
		return NewS3Storage(cfg)

	default:
		return nil, fmt.Errorf("unknown storage backend: %s", backend)
	}
}

// storagePathFor builds a unique, sanitized path for an image. The
// two-character prefix spreads objects across key prefixes.
func storagePathFor(imageID uuid.UUID, filename string) string {
	ext := filepath.Ext(filename)
	baseName := strings.TrimSuffix(filepath.Base(filename), ext)
	baseName = strings.NewReplacer(" ", "_", "/", "_", "\\", "_").Replace(baseName)

	return fmt.Sprintf("%s/%s_%s%s", imageID.String()[:2], imageID.String(), baseName, ext)
}
