package repository

import (
	"context"
	"errors"

	"inspecta-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ImageRepository handles database operations for question images
type ImageRepository struct {
	db *pgxpool.Pool
}

// NewImageRepository creates a new image repository
func NewImageRepository(db *pgxpool.Pool) *ImageRepository {
	return &ImageRepository{db: db}
}

// Create inserts an image record
func (r *ImageRepository) Create(ctx context.Context, image *models.Image) error {
	query := `
		INSERT INTO images (id, user_id, filename, mime_type, size, storage_path)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	return r.db.QueryRow(ctx, query,
		image.ID,
		image.UserID,
		image.Filename,
		image.MimeType,
		image.Size,
		image.StoragePath,
	).Scan(&image.CreatedAt)
}

// GetByID retrieves an image record owned by the given user
func (r *ImageRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Image, error) {
	image := &models.Image{}
	query := `
		SELECT id, user_id, filename, mime_type, size, storage_path, created_at
		FROM images
		WHERE id = $1 AND user_id = $2`

	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&image.ID,
		&image.UserID,
		&image.Filename,
		&image.MimeType,
		&image.Size,
		&image.StoragePath,
		&image.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	return image, nil
}
