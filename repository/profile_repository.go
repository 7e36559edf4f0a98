package repository

import (
	"context"
	"errors"

	"inspecta-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ProfileRepository handles database operations for user profiles
type ProfileRepository struct {
	db *pgxpool.Pool
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Create inserts a profile for a user
func (r *ProfileRepository) Create(ctx context.Context, profile *models.Profile) error {
	query := `
		INSERT INTO profiles (user_id, data)
		VALUES ($1, $2)
		RETURNING updated_at`

	return r.db.QueryRow(ctx, query, profile.UserID, profile.Data).Scan(&profile.UpdatedAt)
}

// GetByUserID retrieves the profile blob for a user
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	profile := &models.Profile{}
	query := `
		SELECT user_id, data, updated_at
		FROM profiles
		WHERE user_id = $1`

	err := r.db.QueryRow(ctx, query, userID).Scan(
		&profile.UserID,
		&profile.Data,
		&profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	return profile, nil
}

// Upsert replaces the profile blob for a user, creating the row when
// one does not exist yet.
func (r *ProfileRepository) Upsert(ctx context.Context, userID uuid.UUID, data string) error {
	query := `
		INSERT INTO profiles (user_id, data)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET
			data = EXCLUDED.data,
			updated_at = NOW()`

	_, err := r.db.Exec(ctx, query, userID, data)
	return err
}
