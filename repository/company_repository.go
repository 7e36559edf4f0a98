package repository

import (
	"context"
	"errors"

	"inspecta-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CompanyRepository handles database operations for companies. Every
// query takes the owner's user id alongside the record id so that a
// foreign company behaves exactly like a nonexistent one.
type CompanyRepository struct {
	db *pgxpool.Pool
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db *pgxpool.Pool) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// Create inserts a new company
func (r *CompanyRepository) Create(ctx context.Context, company *models.Company) error {
	query := `
		INSERT INTO companies (user_id, razao_social, nome_fantasia, cnpj)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`

	return r.db.QueryRow(ctx, query,
		company.UserID,
		company.RazaoSocial,
		company.NomeFantasia,
		company.CNPJ,
	).Scan(&company.ID, &company.CreatedAt, &company.UpdatedAt)
}

// GetByID retrieves a company owned by the given user
func (r *CompanyRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Company, error) {
	company := &models.Company{}
	query := `
		SELECT id, user_id, razao_social, nome_fantasia, cnpj, created_at, updated_at
		FROM companies
		WHERE id = $1 AND user_id = $2`

	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&company.ID,
		&company.UserID,
		&company.RazaoSocial,
		&company.NomeFantasia,
		&company.CNPJ,
		&company.CreatedAt,
		&company.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	return company, nil
}

// ListByUserID retrieves all companies owned by a user
func (r *CompanyRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Company, error) {
	query := `
		SELECT id, user_id, razao_social, nome_fantasia, cnpj, created_at, updated_at
		FROM companies
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	companies := []*models.Company{}
	for rows.Next() {
		company := &models.Company{}
		err := rows.Scan(
			&company.ID,
			&company.UserID,
			&company.RazaoSocial,
			&company.NomeFantasia,
			&company.CNPJ,
			&company.CreatedAt,
			&company.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		companies = append(companies, company)
	}

	return companies, rows.Err()
}

// Update writes a company's mutable fields, scoped by owner
func (r *CompanyRepository) Update(ctx context.Context, company *models.Company) error {
	query := `
		UPDATE companies SET
			razao_social = $3,
			nome_fantasia = $4,
			cnpj = $5,
			updated_at = NOW()
		WHERE id = $1 AND user_id = $2`

	tag, err := r.db.Exec(ctx, query,
		company.ID,
		company.UserID,
		company.RazaoSocial,
		company.NomeFantasia,
		company.CNPJ,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

// Delete hard-deletes a company owned by the given user
func (r *CompanyRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	query := `DELETE FROM companies WHERE id = $1 AND user_id = $2`

	tag, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
