package repository

import (
	"context"
	"errors"

	"inspecta-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReportRepository handles database operations for reports, owner
// scoped the same way as CompanyRepository.
type ReportRepository struct {
	db *pgxpool.Pool
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{db: db}
}

// Create inserts a new report
func (r *ReportRepository) Create(ctx context.Context, report *models.Report) error {
	query := `
		INSERT INTO reports (user_id, company_id, title, status, content)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`

	return r.db.QueryRow(ctx, query,
		report.UserID,
		report.CompanyID,
		report.Title,
		report.Status,
		report.Content,
	).Scan(&report.ID, &report.CreatedAt, &report.UpdatedAt)
}

// GetByID retrieves a report owned by the given user
func (r *ReportRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Report, error) {
	report := &models.Report{}
	query := `
		SELECT id, user_id, company_id, title, status, content, created_at, updated_at
		FROM reports
		WHERE id = $1 AND user_id = $2`

	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&report.ID,
		&report.UserID,
		&report.CompanyID,
		&report.Title,
		&report.Status,
		&report.Content,
		&report.CreatedAt,
		&report.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	return report, nil
}

// ListByCompany retrieves a user's reports for one company, newest
// first.
func (r *ReportRepository) ListByCompany(ctx context.Context, companyID, userID uuid.UUID) ([]*models.Report, error) {
	query := `
		SELECT id, user_id, company_id, title, status, content, created_at, updated_at
		FROM reports
		WHERE company_id = $1 AND user_id = $2
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, companyID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanReports(rows)
}

// ListAllWithCompany retrieves every report owned by a user across all
// companies, joined with the company display name, newest first.
func (r *ReportRepository) ListAllWithCompany(ctx context.Context, userID uuid.UUID) ([]*models.ReportSummary, error) {
	query := `
		SELECT r.id, r.title, r.status, r.content, r.created_at, c.nome_fantasia
		FROM reports r
		JOIN companies c ON c.id = r.company_id
		WHERE r.user_id = $1
		ORDER BY r.created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := []*models.ReportSummary{}
	for rows.Next() {
		summary := &models.ReportSummary{}
		var content string
		err := rows.Scan(
			&summary.ID,
			&summary.Title,
			&summary.Status,
			&content,
			&summary.CreatedAt,
			&summary.CompanyName,
		)
		if err != nil {
			return nil, err
		}
		summary.Content, err = models.DecodeQuestions(content)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	return summaries, rows.Err()
}

// Update writes a report's mutable fields, scoped by owner
func (r *ReportRepository) Update(ctx context.Context, report *models.Report) error {
	query := `
		UPDATE reports SET
			title = $3,
			status = $4,
			content = $5,
			updated_at = NOW()
		WHERE id = $1 AND user_id = $2`

	tag, err := r.db.Exec(ctx, query,
		report.ID,
		report.UserID,
		report.Title,
		report.Status,
		report.Content,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

// Delete hard-deletes a report owned by the given user
func (r *ReportRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	query := `DELETE FROM reports WHERE id = $1 AND user_id = $2`

	tag, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func scanReports(rows pgx.Rows) ([]*models.Report, error) {
	reports := []*models.Report{}
	for rows.Next() {
		report := &models.Report{}
		err := rows.Scan(
			&report.ID,
			&report.UserID,
			&report.CompanyID,
			&report.Title,
			&report.Status,
			&report.Content,
			&report.CreatedAt,
			&report.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, rows.Err()
}
