package service

import (
	"context"
	"encoding/json"

	"inspecta-backend/export"
	"inspecta-backend/models"

	"github.com/google/uuid"
)

// ReportStore is the persistence surface for reports.
type ReportStore interface {
	Create(ctx context.Context, report *models.Report) error
	GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Report, error)
	ListByCompany(ctx context.Context, companyID, userID uuid.UUID) ([]*models.Report, error)
	ListAllWithCompany(ctx context.Context, userID uuid.UUID) ([]*models.ReportSummary, error)
	Update(ctx context.Context, report *models.Report) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

// ReportService handles owner-scoped report CRUD, duplication and
// export.
type ReportService struct {
	reports   ReportStore
	companies CompanyStore
	users     UserStore
}

// NewReportService creates a new report service
func NewReportService(reports ReportStore, companies CompanyStore, users UserStore) *ReportService {
	return &ReportService{
		reports:   reports,
		companies: companies,
		users:     users,
	}
}

// CreateReportInput carries the fields of a report create request.
// Content may be a JSON array of questions or an already-encoded
// string; both are accepted and normalized before storage. TemplateID,
// when set and the supplied content is absent or empty, seeds content
// from an existing owned report without touching its title.
type CreateReportInput struct {
	CompanyID  string          `json:"companyId"`
	Title      string          `json:"title"`
	Status     string          `json:"status"`
	Content    json.RawMessage `json:"content"`
	TemplateID string          `json:"templateId"`
}

// Create validates and persists a report. The company must exist and
// belong to the same user; a foreign company id reads as not found.
func (s *ReportService) Create(ctx context.Context, userID uuid.UUID, input CreateReportInput) (*models.ReportView, error) {
	if input.Title == "" || input.CompanyID == "" {
		return nil, models.NewValidationError("Título e empresa são obrigatórios")
	}

	companyID, err := uuid.Parse(input.CompanyID)
	if err != nil {
		return nil, models.NewValidationError("ID de empresa inválido")
	}

	if _, err := s.companies.GetByID(ctx, companyID, userID); err != nil {
		return nil, err
	}

	content, err := normalizeContent(input.Content)
	if err != nil {
		return nil, err
	}

	// Content is canonical after normalization, so "[]" means the
	// client sent nothing usable; the template fills it in either way.
	if content == emptyContent && input.TemplateID != "" {
		templateID, err := uuid.Parse(input.TemplateID)
		if err != nil {
			return nil, models.NewValidationError("ID de modelo inválido")
		}
		template, err := s.reports.GetByID(ctx, templateID, userID)
		if err != nil {
			return nil, err
		}
		content = template.Content
	}

	status := models.StatusRascunho
	if input.Status != "" {
		status = models.ReportStatus(input.Status)
	}

	report := &models.Report{
		UserID:    userID,
		CompanyID: companyID,
		Title:     input.Title,
		Status:    status,
		Content:   content,
	}
	if err := s.reports.Create(ctx, report); err != nil {
		return nil, err
	}

	return models.NewReportView(report)
}

// ListByCompany returns the owner's reports for one company, newest
// first, with content decoded.
func (s *ReportService) ListByCompany(ctx context.Context, companyID, userID uuid.UUID) ([]*models.ReportView, error) {
	reports, err := s.reports.ListByCompany(ctx, companyID, userID)
	if err != nil {
		return nil, err
	}

	views := make([]*models.ReportView, 0, len(reports))
	for _, report := range reports {
		view, err := models.NewReportView(report)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// ListAll returns every owned report across companies, joined with the
// company display name. Feeds the template-selection workflow.
func (s *ReportService) ListAll(ctx context.Context, userID uuid.UUID) ([]*models.ReportSummary, error) {
	return s.reports.ListAllWithCompany(ctx, userID)
}

// Get returns one owned report with content decoded
func (s *ReportService) Get(ctx context.Context, id, userID uuid.UUID) (*models.ReportView, error) {
	report, err := s.reports.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	return models.NewReportView(report)
}

// UpdateReportInput carries the fields of a partial update; nil values
// leave the stored field untouched.
type UpdateReportInput struct {
	Title   *string         `json:"title"`
	Status  *string         `json:"status"`
	Content json.RawMessage `json:"content"`
}

// Update applies a partial update to an owned report
func (s *ReportService) Update(ctx context.Context, id, userID uuid.UUID, input UpdateReportInput) (*models.ReportView, error) {
	report, err := s.reports.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, models.NewValidationError("Título não pode ser vazio")
		}
		report.Title = *input.Title
	}
	if input.Status != nil {
		report.Status = models.ReportStatus(*input.Status)
	}
	if input.Content != nil {
		content, err := normalizeContent(input.Content)
		if err != nil {
			return nil, err
		}
		report.Content = content
	}

	if err := s.reports.Update(ctx, report); err != nil {
		return nil, err
	}
	return models.NewReportView(report)
}

// Delete hard-deletes an owned report
func (s *ReportService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return s.reports.Delete(ctx, id, userID)
}

// Duplicate creates a fresh draft copy of an owned report. The
// question sequence is copied verbatim; the title gains a copy suffix
// and the status resets to draft.
func (s *ReportService) Duplicate(ctx context.Context, id, userID uuid.UUID) (*models.ReportView, error) {
	source, err := s.reports.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	copy := &models.Report{
		UserID:    userID,
		CompanyID: source.CompanyID,
		Title:     source.Title + " (cópia)",
		Status:    models.StatusRascunho,
		Content:   source.Content,
	}
	if err := s.reports.Create(ctx, copy); err != nil {
		return nil, err
	}
	return models.NewReportView(copy)
}

// Export resolves the report, its company and its owner, then renders
// the requested format. Any resolution or ownership failure aborts
// before rendering starts.
func (s *ReportService) Export(ctx context.Context, id, userID uuid.UUID, format export.Format) (*export.Document, error) {
	report, err := s.reports.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	company, err := s.companies.GetByID(ctx, report.CompanyID, userID)
	if err != nil {
		return nil, err
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	questions, err := models.DecodeQuestions(report.Content)
	if err != nil {
		return nil, err
	}

	return export.Render(export.Input{
		Report:    report,
		Company:   company,
		User:      user,
		Questions: questions,
	}, format)
}

// emptyContent is the canonical encoding of a question-less report.
const emptyContent = "[]"

// normalizeContent accepts content as a JSON question array, a
// JSON-encoded string holding one, or nothing, and returns the
// canonical stored string.
func normalizeContent(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return models.EncodeQuestions(nil)
	}

	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		questions, err := models.DecodeQuestions(asString)
		if err != nil {
			return "", models.NewValidationError("Conteúdo do relatório inválido")
		}
		return models.EncodeQuestions(questions)
	}

	var questions []models.Question
	if err := json.Unmarshal(raw, &questions); err != nil {
		return "", models.NewValidationError("Conteúdo do relatório inválido")
	}
	return models.EncodeQuestions(questions)
}
