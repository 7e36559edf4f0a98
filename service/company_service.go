package service

import (
	"context"

	"inspecta-backend/models"

	"github.com/google/uuid"
)

// CompanyStore is the persistence surface for companies.
type CompanyStore interface {
	Create(ctx context.Context, company *models.Company) error
	GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Company, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Company, error)
	Update(ctx context.Context, company *models.Company) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

// CompanyService handles owner-scoped company CRUD
type CompanyService struct {
	companies CompanyStore
}

// NewCompanyService creates a new company service
func NewCompanyService(companies CompanyStore) *CompanyService {
	return &CompanyService{companies: companies}
}

// CreateCompanyInput carries the fields of a company create request.
type CreateCompanyInput struct {
	RazaoSocial  string `json:"razaoSocial"`
	NomeFantasia string `json:"nomeFantasia"`
	CNPJ         string `json:"cnpj"`
}

// Create validates and persists a company for the given owner
func (s *CompanyService) Create(ctx context.Context, userID uuid.UUID, input CreateCompanyInput) (*models.Company, error) {
	if input.RazaoSocial == "" || input.NomeFantasia == "" || input.CNPJ == "" {
		return nil, models.NewValidationError("Razão social, nome fantasia e CNPJ são obrigatórios")
	}

	company := &models.Company{
		UserID:       userID,
		RazaoSocial:  input.RazaoSocial,
		NomeFantasia: input.NomeFantasia,
		CNPJ:         input.CNPJ,
	}
	if err := s.companies.Create(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// List returns the owner's companies
func (s *CompanyService) List(ctx context.Context, userID uuid.UUID) ([]*models.Company, error) {
	return s.companies.ListByUserID(ctx, userID)
}

// Get returns one owned company; a foreign or missing id is
// models.ErrNotFound either way.
func (s *CompanyService) Get(ctx context.Context, id, userID uuid.UUID) (*models.Company, error) {
	return s.companies.GetByID(ctx, id, userID)
}

// UpdateCompanyInput carries the fields of a partial update; nil
// pointers leave the stored value untouched.
type UpdateCompanyInput struct {
	RazaoSocial  *string `json:"razaoSocial"`
	NomeFantasia *string `json:"nomeFantasia"`
	CNPJ         *string `json:"cnpj"`
}

// Update applies a partial update to an owned company
func (s *CompanyService) Update(ctx context.Context, id, userID uuid.UUID, input UpdateCompanyInput) (*models.Company, error) {
	company, err := s.companies.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if input.RazaoSocial != nil {
		company.RazaoSocial = *input.RazaoSocial
	}
	if input.NomeFantasia != nil {
		company.NomeFantasia = *input.NomeFantasia
	}
	if input.CNPJ != nil {
		company.CNPJ = *input.CNPJ
	}

	if err := s.companies.Update(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// Delete hard-deletes an owned company
func (s *CompanyService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return s.companies.Delete(ctx, id, userID)
}
