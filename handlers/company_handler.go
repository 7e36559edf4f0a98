package handlers

import (
	"net/http"

	"inspecta-backend/middleware"
	"inspecta-backend/models"
	"inspecta-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CompanyHandler handles owner-scoped company CRUD
type CompanyHandler struct {
	companyService *service.CompanyService
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(companyService *service.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

// List handles GET /companies
func (h *CompanyHandler) List(c *gin.Context) {
	userID := middleware.UserID(c)

	companies, err := h.companyService.List(c.Request.Context(), userID)
	if err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, companies)
}

// Create handles POST /companies
func (h *CompanyHandler) Create(c *gin.Context) {
	userID := middleware.UserID(c)

	var input service.CreateCompanyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortError(c, models.NewValidationError("Corpo da requisição inválido"))
		return
	}

	company, err := h.companyService.Create(c.Request.Context(), userID, input)
	if err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusCreated, company)
}

// Get handles GET /companies/:id
func (h *CompanyHandler) Get(c *gin.Context) {
	userID := middleware.UserID(c)
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// An unparseable id cannot exist; same response as not owned.
		abortError(c, models.ErrNotFound)
		return
	}

	company, err := h.companyService.Get(c.Request.Context(), id, userID)
	if err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, company)
}

// Update handles PUT /companies/:id
func (h *CompanyHandler) Update(c *gin.Context) {
	userID := middleware.UserID(c)
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortError(c, models.ErrNotFound)
		return
	}

	var input service.UpdateCompanyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortError(c, models.NewValidationError("Corpo da requisição inválido"))
		return
	}

	company, err := h.companyService.Update(c.Request.Context(), id, userID, input)
	if err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, company)
}

// Delete handles DELETE /companies/:id
func (h *CompanyHandler) Delete(c *gin.Context) {
	userID := middleware.UserID(c)
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortError(c, models.ErrNotFound)
		return
	}

	if err := h.companyService.Delete(c.Request.Context(), id, userID); err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
