package handlers

import (
	"fmt"
	"net/http"

	"inspecta-backend/export"
	"inspecta-backend/metrics"
	"inspecta-backend/middleware"
	"inspecta-backend/models"
	"inspecta-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReportHandler handles owner-scoped report CRUD, duplication and
// export.
type ReportHandler struct {
	reportService *service.ReportService
	collector     *metrics.Collector
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService, collector *metrics.Collector) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		collector:     collector,
	}
}

// List handles GET /reports?companyId=
func (h *ReportHandler) List(c *gin.Context) {
	userID := middleware.UserID(c)

	companyIDStr := c.Query("companyId")
	if companyIDStr == "" {
		abortError(c, models.NewValidationError("Company ID required"))
		return
	}
	companyID, err := uuid.Parse(companyIDStr)
	if err != nil {
		abortError(c, models.NewValidationError("Company ID required"))
		return
	}

	reports, err := h.reportService.ListByCompany(c.Request.Context(), companyID, userID)
	if err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, reports)
}

// Create handles POST /reports
func (h *ReportHandler) Create(c *gin.Context) {
	userID := middleware.UserID(c)

	var input service.CreateReportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortError(c, models.NewValidationError("Corpo da requisição inválido"))
		return
	}

	report, err := h.reportService.Create(c.Request.Context(), userID, input)
	if err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusCreated, report)
}

// ListAll handles GET /reports/all: every owned report across
// companies, with the company display name joined in. Feeds the
// template-selection workflow.
func (h *ReportHandler) ListAll(c *gin.Context) {
	userID := middleware.UserID(c)

	summaries, err := h.reportService.ListAll(c.Request.Context(), userID)
	if err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, summaries)
}

// Get handles GET /reports/:id
func (h *ReportHandler) Get(c *gin.Context) {
	userID := middleware.UserID(c)
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortError(c, models.ErrNotFound)
		return
	}

	report, err := h.reportService.Get(c.Request.Context(), id, userID)
	if err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// Update handles PUT /reports/:id
func (h *ReportHandler) Update(c *gin.Context) {
	userID := middleware.UserID(c)
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortError(c, models.ErrNotFound)
		return
	}

	var input service.UpdateReportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortError(c, models.NewValidationError("Corpo da requisição inválido"))
		return
	}

	report, err := h.reportService.Update(c.Request.Context(), id, userID, input)
	if err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// Delete handles DELETE /reports/:id
func (h *ReportHandler) Delete(c *gin.Context) {
	userID := middleware.UserID(c)
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortError(c, models.ErrNotFound)
		return
	}

	if err := h.reportService.Delete(c.Request.Context(), id, userID); err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Duplicate handles POST /reports/:id/duplicate
func (h *ReportHandler) Duplicate(c *gin.Context) {
	userID := middleware.UserID(c)
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortError(c, models.ErrNotFound)
		return
	}

	report, err := h.reportService.Duplicate(c.Request.Context(), id, userID)
	if err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusCreated, report)
}

// Export handles GET /reports/export/:id?format=pdf|docx
func (h *ReportHandler) Export(c *gin.Context) {
	userID := middleware.UserID(c)
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortError(c, models.ErrNotFound)
		return
	}

	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		abortError(c, err)
		return
	}

	doc, err := h.reportService.Export(c.Request.Context(), id, userID, format)
	if err != nil {
		h.collector.RecordExport(string(format), false)
		abortError(c, err)
		return
	}
	h.collector.RecordExport(string(format), true)

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	c.Data(http.StatusOK, doc.MimeType, doc.Bytes)
}
