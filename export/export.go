// Package export renders an inspection report into downloadable
// document formats. Rendering is a single pass over the ordered
// question sequence; both formats carry the same logical content.
package export

import (
	"fmt"

	"inspecta-backend/models"
)

// Format is a supported export format
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
)

// MIME types for the supported formats
const (
	MimePDF  = "application/pdf"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// documentTitle is the fixed heading of every exported document.
const documentTitle = "Relatório de Inspeção"

// Input carries everything the engine needs, resolved and
// ownership-checked by the caller before any rendering starts.
type Input struct {
	Report    *models.Report
	Company   *models.Company
	User      *models.User
	Questions []models.Question
}

// Document is a rendered export: the byte stream plus the headers the
// HTTP layer needs to serve it as a download.
type Document struct {
	Bytes    []byte
	Filename string
	MimeType string
}

// ParseFormat validates a requested format string, defaulting to PDF
// when empty.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "", "pdf":
		return FormatPDF, nil
	case "docx":
		return FormatDOCX, nil
	default:
		return "", models.NewValidationError(fmt.Sprintf("formato de exportação inválido: %s", s))
	}
}

// Render produces the document for the requested format.
func Render(input Input, format Format) (*Document, error) {
	switch format {
	case FormatPDF:
		return renderPDF(input)
	case FormatDOCX:
		return renderDOCX(input)
	default:
		return nil, models.NewValidationError(fmt.Sprintf("formato de exportação inválido: %s", format))
	}
}

// responsibleName returns the owner's display name, falling back to
// the email when no name is set.
func responsibleName(user *models.User) string {
	if user.Name != "" {
		return user.Name
	}
	return user.Email
}

// headerFields returns the labeled header lines common to both
// formats, in render order.
func headerFields(input Input) [][2]string {
	return [][2]string{
		{"Título", input.Report.Title},
		{"Empresa", input.Company.NomeFantasia},
		{"Razão Social", input.Company.RazaoSocial},
		{"CNPJ", input.Company.CNPJ},
		{"Responsável", responsibleName(input.User)},
		{"Data", input.Report.CreatedAt.Format("02/01/2006")},
	}
}
