package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// PDF layout constants, in millimeters on an A4 page. The body cursor
// advances by lineHeight per rendered line and a page break fires when
// it passes pageBreakY.
const (
	marginLeft  = 20.0
	pageWidth   = 210.0
	textWidth   = 170.0
	lineHeight  = 7.0
	headerTopY  = 40.0
	ruleY       = 95.0
	bodyStartY  = 105.0
	pageBreakY  = 250.0
	pageResetY  = 20.0
	titleY      = 20.0
	titleSize   = 20.0
	bodySize    = 12.0
	captionSize = 9.0
)

func renderPDF(input Input) (*Document, error) {
	pdf := buildPDF(input)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}

	return &Document{
		Bytes:    buf.Bytes(),
		Filename: fmt.Sprintf("relatorio_%s.pdf", input.Report.ID),
		MimeType: MimePDF,
	}, nil
}

// buildPDF assembles the document. Split out from renderPDF so tests
// can inspect the page count without decoding PDF bytes.
func buildPDF(input Input) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	// Centered document title
	pdf.SetFont("Helvetica", "B", titleSize)
	title := tr(documentTitle)
	pdf.Text((pageWidth-pdf.GetStringWidth(title))/2, titleY, title)

	// Header block
	pdf.SetFont("Helvetica", "", bodySize)
	y := headerTopY
	for _, field := range headerFields(input) {
		pdf.Text(marginLeft, y, tr(fmt.Sprintf("%s: %s", field[0], field[1])))
		y += 10
	}
	pdf.Line(marginLeft, ruleY, pageWidth-marginLeft, ruleY)

	// Question/answer body
	y = bodyStartY
	for i, q := range input.Questions {
		if y > pageBreakY {
			pdf.AddPage()
			y = pageResetY
		}

		pdf.SetFont("Helvetica", "B", bodySize)
		pdf.Text(marginLeft, y, tr(fmt.Sprintf("%d. %s", i+1, q.Text)))
		y += lineHeight

		pdf.SetFont("Helvetica", "", bodySize)
		lines := pdf.SplitText(tr(q.Answer), textWidth)
		for _, line := range lines {
			if y > pageBreakY {
				pdf.AddPage()
				y = pageResetY
			}
			pdf.Text(marginLeft, y, line)
			y += lineHeight
		}

		// Image references are metadata only; an unusable URL must
		// never fail the export.
		if q.ImageURL != nil && *q.ImageURL != "" {
			if y > pageBreakY {
				pdf.AddPage()
				y = pageResetY
			}
			pdf.SetFont("Helvetica", "I", captionSize)
			pdf.Text(marginLeft, y, tr(fmt.Sprintf("Imagem: %s", *q.ImageURL)))
			pdf.SetFont("Helvetica", "", bodySize)
			y += lineHeight
		}

		y += 10
	}

	return pdf
}
