package export

import (
	"bytes"
	"fmt"

	"github.com/fumiama/go-docx"
)

func renderDOCX(input Input) (*Document, error) {
	doc := docx.New().WithDefaultTheme()

	// Document-level heading
	title := doc.AddParagraph().Justification("center")
	title.AddText(documentTitle).Size("32").Bold()
	doc.AddParagraph()

	// Header block: one paragraph per field, bold label + value
	for _, field := range headerFields(input) {
		p := doc.AddParagraph()
		p.AddText(field[0] + ": ").Bold()
		p.AddText(field[1])
	}
	doc.AddParagraph()

	// One bold question paragraph and one answer paragraph per entry,
	// mirroring the PDF's logical content one to one.
	for i, q := range input.Questions {
		question := doc.AddParagraph()
		question.AddText(fmt.Sprintf("%d. %s", i+1, q.Text)).Bold()

		doc.AddParagraph().AddText(q.Answer)

		if q.ImageURL != nil && *q.ImageURL != "" {
			caption := doc.AddParagraph()
			caption.AddText("Imagem: " + *q.ImageURL).Italic().Size("18")
		}

		doc.AddParagraph()
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("render docx: %w", err)
	}

	return &Document{
		Bytes:    buf.Bytes(),
		Filename: fmt.Sprintf("relatorio_%s.docx", input.Report.ID),
		MimeType: MimeDOCX,
	}, nil
}
