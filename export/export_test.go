package export

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"inspecta-backend/models"

	"github.com/google/uuid"
)

func testInput(questionCount int, answer string) Input {
	questions := make([]models.Question, 0, questionCount)
	for i := 0; i < questionCount; i++ {
		questions = append(questions, models.Question{
			ID:     fmt.Sprintf("q%d", i+1),
			Text:   fmt.Sprintf("Pergunta número %d da inspeção?", i+1),
			Answer: answer,
		})
	}

	return Input{
		Report: &models.Report{
			ID:        uuid.New(),
			Title:     "Inspeção anual de segurança",
			Status:    models.StatusFinalizado,
			CreatedAt: time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
		},
		Company: &models.Company{
			RazaoSocial:  "Acme Ltda",
			NomeFantasia: "Acme",
			CNPJ:         "00.000.000/0001-00",
		},
		User: &models.User{
			Name:  "Maria Silva",
			Email: "maria@example.com",
		},
		Questions: questions,
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "", want: FormatPDF},
		{in: "pdf", want: FormatPDF},
		{in: "docx", want: FormatDOCX},
		{in: "xlsx", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseFormat(%q) error = nil, want error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseFormat(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestResponsibleName_FallsBackToEmail(t *testing.T) {
	named := &models.User{Name: "Maria Silva", Email: "maria@example.com"}
	if got := responsibleName(named); got != "Maria Silva" {
		t.Errorf("responsibleName() = %q, want name", got)
	}

	unnamed := &models.User{Email: "maria@example.com"}
	if got := responsibleName(unnamed); got != "maria@example.com" {
		t.Errorf("responsibleName() = %q, want email fallback", got)
	}
}

func TestRenderPDF_Headers(t *testing.T) {
	input := testInput(2, "Tudo em ordem.")

	doc, err := Render(input, FormatPDF)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if !bytes.HasPrefix(doc.Bytes, []byte("%PDF")) {
		t.Error("output does not start with a PDF header")
	}
	wantName := fmt.Sprintf("relatorio_%s.pdf", input.Report.ID)
	if doc.Filename != wantName {
		t.Errorf("Filename = %q, want %q", doc.Filename, wantName)
	}
	if doc.MimeType != MimePDF {
		t.Errorf("MimeType = %q, want %q", doc.MimeType, MimePDF)
	}
}

func TestBuildPDF_SinglePageForShortReport(t *testing.T) {
	pdf := buildPDF(testInput(3, "Sim."))
	if got := pdf.PageCount(); got != 1 {
		t.Errorf("PageCount() = %d, want 1", got)
	}
}

func TestBuildPDF_PaginatesLongReport(t *testing.T) {
	longAnswer := strings.Repeat("Resposta longa que precisa ser quebrada em várias linhas para ocupar espaço vertical. ", 4)
	pdf := buildPDF(testInput(12, longAnswer))
	if got := pdf.PageCount(); got < 2 {
		t.Errorf("PageCount() = %d, want at least 2", got)
	}
}

func TestBuildPDF_ImageReferenceDoesNotFail(t *testing.T) {
	input := testInput(1, "Sim.")
	badURL := "://not-a-usable-url"
	input.Questions[0].ImageURL = &badURL

	doc, err := Render(input, FormatPDF)
	if err != nil {
		t.Fatalf("Render() error = %v, image references must be best-effort", err)
	}
	if len(doc.Bytes) == 0 {
		t.Error("Render() produced no output")
	}
}

// documentXML unzips a rendered DOCX and returns word/document.xml.
func documentXML(t *testing.T, data []byte) string {
	t.Helper()

	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("output is not a valid zip archive: %v", err)
	}
	for _, f := range reader.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				t.Fatalf("open document.xml: %v", err)
			}
			defer rc.Close()
			content, err := io.ReadAll(rc)
			if err != nil {
				t.Fatalf("read document.xml: %v", err)
			}
			return string(content)
		}
	}
	t.Fatal("word/document.xml not found in output")
	return ""
}

func TestRenderDOCX_ContentAndOrder(t *testing.T) {
	input := testInput(12, "Resposta da pergunta.")

	doc, err := Render(input, FormatDOCX)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	wantName := fmt.Sprintf("relatorio_%s.docx", input.Report.ID)
	if doc.Filename != wantName {
		t.Errorf("Filename = %q, want %q", doc.Filename, wantName)
	}
	if doc.MimeType != MimeDOCX {
		t.Errorf("MimeType = %q, want %q", doc.MimeType, MimeDOCX)
	}

	xml := documentXML(t, doc.Bytes)

	for _, want := range []string{
		"Relatório de Inspeção",
		"Inspeção anual de segurança",
		"Acme Ltda",
		"00.000.000/0001-00",
		"Maria Silva",
		"15/03/2024",
	} {
		if !strings.Contains(xml, want) {
			t.Errorf("document.xml missing %q", want)
		}
	}

	// All 12 question/answer pairs, in original order.
	lastIndex := -1
	for i := 1; i <= 12; i++ {
		marker := fmt.Sprintf("%d. Pergunta número %d", i, i)
		pos := strings.Index(xml, marker)
		if pos < 0 {
			t.Fatalf("document.xml missing question %d", i)
		}
		if pos < lastIndex {
			t.Errorf("question %d appears out of order", i)
		}
		lastIndex = pos
	}

	if got := strings.Count(xml, "Resposta da pergunta."); got != 12 {
		t.Errorf("answer paragraph count = %d, want 12", got)
	}
}

func TestRenderDOCX_MatchesPDFLogicalContent(t *testing.T) {
	input := testInput(4, "Mesma resposta nos dois formatos.")

	pdfDoc, err := Render(input, FormatPDF)
	if err != nil {
		t.Fatalf("Render(pdf) error = %v", err)
	}
	docxDoc, err := Render(input, FormatDOCX)
	if err != nil {
		t.Fatalf("Render(docx) error = %v", err)
	}

	if len(pdfDoc.Bytes) == 0 || len(docxDoc.Bytes) == 0 {
		t.Fatal("empty render output")
	}
}
