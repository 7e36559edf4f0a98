package models

import (
	"testing"

	"github.com/google/uuid"
)

func strPtr(s string) *string { return &s }

func TestQuestionCodec_RoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		questions []Question
	}{
		{name: "empty", questions: []Question{}},
		{name: "nil", questions: nil},
		{
			name: "single without image",
			questions: []Question{
				{ID: "q1", Text: "Extintores no prazo de validade?", Answer: "Sim"},
			},
		},
		{
			name: "single with image",
			questions: []Question{
				{ID: "q1", Text: "Saídas de emergência sinalizadas?", Answer: "Não", ImageURL: strPtr("/images/abc")},
			},
		},
		{
			name: "many mixed preserves order",
			questions: []Question{
				{ID: "q1", Text: "Primeira", Answer: "a"},
				{ID: "q2", Text: "Segunda", Answer: "b", ImageURL: strPtr("/images/x")},
				{ID: "q3", Text: "Terceira", Answer: "c"},
				{ID: "q4", Text: "Quarta", Answer: "", ImageURL: strPtr("/images/y")},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := EncodeQuestions(tt.questions)
			if err != nil {
				t.Fatalf("EncodeQuestions() error = %v", err)
			}

			decoded, err := DecodeQuestions(encoded)
			if err != nil {
				t.Fatalf("DecodeQuestions() error = %v", err)
			}

			want := tt.questions
			if want == nil {
				want = []Question{}
			}
			if len(decoded) != len(want) {
				t.Fatalf("len(decoded) = %d, want %d", len(decoded), len(want))
			}
			for i := range want {
				if decoded[i].ID != want[i].ID || decoded[i].Text != want[i].Text || decoded[i].Answer != want[i].Answer {
					t.Errorf("decoded[%d] = %+v, want %+v", i, decoded[i], want[i])
				}
				switch {
				case want[i].ImageURL == nil && decoded[i].ImageURL != nil:
					t.Errorf("decoded[%d].ImageURL = %q, want nil", i, *decoded[i].ImageURL)
				case want[i].ImageURL != nil && (decoded[i].ImageURL == nil || *decoded[i].ImageURL != *want[i].ImageURL):
					t.Errorf("decoded[%d].ImageURL does not match %q", i, *want[i].ImageURL)
				}
			}
		})
	}
}

func TestEncodeQuestions_NilEncodesAsEmptyArray(t *testing.T) {
	encoded, err := EncodeQuestions(nil)
	if err != nil {
		t.Fatalf("EncodeQuestions() error = %v", err)
	}
	if encoded != "[]" {
		t.Errorf("EncodeQuestions(nil) = %q, want %q", encoded, "[]")
	}
}

func TestDecodeQuestions_EmptyString(t *testing.T) {
	decoded, err := DecodeQuestions("")
	if err != nil {
		t.Fatalf("DecodeQuestions() error = %v", err)
	}
	if len(decoded) != 0 {
		t.Errorf("len(decoded) = %d, want 0", len(decoded))
	}
}

func TestDecodeQuestions_JSONNull(t *testing.T) {
	decoded, err := DecodeQuestions("null")
	if err != nil {
		t.Fatalf("DecodeQuestions() error = %v", err)
	}
	if decoded == nil {
		t.Error("DecodeQuestions(\"null\") returned nil slice")
	}
}

func TestDecodeQuestions_Invalid(t *testing.T) {
	if _, err := DecodeQuestions("{broken"); err == nil {
		t.Error("DecodeQuestions() error = nil for malformed content")
	}
}

func TestNewReportView(t *testing.T) {
	report := &Report{
		ID:      uuid.New(),
		Title:   "Inspeção anual",
		Status:  StatusRascunho,
		Content: `[{"id":"q1","text":"Pergunta","answer":"Resposta"}]`,
	}

	view, err := NewReportView(report)
	if err != nil {
		t.Fatalf("NewReportView() error = %v", err)
	}
	if len(view.Content) != 1 || view.Content[0].Text != "Pergunta" {
		t.Errorf("view.Content = %+v, want the decoded question", view.Content)
	}
	if view.Title != report.Title || view.Status != report.Status {
		t.Error("view does not carry report fields")
	}
}
