package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ReportStatus represents the lifecycle state of a report
type ReportStatus string

const (
	StatusRascunho   ReportStatus = "rascunho"
	StatusFinalizado ReportStatus = "finalizado"
)

// Question is one entry of a report's checklist. Order within the
// sequence is meaningful and determines render and export order.
type Question struct {
	ID       string  `json:"id"`
	Text     string  `json:"text"`
	Answer   string  `json:"answer"`
	ImageURL *string `json:"imageUrl,omitempty"`
}

// Report represents an inspection report attached to a company.
// Content is persisted as a JSON-encoded ordered Question array; use
// EncodeQuestions/DecodeQuestions whenever it crosses the store
// boundary.
type Report struct {
	ID        uuid.UUID    `json:"id"`
	UserID    uuid.UUID    `json:"userId"`
	CompanyID uuid.UUID    `json:"companyId"`
	Title     string       `json:"title"`
	Status    ReportStatus `json:"status"`
	Content   string       `json:"-"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// ReportSummary is a report joined with its company's display name,
// used by the list-all endpoint that feeds template selection.
type ReportSummary struct {
	ID          uuid.UUID    `json:"id"`
	Title       string       `json:"title"`
	Status      ReportStatus `json:"status"`
	Content     []Question   `json:"content"`
	CreatedAt   time.Time    `json:"createdAt"`
	CompanyName string       `json:"companyName"`
}

// ReportView is a report with its content decoded to the structured
// form, the shape every read path exposes to callers.
type ReportView struct {
	ID        uuid.UUID    `json:"id"`
	UserID    uuid.UUID    `json:"userId"`
	CompanyID uuid.UUID    `json:"companyId"`
	Title     string       `json:"title"`
	Status    ReportStatus `json:"status"`
	Content   []Question   `json:"content"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// NewReportView decodes a report's stored content into a view.
func NewReportView(report *Report) (*ReportView, error) {
	questions, err := DecodeQuestions(report.Content)
	if err != nil {
		return nil, err
	}
	return &ReportView{
		ID:        report.ID,
		UserID:    report.UserID,
		CompanyID: report.CompanyID,
		Title:     report.Title,
		Status:    report.Status,
		Content:   questions,
		CreatedAt: report.CreatedAt,
		UpdatedAt: report.UpdatedAt,
	}, nil
}

// EncodeQuestions serializes an ordered question sequence for storage.
// A nil slice encodes as an empty array, never "null".
func EncodeQuestions(questions []Question) (string, error) {
	if questions == nil {
		questions = []Question{}
	}
	data, err := json.Marshal(questions)
	if err != nil {
		return "", fmt.Errorf("encode report content: %w", err)
	}
	return string(data), nil
}

// DecodeQuestions parses stored content back into the ordered question
// sequence. Empty content decodes to an empty slice.
func DecodeQuestions(content string) ([]Question, error) {
	if content == "" {
		return []Question{}, nil
	}
	var questions []Question
	if err := json.Unmarshal([]byte(content), &questions); err != nil {
		return nil, fmt.Errorf("decode report content: %w", err)
	}
	if questions == nil {
		questions = []Question{}
	}
	return questions, nil
}
