package models

import (
	"time"

	"github.com/google/uuid"
)

// Image represents an uploaded question image. Reports reference
// images by URL inside their content; the record itself is only needed
// to stream the bytes back and to garbage-collect storage.
type Image struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Filename    string    `json:"filename"`
	MimeType    string    `json:"mime_type"`
	Size        int64     `json:"size"`
	StoragePath string    `json:"storage_path"`
	CreatedAt   time.Time `json:"created_at"`
}
