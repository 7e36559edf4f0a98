package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never serialize password hash
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Profile holds an opaque JSON blob of user preferences, one per user
type Profile struct {
	UserID    uuid.UUID `json:"user_id"`
	Data      string    `json:"data"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DefaultProfileData is the preferences blob created at registration.
const DefaultProfileData = `{"preferences":{"theme":"light","language":"pt-BR","notifications":true},"personalInfo":{"bio":"","location":"","website":""},"settings":{"privacy":"public","showEmail":false}}`
