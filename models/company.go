package models

import (
	"time"

	"github.com/google/uuid"
)

// Company represents a company owned by a single user. Every query
// against companies is scoped by UserID.
type Company struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"userId"`
	RazaoSocial  string    `json:"razaoSocial"`
	NomeFantasia string    `json:"nomeFantasia"`
	CNPJ         string    `json:"cnpj"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
