package service

import (
	"context"
	"encoding/json"
	"errors"

	"inspecta-backend/models"

	"github.com/google/uuid"
)

// ProfileService reads and updates a user's account data and profile
// blob.
type ProfileService struct {
	users    UserStore
	profiles ProfileStore
}

// NewProfileService creates a new profile service
func NewProfileService(users UserStore, profiles ProfileStore) *ProfileService {
	return &ProfileService{users: users, profiles: profiles}
}

// ProfileResult is a user together with the decoded profile blob.
type ProfileResult struct {
	User    *models.User
	Profile json.RawMessage
}

// Get returns the user and their profile preferences. A user without a
// profile row gets an empty object, not an error.
func (s *ProfileService) Get(ctx context.Context, userID uuid.UUID) (*ProfileResult, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := &ProfileResult{User: user, Profile: json.RawMessage("{}")}

	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return result, nil
		}
		return nil, err
	}

	if json.Valid([]byte(profile.Data)) {
		result.Profile = json.RawMessage(profile.Data)
	}
	return result, nil
}

// Update applies a partial profile update: a new display name, a new
// preferences blob, or both. Omitted fields are left untouched.
func (s *ProfileService) Update(ctx context.Context, userID uuid.UUID, name *string, profileData json.RawMessage) (*ProfileResult, error) {
	if name == nil && profileData == nil {
		return nil, models.NewValidationError("Nada para atualizar")
	}

	if name != nil {
		if *name == "" {
			return nil, models.NewValidationError("Nome não pode ser vazio")
		}
		if err := s.users.UpdateName(ctx, userID, *name); err != nil {
			return nil, err
		}
	}

	if profileData != nil {
		if !json.Valid(profileData) {
			return nil, models.NewValidationError("Dados de perfil inválidos")
		}
		if err := s.profiles.Upsert(ctx, userID, string(profileData)); err != nil {
			return nil, err
		}
	}

	return s.Get(ctx, userID)
}
