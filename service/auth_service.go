package service

import (
	"context"
	"errors"

	"inspecta-backend/auth"
	"inspecta-backend/models"

	"github.com/google/uuid"
)

// UserStore is the persistence surface the auth service needs.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpdateName(ctx context.Context, id uuid.UUID, name string) error
}

// ProfileStore is the persistence surface for profile blobs.
type ProfileStore interface {
	Create(ctx context.Context, profile *models.Profile) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
	Upsert(ctx context.Context, userID uuid.UUID, data string) error
}

// AuthService handles registration and login
type AuthService struct {
	users    UserStore
	profiles ProfileStore
	tokens   *auth.TokenService
}

// NewAuthService creates a new auth service
func NewAuthService(users UserStore, profiles ProfileStore, tokens *auth.TokenService) *AuthService {
	return &AuthService{
		users:    users,
		profiles: profiles,
		tokens:   tokens,
	}
}

// Register creates a user with a hashed password and seeds the default
// profile blob. The returned user never carries the password hash in
// its serialized form.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, models.NewValidationError("Nome, email e senha são obrigatórios")
	}

	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return nil, models.ErrEmailTaken
	}
	if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		Name:         name,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	profile := &models.Profile{
		UserID: user.ID,
		Data:   models.DefaultProfileData,
	}
	if err := s.profiles.Create(ctx, profile); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies credentials and issues a bearer token. Unknown email
// and wrong password are reported identically.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	if email == "" || password == "" {
		return nil, "", models.NewValidationError("Email e senha são obrigatórios")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, "", models.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, "", models.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}
