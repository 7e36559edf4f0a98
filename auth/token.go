package auth

import (
	"fmt"
	"time"

	"inspecta-backend/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims are the JWT claims carried by an identity token.
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed, time-limited identity
// tokens. There is no revocation list: a token is valid until expiry.
type TokenService struct {
	signingKey      []byte
	expirationHours int
}

// NewTokenService creates a token service. The signing key must be
// non-empty; config.Load enforces that before we get here.
func NewTokenService(signingKey string, expirationHours int) *TokenService {
	return &TokenService{
		signingKey:      []byte(signingKey),
		expirationHours: expirationHours,
	}
}

// Issue produces a signed HS256 token encoding the user's id and email.
func (s *TokenService) Issue(userID uuid.UUID, email string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID.String(),
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.expirationHours) * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.signingKey)
}

// Verify checks signature and expiry and returns the token's user id.
// Malformed, expired and mis-signed tokens all come back as
// models.ErrInvalidToken.
func (s *TokenService) Verify(tokenString string) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.signingKey, nil
		},
	)
	if err != nil {
		return uuid.Nil, models.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return uuid.Nil, models.ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, models.ErrInvalidToken
	}

	return userID, nil
}
