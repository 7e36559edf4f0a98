package models

import "errors"

// Sentinel errors shared by services and handlers. Handlers map these
// to HTTP statuses; anything else is a 500.
var (
	// ErrNotFound covers both a missing record and a record owned by
	// another user. The two cases are deliberately indistinguishable
	// so that tenants cannot probe each other's ids.
	ErrNotFound = errors.New("registro não encontrado")

	// ErrInvalidCredentials is returned on login with an unknown email
	// or a wrong password, without distinguishing which.
	ErrInvalidCredentials = errors.New("credenciais inválidas")

	// ErrEmailTaken is returned when registering an email that already
	// has an account.
	ErrEmailTaken = errors.New("usuário já existe com este email")

	// ErrInvalidToken is returned by the token service for malformed,
	// expired or mis-signed tokens.
	ErrInvalidToken = errors.New("token inválido")
)

// ValidationError signals missing or malformed input, surfaced as 400
// with its message in the response body.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a validation error with the given
// client-facing message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
