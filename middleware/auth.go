package middleware

import (
	"net/http"
	"strings"

	"inspecta-backend/auth"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// userIDKey is the gin context key the auth gate stores the resolved
// user id under.
const userIDKey = "userID"

// RequireAuth returns the authorization gate: it extracts the bearer
// token, verifies it, and stores the user id in the request context.
// Missing header, malformed scheme and invalid token are all 401.
func RequireAuth(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Não autorizado"})
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		userID, err := tokens.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Não autorizado"})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserID returns the authenticated user id stored by RequireAuth.
func UserID(c *gin.Context) uuid.UUID {
	id, _ := c.Get(userIDKey)
	userID, _ := id.(uuid.UUID)
	return userID
}

// SetUserID injects a user id into the context; test helper for
// handlers exercised without the full gate.
func SetUserID(c *gin.Context, userID uuid.UUID) {
	c.Set(userIDKey, userID)
}
