package handlers

import (
	"encoding/json"
	"net/http"

	"inspecta-backend/middleware"
	"inspecta-backend/models"
	"inspecta-backend/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles profile reads and updates
type UserHandler struct {
	profileService *service.ProfileService
}

// NewUserHandler creates a new user handler
func NewUserHandler(profileService *service.ProfileService) *UserHandler {
	return &UserHandler{profileService: profileService}
}

// GetProfile handles GET /user/profile
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID := middleware.UserID(c)

	result, err := h.profileService.Get(c.Request.Context(), userID)
	if err != nil {
		abortMessage(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":    result.User,
		"profile": result.Profile,
	})
}

// UpdateProfileRequest represents the request body for a profile
// update; omitted fields are left untouched.
type UpdateProfileRequest struct {
	Name        *string         `json:"name"`
	ProfileData json.RawMessage `json:"profileData"`
}

// UpdateProfile handles PUT /user/profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID := middleware.UserID(c)

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortMessage(c, models.NewValidationError("Corpo da requisição inválido"))
		return
	}

	result, err := h.profileService.Update(c.Request.Context(), userID, req.Name, req.ProfileData)
	if err != nil {
		abortMessage(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Perfil atualizado com sucesso",
		"user":    result.User,
		"profile": result.Profile,
	})
}
