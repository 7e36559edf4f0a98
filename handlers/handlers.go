// Package handlers contains the gin HTTP handlers. Services do the
// work; handlers bind input, pick status codes and shape responses.
package handlers

import (
	"errors"
	"net/http"

	"inspecta-backend/logger"
	"inspecta-backend/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// abortMessage writes a failure body shaped {"message": ...}, used on
// the auth and profile routes.
func abortMessage(c *gin.Context, err error) {
	status, message := classify(err)
	if status == http.StatusInternalServerError {
		logger.Get().Error("request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
		message = "Erro interno do servidor"
	}
	c.AbortWithStatusJSON(status, gin.H{"message": message})
}

// abortError writes a failure body shaped {"error": ...}, used on the
// resource routes.
func abortError(c *gin.Context, err error) {
	status, message := classify(err)
	switch status {
	case http.StatusNotFound:
		message = "Not found"
	case http.StatusInternalServerError:
		logger.Get().Error("request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
		message = "Internal server error"
	}
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

// classify maps a service error onto an HTTP status and client-facing
// message. Unexpected errors become 500 and are never echoed back.
func classify(err error) (int, string) {
	var ve *models.ValidationError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest, ve.Message
	case errors.Is(err, models.ErrEmailTaken):
		return http.StatusBadRequest, "Usuário já existe com este email"
	case errors.Is(err, models.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Credenciais inválidas"
	case errors.Is(err, models.ErrInvalidToken):
		return http.StatusUnauthorized, "Não autorizado"
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound, "Não encontrado"
	default:
		return http.StatusInternalServerError, ""
	}
}
