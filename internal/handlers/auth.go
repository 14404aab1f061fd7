package handlers

import (
	"errors"
	"net/http"

	"todo-list/internal/monitoring"
	"todo-list/internal/services"
	"todo-list/internal/sessions"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth  services.AuthService
	codec *sessions.CookieCodec
}

func NewAuthHandler(auth services.AuthService, codec *sessions.CookieCodec) *AuthHandler {
	return &AuthHandler{auth: auth, codec: codec}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request data",
			"details": err.Error(),
		})
		return
	}

	user, token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		monitoring.LoginsTotal.WithLabelValues(loginResult(err)).Inc()
		handleServiceError(c, err)
		return
	}
	monitoring.LoginsTotal.WithLabelValues("success").Inc()

	if err := setSessionCookie(c, h.codec, token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to establish session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "logged in",
		"user": UserResponse{
			ID:    user.ID.String(),
			Email: user.Email,
			Name:  user.Name,
		},
	})
}

func loginResult(err error) string {
	switch {
	case errors.Is(err, services.ErrAccountNotFound):
		return "not_found"
	case errors.Is(err, services.ErrInvalidCredentials):
		return "invalid_credentials"
	}
	return "error"
}
