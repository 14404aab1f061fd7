package handlers

import (
	"net/http"

	"todo-list/internal/monitoring"
	"todo-list/internal/services"
	"todo-list/internal/sessions"

	"github.com/gin-gonic/gin"
)

type RegisterHandler struct {
	auth  services.AuthService
	codec *sessions.CookieCodec
}

func NewRegisterHandler(auth services.AuthService, codec *sessions.CookieCodec) *RegisterHandler {
	return &RegisterHandler{auth: auth, codec: codec}
}

type RegistrationRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (h *RegisterHandler) Registration(c *gin.Context) {
	var req RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request data",
			"details": err.Error(),
		})
		return
	}

	user, token, err := h.auth.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	monitoring.UsersRegisteredTotal.Inc()

	// Auto-login: registration establishes a session immediately.
	if err := setSessionCookie(c, h.codec, token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to establish session"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "account created",
		"user": UserResponse{
			ID:    user.ID.String(),
			Email: user.Email,
			Name:  user.Name,
		},
	})
}
