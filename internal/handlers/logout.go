package handlers

import (
	"net/http"

	"todo-list/internal/middleware"
	"todo-list/internal/services"
	"todo-list/internal/sessions"

	"github.com/gin-gonic/gin"
)

type LogoutHandler struct {
	auth  services.AuthService
	codec *sessions.CookieCodec
}

func NewLogoutHandler(auth services.AuthService, codec *sessions.CookieCodec) *LogoutHandler {
	return &LogoutHandler{auth: auth, codec: codec}
}

// Logout destroys the current session, if any, and always succeeds. Logging
// out twice, or without a session, is not an error.
func (h *LogoutHandler) Logout(c *gin.Context) {
	if token, ok := middleware.SessionToken(c); ok {
		if err := h.auth.Logout(c.Request.Context(), token); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log out"})
			return
		}
	}

	clearSessionCookie(c, h.codec)

	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
