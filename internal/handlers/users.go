package handlers

import (
	"net/http"

	"todo-list/internal/middleware"

	"github.com/gin-gonic/gin"
)

type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// Profile returns the authenticated user's own account.
func (h *UserHandler) Profile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         user.ID.String(),
		"email":      user.Email,
		"name":       user.Name,
		"created_at": user.CreatedAt,
	})
}
