package middleware

import (
	"net/http"

	"todo-list/internal/models"
	"todo-list/internal/services"
	"todo-list/internal/sessions"

	"github.com/gin-gonic/gin"
)

// Context keys set by ResolveSession.
const (
	ContextUserKey  = "current_user"
	ContextTokenKey = "session_token"
)

// ResolveSession reads the session cookie, verifies its signature, and
// resolves it to a user. Anonymous requests pass through with no user in the
// context; rejecting them is RequireUser's job. Resolution happens once per
// request and the result travels down the chain explicitly.
func ResolveSession(auth services.AuthService, codec *sessions.CookieCodec) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(sessions.CookieName)
		if err != nil {
			c.Next()
			return
		}

		token, err := codec.Decode(cookie)
		if err != nil {
			// Tampered or stale cookie: treat as anonymous.
			c.Next()
			return
		}

		user, err := auth.CurrentUser(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": "failed to resolve session",
			})
			return
		}
		if user != nil {
			c.Set(ContextUserKey, user)
			c.Set(ContextTokenKey, token)
		}

		c.Next()
	}
}

// RequireUser guards protected routes. Anonymous requests get a soft redirect
// to the home view rather than an HTTP error.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); !ok {
			c.Redirect(http.StatusSeeOther, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user placed in the context by
// ResolveSession.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	val, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := val.(*models.User)
	return user, ok
}

// SessionToken returns the verified session token for the current request.
func SessionToken(c *gin.Context) (string, bool) {
	val, exists := c.Get(ContextTokenKey)
	if !exists {
		return "", false
	}
	token, ok := val.(string)
	return token, ok
}
