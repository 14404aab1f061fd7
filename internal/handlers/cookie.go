package handlers

import (
	"todo-list/internal/sessions"

	"github.com/gin-gonic/gin"
)

// setSessionCookie signs the session token and attaches it as an HTTP-only
// cookie.
func setSessionCookie(c *gin.Context, codec *sessions.CookieCodec, token string) error {
	value, err := codec.Encode(token)
	if err != nil {
		return err
	}
	c.SetCookie(sessions.CookieName, value, int(codec.TTL().Seconds()), "/", "", codec.Secure(), true)
	return nil
}

// clearSessionCookie expires the session cookie on the client.
func clearSessionCookie(c *gin.Context, codec *sessions.CookieCodec) {
	c.SetCookie(sessions.CookieName, "", -1, "/", "", codec.Secure(), true)
}
