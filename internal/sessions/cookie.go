package sessions

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the browser cookie carrying the signed session token.
const CookieName = "todo_session"

var ErrInvalidCookie = errors.New("invalid session cookie")

// CookieCodec signs session tokens into cookie values and verifies them back.
// The signature only proves the cookie was issued by this server; whether the
// session is still alive is decided by the Store.
type CookieCodec struct {
	secret []byte
	ttl    time.Duration
	secure bool
}

// NewCookieCodec builds a codec. secure marks issued cookies HTTPS-only and
// should be true outside development.
func NewCookieCodec(secret string, ttl time.Duration, secure bool) *CookieCodec {
	return &CookieCodec{secret: []byte(secret), ttl: ttl, secure: secure}
}

// TTL is the lifetime stamped into issued cookies.
func (c *CookieCodec) TTL() time.Duration {
	return c.ttl
}

// Secure reports whether issued cookies carry the Secure attribute.
func (c *CookieCodec) Secure() bool {
	return c.secure
}

// Encode wraps a session token in a signed JWT suitable for a cookie value.
func (c *CookieCodec) Encode(token string) (string, error) {
	claims := jwt.MapClaims{
		"sid": token,
		"exp": time.Now().Add(c.ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Decode verifies a cookie value and returns the embedded session token.
func (c *CookieCodec) Decode(value string) (string, error) {
	parsed, err := jwt.Parse(value, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", ErrInvalidCookie
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidCookie
	}

	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", ErrInvalidCookie
	}

	return sid, nil
}
