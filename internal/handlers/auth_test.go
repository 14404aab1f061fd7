package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"todo-list/internal/handlers"
	"todo-list/internal/models"
	"todo-list/internal/services"
	"todo-list/internal/sessions"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
)

type fakeAuthService struct {
	user        *models.User
	token       string
	registerErr error
	loginErr    error
	loggedOut   []string
}

func (f *fakeAuthService) Register(ctx context.Context, name, email, password string) (*models.User, string, error) {
	if f.registerErr != nil {
		return nil, "", f.registerErr
	}
	return f.user, f.token, nil
}

func (f *fakeAuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	if f.loginErr != nil {
		return nil, "", f.loginErr
	}
	return f.user, f.token, nil
}

func (f *fakeAuthService) Logout(ctx context.Context, token string) error {
	f.loggedOut = append(f.loggedOut, token)
	return nil
}

func (f *fakeAuthService) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	return nil, nil
}

func newFakeAuth() *fakeAuthService {
	return &fakeAuthService{
		user: &models.User{
			ID:    uuid.Must(uuid.NewV4()),
			Email: "alice@example.com",
			Name:  "Alice",
		},
		token: "session-token",
	}
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == sessions.CookieName {
			return c
		}
	}
	return nil
}

func TestRegistration(t *testing.T) {
	gin.SetMode(gin.TestMode)

	auth := newFakeAuth()
	codec := sessions.NewCookieCodec("test-secret", time.Hour, false)
	handler := handlers.NewRegisterHandler(auth, codec)

	router := gin.New()
	router.POST("/register", handler.Registration)

	body, _ := json.Marshal(map[string]string{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "s3cret-password",
	})
	req, _ := http.NewRequest("POST", "/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
	}

	cookie := sessionCookie(w)
	if cookie == nil {
		t.Fatal("Expected a session cookie after registration")
	}
	if token, err := codec.Decode(cookie.Value); err != nil || token != "session-token" {
		t.Errorf("Expected the cookie to carry the session token, got %q (err %v)", token, err)
	}

	var response struct {
		User handlers.UserResponse `json:"user"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.User.Email != "alice@example.com" {
		t.Errorf("Expected email alice@example.com, got %q", response.User.Email)
	}
}

func TestRegistrationValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := handlers.NewRegisterHandler(newFakeAuth(), sessions.NewCookieCodec("test-secret", time.Hour, false))
	router := gin.New()
	router.POST("/register", handler.Registration)

	cases := []struct {
		name string
		body map[string]string
	}{
		{"missing email", map[string]string{"name": "Alice", "password": "s3cret-password"}},
		{"malformed email", map[string]string{"name": "Alice", "email": "not-an-email", "password": "s3cret-password"}},
		{"short password", map[string]string{"name": "Alice", "email": "alice@example.com", "password": "short"}},
		{"missing name", map[string]string{"email": "alice@example.com", "password": "s3cret-password"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body, _ := json.Marshal(tc.body)
			req, _ := http.NewRequest("POST", "/register", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("Expected status %d, got %d", http.StatusBadRequest, w.Code)
			}
		})
	}
}

func TestRegistrationDuplicateEmail(t *testing.T) {
	gin.SetMode(gin.TestMode)

	auth := newFakeAuth()
	auth.registerErr = services.ErrDuplicateEmail
	handler := handlers.NewRegisterHandler(auth, sessions.NewCookieCodec("test-secret", time.Hour, false))
	router := gin.New()
	router.POST("/register", handler.Registration)

	body, _ := json.Marshal(map[string]string{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "s3cret-password",
	})
	req, _ := http.NewRequest("POST", "/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("Expected status %d, got %d", http.StatusConflict, w.Code)
	}
	if sessionCookie(w) != nil {
		t.Error("Expected no session cookie on failed registration")
	}
}

func TestLogin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	codec := sessions.NewCookieCodec("test-secret", time.Hour, false)
	handler := handlers.NewAuthHandler(newFakeAuth(), codec)
	router := gin.New()
	router.POST("/login", handler.Login)

	body, _ := json.Marshal(map[string]string{
		"email":    "alice@example.com",
		"password": "s3cret-password",
	})
	req, _ := http.NewRequest("POST", "/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}

	cookie := sessionCookie(w)
	if cookie == nil {
		t.Fatal("Expected a session cookie after login")
	}
	if token, err := codec.Decode(cookie.Value); err != nil || token != "session-token" {
		t.Errorf("Expected the cookie to carry the session token, got %q (err %v)", token, err)
	}
}

func TestLoginUnknownAccount(t *testing.T) {
	gin.SetMode(gin.TestMode)

	auth := newFakeAuth()
	auth.loginErr = services.ErrAccountNotFound
	handler := handlers.NewAuthHandler(auth, sessions.NewCookieCodec("test-secret", time.Hour, false))
	router := gin.New()
	router.POST("/login", handler.Login)

	body, _ := json.Marshal(map[string]string{
		"email":    "nobody@example.com",
		"password": "s3cret-password",
	})
	req, _ := http.NewRequest("POST", "/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	gin.SetMode(gin.TestMode)

	auth := newFakeAuth()
	auth.loginErr = services.ErrInvalidCredentials
	handler := handlers.NewAuthHandler(auth, sessions.NewCookieCodec("test-secret", time.Hour, false))
	router := gin.New()
	router.POST("/login", handler.Login)

	body, _ := json.Marshal(map[string]string{
		"email":    "alice@example.com",
		"password": "wrong-password",
	})
	req, _ := http.NewRequest("POST", "/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
	if sessionCookie(w) != nil {
		t.Error("Expected no session cookie on failed login")
	}
}

func TestLogoutWithoutSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	auth := newFakeAuth()
	handler := handlers.NewLogoutHandler(auth, sessions.NewCookieCodec("test-secret", time.Hour, false))
	router := gin.New()
	router.POST("/logout", handler.Logout)

	req, _ := http.NewRequest("POST", "/logout", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status %d, got %d", http.StatusOK, w.Code)
	}
	if len(auth.loggedOut) != 0 {
		t.Errorf("Expected no session destruction without a token, got %v", auth.loggedOut)
	}
	if !strings.Contains(w.Body.String(), "logged out") {
		t.Errorf("Unexpected body: %s", w.Body.String())
	}
}

func TestSessionCookieSecureFlag(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		secure bool
	}{
		{"development", false},
		{"production", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			codec := sessions.NewCookieCodec("test-secret", time.Hour, tc.secure)
			handler := handlers.NewAuthHandler(newFakeAuth(), codec)
			router := gin.New()
			router.POST("/login", handler.Login)

			body, _ := json.Marshal(map[string]string{
				"email":    "alice@example.com",
				"password": "s3cret-password",
			})
			req, _ := http.NewRequest("POST", "/login", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			cookie := sessionCookie(w)
			if cookie == nil {
				t.Fatal("Expected a session cookie")
			}
			if cookie.Secure != tc.secure {
				t.Errorf("Expected Secure=%v, got %v", tc.secure, cookie.Secure)
			}
		})
	}
}
