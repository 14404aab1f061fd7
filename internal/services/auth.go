package services

import (
	"context"
	"errors"
	"strings"

	"todo-list/internal/models"
	"todo-list/internal/repositories"
	"todo-list/internal/sessions"

	"github.com/gofrs/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService handles registration, login, and session lifecycle.
type AuthService interface {
	// Register creates an account and establishes a session for it
	// (auto-login). Fails with ErrDuplicateEmail when the email is taken.
	Register(ctx context.Context, name, email, password string) (*models.User, string, error)
	// Login verifies credentials and establishes a session. Fails with
	// ErrAccountNotFound for an unknown email and ErrInvalidCredentials for
	// a wrong password.
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	// Logout destroys a session. Idempotent: logging out twice is not an error.
	Logout(ctx context.Context, token string) error
	// CurrentUser resolves a session token to its user. An unknown, expired,
	// or stale token yields (nil, nil): the request is anonymous.
	CurrentUser(ctx context.Context, token string) (*models.User, error)
}

type AuthServiceImpl struct {
	users      *repositories.UserRepository
	store      *sessions.Store
	bcryptCost int
}

func NewAuthService(users *repositories.UserRepository, store *sessions.Store, bcryptCost int) *AuthServiceImpl {
	if bcryptCost < bcrypt.MinCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthServiceImpl{users: users, store: store, bcryptCost: bcryptCost}
}

func VerifyPassword(hashedPassword, plainPassword string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainPassword))
	return err == nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthServiceImpl) Register(ctx context.Context, name, email, password string) (*models.User, string, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)

	if name == "" {
		return nil, "", &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if email == "" {
		return nil, "", &ValidationError{Field: "email", Reason: "must not be empty"}
	}
	if password == "" {
		return nil, "", &ValidationError{Field: "password", Reason: "must not be empty"}
	}

	// Friendly pre-check; the unique index on email is what actually
	// guarantees uniqueness when two registrations race.
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, "", ErrDuplicateEmail
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		ID:           uuid.Must(uuid.NewV4()),
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", ErrDuplicateEmail
		}
		return nil, "", err
	}

	token, err := s.store.Create(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	email = normalizeEmail(email)

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrAccountNotFound
		}
		return nil, "", err
	}

	if !VerifyPassword(user.PasswordHash, password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.store.Create(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (s *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.store.Destroy(ctx, token)
}

func (s *AuthServiceImpl) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, nil
	}

	userID, found, err := s.store.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		// A session pointing at a deleted account is treated as anonymous.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return user, nil
}
