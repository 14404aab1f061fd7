// Package sessions implements the server-side session store. A session is an
// opaque uuid token mapped to a user id in Redis; destroying the entry is what
// logs a user out, regardless of any cookie still held by the browser.
package sessions

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

type StoreConfig struct {
	Addr         string
	Password     string
	DB           int
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	TTL          time.Duration
}

func DefaultStoreConfig() *StoreConfig {
	return &StoreConfig{
		Addr:         "localhost:6379",
		Password:     "",
		DB:           0,
		PoolSize:     10,
		MinIdleConns: 5,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		TTL:          24 * time.Hour,
	}
}

// Store holds active sessions in Redis with a sliding expiry.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStore(config *StoreConfig) *Store {
	if config == nil {
		config = DefaultStoreConfig()
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         config.Addr,
		Password:     config.Password,
		DB:           config.DB,
		PoolSize:     config.PoolSize,
		MinIdleConns: config.MinIdleConns,
		DialTimeout:  config.DialTimeout,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
	})

	return &Store{client: rdb, ttl: config.TTL}
}

// NewStoreWithClient wraps an existing Redis client. Used by tests and by
// callers that share one client across components.
func NewStoreWithClient(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

// Create establishes a new session bound to userID and returns its token.
func (s *Store) Create(ctx context.Context, userID uuid.UUID) (string, error) {
	token, err := uuid.NewV4()
	if err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}

	if err := s.client.Set(ctx, keyPrefix+token.String(), userID.String(), s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}

	return token.String(), nil
}

// Resolve maps a session token back to its user id. The second return value
// is false when the token is unknown or expired, which callers treat as an
// anonymous request rather than an error.
func (s *Store) Resolve(ctx context.Context, token string) (uuid.UUID, bool, error) {
	val, err := s.client.Get(ctx, keyPrefix+token).Result()
	if err == redis.Nil {
		return uuid.Nil, false, nil
	}
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("resolve session: %w", err)
	}

	userID, err := uuid.FromString(val)
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("corrupt session value: %w", err)
	}

	// Sliding expiry: an active session stays alive.
	s.client.Expire(ctx, keyPrefix+token, s.ttl)

	return userID, true, nil
}

// Destroy invalidates a session. Destroying an unknown or already-destroyed
// token is not an error; logout is idempotent.
func (s *Store) Destroy(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, keyPrefix+token).Err(); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	return nil
}

// Ping reports whether the backing Redis is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close releases the underlying Redis client.
func (s *Store) Close() error {
	return s.client.Close()
}
