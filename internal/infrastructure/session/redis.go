// Package session stores draft orders keyed by session id. Drafts are
// serialized values with an explicit expiry, never in-process state shared
// between requests.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tacocloud/tacocloud/internal/core/domain"
)

const (
	defaultTimeout = 5 * time.Second
	defaultCartTTL = 2 * time.Hour
)

// Config captures the settings for establishing a Redis connection.
type Config struct {
	Addr    string
	DB      int
	Timeout time.Duration
}

// Connect initialises a Redis client and validates connectivity with a ping.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

// RedisCartStore keeps draft orders in Redis as JSON values with a TTL.
// Key format: cart:<session_id>
type RedisCartStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCartStore creates a RedisCartStore wrapping the given client.
// If ttl <= 0, defaultCartTTL is used.
func NewRedisCartStore(client *redis.Client, ttl time.Duration) *RedisCartStore {
	if ttl <= 0 {
		ttl = defaultCartTTL
	}
	return &RedisCartStore{client: client, ttl: ttl}
}

func (s *RedisCartStore) Get(ctx context.Context, sessionID string) (*domain.Order, error) {
	raw, err := s.client.Get(ctx, s.key(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrCartNotFound
		}
		return nil, fmt.Errorf("cart get: %w", err)
	}

	var draft domain.Order
	if err := json.Unmarshal(raw, &draft); err != nil {
		return nil, fmt.Errorf("cart decode: %w", err)
	}
	return &draft, nil
}

// Put writes the draft and refreshes its expiry.
func (s *RedisCartStore) Put(ctx context.Context, sessionID string, draft *domain.Order) error {
	raw, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("cart encode: %w", err)
	}
	return s.client.Set(ctx, s.key(sessionID), raw, s.ttl).Err()
}

func (s *RedisCartStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, s.key(sessionID)).Err()
}

func (s *RedisCartStore) key(sessionID string) string {
	return "cart:" + sessionID
}
