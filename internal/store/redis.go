// ABOUTME: Redis implementation of the session store using redis/go-redis
// ABOUTME: TTL handling is delegated to Redis; a missing key maps to ErrNotFound

package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore backs the session store with a Redis instance.
type RedisStore struct {
	rdb    *redis.Client
	logger *slog.Logger
}

// NewRedisStore wraps an existing Redis client. The caller owns the client
// lifecycle (ping at startup, close at shutdown).
func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{
		rdb:    rdb,
		logger: slog.Default().With("component", "session-store"),
	}
}

// Get returns the value at key, or ErrNotFound if absent or expired.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return data, nil
}

// Set writes value at key with the given TTL.
func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := s.rdb.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}

// Expire resets the TTL of key.
func (s *RedisStore) Expire(ctx context.Context, key string, ttl time.Duration) error {
	if err := s.rdb.Expire(ctx, key, ttl).Err(); err != nil {
		return fmt.Errorf("redis expire %s: %w", key, err)
	}
	return nil
}
