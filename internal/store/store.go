// ABOUTME: Session store contract over an external key/value cache
// ABOUTME: Minimal get/set/delete/expire surface; records expire via TTL

package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a key does not exist or has expired.
var ErrNotFound = errors.New("key not found")

// Store is the thin contract the dialogue core consumes. The backing cache is
// assumed eventually-available and TTL-based.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Expire(ctx context.Context, key string, ttl time.Duration) error
}
