// ABOUTME: Tests for the in-memory key-value store
// ABOUTME: Covers basic operations, TTL expiry and value isolation

package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SetGet(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte("v"), 0))

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)
}

func TestMemoryStore_GetMissing(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_TTLExpiry(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte("v"), 10*time.Millisecond))

	_, err := s.Get(ctx, "k")
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)

	_, err = s.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_ExpireRefreshesTTL(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte("v"), 15*time.Millisecond))
	require.NoError(t, s.Expire(ctx, "k", time.Minute))

	time.Sleep(30 * time.Millisecond)

	_, err := s.Get(ctx, "k")
	assert.NoError(t, err)
}

func TestMemoryStore_ExpireMissingIsNoOp(t *testing.T) {
	s := NewMemoryStore()
	assert.NoError(t, s.Expire(context.Background(), "nope", time.Minute))
}

func TestMemoryStore_Delete(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte("v"), 0))
	require.NoError(t, s.Delete(ctx, "k"))

	_, err := s.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_ValueIsolation(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	original := []byte("abc")
	require.NoError(t, s.Set(ctx, "k", original, 0))
	original[0] = 'x'

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), got)

	// Mutating the returned slice does not corrupt the stored value.
	got[0] = 'z'
	again, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again)
}
