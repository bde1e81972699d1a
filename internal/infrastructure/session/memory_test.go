package session

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	newData := func() *Data {
		return &Data{
			UserID:    uuid.New(),
			Role:      "customer",
			CreatedAt: time.Now(),
		}
	}

	t.Run("set then get round-trips the data", func(t *testing.T) {
		store := NewMemoryStore(0)
		defer store.Close()

		data := newData()
		require.NoError(t, store.Set(ctx, "sess-1", data, time.Hour))

		got, err := store.Get(ctx, "sess-1")
		require.NoError(t, err)
		assert.Equal(t, data.UserID, got.UserID)
		assert.Equal(t, "customer", got.Role)
	})

	t.Run("get returns a copy", func(t *testing.T) {
		store := NewMemoryStore(0)
		defer store.Close()

		data := newData()
		require.NoError(t, store.Set(ctx, "sess-1", data, time.Hour))

		first, err := store.Get(ctx, "sess-1")
		require.NoError(t, err)
		first.Role = "admin"

		second, err := store.Get(ctx, "sess-1")
		require.NoError(t, err)
		assert.Equal(t, "customer", second.Role)
	})

	t.Run("unknown id returns ErrNotFound", func(t *testing.T) {
		store := NewMemoryStore(0)
		defer store.Close()

		_, err := store.Get(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("expired session returns ErrNotFound", func(t *testing.T) {
		store := NewMemoryStore(0)
		defer store.Close()

		require.NoError(t, store.Set(ctx, "sess-1", newData(), -time.Second))

		_, err := store.Get(ctx, "sess-1")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("destroy removes the session", func(t *testing.T) {
		store := NewMemoryStore(0)
		defer store.Close()

		require.NoError(t, store.Set(ctx, "sess-1", newData(), time.Hour))
		require.NoError(t, store.Destroy(ctx, "sess-1"))

		_, err := store.Get(ctx, "sess-1")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("destroying an unknown id is not an error", func(t *testing.T) {
		store := NewMemoryStore(0)
		defer store.Close()

		assert.NoError(t, store.Destroy(ctx, "missing"))
	})

	t.Run("set overwrites an existing session", func(t *testing.T) {
		store := NewMemoryStore(0)
		defer store.Close()

		require.NoError(t, store.Set(ctx, "sess-1", newData(), time.Hour))

		replacement := newData()
		replacement.Role = "admin"
		require.NoError(t, store.Set(ctx, "sess-1", replacement, time.Hour))

		got, err := store.Get(ctx, "sess-1")
		require.NoError(t, err)
		assert.Equal(t, replacement.UserID, got.UserID)
		assert.Equal(t, "admin", got.Role)
	})
}

func TestNewID(t *testing.T) {
	first, err := NewID()
	require.NoError(t, err)
	second, err := NewID()
	require.NoError(t, err)

	assert.Len(t, first, 32, "128 bits hex-encoded")
	assert.NotEqual(t, first, second)
}
