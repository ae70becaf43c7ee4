package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorageReadWrite(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStorage()

	_, ok, err := m.Read(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.Write(ctx, "k", "v", 0))
	got, ok, err := m.Read(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", got)
}

func TestMemoryStorageTTL(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStorage()
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return current }

	require.NoError(t, m.Write(ctx, "k", "v", time.Minute))

	_, ok, err := m.Read(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)

	current = current.Add(2 * time.Minute)
	_, ok, err = m.Read(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok, "entry should expire after its TTL")

	// zero TTL means no expiry
	require.NoError(t, m.Write(ctx, "forever", "v", 0))
	current = current.Add(24 * time.Hour)
	_, ok, err = m.Read(ctx, "forever")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryStorageDelete(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStorage()

	require.NoError(t, m.Write(ctx, "k", "v", 0))
	require.NoError(t, m.Delete(ctx, "k"))
	_, ok, err := m.Read(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	// deleting a missing key is not an error
	require.NoError(t, m.Delete(ctx, "missing"))
}

func TestMemoryStorageClear(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStorage()

	require.NoError(t, m.Write(ctx, "a", "1", 0))
	require.NoError(t, m.Write(ctx, "b", "2", 0))
	require.NoError(t, m.Clear(ctx))

	_, ok, err := m.Read(ctx, "a")
	require.NoError(t, err)
	assert.False(t, ok)
}
