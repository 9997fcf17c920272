package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGetSet(t *testing.T) {
	m := NewMemory(time.Minute)
	defer m.Close()
	ctx := context.Background()

	_, found, err := m.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, m.Set(ctx, "k", []byte("v"), 0))
	got, found, err := m.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []byte("v"), got)
}

func TestMemoryExpiry(t *testing.T) {
	m := NewMemory(time.Minute)
	defer m.Close()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "k", []byte("v"), 10*time.Millisecond))
	time.Sleep(20 * time.Millisecond)

	_, found, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryDeleteByPrefix(t *testing.T) {
	m := NewMemory(time.Minute)
	defer m.Close()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "vendors:agriculture:a", []byte("1"), 0))
	require.NoError(t, m.Set(ctx, "vendors:agriculture:b", []byte("2"), 0))
	require.NoError(t, m.Set(ctx, "vendors:cars:a", []byte("3"), 0))

	require.NoError(t, m.DeleteByPrefix(ctx, "vendors:agriculture:"))

	_, found, _ := m.Get(ctx, "vendors:agriculture:a")
	assert.False(t, found)
	_, found, _ = m.Get(ctx, "vendors:cars:a")
	assert.True(t, found)
	assert.Equal(t, 1, m.Size())
}

func TestMemoryDelete(t *testing.T) {
	m := NewMemory(time.Minute)
	defer m.Close()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "k", []byte("v"), 0))
	require.NoError(t, m.Delete(ctx, "k"))

	_, found, _ := m.Get(ctx, "k")
	assert.False(t, found)
}
