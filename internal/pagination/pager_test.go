package pagination

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tenInts() []int {
	return []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
}

func TestSlice(t *testing.T) {
	start, end, meta := Slice(10, 1, 6)
	assert.Equal(t, 0, start)
	assert.Equal(t, 6, end)
	assert.True(t, meta.HasMore)
	assert.Equal(t, 2, meta.TotalPages)

	start, end, meta = Slice(10, 2, 6)
	assert.Equal(t, 6, start)
	assert.Equal(t, 10, end)
	assert.False(t, meta.HasMore)

	// Past the end yields an empty slice, not a panic.
	start, end, meta = Slice(10, 5, 6)
	assert.Equal(t, start, end)
	assert.False(t, meta.HasMore)
}

func TestSliceClampsBadInput(t *testing.T) {
	start, end, meta := Slice(3, 0, 0)
	assert.Equal(t, 0, start)
	assert.Equal(t, 1, end)
	assert.Equal(t, 1, meta.Page)
	assert.Equal(t, 1, meta.Limit)
}

func TestPagerLoadSequence(t *testing.T) {
	// 10 results, page size 6: first load reveals [0..6), second [6..10),
	// third is a no-op.
	p := New(tenInts(), 6, 0)
	ctx := context.Background()

	visible, err := p.LoadMore(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, visible)
	assert.True(t, p.HasMore())

	visible, err = p.LoadMore(ctx)
	require.NoError(t, err)
	assert.Equal(t, tenInts(), visible)
	assert.False(t, p.HasMore())

	visible, err = p.LoadMore(ctx)
	require.NoError(t, err)
	assert.Equal(t, tenInts(), visible)
	assert.Equal(t, 3, p.Page())
}

func TestPagerResetClearsState(t *testing.T) {
	p := New(tenInts(), 6, 0)
	_, err := p.LoadMore(context.Background())
	require.NoError(t, err)

	p.Reset([]int{42, 43})

	assert.Empty(t, p.Visible())
	assert.Equal(t, 1, p.Page())
	assert.True(t, p.HasMore())

	visible, err := p.LoadMore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{42, 43}, visible)
	assert.False(t, p.HasMore())
}

func TestPagerEmptySourceHasNothingToLoad(t *testing.T) {
	p := New([]int{}, 6, 0)
	assert.False(t, p.HasMore())

	visible, err := p.LoadMore(context.Background())
	require.NoError(t, err)
	assert.Empty(t, visible)
}

func TestPagerStaleLoadDiscardedAfterReset(t *testing.T) {
	// A load that was in flight when the filters changed must not append
	// its stale slice to the new result set.
	p := New(tenInts(), 6, 50*time.Millisecond)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = p.LoadMore(context.Background())
	}()

	time.Sleep(10 * time.Millisecond)
	p.Reset([]int{100, 200})
	<-done

	assert.Empty(t, p.Visible())

	visible, err := p.LoadMore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{100, 200}, visible)
}

func TestPagerContextCancelAbortsLoad(t *testing.T) {
	p := New(tenInts(), 6, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := p.LoadMore(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, p.Visible())
	assert.False(t, p.Loading())

	// The pager remains usable after an aborted load.
	p2 := New([]int{1, 2}, 6, 0)
	visible, err := p2.LoadMore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, visible)
}
