// Package pagination provides the slice math behind the paginated vendor
// endpoints and a Pager that mirrors the storefront infinite-scroll
// controller: a 1-indexed page cursor revealing a result set slice by slice
// after a simulated load delay.
package pagination

import (
	"context"
	"sync"
	"time"
)

// Meta is the pagination envelope attached to list responses.
type Meta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasMore    bool  `json:"has_more"`
}

// Slice returns the [start, end) bounds of the requested page over a result
// set of the given length, plus the response metadata. Page and limit are
// clamped to sane minimums.
func Slice(total, page, limit int) (start, end int, meta Meta) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	start = (page - 1) * limit
	if start > total {
		start = total
	}
	end = start + limit
	if end > total {
		end = total
	}
	totalPages := (total + limit - 1) / limit
	meta = Meta{
		Page:       page,
		Limit:      limit,
		Total:      int64(total),
		TotalPages: totalPages,
		HasMore:    end < total,
	}
	return start, end, meta
}

// Pager accumulates slices of a filtered result set, simulating the
// network-delayed "load more" behavior of the storefront pages. A generation
// counter guards against the stale-completion race: a LoadMore that was in
// flight when Reset was called discards its slice instead of appending it to
// the fresher result set.
type Pager[T any] struct {
	mu       sync.Mutex
	source   []T
	pageSize int
	delay    time.Duration

	page    int
	visible []T
	hasMore bool
	loading bool
	gen     uint64
}

// New returns a Pager over the given result set. pageSize must be positive;
// delay is the simulated load latency (zero is valid and common in tests).
func New[T any](source []T, pageSize int, delay time.Duration) *Pager[T] {
	p := &Pager[T]{pageSize: pageSize, delay: delay}
	p.reset(source)
	return p
}

// Reset replaces the result set, as happens whenever the filter criteria
// change: the cursor returns to page 1, accumulated items are dropped, and
// any in-flight load is invalidated.
func (p *Pager[T]) Reset(source []T) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reset(source)
}

func (p *Pager[T]) reset(source []T) {
	p.source = source
	p.page = 1
	p.visible = nil
	p.hasMore = len(source) > 0
	p.loading = false
	p.gen++
}

// LoadMore reveals the next page slice after the simulated delay and returns
// the accumulated visible items. It is a no-op while a load is in flight or
// once the result set is exhausted. A context cancellation during the delay
// aborts the load without advancing the cursor.
func (p *Pager[T]) LoadMore(ctx context.Context) ([]T, error) {
	p.mu.Lock()
	if p.loading || !p.hasMore {
		visible := p.snapshot()
		p.mu.Unlock()
		return visible, nil
	}
	p.loading = true
	gen := p.gen
	delay := p.delay
	p.mu.Unlock()

	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			p.mu.Lock()
			if p.gen == gen {
				p.loading = false
			}
			visible := p.snapshot()
			p.mu.Unlock()
			return visible, ctx.Err()
		}
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.gen != gen {
		// Filters changed while we were "loading"; the slice is stale.
		return p.snapshot(), nil
	}
	start := (p.page - 1) * p.pageSize
	end := start + p.pageSize
	if end > len(p.source) {
		end = len(p.source)
	}
	if start < end {
		p.visible = append(p.visible, p.source[start:end]...)
	}
	p.hasMore = end < len(p.source)
	p.page++
	p.loading = false
	return p.snapshot(), nil
}

// Visible returns the accumulated items revealed so far.
func (p *Pager[T]) Visible() []T {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshot()
}

// HasMore reports whether further items remain to load.
func (p *Pager[T]) HasMore() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hasMore
}

// Page returns the 1-indexed cursor of the next page to load.
func (p *Pager[T]) Page() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.page
}

// Loading reports whether a load is currently in flight.
func (p *Pager[T]) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loading
}

func (p *Pager[T]) snapshot() []T {
	out := make([]T, len(p.visible))
	copy(out, p.visible)
	return out
}
