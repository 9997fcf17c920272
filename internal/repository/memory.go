package repository

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"marketplace-catalog/internal/models"
	"marketplace-catalog/internal/seed"
)

type memoryStorefront struct {
	info     models.StorefrontInfo
	taxonomy models.Taxonomy
	vendors  []models.Vendor
}

// MemoryRepository serves the static seed catalogs from process memory. The
// catalog itself is immutable; the only mutation is the cosmetic shuffle
// timer that periodically permutes each storefront's vendor display order.
type MemoryRepository struct {
	mu          sync.RWMutex
	storefronts map[string]*memoryStorefront
	keys        []string

	shuffleStop chan struct{}
	shuffleOnce sync.Once
}

// NewMemoryRepository builds a repository over the given storefront seeds.
func NewMemoryRepository(storefronts []seed.Storefront) *MemoryRepository {
	r := &MemoryRepository{
		storefronts: make(map[string]*memoryStorefront, len(storefronts)),
		keys:        make([]string, 0, len(storefronts)),
	}
	for _, s := range storefronts {
		vendors := make([]models.Vendor, len(s.Vendors))
		copy(vendors, s.Vendors)
		r.storefronts[s.Info.Key] = &memoryStorefront{
			info:     s.Info,
			taxonomy: s.Taxonomy,
			vendors:  vendors,
		}
		r.keys = append(r.keys, s.Info.Key)
	}
	return r
}

func (r *MemoryRepository) Storefronts(_ context.Context) ([]models.StorefrontInfo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.StorefrontInfo, 0, len(r.keys))
	for _, key := range r.keys {
		out = append(out, r.storefronts[key].info)
	}
	return out, nil
}

func (r *MemoryRepository) Vendors(_ context.Context, storefront string) ([]models.Vendor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.storefronts[storefront]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]models.Vendor, len(s.vendors))
	copy(out, s.vendors)
	return out, nil
}

func (r *MemoryRepository) Vendor(_ context.Context, storefront, vendorID string) (*models.Vendor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.storefronts[storefront]
	if !ok {
		return nil, ErrNotFound
	}
	for _, v := range s.vendors {
		if v.ID == vendorID {
			vendor := v
			return &vendor, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryRepository) Taxonomy(_ context.Context, storefront string) (*models.Taxonomy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.storefronts[storefront]
	if !ok {
		return nil, ErrNotFound
	}
	tax := s.taxonomy
	return &tax, nil
}

// StartShuffle begins permuting each storefront's vendor order at the given
// interval. A non-positive interval disables the shuffle entirely.
func (r *MemoryRepository) StartShuffle(interval time.Duration) {
	if interval <= 0 {
		return
	}
	r.shuffleStop = make(chan struct{})
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-r.shuffleStop:
				return
			case <-ticker.C:
				r.shuffleAll()
			}
		}
	}()
}

// StopShuffle cancels the shuffle timer. Safe to call more than once, and
// safe when the shuffle was never started.
func (r *MemoryRepository) StopShuffle() {
	if r.shuffleStop == nil {
		return
	}
	r.shuffleOnce.Do(func() { close(r.shuffleStop) })
}

func (r *MemoryRepository) shuffleAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.storefronts {
		rand.Shuffle(len(s.vendors), func(i, j int) {
			s.vendors[i], s.vendors[j] = s.vendors[j], s.vendors[i]
		})
	}
}
