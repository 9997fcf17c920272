// Package cache provides the response cache used by the storefront handlers,
// with an in-process TTL store and a Redis-backed alternative behind one
// interface.
package cache

import (
	"context"
	"strings"
	"sync"
	"time"
)

// Store is the minimal cache surface the handlers need: byte values with a
// TTL and prefix invalidation.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	DeleteByPrefix(ctx context.Context, prefix string) error
}

type memoryItem struct {
	value      []byte
	expiration int64
}

// Memory is an in-process TTL cache with a periodic cleanup goroutine.
type Memory struct {
	items map[string]memoryItem
	mu    sync.RWMutex
	ttl   time.Duration
	stop  chan struct{}
	once  sync.Once
}

// NewMemory creates a memory cache with the given default TTL and starts its
// cleanup loop.
func NewMemory(defaultTTL time.Duration) *Memory {
	m := &Memory{
		items: make(map[string]memoryItem),
		ttl:   defaultTTL,
		stop:  make(chan struct{}),
	}
	go m.cleanupExpired()
	return m
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	item, found := m.items[key]
	if !found {
		return nil, false, nil
	}
	if time.Now().UnixNano() > item.expiration {
		return nil, false, nil
	}
	return item.value, true, nil
}

func (m *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if ttl <= 0 {
		ttl = m.ttl
	}
	m.items[key] = memoryItem{
		value:      value,
		expiration: time.Now().Add(ttl).UnixNano(),
	}
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}

func (m *Memory) DeleteByPrefix(_ context.Context, prefix string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key := range m.items {
		if strings.HasPrefix(key, prefix) {
			delete(m.items, key)
		}
	}
	return nil
}

// Size returns the number of cached items, expired or not.
func (m *Memory) Size() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

// Close stops the cleanup loop.
func (m *Memory) Close() {
	m.once.Do(func() { close(m.stop) })
}

func (m *Memory) cleanupExpired() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			m.mu.Lock()
			now := time.Now().UnixNano()
			for key, item := range m.items {
				if now > item.expiration {
					delete(m.items, key)
				}
			}
			m.mu.Unlock()
		}
	}
}
