package cache

import (
	"context"
	"sync"
	"time"

	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
)

type memoryEntry struct {
	dataset   *domain.Dataset
	expiresAt time.Time
}

// MemoryCache mantém os datasets no processo. TTL zero nunca expira.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (c *MemoryCache) Get(_ context.Context, source string) (*domain.Dataset, bool, error) {
	key := Key(source)

	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false, nil
	}

	if !entry.expiresAt.IsZero() && !c.now().Before(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, false, nil
	}

	return entry.dataset, true, nil
}

func (c *MemoryCache) Set(_ context.Context, source string, dataset *domain.Dataset) error {
	entry := memoryEntry{dataset: dataset}
	if c.ttl > 0 {
		entry.expiresAt = c.now().Add(c.ttl)
	}

	c.mu.Lock()
	c.entries[Key(source)] = entry
	c.mu.Unlock()

	return nil
}

func (c *MemoryCache) Invalidate(_ context.Context, source string) error {
	c.mu.Lock()
	delete(c.entries, Key(source))
	c.mu.Unlock()

	return nil
}
