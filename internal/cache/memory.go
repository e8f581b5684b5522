package cache

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	value     string
	expiresAt time.Time
}

// MemoryStore is an in-process Store used when Redis is not
// configured. Expiry is evaluated lazily at read time; Sweep removes
// dead entries so a long-running process doesn't accumulate them.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

func (m *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.entries[key]
	if !ok || m.now().After(e.expiresAt) {
		return "", false, nil
	}
	return e.value, true, nil
}

func (m *MemoryStore) Set(_ context.Context, key, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = entry{value: value, expiresAt: m.now().Add(ttl)}
	return nil
}

// Sweep deletes all expired entries and reports how many were removed.
func (m *MemoryStore) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	removed := 0
	for k, e := range m.entries {
		if now.After(e.expiresAt) {
			delete(m.entries, k)
			removed++
		}
	}
	return removed
}

func (m *MemoryStore) Close() error { return nil }
