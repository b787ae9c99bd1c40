package cache

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sbilibin2017/gw-territory-capture/internal/models"
)

// MemoryNewsStore is a process-local news cache bounded to a fixed number of
// cities. The least recently used city is evicted when the bound is reached.
// It is safe for concurrent use.
type MemoryNewsStore struct {
	entries *lru.Cache[string, models.NewsCacheEntry]
}

// NewMemoryNewsStore creates a store holding at most maxEntries cities.
func NewMemoryNewsStore(maxEntries int) (*MemoryNewsStore, error) {
	entries, err := lru.New[string, models.NewsCacheEntry](maxEntries)
	if err != nil {
		return nil, fmt.Errorf("create lru cache: %w", err)
	}
	return &MemoryNewsStore{entries: entries}, nil
}

// Get returns nil on a miss.
func (s *MemoryNewsStore) Get(_ context.Context, city string) (*models.NewsCacheEntry, error) {
	entry, ok := s.entries.Get(city)
	if !ok {
		return nil, nil
	}
	return &entry, nil
}

// Set replaces the entry for city.
func (s *MemoryNewsStore) Set(_ context.Context, city string, entry models.NewsCacheEntry) error {
	s.entries.Add(city, entry)
	return nil
}

// Len returns the number of cached cities.
func (s *MemoryNewsStore) Len() int {
	return s.entries.Len()
}
