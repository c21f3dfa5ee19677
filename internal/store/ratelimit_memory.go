package store

import (
	"context"
	"sort"
	"sync"
	"time"
)

// RateLimitMemoryStore counts requests in sliding windows, in memory.
// Hits per key arrive in time order, so pruning a window is a binary
// search for the window start plus one reslice.
type RateLimitMemoryStore struct {
	mu   sync.Mutex
	hits map[string][]time.Time
}

func NewRateLimitMemoryStore() *RateLimitMemoryStore {
	return &RateLimitMemoryStore{
		hits: make(map[string][]time.Time),
	}
}

// Record appends one hit for key and returns how many hits fall inside the
// window ending now.
func (s *RateLimitMemoryStore) Record(
	_ context.Context, key string, window time.Duration,
) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	hits := append(s.hits[key], now)

	start := now.Add(-window)
	first := sort.Search(len(hits), func(i int) bool {
		return hits[i].After(start)
	})

	hits = hits[first:]
	s.hits[key] = hits

	return int64(len(hits)), nil
}
