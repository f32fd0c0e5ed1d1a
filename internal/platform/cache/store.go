// Package cache provides an in-process TTL cache for rendered reports.
package cache

import (
	"strings"
	"sync"
	"time"

	"github.com/webstats/matchstats/internal/platform/resilience"
)

type entry struct {
	value     []byte
	expiresAt time.Time
}

// Store keeps rendered payloads in memory with a fixed TTL. A zero TTL
// disables expiry.
type Store struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	flight  resilience.SingleFlight
	now     func() time.Time
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *Store) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if !e.expiresAt.IsZero() && s.now().After(e.expiresAt) {
		s.Delete(key)
		return nil, false
	}
	return e.value, true
}

func (s *Store) Set(key string, value []byte) {
	e := entry{value: value}
	if s.ttl > 0 {
		e.expiresAt = s.now().Add(s.ttl)
	}
	s.mu.Lock()
	s.entries[key] = e
	s.mu.Unlock()
}

func (s *Store) Delete(key string) {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
}

// DeletePrefix drops every entry whose key starts with prefix. Used to
// invalidate all reports for a season in one call.
func (s *Store) DeletePrefix(prefix string) {
	s.mu.Lock()
	for key := range s.entries {
		if strings.HasPrefix(key, prefix) {
			delete(s.entries, key)
		}
	}
	s.mu.Unlock()
}

// GetOrLoad returns the cached payload or invokes load once per key,
// collapsing concurrent misses onto a single load.
func (s *Store) GetOrLoad(key string, load func() ([]byte, error)) ([]byte, error) {
	if value, ok := s.Get(key); ok {
		return value, nil
	}
	value, err, _ := s.flight.Do(key, func() (any, error) {
		if cached, ok := s.Get(key); ok {
			return cached, nil
		}
		loaded, err := load()
		if err != nil {
			return nil, err
		}
		s.Set(key, loaded)
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}
	return value.([]byte), nil
}
