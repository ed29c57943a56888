package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/i474232898/flight-duration-estimator/internal/flight"
)

var (
	// ErrNotFound is returned when no fresh reading is cached for a key.
	ErrNotFound = errors.New("no cached weather for location")
)

type entry struct {
	reading   flight.WeatherReading
	expiresAt time.Time
}

// MemoryStore is a concurrency-safe in-memory weather reading cache.
type MemoryStore struct {
	mu sync.RWMutex

	// key: rounded coordinate
	data map[string]entry

	ttl time.Duration
	now func() time.Time
}

// NewMemoryStore creates a MemoryStore whose entries expire after ttl.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		data: make(map[string]entry),
		ttl:  ttl,
		now:  time.Now,
	}
}

// Set stores a reading and drops any entries that have already expired.
func (s *MemoryStore) Set(_ context.Context, key string, reading flight.WeatherReading) error {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	for k, e := range s.data {
		if now.After(e.expiresAt) {
			delete(s.data, k)
		}
	}
	s.data[key] = entry{reading: reading, expiresAt: now.Add(s.ttl)}
	return nil
}

// Get returns the cached reading for key if it has not expired.
func (s *MemoryStore) Get(_ context.Context, key string) (flight.WeatherReading, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[key]
	if !ok || s.now().After(e.expiresAt) {
		return flight.WeatherReading{}, ErrNotFound
	}
	return e.reading, nil
}

// Len returns the number of entries currently held, expired or not.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
