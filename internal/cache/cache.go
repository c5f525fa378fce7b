package cache

import (
	"sync"
	"time"
)

// Entry holds one cached payload together with its fetch time. Entries are
// always written wholesale; a payload is never a partially-built value.
type Entry struct {
	Payload   any
	FetchedAt time.Time
}

// Store is a concurrency-safe in-memory TTL cache. One instance is created
// per logical domain (weather, feed) so key namespaces cannot collide.
//
// There is no eviction beyond Clear: the key space is a small finite set of
// location and category combinations, so unbounded growth is accepted.
type Store struct {
	mu   sync.RWMutex
	data map[string]Entry

	now func() time.Time
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		data: make(map[string]Entry),
		now:  time.Now,
	}
}

// newWithClock creates a Store with an injected clock for tests.
func newWithClock(now func() time.Time) *Store {
	s := New()
	s.now = now
	return s
}

// Get returns the entry for key, if any. It does not consider freshness;
// callers combine it with Fresh.
func (s *Store) Get(key string) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[key]
	return e, ok
}

// Put creates or overwrites the entry for key, stamped with the current time.
func (s *Store) Put(key string, payload any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = Entry{
		Payload:   payload,
		FetchedAt: s.now(),
	}
}

// Fresh reports whether key has an entry younger than ttl. A key that was
// never populated is not fresh. Entries expire logically; they are never
// removed except by Clear.
func (s *Store) Fresh(key string, ttl time.Duration) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[key]
	if !ok {
		return false
	}
	return s.now().Sub(e.FetchedAt) < ttl
}

// Clear removes all entries.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = make(map[string]Entry)
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.data)
}
