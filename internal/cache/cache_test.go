package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFreshTransitions(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s := newWithClock(func() time.Time { return now })

	const ttl = 10 * time.Minute

	assert.False(t, s.Fresh("weather", ttl), "never-populated key must not be fresh")

	s.Put("weather", "payload")
	assert.True(t, s.Fresh("weather", ttl), "key must be fresh immediately after Put")

	now = now.Add(ttl - time.Second)
	assert.True(t, s.Fresh("weather", ttl))

	now = now.Add(time.Second)
	assert.False(t, s.Fresh("weather", ttl), "key must expire once elapsed >= ttl")

	// The entry is still retrievable; expiry is logical, not physical.
	e, ok := s.Get("weather")
	assert.True(t, ok)
	assert.Equal(t, "payload", e.Payload)
}

func TestPutOverwritesWholesale(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s := newWithClock(func() time.Time { return now })

	s.Put("k", 1)
	now = now.Add(time.Hour)
	s.Put("k", 2)

	e, ok := s.Get("k")
	assert.True(t, ok)
	assert.Equal(t, 2, e.Payload)
	assert.Equal(t, now, e.FetchedAt)
}

func TestClear(t *testing.T) {
	s := New()
	s.Put("a", 1)
	s.Put("b", 2)
	assert.Equal(t, 2, s.Len())

	s.Clear()
	assert.Equal(t, 0, s.Len())
	_, ok := s.Get("a")
	assert.False(t, ok)
}
