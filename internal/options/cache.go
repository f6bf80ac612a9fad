package options

import (
	"sync"
	"time"
)

// Cache holds one CandidateSet per ticker for a fixed time-to-live.
// The key is the ticker only, never the request parameters: the stored set is
// parameter-independent, so requests that differ only in delta thresholds or
// filter type re-filter the cached set instead of refetching.
//
// Expiry is checked lazily on lookup; stale entries are overwritten by the
// next fetch. Entries are replaced whole, so concurrent fetches for the same
// ticker can race and the last writer wins.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

type cacheEntry struct {
	set        *CandidateSet
	insertedAt time.Time
}

// NewCache creates a cache with the given time-to-live
func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the cached candidate set for a ticker if it is still fresh
func (c *Cache) Get(ticker string) (*CandidateSet, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[ticker]
	if !ok {
		return nil, false
	}

	if c.now().Sub(entry.insertedAt) >= c.ttl {
		return nil, false
	}

	return entry.set, true
}

// Put stores a candidate set for a ticker, overwriting any prior entry
func (c *Cache) Put(ticker string, set *CandidateSet) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[ticker] = cacheEntry{
		set:        set,
		insertedAt: c.now(),
	}
}

// Len returns the number of stored entries, fresh or stale
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
