package cache

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// memoryCache is an in-process Cache used when Redis is not configured.
// Counters written by Incr never expire or get evicted, matching Redis INCR
// on a key without a TTL.
type memoryCache struct {
	mu       sync.Mutex
	counters map[string]int64
	entries  *expirable.LRU[string, []byte]
	ttl      time.Duration
}

// NewMemory returns an in-process Cache holding at most size entries for ttl.
func NewMemory(size int, ttl time.Duration) Cache {
	return &memoryCache{
		counters: make(map[string]int64),
		entries:  expirable.NewLRU[string, []byte](size, nil, ttl),
		ttl:      ttl,
	}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	n, counted := c.counters[key]
	c.mu.Unlock()
	if counted {
		return []byte(strconv.FormatInt(n, 10)), true, nil
	}

	val, ok := c.entries.Get(key)
	return val, ok, nil
}

// Set ignores ttl; entries share the cache-wide expiry.
func (c *memoryCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	delete(c.counters, key)
	c.mu.Unlock()
	c.entries.Add(key, value)
	return nil
}

func (c *memoryCache) Incr(_ context.Context, key string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.counters[key]
	if !ok {
		if raw, found := c.entries.Get(key); found {
			parsed, err := strconv.ParseInt(string(raw), 10, 64)
			if err != nil {
				return 0, err
			}
			n = parsed
			c.entries.Remove(key)
		}
	}
	n++
	c.counters[key] = n
	return n, nil
}
