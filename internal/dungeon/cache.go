package dungeon

import (
	"sync"

	"github.com/zyedidia/generic/cache"

	"dungeongen/internal/gamemap"
	"dungeongen/internal/special"
)

type cacheKey struct {
	seed    uint64
	at      gamemap.DLevel
	special special.ID
	role    special.Role
}

// Cache keeps recently built levels so repeated requests for the same
// params skip generation. Cached levels are shared between callers and
// must not be modified. It is safe for concurrent use.
type Cache struct {
	mu     sync.Mutex
	lru    *cache.Cache[cacheKey, *gamemap.Level]
	hits   int
	misses int
}

// NewCache returns a cache holding at most capacity levels.
func NewCache(capacity int) *Cache {
	return &Cache{lru: cache.New[cacheKey, *gamemap.Level](max(capacity, 1))}
}

// Build returns the cached level for p, building it on a miss. Params
// with a Tune hook are never cached since the hook cannot be compared.
func (c *Cache) Build(p Params) (*gamemap.Level, error) {
	if p.Tune != nil {
		return Build(p)
	}
	key := cacheKey{seed: p.Seed, at: p.DLevel, role: p.Role}
	if p.Special != nil {
		key.special = *p.Special
	}

	c.mu.Lock()
	lvl, ok := c.lru.Get(key)
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	c.mu.Unlock()
	if ok {
		return lvl, nil
	}

	lvl, err := Build(p)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.lru.Put(key, lvl)
	c.mu.Unlock()
	return lvl, nil
}

// Stats reports cache hits and misses so far.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}

// Len is the number of cached levels.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Size()
}
