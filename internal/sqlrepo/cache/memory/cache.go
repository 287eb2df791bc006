// Package memory is an in-process sqlrepo.Cache backend built on
// patrickmn/go-cache, following the same Get/Set shape as the teacher's
// internal/cache/memory/author.go.
package memory

import (
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cache adapts gocache.Cache to sqlrepo.Cache.
type Cache struct {
	store *gocache.Cache
}

// New creates a Cache with the given default expiration and cleanup
// interval, same constructor shape as the teacher's NewAuthorCache.
func New(defaultExpiration, cleanupInterval time.Duration) *Cache {
	return &Cache{store: gocache.New(defaultExpiration, cleanupInterval)}
}

func (c *Cache) Get(key string) (any, bool) {
	return c.store.Get(key)
}

func (c *Cache) Set(key string, value any, ttl time.Duration) {
	if ttl <= 0 {
		ttl = gocache.DefaultExpiration
	}
	c.store.Set(key, value, ttl)
}

// Invalidate drops every cached Query result for tablePrefix, since Query's
// keys are built from table+filters (internal/sqlrepo.Repository.
// buildCacheKey), never from an entity id, and a write to one row can
// change the result set of any previously cached list for that table.
func (c *Cache) Invalidate(tablePrefix string) {
	prefix := tablePrefix + "|"
	for key := range c.store.Items() {
		if strings.HasPrefix(key, prefix) {
			c.store.Delete(key)
		}
	}
}
