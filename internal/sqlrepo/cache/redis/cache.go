// Package redis is a distributed sqlrepo.Cache backend built on
// redis/go-redis/v9, following the same Get/Set JSON-marshalling shape as
// the teacher's internal/cache/redis/author.go.
package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache adapts a *redis.Client to sqlrepo.Cache. Values are JSON-encoded on
// Set and decoded into a map[string]any on Get, since the sqlrepo.Cache
// contract only promises an any result — callers that need a concrete
// type should re-marshal/unmarshal at their own boundary.
type Cache struct {
	client *redis.Client
	ctx    context.Context
}

// New wraps client. ctx is used for every call since sqlrepo.Cache's
// interface predates context plumbing; pass context.Background() for a
// long-lived process cache.
func New(ctx context.Context, client *redis.Client) *Cache {
	return &Cache{client: client, ctx: ctx}
}

func (c *Cache) Get(key string) (any, bool) {
	data, err := c.client.Get(c.ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, false
	}
	return value, true
}

func (c *Cache) Set(key string, value any, ttl time.Duration) {
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	_ = c.client.Set(c.ctx, key, payload, ttl).Err()
}

// Invalidate drops every cached Query result for tablePrefix, since Query's
// keys are built from table+filters (internal/sqlrepo.Repository.
// buildCacheKey), never from an entity id, and a write to one row can
// change the result set of any previously cached list for that table.
// SCAN (not KEYS) is used so invalidation doesn't block the server on a
// large keyspace.
func (c *Cache) Invalidate(tablePrefix string) {
	pattern := tablePrefix + "|*"
	iter := c.client.Scan(c.ctx, 0, pattern, 0).Iterator()
	var keys []string
	for iter.Next(c.ctx) {
		keys = append(keys, iter.Val())
	}
	if len(keys) > 0 {
		_ = c.client.Del(c.ctx, keys...).Err()
	}
}
