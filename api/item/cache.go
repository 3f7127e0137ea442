package item

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/qwest/portfolioapi/shared/zaplogger"
)

const (
	cacheKey = "portfolio:items"
	cacheTTL = 15 * time.Minute
)

// ListCache keeps the rendered public item list in Redis. Cache
// trouble is logged and treated as a miss, never surfaced.
type ListCache struct {
	client *redis.Client
}

func NewListCache(client *redis.Client) *ListCache {
	return &ListCache{client: client}
}

// Get returns the cached list and whether it was present.
func (c *ListCache) Get(ctx context.Context) ([]ItemModel, bool) {
	data, err := c.client.Get(ctx, cacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			zaplogger.Warn("items cache read failed", zaplogger.Fields{"error": err.Error()})
		}
		return nil, false
	}

	var items []ItemModel
	if err := json.Unmarshal(data, &items); err != nil {
		zaplogger.Warn("items cache corrupt, dropping", zaplogger.Fields{"error": err.Error()})
		_ = c.client.Del(ctx, cacheKey).Err()
		return nil, false
	}
	return items, true
}

// Set stores the list with a TTL.
func (c *ListCache) Set(ctx context.Context, items []ItemModel) {
	data, err := json.Marshal(items)
	if err != nil {
		zaplogger.Warn("items cache marshal failed", zaplogger.Fields{"error": err.Error()})
		return
	}
	if err := c.client.Set(ctx, cacheKey, data, cacheTTL).Err(); err != nil {
		zaplogger.Warn("items cache write failed", zaplogger.Fields{"error": err.Error()})
	}
}

// Invalidate drops the cached list after a mutation.
func (c *ListCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, cacheKey).Err(); err != nil {
		zaplogger.Warn("items cache invalidation failed", zaplogger.Fields{"error": err.Error()})
	}
}
