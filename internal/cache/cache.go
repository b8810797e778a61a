package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"stockfolio/internal/model"
)

const stockTTL = 5 * time.Minute

// StockCache is a Redis-backed read cache for stocks keyed by id. It fails
// safe: connectivity and decode errors behave like cache misses so the store
// stays the source of truth. A nil cache disables caching entirely.
type StockCache struct {
	client *redis.Client
}

// NewStockCache creates a Redis-backed stock cache.
func NewStockCache(addr, password string, db int) *StockCache {
	opts := &redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}
	return &StockCache{client: redis.NewClient(opts)}
}

func stockKey(id uint) string {
	return fmt.Sprintf("stock:%d", id)
}

// Get returns the cached stock, or nil on a miss, a stale payload or a redis
// outage.
func (c *StockCache) Get(ctx context.Context, id uint) *model.Stock {
	if c == nil || c.client == nil {
		return nil
	}
	data, err := c.client.Get(ctx, stockKey(id)).Bytes()
	if err != nil {
		return nil
	}
	var stock model.Stock
	if err := json.Unmarshal(data, &stock); err != nil {
		return nil
	}
	return &stock
}

// Set stores the stock with the cache TTL, ignoring redis errors.
func (c *StockCache) Set(ctx context.Context, stock *model.Stock) {
	if c == nil || c.client == nil || stock == nil {
		return
	}
	payload, err := json.Marshal(stock)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, stockKey(stock.ID), payload, stockTTL).Err()
}

// Invalidate drops the cached stock, ignoring redis errors.
func (c *StockCache) Invalidate(ctx context.Context, id uint) {
	if c == nil || c.client == nil {
		return
	}
	_ = c.client.Del(ctx, stockKey(id)).Err()
}
