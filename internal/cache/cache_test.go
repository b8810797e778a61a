package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"stockfolio/internal/model"
)

func TestStockCache_NilCacheDisablesCaching(t *testing.T) {
	var c *StockCache
	ctx := context.Background()

	assert.Nil(t, c.Get(ctx, 1))
	assert.NotPanics(t, func() {
		c.Set(ctx, &model.Stock{ID: 1, Symbol: "AAPL"})
		c.Invalidate(ctx, 1)
	})
}

func TestStockCache_NilStockIgnored(t *testing.T) {
	c := &StockCache{}
	assert.NotPanics(t, func() {
		c.Set(context.Background(), nil)
	})
}
