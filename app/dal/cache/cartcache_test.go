package cache

import (
	"context"
	"testing"
	"time"

	cartmodel "autopile/app/dal/cart"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/stores/redis/redistest"
)

func cartLine(id, userId int64, productId string, qty int64) *cartmodel.CartItems {
	return &cartmodel.CartItems{
		Id:        id,
		UserId:    userId,
		ProductId: productId,
		Quantity:  qty,
		CreatedAt: time.Now().Truncate(time.Second),
	}
}

func TestCartCacheSetItemAppendsAndReplaces(t *testing.T) {
	c := NewCartCache(redistest.CreateRedis(t))
	ctx := context.Background()

	c.SetItem(ctx, cartLine(1, 42, "aaaaaaaaaaaaaaaaaaaaaaaa", 2))
	c.SetItem(ctx, cartLine(2, 42, "bbbbbbbbbbbbbbbbbbbbbbbb", 1))

	items, ok := c.GetCart(ctx, 42)
	require.True(t, ok)
	require.Len(t, items, 2)

	// same line id replaces, not duplicates
	c.SetItem(ctx, cartLine(1, 42, "aaaaaaaaaaaaaaaaaaaaaaaa", 5))
	items, ok = c.GetCart(ctx, 42)
	require.True(t, ok)
	require.Len(t, items, 2)

	got, ok := c.GetItem(ctx, 42, 1)
	require.True(t, ok)
	assert.Equal(t, int64(5), got.Quantity)
}

func TestCartCacheRemoveLastItemClearsKey(t *testing.T) {
	c := NewCartCache(redistest.CreateRedis(t))
	ctx := context.Background()

	c.SetItem(ctx, cartLine(1, 7, "aaaaaaaaaaaaaaaaaaaaaaaa", 2))
	c.RemoveItem(ctx, 7, 1)

	// an empty cart reads as a miss, not an empty list
	_, ok := c.GetCart(ctx, 7)
	assert.False(t, ok)
}

func TestCartCacheSetCartEmptyClears(t *testing.T) {
	c := NewCartCache(redistest.CreateRedis(t))
	ctx := context.Background()

	c.SetItem(ctx, cartLine(1, 9, "aaaaaaaaaaaaaaaaaaaaaaaa", 2))
	c.SetCart(ctx, 9, nil)

	_, ok := c.GetCart(ctx, 9)
	assert.False(t, ok)
}

func TestCartCacheGetItemMiss(t *testing.T) {
	c := NewCartCache(redistest.CreateRedis(t))
	ctx := context.Background()

	c.SetItem(ctx, cartLine(1, 5, "aaaaaaaaaaaaaaaaaaaaaaaa", 2))

	_, ok := c.GetItem(ctx, 5, 99)
	assert.False(t, ok)
}
