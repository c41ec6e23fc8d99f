package cache

import (
	"context"
	"time"

	cartmodel "autopile/app/dal/cart"

	"github.com/zeromicro/go-zero/core/stores/redis"
)

var cartPolicy = Policy{Absolute: 7 * 24 * time.Hour, Sliding: 24 * time.Hour}

// CartCache stores the whole cart as one list under cart:{userId}. Cart
// membership changes on nearly every request, so item-level operations
// always rebuild and overwrite the full entry. The relational store remains
// authoritative; ownership checks never trust cached lines.
type CartCache struct {
	cache *Cache[*cartmodel.CartItems]
}

func NewCartCache(rds *redis.Redis) *CartCache {
	return &CartCache{cache: New[*cartmodel.CartItems](rds)}
}

func (c *CartCache) GetCart(ctx context.Context, userId int64) ([]*cartmodel.CartItems, bool) {
	return c.cache.GetList(ctx, ShoppingCartKey(userId))
}

func (c *CartCache) SetCart(ctx context.Context, userId int64, items []*cartmodel.CartItems) {
	if len(items) == 0 {
		// an empty cart reads as a miss; only Clear distinguishes it
		c.Clear(ctx, userId)
		return
	}
	c.cache.SetList(ctx, ShoppingCartKey(userId), items, cartPolicy)
}

func (c *CartCache) GetItem(ctx context.Context, userId, itemId int64) (*cartmodel.CartItems, bool) {
	items, ok := c.GetCart(ctx, userId)
	if !ok {
		return nil, false
	}
	for _, it := range items {
		if it.Id == itemId {
			return it, true
		}
	}
	return nil, false
}

// SetItem replaces or appends one line in the cached cart and rewrites the
// whole entry.
func (c *CartCache) SetItem(ctx context.Context, item *cartmodel.CartItems) {
	cached, _ := c.GetCart(ctx, item.UserId)
	next := make([]*cartmodel.CartItems, 0, len(cached)+1)
	for _, it := range cached {
		if it.Id != item.Id {
			next = append(next, it)
		}
	}
	next = append(next, item)
	c.cache.SetList(ctx, ShoppingCartKey(item.UserId), next, cartPolicy)
}

// RemoveItem drops one line from the cached cart. When the last line goes,
// the whole key is cleared so a stale non-empty cart can never be served.
func (c *CartCache) RemoveItem(ctx context.Context, userId, itemId int64) {
	cached, ok := c.GetCart(ctx, userId)
	if !ok {
		return
	}
	next := make([]*cartmodel.CartItems, 0, len(cached))
	for _, it := range cached {
		if it.Id != itemId {
			next = append(next, it)
		}
	}
	if len(next) == 0 {
		c.Clear(ctx, userId)
		return
	}
	c.cache.SetList(ctx, ShoppingCartKey(userId), next, cartPolicy)
}

func (c *CartCache) Clear(ctx context.Context, userId int64) {
	c.cache.Remove(ctx, ShoppingCartKey(userId))
}
