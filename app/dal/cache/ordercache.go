package cache

import (
	"context"
	"time"

	ordermodel "autopile/app/dal/order"

	"github.com/zeromicro/go-zero/core/stores/redis"
)

var orderPolicy = Policy{Absolute: 3 * 24 * time.Hour}

// OrderCache is a best-effort per-user order-list cache.
type OrderCache struct {
	cache *Cache[*ordermodel.OrderWithItems]
}

func NewOrderCache(rds *redis.Redis) *OrderCache {
	return &OrderCache{cache: New[*ordermodel.OrderWithItems](rds)}
}

func (c *OrderCache) GetOrders(ctx context.Context, userId int64) ([]*ordermodel.OrderWithItems, bool) {
	return c.cache.GetList(ctx, OrderKey(userId))
}

func (c *OrderCache) SetOrders(ctx context.Context, userId int64, orders []*ordermodel.OrderWithItems) {
	if len(orders) == 0 {
		return
	}
	c.cache.SetList(ctx, OrderKey(userId), orders, orderPolicy)
}

// UpsertOrder replaces the matching order in the cached list by rebuilding
// the whole list (remove old, insert new) and overwriting the entry. A
// fetched list is a detached copy; mutating it in place would update nothing.
func (c *OrderCache) UpsertOrder(ctx context.Context, userId int64, ov *ordermodel.OrderWithItems) {
	cached, ok := c.GetOrders(ctx, userId)
	if !ok {
		return
	}
	next := make([]*ordermodel.OrderWithItems, 0, len(cached)+1)
	next = append(next, ov)
	for _, o := range cached {
		if o.Order.Id != ov.Order.Id {
			next = append(next, o)
		}
	}
	c.cache.SetList(ctx, OrderKey(userId), next, orderPolicy)
}

// Invalidate drops the user's order list; the next list read rebuilds it
// from the store.
func (c *OrderCache) Invalidate(ctx context.Context, userId int64) {
	c.cache.Remove(ctx, OrderKey(userId))
}
