package cache

import (
	"context"
	"time"

	productmodel "autopile/app/dal/product"

	"github.com/zeromicro/go-zero/core/stores/redis"
)

var productPolicy = Policy{Absolute: 30 * time.Minute}

// ProductCache is read-through on fetch, write-through on update, and
// explicitly invalidated on delete.
type ProductCache struct {
	cache *Cache[*productmodel.Product]
}

func NewProductCache(rds *redis.Redis) *ProductCache {
	return &ProductCache{cache: New[*productmodel.Product](rds)}
}

func (c *ProductCache) Get(ctx context.Context, productId string) (*productmodel.Product, bool) {
	return c.cache.Get(ctx, ProductKey(productId))
}

func (c *ProductCache) Set(ctx context.Context, productId string, p *productmodel.Product) {
	c.cache.Set(ctx, ProductKey(productId), p, productPolicy)
}

func (c *ProductCache) Delete(ctx context.Context, productId string) {
	c.cache.Remove(ctx, ProductKey(productId))
}
