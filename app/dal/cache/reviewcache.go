package cache

import (
	"context"
	"time"

	reviewmodel "autopile/app/dal/review"

	"github.com/zeromicro/go-zero/core/stores/redis"
)

var reviewPolicy = Policy{Absolute: 30 * time.Minute}

// ReviewCache holds the per-product review list.
type ReviewCache struct {
	cache *Cache[*reviewmodel.Review]
}

func NewReviewCache(rds *redis.Redis) *ReviewCache {
	return &ReviewCache{cache: New[*reviewmodel.Review](rds)}
}

func (c *ReviewCache) GetReviews(ctx context.Context, productId string) ([]*reviewmodel.Review, bool) {
	return c.cache.GetList(ctx, ReviewsKey(productId))
}

// SetReviews refuses to cache an empty list: an empty entry is
// indistinguishable from a complete one and would mask inserts that land
// before the TTL runs out.
func (c *ReviewCache) SetReviews(ctx context.Context, productId string, reviews []*reviewmodel.Review) {
	if len(reviews) == 0 {
		return
	}
	c.cache.SetList(ctx, ReviewsKey(productId), reviews, reviewPolicy)
}

func (c *ReviewCache) DeleteReviews(ctx context.Context, productId string) {
	c.cache.Remove(ctx, ReviewsKey(productId))
}

// UpsertReview rebuilds the cached list with the given review replacing any
// entry with the same id. A cached list is an independent deserialized copy,
// so the whole entry is rewritten rather than mutated in place. On a miss
// nothing is written; the next read repopulates from the store.
func (c *ReviewCache) UpsertReview(ctx context.Context, rv *reviewmodel.Review) {
	productId := rv.ProductId.Hex()
	cached, ok := c.GetReviews(ctx, productId)
	if !ok {
		return
	}
	next := make([]*reviewmodel.Review, 0, len(cached)+1)
	for _, r := range cached {
		if r.Id != rv.Id {
			next = append(next, r)
		}
	}
	next = append(next, rv)
	c.cache.SetList(ctx, ReviewsKey(productId), next, reviewPolicy)
}

// RemoveReview drops one review from the cached list; when the list becomes
// empty the whole entry is removed instead of caching an empty list.
func (c *ReviewCache) RemoveReview(ctx context.Context, productId, reviewId string) {
	cached, ok := c.GetReviews(ctx, productId)
	if !ok {
		return
	}
	next := make([]*reviewmodel.Review, 0, len(cached))
	for _, r := range cached {
		if r.Id.Hex() != reviewId {
			next = append(next, r)
		}
	}
	if len(next) == 0 {
		c.DeleteReviews(ctx, productId)
		return
	}
	c.cache.SetList(ctx, ReviewsKey(productId), next, reviewPolicy)
}
