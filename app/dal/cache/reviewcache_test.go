package cache

import (
	"context"
	"testing"

	reviewmodel "autopile/app/dal/review"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/stores/redis/redistest"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestReviewCacheNeverCachesEmptyList(t *testing.T) {
	c := NewReviewCache(redistest.CreateRedis(t))
	ctx := context.Background()

	productId := primitive.NewObjectID().Hex()
	c.SetReviews(ctx, productId, nil)

	_, ok := c.GetReviews(ctx, productId)
	assert.False(t, ok)
}

func TestReviewCacheUpsertOnMissIsNoop(t *testing.T) {
	c := NewReviewCache(redistest.CreateRedis(t))
	ctx := context.Background()

	rv := &reviewmodel.Review{Id: primitive.NewObjectID(), ProductId: primitive.NewObjectID(), UserId: 1, Rating: 5, Content: "great"}
	c.UpsertReview(ctx, rv)

	_, ok := c.GetReviews(ctx, rv.ProductId.Hex())
	assert.False(t, ok)
}

func TestReviewCacheUpsertReplacesById(t *testing.T) {
	c := NewReviewCache(redistest.CreateRedis(t))
	ctx := context.Background()

	productId := primitive.NewObjectID()
	rv := &reviewmodel.Review{Id: primitive.NewObjectID(), ProductId: productId, UserId: 1, Rating: 3, Content: "ok"}
	c.SetReviews(ctx, productId.Hex(), []*reviewmodel.Review{rv})

	updated := *rv
	updated.Rating = 5
	c.UpsertReview(ctx, &updated)

	got, ok := c.GetReviews(ctx, productId.Hex())
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, int32(5), got[0].Rating)
}

func TestReviewCacheRemoveLastReviewDeletesEntry(t *testing.T) {
	c := NewReviewCache(redistest.CreateRedis(t))
	ctx := context.Background()

	productId := primitive.NewObjectID()
	rv := &reviewmodel.Review{Id: primitive.NewObjectID(), ProductId: productId, UserId: 1, Rating: 4, Content: "fine"}
	c.SetReviews(ctx, productId.Hex(), []*reviewmodel.Review{rv})

	c.RemoveReview(ctx, productId.Hex(), rv.Id.Hex())

	// empty list must not linger as a cached entry
	_, ok := c.GetReviews(ctx, productId.Hex())
	assert.False(t, ok)
}
