package cache

import (
	"context"
	"testing"

	ordermodel "autopile/app/dal/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/stores/redis/redistest"
)

func orderView(id, userId int64) *ordermodel.OrderWithItems {
	return &ordermodel.OrderWithItems{
		Order: ordermodel.Orders{Id: id, UserId: userId, OrderNumber: "ORD-TEST", Status: ordermodel.StatusPending},
	}
}

func TestOrderCacheSetOrdersSkipsEmpty(t *testing.T) {
	c := NewOrderCache(redistest.CreateRedis(t))
	ctx := context.Background()

	c.SetOrders(ctx, 1, nil)

	_, ok := c.GetOrders(ctx, 1)
	assert.False(t, ok)
}

func TestOrderCacheUpsertReplacesAndFronts(t *testing.T) {
	c := NewOrderCache(redistest.CreateRedis(t))
	ctx := context.Background()

	c.SetOrders(ctx, 1, []*ordermodel.OrderWithItems{orderView(10, 1), orderView(11, 1)})

	updated := orderView(11, 1)
	updated.Order.Status = ordermodel.StatusSuccess
	c.UpsertOrder(ctx, 1, updated)

	got, ok := c.GetOrders(ctx, 1)
	require.True(t, ok)
	require.Len(t, got, 2)
	assert.Equal(t, int64(11), got[0].Order.Id)
	assert.Equal(t, ordermodel.StatusSuccess, got[0].Order.Status)
}

func TestOrderCacheUpsertOnMissIsNoop(t *testing.T) {
	c := NewOrderCache(redistest.CreateRedis(t))
	ctx := context.Background()

	c.UpsertOrder(ctx, 2, orderView(20, 2))

	_, ok := c.GetOrders(ctx, 2)
	assert.False(t, ok)
}

func TestOrderCacheInvalidate(t *testing.T) {
	c := NewOrderCache(redistest.CreateRedis(t))
	ctx := context.Background()

	c.SetOrders(ctx, 3, []*ordermodel.OrderWithItems{orderView(30, 3)})
	c.Invalidate(ctx, 3)

	_, ok := c.GetOrders(ctx, 3)
	assert.False(t, ok)
}
