package order

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"testing"
	"time"

	"autopile/app/api/internal/svc"
	"autopile/app/api/internal/types"
	"autopile/app/common/consts/biz"
	"autopile/app/common/consts/errno"
	commonmq "autopile/app/common/mq"
	"autopile/app/dal/cache"
	ordermodel "autopile/app/dal/order"
	productmodel "autopile/app/dal/product"
	usermodel "autopile/app/dal/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/stores/redis/redistest"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
	xerrors "github.com/zeromicro/x/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeResult struct{ id int64 }

func (r fakeResult) LastInsertId() (int64, error) { return r.id, nil }
func (r fakeResult) RowsAffected() (int64, error) { return 1, nil }

type fakeUsers struct {
	users map[int64]*usermodel.Users
}

func (f *fakeUsers) Insert(_ context.Context, data *usermodel.Users) (sql.Result, error) {
	f.users[data.Id] = data
	return fakeResult{id: data.Id}, nil
}

func (f *fakeUsers) FindOne(_ context.Context, id int64) (*usermodel.Users, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, usermodel.ErrNotFound
}

func (f *fakeUsers) FindOneByUsername(_ context.Context, username string) (*usermodel.Users, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, usermodel.ErrNotFound
}

func (f *fakeUsers) FindOneByEmail(_ context.Context, email string) (*usermodel.Users, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, usermodel.ErrNotFound
}

func (f *fakeUsers) Update(_ context.Context, data *usermodel.Users) error {
	f.users[data.Id] = data
	return nil
}

type fakeProducts struct {
	byId map[string]*productmodel.Product
}

func (f *fakeProducts) Insert(_ context.Context, data *productmodel.Product) error {
	if data.Id.IsZero() {
		data.Id = primitive.NewObjectID()
	}
	f.byId[data.Id.Hex()] = data
	return nil
}

func (f *fakeProducts) FindOne(_ context.Context, id string) (*productmodel.Product, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, productmodel.ErrInvalidObjectId
	}
	if p, ok := f.byId[id]; ok {
		clone := *p
		return &clone, nil
	}
	return nil, productmodel.ErrNotFound
}

func (f *fakeProducts) ListByCategory(_ context.Context, _ string, _ int64) ([]*productmodel.Product, error) {
	return nil, nil
}

func (f *fakeProducts) Update(_ context.Context, data *productmodel.Product) error {
	clone := *data
	f.byId[data.Id.Hex()] = &clone
	return nil
}

func (f *fakeProducts) Delete(_ context.Context, id string) error {
	delete(f.byId, id)
	return nil
}

type fakeOrders struct {
	orders map[int64]*ordermodel.Orders
}

func (f *fakeOrders) Insert(_ context.Context, _ sqlx.Session, data *ordermodel.Orders) error {
	clone := *data
	f.orders[data.Id] = &clone
	return nil
}

func (f *fakeOrders) FindOne(_ context.Context, id int64) (*ordermodel.Orders, error) {
	if o, ok := f.orders[id]; ok {
		clone := *o
		return &clone, nil
	}
	return nil, ordermodel.ErrNotFound
}

func (f *fakeOrders) FindOneByOrderNumber(_ context.Context, orderNumber string) (*ordermodel.Orders, error) {
	for _, o := range f.orders {
		if o.OrderNumber == orderNumber {
			clone := *o
			return &clone, nil
		}
	}
	return nil, ordermodel.ErrNotFound
}

func (f *fakeOrders) ListByUserId(_ context.Context, userId int64) ([]*ordermodel.Orders, error) {
	var out []*ordermodel.Orders
	for _, o := range f.orders {
		if o.UserId == userId {
			clone := *o
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (f *fakeOrders) Update(_ context.Context, _ sqlx.Session, data *ordermodel.Orders) error {
	if _, ok := f.orders[data.Id]; !ok {
		return ordermodel.ErrNotFound
	}
	clone := *data
	f.orders[data.Id] = &clone
	return nil
}

func (f *fakeOrders) Delete(_ context.Context, _ sqlx.Session, id int64) error {
	delete(f.orders, id)
	return nil
}

type fakeOrderItems struct {
	items  map[int64]*ordermodel.OrderItems
	nextId int64
}

func (f *fakeOrderItems) Insert(_ context.Context, _ sqlx.Session, data *ordermodel.OrderItems) error {
	f.nextId++
	data.Id = f.nextId
	clone := *data
	f.items[clone.Id] = &clone
	return nil
}

func (f *fakeOrderItems) ListByOrderId(_ context.Context, orderId int64) ([]*ordermodel.OrderItems, error) {
	var out []*ordermodel.OrderItems
	for _, it := range f.items {
		if it.OrderId == orderId {
			clone := *it
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (f *fakeOrderItems) Update(_ context.Context, _ sqlx.Session, data *ordermodel.OrderItems) error {
	if _, ok := f.items[data.Id]; !ok {
		return ordermodel.ErrNotFound
	}
	clone := *data
	f.items[data.Id] = &clone
	return nil
}

func (f *fakeOrderItems) Delete(_ context.Context, _ sqlx.Session, id int64) error {
	delete(f.items, id)
	return nil
}

func (f *fakeOrderItems) DeleteByOrderId(_ context.Context, _ sqlx.Session, orderId int64) error {
	for id, it := range f.items {
		if it.OrderId == orderId {
			delete(f.items, id)
		}
	}
	return nil
}

// fakeTransactor runs the body with a nil session; the fakes ignore sessions.
type fakeTransactor struct{}

func (fakeTransactor) TransactCtx(ctx context.Context, fn func(context.Context, sqlx.Session) error) error {
	return fn(ctx, nil)
}

type fakePublisher struct {
	batches  []commonmq.StockAdjustmentBatch
	failWith error
}

func (f *fakePublisher) PublishStockAdjustment(_ context.Context, batch commonmq.StockAdjustmentBatch) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.batches = append(f.batches, batch)
	return nil
}

func (f *fakePublisher) Close() error { return nil }

type orderFixture struct {
	svcCtx    *svc.ServiceContext
	orders    *fakeOrders
	items     *fakeOrderItems
	products  *fakeProducts
	publisher *fakePublisher
}

func newOrderFixture(t *testing.T) *orderFixture {
	users := &fakeUsers{users: map[int64]*usermodel.Users{
		1: {Id: 1, Username: "alice", Email: "alice@example.com", Role: biz.RoleUser, CreatedAt: time.Now()},
	}}
	orders := &fakeOrders{orders: map[int64]*ordermodel.Orders{}}
	items := &fakeOrderItems{items: map[int64]*ordermodel.OrderItems{}}
	products := &fakeProducts{byId: map[string]*productmodel.Product{}}
	publisher := &fakePublisher{}

	return &orderFixture{
		svcCtx: &svc.ServiceContext{
			DB:             fakeTransactor{},
			UserModel:      users,
			OrderModel:     orders,
			OrderItemModel: items,
			ProductModel:   products,
			OrderCache:     cache.NewOrderCache(redistest.CreateRedis(t)),
			Inventory:      publisher,
		},
		orders:    orders,
		items:     items,
		products:  products,
		publisher: publisher,
	}
}

func (f *orderFixture) addProduct(name string, priceCents, compareCents, stock int64) string {
	p := &productmodel.Product{
		Id:                primitive.NewObjectID(),
		Name:              name,
		PriceCents:        priceCents,
		ComparePriceCents: compareCents,
		StockQuantity:     stock,
		IsInStock:         stock > 0,
	}
	f.products.byId[p.Id.Hex()] = p
	return p.Id.Hex()
}

func userCtx(userId int64) context.Context {
	ctx := context.WithValue(context.Background(), biz.USER_KEY, userId)
	return context.WithValue(ctx, biz.ROLE_KEY, biz.RoleUser)
}

func codeOf(t *testing.T, err error) int {
	t.Helper()
	var cm *xerrors.CodeMsg
	require.True(t, stderrors.As(err, &cm), "expected a coded error, got %v", err)
	return cm.Code
}

func TestCreateOrderComputesTotalsAndSnapshotsPrices(t *testing.T) {
	f := newOrderFixture(t)
	// compare price overrides the list price in the line snapshot
	widgetId := f.addProduct("widget", 1000, 1500, 10)
	gadgetId := f.addProduct("gadget", 2500, 0, 10)

	resp, err := NewCreateOrderLogic(userCtx(1), f.svcCtx).CreateOrder(&types.CreateOrderRequest{
		Items: []types.OrderItemInput{
			{ProductId: widgetId, Quantity: 2},
			{ProductId: gadgetId, Quantity: 1},
		},
		DeliveryFeeCents: 500,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(2*1500+2500), resp.SubtotalCents)
	assert.Equal(t, int64(2*1500+2500+500), resp.TotalCents)
	assert.Equal(t, ordermodel.StatusPending, resp.Status)
	assert.Equal(t, ordermodel.PaymentPending, resp.PaymentStatus)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "widget", resp.Items[0].ProductName)
	assert.Equal(t, int64(1500), resp.Items[0].PriceCents)

	require.Len(t, f.publisher.batches, 1)
	batch := f.publisher.batches[0]
	assert.Equal(t, resp.Id, batch.OrderId)
	require.Len(t, batch.Lines, 2)
	assert.Equal(t, int64(2), batch.Lines[0].Quantity)
}

func TestCreateOrderInsufficientStockMessage(t *testing.T) {
	f := newOrderFixture(t)
	widgetId := f.addProduct("widget", 1000, 0, 2)

	_, err := NewCreateOrderLogic(userCtx(1), f.svcCtx).CreateOrder(&types.CreateOrderRequest{
		Items: []types.OrderItemInput{{ProductId: widgetId, Quantity: 5}},
	})
	require.Error(t, err)
	assert.Equal(t, errno.InsufficientStock, codeOf(t, err))
	assert.Contains(t, err.Error(), "Insufficient stock for product widget. Available: 2, Requested: 5")
	assert.Empty(t, f.orders.orders, "no order may persist after a failed validation")
	assert.Empty(t, f.publisher.batches)
}

func TestCreateOrderUnknownProductRejected(t *testing.T) {
	f := newOrderFixture(t)

	_, err := NewCreateOrderLogic(userCtx(1), f.svcCtx).CreateOrder(&types.CreateOrderRequest{
		Items: []types.OrderItemInput{{ProductId: primitive.NewObjectID().Hex(), Quantity: 1}},
	})
	require.Error(t, err)
	assert.Equal(t, errno.InvalidParam, codeOf(t, err))
}

func TestCreateOrderEmptyItemsRejected(t *testing.T) {
	f := newOrderFixture(t)

	_, err := NewCreateOrderLogic(userCtx(1), f.svcCtx).CreateOrder(&types.CreateOrderRequest{})
	require.Error(t, err)
	assert.Equal(t, errno.InvalidParam, codeOf(t, err))
}

func TestCreateOrderSurvivesPublishFailure(t *testing.T) {
	f := newOrderFixture(t)
	widgetId := f.addProduct("widget", 1000, 0, 10)
	f.publisher.failWith = fmt.Errorf("broker unreachable")

	resp, err := NewCreateOrderLogic(userCtx(1), f.svcCtx).CreateOrder(&types.CreateOrderRequest{
		Items: []types.OrderItemInput{{ProductId: widgetId, Quantity: 1}},
	})
	require.NoError(t, err, "a failed enqueue must not fail the committed order")
	_, ok := f.orders.orders[resp.Id]
	assert.True(t, ok)
}

func TestUpdateOrderPartialPatchKeepsUnmentionedLines(t *testing.T) {
	f := newOrderFixture(t)
	widgetId := f.addProduct("widget", 1000, 0, 10)
	gadgetId := f.addProduct("gadget", 2000, 0, 10)
	ctx := userCtx(1)

	created, err := NewCreateOrderLogic(ctx, f.svcCtx).CreateOrder(&types.CreateOrderRequest{
		Items: []types.OrderItemInput{
			{ProductId: widgetId, Quantity: 2},
			{ProductId: gadgetId, Quantity: 1},
		},
	})
	require.NoError(t, err)

	updated, err := NewUpdateOrderLogic(ctx, f.svcCtx).UpdateOrder(&types.UpdateOrderRequest{
		OrderId: created.Id,
		Items:   []types.OrderItemInput{{ProductId: widgetId, Quantity: 3}},
	})
	require.NoError(t, err)

	require.Len(t, updated.Items, 2, "unmentioned lines stay")
	assert.Equal(t, int64(3*1000+2000), updated.SubtotalCents)
}

func TestUpdateOrderLinePatchedToZeroIsRemoved(t *testing.T) {
	f := newOrderFixture(t)
	widgetId := f.addProduct("widget", 1000, 0, 10)
	gadgetId := f.addProduct("gadget", 2000, 0, 10)
	ctx := userCtx(1)

	created, err := NewCreateOrderLogic(ctx, f.svcCtx).CreateOrder(&types.CreateOrderRequest{
		Items: []types.OrderItemInput{
			{ProductId: widgetId, Quantity: 2},
			{ProductId: gadgetId, Quantity: 1},
		},
	})
	require.NoError(t, err)

	updated, err := NewUpdateOrderLogic(ctx, f.svcCtx).UpdateOrder(&types.UpdateOrderRequest{
		OrderId: created.Id,
		Items:   []types.OrderItemInput{{ProductId: widgetId, Quantity: 0}},
	})
	require.NoError(t, err)

	require.Len(t, updated.Items, 1)
	assert.Equal(t, gadgetId, updated.Items[0].ProductId)
	assert.Equal(t, int64(2000), updated.SubtotalCents)

	stored, err := f.items.ListByOrderId(context.Background(), created.Id)
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestUpdateOrderAddsNewLine(t *testing.T) {
	f := newOrderFixture(t)
	widgetId := f.addProduct("widget", 1000, 0, 10)
	gadgetId := f.addProduct("gadget", 2000, 0, 10)
	ctx := userCtx(1)

	created, err := NewCreateOrderLogic(ctx, f.svcCtx).CreateOrder(&types.CreateOrderRequest{
		Items: []types.OrderItemInput{{ProductId: widgetId, Quantity: 1}},
	})
	require.NoError(t, err)

	updated, err := NewUpdateOrderLogic(ctx, f.svcCtx).UpdateOrder(&types.UpdateOrderRequest{
		OrderId: created.Id,
		Items:   []types.OrderItemInput{{ProductId: gadgetId, Quantity: 2}},
	})
	require.NoError(t, err)

	require.Len(t, updated.Items, 2)
	assert.Equal(t, int64(1000+2*2000), updated.SubtotalCents)
}

func TestUpdateOrderCompletedIsImmutable(t *testing.T) {
	f := newOrderFixture(t)
	widgetId := f.addProduct("widget", 1000, 0, 10)
	ctx := userCtx(1)

	created, err := NewCreateOrderLogic(ctx, f.svcCtx).CreateOrder(&types.CreateOrderRequest{
		Items: []types.OrderItemInput{{ProductId: widgetId, Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = NewCompleteOrderLogic(ctx, f.svcCtx).CompleteOrder(&types.OrderPathRequest{OrderId: created.Id})
	require.NoError(t, err)

	_, err = NewUpdateOrderLogic(ctx, f.svcCtx).UpdateOrder(&types.UpdateOrderRequest{
		OrderId:       created.Id,
		PaymentMethod: "card",
	})
	require.Error(t, err)
	assert.Equal(t, errno.OrderCompleted, codeOf(t, err))
}

func TestDeleteOrderCompletedIsRejected(t *testing.T) {
	f := newOrderFixture(t)
	widgetId := f.addProduct("widget", 1000, 0, 10)
	ctx := userCtx(1)

	created, err := NewCreateOrderLogic(ctx, f.svcCtx).CreateOrder(&types.CreateOrderRequest{
		Items: []types.OrderItemInput{{ProductId: widgetId, Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = NewCompleteOrderLogic(ctx, f.svcCtx).CompleteOrder(&types.OrderPathRequest{OrderId: created.Id})
	require.NoError(t, err)

	err = NewDeleteOrderLogic(ctx, f.svcCtx).DeleteOrder(&types.OrderPathRequest{OrderId: created.Id})
	require.Error(t, err)
	assert.Equal(t, errno.OrderCompleted, codeOf(t, err))
}

func TestDeleteOrderRemovesHeaderAndLines(t *testing.T) {
	f := newOrderFixture(t)
	widgetId := f.addProduct("widget", 1000, 0, 10)
	ctx := userCtx(1)

	created, err := NewCreateOrderLogic(ctx, f.svcCtx).CreateOrder(&types.CreateOrderRequest{
		Items: []types.OrderItemInput{{ProductId: widgetId, Quantity: 1}},
	})
	require.NoError(t, err)

	require.NoError(t, NewDeleteOrderLogic(ctx, f.svcCtx).DeleteOrder(&types.OrderPathRequest{OrderId: created.Id}))

	assert.Empty(t, f.orders.orders)
	assert.Empty(t, f.items.items)
}

func TestCompleteOrderSetsBothStatuses(t *testing.T) {
	f := newOrderFixture(t)
	widgetId := f.addProduct("widget", 1000, 0, 10)
	ctx := userCtx(1)

	created, err := NewCreateOrderLogic(ctx, f.svcCtx).CreateOrder(&types.CreateOrderRequest{
		Items: []types.OrderItemInput{{ProductId: widgetId, Quantity: 1}},
	})
	require.NoError(t, err)

	resp, err := NewCompleteOrderLogic(ctx, f.svcCtx).CompleteOrder(&types.OrderPathRequest{OrderId: created.Id})
	require.NoError(t, err)
	assert.Equal(t, ordermodel.StatusSuccess, resp.Status)
	assert.Equal(t, ordermodel.PaymentCompleted, resp.PaymentStatus)
}

func TestGetOrderOwnershipEnforced(t *testing.T) {
	f := newOrderFixture(t)
	f.svcCtx.UserModel.(*fakeUsers).users[2] = &usermodel.Users{Id: 2, Username: "bob", Role: biz.RoleUser}
	widgetId := f.addProduct("widget", 1000, 0, 10)

	created, err := NewCreateOrderLogic(userCtx(2), f.svcCtx).CreateOrder(&types.CreateOrderRequest{
		Items: []types.OrderItemInput{{ProductId: widgetId, Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = NewGetOrderLogic(userCtx(1), f.svcCtx).GetOrder(&types.OrderPathRequest{OrderId: created.Id})
	require.Error(t, err)
	assert.Equal(t, errno.Forbidden, codeOf(t, err))
}

func TestListOrdersPopulatesCache(t *testing.T) {
	f := newOrderFixture(t)
	widgetId := f.addProduct("widget", 1000, 0, 10)
	ctx := userCtx(1)

	created, err := NewCreateOrderLogic(ctx, f.svcCtx).CreateOrder(&types.CreateOrderRequest{
		Items: []types.OrderItemInput{{ProductId: widgetId, Quantity: 1}},
	})
	require.NoError(t, err)

	list, err := NewListOrdersLogic(ctx, f.svcCtx).ListOrders()
	require.NoError(t, err)
	require.Len(t, list.Orders, 1)
	assert.Equal(t, created.Id, list.Orders[0].Id)

	cached, ok := f.svcCtx.OrderCache.GetOrders(context.Background(), 1)
	require.True(t, ok, "a non-empty list read must populate the cache")
	assert.Len(t, cached, 1)
}
