package cart

import (
	"context"
	"database/sql"
	stderrors "errors"
	"testing"
	"time"

	"autopile/app/api/internal/svc"
	"autopile/app/api/internal/types"
	"autopile/app/common/consts/biz"
	"autopile/app/common/consts/errno"
	"autopile/app/dal/cache"
	cartmodel "autopile/app/dal/cart"
	productmodel "autopile/app/dal/product"
	usermodel "autopile/app/dal/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/stores/redis/redistest"
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

type fakeCartItems struct {
	items  map[int64]*cartmodel.CartItems
	nextId int64
}

func (f *fakeCartItems) Insert(_ context.Context, data *cartmodel.CartItems) (sql.Result, error) {
	f.nextId++
	clone := *data
	clone.Id = f.nextId
	f.items[clone.Id] = &clone
	return fakeResult{id: clone.Id}, nil
}

func (f *fakeCartItems) FindOne(_ context.Context, id int64) (*cartmodel.CartItems, error) {
	if it, ok := f.items[id]; ok {
		clone := *it
		return &clone, nil
	}
	return nil, cartmodel.ErrNotFound
}

func (f *fakeCartItems) FindOneByUserProduct(_ context.Context, userId int64, productId string) (*cartmodel.CartItems, error) {
	for _, it := range f.items {
		if it.UserId == userId && it.ProductId == productId {
			clone := *it
			return &clone, nil
		}
	}
	return nil, cartmodel.ErrNotFound
}

func (f *fakeCartItems) ListByUserId(_ context.Context, userId int64) ([]*cartmodel.CartItems, error) {
	var out []*cartmodel.CartItems
	for _, it := range f.items {
		if it.UserId == userId {
			clone := *it
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (f *fakeCartItems) CountByUserId(_ context.Context, userId int64) (int64, error) {
	var n int64
	for _, it := range f.items {
		if it.UserId == userId {
			n++
		}
	}
	return n, nil
}

func (f *fakeCartItems) Update(_ context.Context, data *cartmodel.CartItems) error {
	if _, ok := f.items[data.Id]; !ok {
		return cartmodel.ErrNotFound
	}
	clone := *data
	f.items[data.Id] = &clone
	return nil
}

func (f *fakeCartItems) Delete(_ context.Context, id int64) error {
	delete(f.items, id)
	return nil
}

func (f *fakeCartItems) DeleteByUserId(_ context.Context, userId int64) error {
	for id, it := range f.items {
		if it.UserId == userId {
			delete(f.items, id)
		}
	}
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
	var out []*productmodel.Product
	for _, p := range f.byId {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProducts) Update(_ context.Context, data *productmodel.Product) error {
	if _, ok := f.byId[data.Id.Hex()]; !ok {
		return productmodel.ErrNotFound
	}
	clone := *data
	f.byId[data.Id.Hex()] = &clone
	return nil
}

func (f *fakeProducts) Delete(_ context.Context, id string) error {
	if _, ok := f.byId[id]; !ok {
		return productmodel.ErrNotFound
	}
	delete(f.byId, id)
	return nil
}

type cartFixture struct {
	svcCtx   *svc.ServiceContext
	users    *fakeUsers
	cart     *fakeCartItems
	products *fakeProducts
}

func newCartFixture(t *testing.T) *cartFixture {
	users := &fakeUsers{users: map[int64]*usermodel.Users{
		1: {Id: 1, Username: "alice", Email: "alice@example.com", Role: biz.RoleUser, CreatedAt: time.Now()},
	}}
	cartStore := &fakeCartItems{items: map[int64]*cartmodel.CartItems{}}
	products := &fakeProducts{byId: map[string]*productmodel.Product{}}

	return &cartFixture{
		svcCtx: &svc.ServiceContext{
			UserModel:    users,
			CartModel:    cartStore,
			ProductModel: products,
			CartCache:    cache.NewCartCache(redistest.CreateRedis(t)),
		},
		users:    users,
		cart:     cartStore,
		products: products,
	}
}

func (f *cartFixture) addProduct(stock int64) string {
	p := &productmodel.Product{
		Id:            primitive.NewObjectID(),
		Name:          "widget",
		PriceCents:    1999,
		StockQuantity: stock,
		IsInStock:     stock > 0,
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

func TestAddCartItemCreatesLine(t *testing.T) {
	f := newCartFixture(t)
	productId := f.addProduct(10)

	l := NewAddCartItemLogic(userCtx(1), f.svcCtx)
	resp, err := l.AddCartItem(&types.AddCartItemRequest{ProductId: productId, Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.Quantity)
	assert.Equal(t, productId, resp.ProductId)

	stored, err := f.cart.FindOne(context.Background(), resp.Id)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stored.Quantity)
}

func TestAddCartItemMergesQuantity(t *testing.T) {
	f := newCartFixture(t)
	productId := f.addProduct(10)
	ctx := userCtx(1)

	_, err := NewAddCartItemLogic(ctx, f.svcCtx).AddCartItem(&types.AddCartItemRequest{ProductId: productId, Quantity: 2})
	require.NoError(t, err)
	resp, err := NewAddCartItemLogic(ctx, f.svcCtx).AddCartItem(&types.AddCartItemRequest{ProductId: productId, Quantity: 3})
	require.NoError(t, err)

	assert.Equal(t, int64(5), resp.Quantity)
	n, _ := f.cart.CountByUserId(context.Background(), 1)
	assert.Equal(t, int64(1), n, "repeated adds must merge into one line")
}

func TestAddCartItemMergeToZeroRemovesLine(t *testing.T) {
	f := newCartFixture(t)
	productId := f.addProduct(10)
	ctx := userCtx(1)

	_, err := NewAddCartItemLogic(ctx, f.svcCtx).AddCartItem(&types.AddCartItemRequest{ProductId: productId, Quantity: 2})
	require.NoError(t, err)
	_, err = NewAddCartItemLogic(ctx, f.svcCtx).AddCartItem(&types.AddCartItemRequest{ProductId: productId, Quantity: -2})
	require.NoError(t, err)

	n, _ := f.cart.CountByUserId(context.Background(), 1)
	assert.Equal(t, int64(0), n)

	// an empty cart must not linger in the cache
	_, ok := f.svcCtx.CartCache.GetCart(context.Background(), 1)
	assert.False(t, ok)
}

func TestAddCartItemNonPositiveNewLineRejected(t *testing.T) {
	f := newCartFixture(t)
	productId := f.addProduct(10)

	_, err := NewAddCartItemLogic(userCtx(1), f.svcCtx).AddCartItem(&types.AddCartItemRequest{ProductId: productId, Quantity: 0})
	require.Error(t, err)
	assert.Equal(t, errno.InvalidParam, codeOf(t, err))
}

func TestAddCartItemUnknownProduct(t *testing.T) {
	f := newCartFixture(t)

	_, err := NewAddCartItemLogic(userCtx(1), f.svcCtx).AddCartItem(&types.AddCartItemRequest{
		ProductId: primitive.NewObjectID().Hex(), Quantity: 1,
	})
	require.Error(t, err)
	assert.Equal(t, errno.ProductNotFound, codeOf(t, err))
}

func TestAddCartItemMalformedProductId(t *testing.T) {
	f := newCartFixture(t)

	_, err := NewAddCartItemLogic(userCtx(1), f.svcCtx).AddCartItem(&types.AddCartItemRequest{ProductId: "not-an-oid", Quantity: 1})
	require.Error(t, err)
	assert.Equal(t, errno.InvalidParam, codeOf(t, err))
}

func TestGetCartItemOwnershipEnforced(t *testing.T) {
	f := newCartFixture(t)
	f.users.users[2] = &usermodel.Users{Id: 2, Username: "bob", Role: biz.RoleUser}
	productId := f.addProduct(10)

	resp, err := NewAddCartItemLogic(userCtx(2), f.svcCtx).AddCartItem(&types.AddCartItemRequest{ProductId: productId, Quantity: 1})
	require.NoError(t, err)

	_, err = NewGetCartItemLogic(userCtx(1), f.svcCtx).GetCartItem(&types.CartItemPathRequest{ItemId: resp.Id})
	require.Error(t, err)
	assert.Equal(t, errno.Forbidden, codeOf(t, err))
}

func TestGetCartItemFallbackRepopulatesCache(t *testing.T) {
	f := newCartFixture(t)
	item := &cartmodel.CartItems{UserId: 1, ProductId: primitive.NewObjectID().Hex(), Quantity: 4, CreatedAt: time.Now()}
	res, err := f.cart.Insert(context.Background(), item)
	require.NoError(t, err)
	id, _ := res.LastInsertId()

	got, err := NewGetCartItemLogic(userCtx(1), f.svcCtx).GetCartItem(&types.CartItemPathRequest{ItemId: id})
	require.NoError(t, err)
	assert.Equal(t, int64(4), got.Quantity)

	cached, ok := f.svcCtx.CartCache.GetItem(context.Background(), 1, id)
	require.True(t, ok, "store fallback hit must repopulate the cache")
	assert.Equal(t, int64(4), cached.Quantity)
}

func TestGetCartItemsCacheFirst(t *testing.T) {
	f := newCartFixture(t)
	productId := f.addProduct(10)
	ctx := userCtx(1)

	_, err := NewAddCartItemLogic(ctx, f.svcCtx).AddCartItem(&types.AddCartItemRequest{ProductId: productId, Quantity: 2})
	require.NoError(t, err)

	first, err := NewGetCartItemsLogic(ctx, f.svcCtx).GetCartItems()
	require.NoError(t, err)
	require.Len(t, first.Items, 1)

	// mutate the store behind the cache's back; the cached view wins
	require.NoError(t, f.cart.DeleteByUserId(context.Background(), 1))

	second, err := NewGetCartItemsLogic(ctx, f.svcCtx).GetCartItems()
	require.NoError(t, err)
	assert.Len(t, second.Items, 1)
}

func TestUpdateCartItemOverwritesQuantity(t *testing.T) {
	f := newCartFixture(t)
	productId := f.addProduct(10)
	ctx := userCtx(1)

	resp, err := NewAddCartItemLogic(ctx, f.svcCtx).AddCartItem(&types.AddCartItemRequest{ProductId: productId, Quantity: 2})
	require.NoError(t, err)

	updated, err := NewUpdateCartItemLogic(ctx, f.svcCtx).UpdateCartItem(&types.UpdateCartItemRequest{ItemId: resp.Id, Quantity: 7})
	require.NoError(t, err)
	assert.Equal(t, int64(7), updated.Quantity, "update overwrites, it does not merge")

	stored, err := f.cart.FindOne(context.Background(), resp.Id)
	require.NoError(t, err)
	assert.Equal(t, int64(7), stored.Quantity)
}

func TestUpdateCartItemRejectsNonPositive(t *testing.T) {
	f := newCartFixture(t)
	productId := f.addProduct(10)
	ctx := userCtx(1)

	resp, err := NewAddCartItemLogic(ctx, f.svcCtx).AddCartItem(&types.AddCartItemRequest{ProductId: productId, Quantity: 2})
	require.NoError(t, err)

	_, err = NewUpdateCartItemLogic(ctx, f.svcCtx).UpdateCartItem(&types.UpdateCartItemRequest{ItemId: resp.Id, Quantity: 0})
	require.Error(t, err)
	assert.Equal(t, errno.InvalidParam, codeOf(t, err))
}

func TestDeleteCartItemLastLineClearsCache(t *testing.T) {
	f := newCartFixture(t)
	productId := f.addProduct(10)
	ctx := userCtx(1)

	resp, err := NewAddCartItemLogic(ctx, f.svcCtx).AddCartItem(&types.AddCartItemRequest{ProductId: productId, Quantity: 2})
	require.NoError(t, err)

	require.NoError(t, NewDeleteCartItemLogic(ctx, f.svcCtx).DeleteCartItem(&types.CartItemPathRequest{ItemId: resp.Id}))

	_, ok := f.svcCtx.CartCache.GetCart(context.Background(), 1)
	assert.False(t, ok)
}

func TestClearCartOnEmptyCartRejected(t *testing.T) {
	f := newCartFixture(t)

	err := NewClearCartLogic(userCtx(1), f.svcCtx).ClearCart()
	require.Error(t, err)
	assert.Equal(t, errno.CartAlreadyEmpty, codeOf(t, err))
}

func TestClearCartDeletesEverything(t *testing.T) {
	f := newCartFixture(t)
	ctx := userCtx(1)

	for i := 0; i < 3; i++ {
		productId := f.addProduct(10)
		_, err := NewAddCartItemLogic(ctx, f.svcCtx).AddCartItem(&types.AddCartItemRequest{ProductId: productId, Quantity: 1})
		require.NoError(t, err)
	}

	require.NoError(t, NewClearCartLogic(ctx, f.svcCtx).ClearCart())

	n, _ := f.cart.CountByUserId(context.Background(), 1)
	assert.Equal(t, int64(0), n)
	_, ok := f.svcCtx.CartCache.GetCart(context.Background(), 1)
	assert.False(t, ok)
}
