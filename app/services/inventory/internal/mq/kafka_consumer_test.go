package mq

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"testing"

	commonmq "autopile/app/common/mq"
	productmodel "autopile/app/dal/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

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

func newProduct(stock int64) (*fakeProducts, string) {
	p := &productmodel.Product{
		Id:            primitive.NewObjectID(),
		Name:          "widget",
		PriceCents:    1000,
		StockQuantity: stock,
		IsInStock:     stock > 0,
	}
	return &fakeProducts{byId: map[string]*productmodel.Product{p.Id.Hex(): p}}, p.Id.Hex()
}

func batchFor(productId string, qty int64) commonmq.StockAdjustmentBatch {
	return commonmq.StockAdjustmentBatch{
		OrderId:     1,
		OrderNumber: "ORD-TEST",
		Lines:       []commonmq.StockAdjustmentLine{{ProductId: productId, ProductName: "widget", Quantity: qty}},
	}
}

func TestHandleBatchDecrementsStock(t *testing.T) {
	products, productId := newProduct(10)

	require.NoError(t, HandleBatch(context.Background(), products, batchFor(productId, 4)))

	p, err := products.FindOne(context.Background(), productId)
	require.NoError(t, err)
	assert.Equal(t, int64(6), p.StockQuantity)
	assert.True(t, p.IsInStock)
}

func TestHandleBatchRedeliveryReDecrements(t *testing.T) {
	// delivery is at-least-once and processing is not idempotent: a
	// redelivered batch decrements again while the guard allows it
	products, productId := newProduct(10)
	batch := batchFor(productId, 4)

	require.NoError(t, HandleBatch(context.Background(), products, batch))
	require.NoError(t, HandleBatch(context.Background(), products, batch))

	p, err := products.FindOne(context.Background(), productId)
	require.NoError(t, err)
	assert.Equal(t, int64(2), p.StockQuantity)
}

func TestHandleBatchGuardStopsAtOrBelowRequested(t *testing.T) {
	// stock equal to the requested quantity is left untouched
	products, productId := newProduct(4)

	require.NoError(t, HandleBatch(context.Background(), products, batchFor(productId, 4)))

	p, err := products.FindOne(context.Background(), productId)
	require.NoError(t, err)
	assert.Equal(t, int64(4), p.StockQuantity)
}

func TestHandleBatchSkipsMissingAndMalformedProducts(t *testing.T) {
	products, productId := newProduct(10)
	batch := commonmq.StockAdjustmentBatch{
		OrderId:     2,
		OrderNumber: "ORD-TEST",
		Lines: []commonmq.StockAdjustmentLine{
			{ProductId: "not-an-oid", Quantity: 1},
			{ProductId: primitive.NewObjectID().Hex(), Quantity: 1},
			{ProductId: productId, Quantity: 3},
		},
	}

	require.NoError(t, HandleBatch(context.Background(), products, batch))

	p, err := products.FindOne(context.Background(), productId)
	require.NoError(t, err)
	assert.Equal(t, int64(7), p.StockQuantity, "valid lines still process after skips")
}

func TestHandleBatchStockDepletionClearsInStock(t *testing.T) {
	products, productId := newProduct(5)

	require.NoError(t, HandleBatch(context.Background(), products, batchFor(productId, 4)))

	p, err := products.FindOne(context.Background(), productId)
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.StockQuantity)
	assert.True(t, p.IsInStock)
}

func TestDecodeBatchRoundtrip(t *testing.T) {
	raw, err := json.Marshal(batchFor(primitive.NewObjectID().Hex(), 2))
	require.NoError(t, err)
	encoded := base64.StdEncoding.EncodeToString(raw)

	batch, err := decodeBatch([]byte(encoded))
	require.NoError(t, err)
	assert.Equal(t, int64(1), batch.OrderId)
	require.Len(t, batch.Lines, 1)
}

func TestDecodeBatchRejectsGarbage(t *testing.T) {
	_, err := decodeBatch([]byte("%%%not-base64%%%"))
	assert.Error(t, err)
}
