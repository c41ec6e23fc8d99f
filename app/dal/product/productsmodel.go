package product

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/stores/mon"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

var _ ProductsModel = (*defaultProductsModel)(nil)

type (
	// ProductsModel owns the catalog documents. Stock is mutated both by
	// admin updates and by the async reconciler; IsInStock is recomputed on
	// those paths only, so it can briefly lag StockQuantity.
	ProductsModel interface {
		Insert(ctx context.Context, data *Product) error
		FindOne(ctx context.Context, id string) (*Product, error)
		ListByCategory(ctx context.Context, category string, limit int64) ([]*Product, error)
		Update(ctx context.Context, data *Product) error
		Delete(ctx context.Context, id string) error
	}

	defaultProductsModel struct {
		model *mon.Model
	}

	Product struct {
		Id                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
		Name              string             `bson:"name" json:"name"`
		Description       string             `bson:"description" json:"description"`
		Sku               string             `bson:"sku" json:"sku"`
		PriceCents        int64              `bson:"price_cents" json:"priceCents"`
		ComparePriceCents int64              `bson:"compare_price_cents,omitempty" json:"comparePriceCents,omitempty"`
		StockQuantity     int64              `bson:"stock_quantity" json:"stockQuantity"`
		IsInStock         bool               `bson:"is_in_stock" json:"isInStock"`
		Ribbon            string             `bson:"ribbon,omitempty" json:"ribbon,omitempty"`
		Category          string             `bson:"category,omitempty" json:"category,omitempty"`
		Media             []ProductMedia     `bson:"media,omitempty" json:"media,omitempty"`
		CreatedAt         time.Time          `bson:"created_at" json:"createdAt"`
		UpdatedAt         time.Time          `bson:"updated_at" json:"updatedAt"`
	}

	ProductMedia struct {
		Url      string `bson:"url" json:"url"`
		Type     string `bson:"type" json:"type"`
		Alt      string `bson:"alt,omitempty" json:"alt,omitempty"`
		Position int32  `bson:"position" json:"position"`
	}
)

// NewProductsModel returns a model for the products collection.
func NewProductsModel(uri, db string) ProductsModel {
	return &defaultProductsModel{
		model: mon.MustNewModel(uri, db, "products"),
	}
}

// EffectivePriceCents is the price snapshotted into order lines: a positive
// compare price overrides the list price.
func (p *Product) EffectivePriceCents() int64 {
	if p.ComparePriceCents > 0 {
		return p.ComparePriceCents
	}
	return p.PriceCents
}

func (m *defaultProductsModel) Insert(ctx context.Context, data *Product) error {
	if data.Id.IsZero() {
		data.Id = primitive.NewObjectID()
	}
	now := time.Now()
	if data.CreatedAt.IsZero() {
		data.CreatedAt = now
	}
	data.UpdatedAt = now
	data.IsInStock = data.StockQuantity > 0
	_, err := m.model.InsertOne(ctx, data)
	return err
}

func (m *defaultProductsModel) FindOne(ctx context.Context, id string) (*Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidObjectId
	}
	var resp Product
	err = m.model.FindOne(ctx, &resp, bson.M{"_id": oid})
	switch err {
	case nil:
		return &resp, nil
	case mon.ErrNotFound:
		return nil, ErrNotFound
	default:
		return nil, err
	}
}

func (m *defaultProductsModel) ListByCategory(ctx context.Context, category string, limit int64) ([]*Product, error) {
	if limit <= 0 {
		limit = 50
	}
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	var resp []*Product
	opts := options.Find().SetSort(bson.M{"created_at": -1}).SetLimit(limit)
	if err := m.model.Find(ctx, &resp, filter, opts); err != nil {
		return nil, err
	}
	return resp, nil
}

func (m *defaultProductsModel) Update(ctx context.Context, data *Product) error {
	data.UpdatedAt = time.Now()
	res, err := m.model.ReplaceOne(ctx, bson.M{"_id": data.Id}, data)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *defaultProductsModel) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidObjectId
	}
	n, err := m.model.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
