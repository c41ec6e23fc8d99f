package review

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/stores/mon"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

var _ ReviewsModel = (*defaultReviewsModel)(nil)

type (
	ReviewsModel interface {
		Insert(ctx context.Context, data *Review) error
		FindOne(ctx context.Context, id string) (*Review, error)
		ListByProductId(ctx context.Context, productId primitive.ObjectID) ([]*Review, error)
		Update(ctx context.Context, data *Review) error
		Delete(ctx context.Context, id string) error
	}

	defaultReviewsModel struct {
		model *mon.Model
	}

	Review struct {
		Id        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
		ProductId primitive.ObjectID `bson:"product_id" json:"productId"`
		UserId    int64              `bson:"user_id" json:"userId"`
		Rating    int32              `bson:"rating" json:"rating"`
		Title     string             `bson:"title,omitempty" json:"title,omitempty"`
		Content   string             `bson:"content" json:"content"`
		Images    []string           `bson:"images,omitempty" json:"images,omitempty"`
		CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
		UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
	}
)

// NewReviewsModel returns a model for the reviews collection.
func NewReviewsModel(uri, db string) ReviewsModel {
	return &defaultReviewsModel{
		model: mon.MustNewModel(uri, db, "reviews"),
	}
}

func (m *defaultReviewsModel) Insert(ctx context.Context, data *Review) error {
	if data.Id.IsZero() {
		data.Id = primitive.NewObjectID()
	}
	now := time.Now()
	if data.CreatedAt.IsZero() {
		data.CreatedAt = now
	}
	data.UpdatedAt = now
	_, err := m.model.InsertOne(ctx, data)
	return err
}

func (m *defaultReviewsModel) FindOne(ctx context.Context, id string) (*Review, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidObjectId
	}
	var resp Review
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

func (m *defaultReviewsModel) ListByProductId(ctx context.Context, productId primitive.ObjectID) ([]*Review, error) {
	var resp []*Review
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	if err := m.model.Find(ctx, &resp, bson.M{"product_id": productId}, opts); err != nil {
		return nil, err
	}
	return resp, nil
}

func (m *defaultReviewsModel) Update(ctx context.Context, data *Review) error {
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

func (m *defaultReviewsModel) Delete(ctx context.Context, id string) error {
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
