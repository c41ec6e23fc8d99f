// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package review

import (
	"context"

	"autopile/app/api/internal/logic/helper"
	"autopile/app/api/internal/svc"
	"autopile/app/api/internal/types"
	"autopile/app/common/consts/errno"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ListReviewsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewListReviewsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListReviewsLogic {
	return &ListReviewsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// ListReviews serves the per-product review list cache-first. Empty lists are
// returned but never cached, so the first review shows up as soon as it
// lands.
func (l *ListReviewsLogic) ListReviews(req *types.ListReviewsRequest) (*types.ReviewListResponse, error) {
	productOid, err := primitive.ObjectIDFromHex(req.ProductId)
	if err != nil {
		return nil, errors.New(int(errno.InvalidParam), "invalid product id format")
	}

	reviews, ok := l.svcCtx.ReviewCache.GetReviews(l.ctx, req.ProductId)
	if !ok {
		reviews, err = l.svcCtx.ReviewModel.ListByProductId(l.ctx, productOid)
		if err != nil {
			l.Errorf("list reviews product=%s: %v", req.ProductId, err)
			return nil, helper.BizError(err, "failed to list reviews")
		}
		l.svcCtx.ReviewCache.SetReviews(l.ctx, req.ProductId, reviews)
	}

	resp := &types.ReviewListResponse{Reviews: make([]types.Review, 0, len(reviews))}
	for _, rv := range reviews {
		resp.Reviews = append(resp.Reviews, helper.ToReview(rv))
	}
	return resp, nil
}
