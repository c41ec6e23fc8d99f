// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package review

import (
	"context"
	"fmt"

	"autopile/app/api/internal/logic/helper"
	"autopile/app/api/internal/svc"
	"autopile/app/api/internal/types"
	"autopile/app/common/consts/errno"
	"autopile/app/common/util"
	productmodel "autopile/app/dal/product"
	reviewmodel "autopile/app/dal/review"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateReviewLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewCreateReviewLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CreateReviewLogic {
	return &CreateReviewLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *CreateReviewLogic) CreateReview(req *types.CreateReviewRequest) (*types.Review, error) {
	userId, err := util.UserIdFromCtx(l.ctx)
	if err != nil {
		return nil, err
	}

	if req.Rating < 1 || req.Rating > 5 {
		return nil, errors.New(int(errno.InvalidParam), "rating must be between 1 and 5")
	}
	if req.Content == "" {
		return nil, errors.New(int(errno.InvalidParam), "review content is required")
	}

	productOid, err := primitive.ObjectIDFromHex(req.ProductId)
	if err != nil {
		return nil, errors.New(int(errno.InvalidParam), "invalid product id format")
	}
	if _, err := l.svcCtx.ProductModel.FindOne(l.ctx, req.ProductId); err != nil {
		if err == productmodel.ErrNotFound {
			return nil, errors.New(int(errno.ProductNotFound), fmt.Sprintf("product %s not found", req.ProductId))
		}
		l.Errorf("load product %s: %v", req.ProductId, err)
		return nil, helper.BizError(err, "failed to load product")
	}

	rv := &reviewmodel.Review{
		ProductId: productOid,
		UserId:    userId,
		Rating:    req.Rating,
		Title:     req.Title,
		Content:   req.Content,
		Images:    req.Images,
	}
	if err := l.svcCtx.ReviewModel.Insert(l.ctx, rv); err != nil {
		l.Errorf("insert review product=%s user=%d: %v", req.ProductId, userId, err)
		return nil, helper.BizError(err, "failed to create review")
	}

	l.svcCtx.ReviewCache.UpsertReview(l.ctx, rv)

	resp := helper.ToReview(rv)
	return &resp, nil
}
