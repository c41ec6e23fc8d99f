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
	reviewmodel "autopile/app/dal/review"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type UpdateReviewLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewUpdateReviewLogic(ctx context.Context, svcCtx *svc.ServiceContext) *UpdateReviewLogic {
	return &UpdateReviewLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *UpdateReviewLogic) UpdateReview(req *types.UpdateReviewRequest) (*types.Review, error) {
	userId, err := util.UserIdFromCtx(l.ctx)
	if err != nil {
		return nil, err
	}

	rv, err := l.svcCtx.ReviewModel.FindOne(l.ctx, req.ReviewId)
	if err != nil {
		switch err {
		case reviewmodel.ErrInvalidObjectId:
			return nil, errors.New(int(errno.InvalidParam), "invalid review id format")
		case reviewmodel.ErrNotFound:
			return nil, errors.New(int(errno.ReviewNotFound), fmt.Sprintf("review %s not found", req.ReviewId))
		default:
			l.Errorf("load review %s: %v", req.ReviewId, err)
			return nil, helper.BizError(err, "failed to load review")
		}
	}
	if rv.UserId != userId {
		return nil, errors.New(int(errno.Forbidden), "review belongs to another user")
	}

	if req.Rating != 0 {
		if req.Rating < 1 || req.Rating > 5 {
			return nil, errors.New(int(errno.InvalidParam), "rating must be between 1 and 5")
		}
		rv.Rating = req.Rating
	}
	if req.Title != "" {
		rv.Title = req.Title
	}
	if req.Content != "" {
		rv.Content = req.Content
	}
	if len(req.Images) > 0 {
		rv.Images = req.Images
	}

	if err := l.svcCtx.ReviewModel.Update(l.ctx, rv); err != nil {
		l.Errorf("update review %s: %v", req.ReviewId, err)
		return nil, helper.BizError(err, "failed to update review")
	}

	l.svcCtx.ReviewCache.UpsertReview(l.ctx, rv)

	resp := helper.ToReview(rv)
	return &resp, nil
}
