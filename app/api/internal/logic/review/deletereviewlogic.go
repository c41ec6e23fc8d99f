// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package review

import (
	"context"
	"fmt"

	"autopile/app/api/internal/logic/helper"
	"autopile/app/api/internal/svc"
	"autopile/app/api/internal/types"
	"autopile/app/common/consts/biz"
	"autopile/app/common/consts/errno"
	"autopile/app/common/util"
	reviewmodel "autopile/app/dal/review"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type DeleteReviewLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewDeleteReviewLogic(ctx context.Context, svcCtx *svc.ServiceContext) *DeleteReviewLogic {
	return &DeleteReviewLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// DeleteReview removes a review owned by the caller; admins can remove any.
func (l *DeleteReviewLogic) DeleteReview(req *types.ReviewPathRequest) error {
	userId, err := util.UserIdFromCtx(l.ctx)
	if err != nil {
		return err
	}

	rv, err := l.svcCtx.ReviewModel.FindOne(l.ctx, req.ReviewId)
	if err != nil {
		switch err {
		case reviewmodel.ErrInvalidObjectId:
			return errors.New(int(errno.InvalidParam), "invalid review id format")
		case reviewmodel.ErrNotFound:
			return errors.New(int(errno.ReviewNotFound), fmt.Sprintf("review %s not found", req.ReviewId))
		default:
			l.Errorf("load review %s: %v", req.ReviewId, err)
			return helper.BizError(err, "failed to load review")
		}
	}
	if rv.UserId != userId && util.RoleFromCtx(l.ctx) != biz.RoleAdmin {
		return errors.New(int(errno.Forbidden), "review belongs to another user")
	}

	if err := l.svcCtx.ReviewModel.Delete(l.ctx, req.ReviewId); err != nil {
		l.Errorf("delete review %s: %v", req.ReviewId, err)
		return helper.BizError(err, "failed to delete review")
	}

	l.svcCtx.ReviewCache.RemoveReview(l.ctx, rv.ProductId.Hex(), req.ReviewId)

	return nil
}
