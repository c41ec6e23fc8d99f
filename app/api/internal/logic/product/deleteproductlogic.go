// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package product

import (
	"context"
	"fmt"

	"autopile/app/api/internal/logic/helper"
	"autopile/app/api/internal/svc"
	"autopile/app/api/internal/types"
	"autopile/app/common/consts/errno"
	"autopile/app/common/util"
	productmodel "autopile/app/dal/product"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type DeleteProductLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewDeleteProductLogic(ctx context.Context, svcCtx *svc.ServiceContext) *DeleteProductLogic {
	return &DeleteProductLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *DeleteProductLogic) DeleteProduct(req *types.ProductPathRequest) error {
	if err := util.RequireAdmin(l.ctx); err != nil {
		return err
	}

	if err := l.svcCtx.ProductModel.Delete(l.ctx, req.ProductId); err != nil {
		switch err {
		case productmodel.ErrInvalidObjectId:
			return errors.New(int(errno.InvalidParam), "invalid product id format")
		case productmodel.ErrNotFound:
			return errors.New(int(errno.ProductNotFound), fmt.Sprintf("product %s not found", req.ProductId))
		default:
			l.Errorf("delete product %s: %v", req.ProductId, err)
			return helper.BizError(err, "failed to delete product")
		}
	}

	l.svcCtx.ProductCache.Delete(l.ctx, req.ProductId)
	l.svcCtx.ReviewCache.DeleteReviews(l.ctx, req.ProductId)

	return nil
}
