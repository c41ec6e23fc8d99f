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
	productmodel "autopile/app/dal/product"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type GetProductLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetProductLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetProductLogic {
	return &GetProductLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// GetProduct is read-through: cache, then catalog, re-populating on a
// fallback hit.
func (l *GetProductLogic) GetProduct(req *types.ProductPathRequest) (*types.Product, error) {
	if cached, ok := l.svcCtx.ProductCache.Get(l.ctx, req.ProductId); ok {
		resp := helper.ToProduct(cached)
		return &resp, nil
	}

	product, err := l.svcCtx.ProductModel.FindOne(l.ctx, req.ProductId)
	if err != nil {
		switch err {
		case productmodel.ErrInvalidObjectId:
			return nil, errors.New(int(errno.InvalidParam), "invalid product id format")
		case productmodel.ErrNotFound:
			return nil, errors.New(int(errno.ProductNotFound), fmt.Sprintf("product %s not found", req.ProductId))
		default:
			l.Errorf("load product %s: %v", req.ProductId, err)
			return nil, helper.BizError(err, "failed to load product")
		}
	}

	l.svcCtx.ProductCache.Set(l.ctx, req.ProductId, product)

	resp := helper.ToProduct(product)
	return &resp, nil
}
