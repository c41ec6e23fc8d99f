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

type UpdateProductLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewUpdateProductLogic(ctx context.Context, svcCtx *svc.ServiceContext) *UpdateProductLogic {
	return &UpdateProductLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// UpdateProduct patches the catalog document and writes the fresh value
// through to the cache. Admin stock edits recompute the in-stock flag the
// same way the reconciler does.
func (l *UpdateProductLogic) UpdateProduct(req *types.UpdateProductRequest) (*types.Product, error) {
	if err := util.RequireAdmin(l.ctx); err != nil {
		return nil, err
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

	if req.Name != "" {
		product.Name = req.Name
	}
	if req.Description != "" {
		product.Description = req.Description
	}
	if req.Sku != "" {
		product.Sku = req.Sku
	}
	if req.PriceCents > 0 {
		product.PriceCents = req.PriceCents
	}
	if req.ComparePriceCents > 0 {
		product.ComparePriceCents = req.ComparePriceCents
	}
	if req.StockQuantity >= 0 {
		product.StockQuantity = req.StockQuantity
		product.IsInStock = product.StockQuantity > 0
	}
	if req.Ribbon != "" {
		product.Ribbon = req.Ribbon
	}
	if req.Category != "" {
		product.Category = req.Category
	}
	if len(req.Media) > 0 {
		product.Media = toModelMedia(req.Media)
	}

	if err := l.svcCtx.ProductModel.Update(l.ctx, product); err != nil {
		if err == productmodel.ErrNotFound {
			return nil, errors.New(int(errno.ProductNotFound), fmt.Sprintf("product %s not found", req.ProductId))
		}
		l.Errorf("update product %s: %v", req.ProductId, err)
		return nil, helper.BizError(err, "failed to update product")
	}

	l.svcCtx.ProductCache.Set(l.ctx, req.ProductId, product)

	resp := helper.ToProduct(product)
	return &resp, nil
}
