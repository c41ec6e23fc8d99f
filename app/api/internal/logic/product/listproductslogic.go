// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package product

import (
	"context"

	"autopile/app/api/internal/logic/helper"
	"autopile/app/api/internal/svc"
	"autopile/app/api/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type ListProductsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewListProductsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListProductsLogic {
	return &ListProductsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// ListProducts hits the catalog directly; only single-product fetches are
// cached.
func (l *ListProductsLogic) ListProducts(req *types.ListProductsRequest) (*types.ProductListResponse, error) {
	products, err := l.svcCtx.ProductModel.ListByCategory(l.ctx, req.Category, req.Limit)
	if err != nil {
		l.Errorf("list products category=%q: %v", req.Category, err)
		return nil, helper.BizError(err, "failed to list products")
	}

	resp := &types.ProductListResponse{Products: make([]types.Product, 0, len(products))}
	for _, p := range products {
		resp.Products = append(resp.Products, helper.ToProduct(p))
	}
	return resp, nil
}
