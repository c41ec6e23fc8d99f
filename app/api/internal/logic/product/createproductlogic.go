// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package product

import (
	"context"

	"autopile/app/api/internal/logic/helper"
	"autopile/app/api/internal/svc"
	"autopile/app/api/internal/types"
	"autopile/app/common/consts/errno"
	"autopile/app/common/util"
	productmodel "autopile/app/dal/product"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type CreateProductLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewCreateProductLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CreateProductLogic {
	return &CreateProductLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *CreateProductLogic) CreateProduct(req *types.CreateProductRequest) (*types.Product, error) {
	if err := util.RequireAdmin(l.ctx); err != nil {
		return nil, err
	}

	if req.Name == "" || req.PriceCents <= 0 {
		return nil, errors.New(int(errno.InvalidParam), "name and a positive price are required")
	}
	if req.StockQuantity < 0 {
		return nil, errors.New(int(errno.InvalidParam), "stock quantity cannot be negative")
	}

	product := &productmodel.Product{
		Name:              req.Name,
		Description:       req.Description,
		Sku:               req.Sku,
		PriceCents:        req.PriceCents,
		ComparePriceCents: req.ComparePriceCents,
		StockQuantity:     req.StockQuantity,
		Ribbon:            req.Ribbon,
		Category:          req.Category,
		Media:             toModelMedia(req.Media),
	}
	if err := l.svcCtx.ProductModel.Insert(l.ctx, product); err != nil {
		l.Errorf("insert product %s: %v", req.Name, err)
		return nil, helper.BizError(err, "failed to create product")
	}

	l.svcCtx.ProductCache.Set(l.ctx, product.Id.Hex(), product)

	resp := helper.ToProduct(product)
	return &resp, nil
}

func toModelMedia(media []types.ProductMedia) []productmodel.ProductMedia {
	if len(media) == 0 {
		return nil
	}
	out := make([]productmodel.ProductMedia, 0, len(media))
	for _, m := range media {
		out = append(out, productmodel.ProductMedia{
			Url:      m.Url,
			Type:     m.Type,
			Alt:      m.Alt,
			Position: m.Position,
		})
	}
	return out
}
