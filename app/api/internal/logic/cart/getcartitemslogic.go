// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package cart

import (
	"context"

	"autopile/app/api/internal/logic/helper"
	"autopile/app/api/internal/svc"
	"autopile/app/api/internal/types"
	"autopile/app/common/util"
	cartmodel "autopile/app/dal/cart"

	"github.com/zeromicro/go-zero/core/logx"
)

type GetCartItemsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetCartItemsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetCartItemsLogic {
	return &GetCartItemsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// GetCartItems returns the caller's whole cart, cache-first.
func (l *GetCartItemsLogic) GetCartItems() (*types.CartResponse, error) {
	userId, err := util.UserIdFromCtx(l.ctx)
	if err != nil {
		return nil, err
	}

	items, ok := l.svcCtx.CartCache.GetCart(l.ctx, userId)
	if !ok {
		items, err = l.svcCtx.CartModel.ListByUserId(l.ctx, userId)
		if err != nil {
			l.Errorf("list cart user=%d: %v", userId, err)
			return nil, helper.BizError(err, "failed to load cart")
		}
		l.svcCtx.CartCache.SetCart(l.ctx, userId, items)
	}

	return toCartResponse(items), nil
}

func toCartResponse(items []*cartmodel.CartItems) *types.CartResponse {
	resp := &types.CartResponse{Items: make([]types.CartItem, 0, len(items))}
	for _, it := range items {
		resp.Items = append(resp.Items, helper.ToCartItem(it))
	}
	return resp
}
