// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package cart

import (
	"context"
	"fmt"

	"autopile/app/api/internal/logic/helper"
	"autopile/app/api/internal/svc"
	"autopile/app/api/internal/types"
	"autopile/app/common/consts/errno"
	"autopile/app/common/util"
	cartmodel "autopile/app/dal/cart"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type UpdateCartItemLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewUpdateCartItemLogic(ctx context.Context, svcCtx *svc.ServiceContext) *UpdateCartItemLogic {
	return &UpdateCartItemLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// UpdateCartItem overwrites the line quantity with the requested value; no
// merge with the current quantity.
func (l *UpdateCartItemLogic) UpdateCartItem(req *types.UpdateCartItemRequest) (*types.CartItem, error) {
	userId, err := util.UserIdFromCtx(l.ctx)
	if err != nil {
		return nil, err
	}

	if req.Quantity <= 0 {
		return nil, errors.New(int(errno.InvalidParam), "quantity must be positive")
	}

	item, ok := l.svcCtx.CartCache.GetItem(l.ctx, userId, req.ItemId)
	if !ok {
		item, err = l.svcCtx.CartModel.FindOne(l.ctx, req.ItemId)
		if err != nil {
			if err == cartmodel.ErrNotFound {
				return nil, errors.New(int(errno.CartItemNotFound), fmt.Sprintf("cart item %d not found", req.ItemId))
			}
			l.Errorf("load cart line %d: %v", req.ItemId, err)
			return nil, helper.BizError(err, "failed to load cart item")
		}
	}
	if item.UserId != userId {
		return nil, errors.New(int(errno.Forbidden), "cart item belongs to another user")
	}

	item.Quantity = req.Quantity
	if err := l.svcCtx.CartModel.Update(l.ctx, item); err != nil {
		l.Errorf("update cart line %d: %v", item.Id, err)
		return nil, helper.BizError(err, "failed to update cart item")
	}
	l.svcCtx.CartCache.SetItem(l.ctx, item)

	resp := helper.ToCartItem(item)
	return &resp, nil
}
