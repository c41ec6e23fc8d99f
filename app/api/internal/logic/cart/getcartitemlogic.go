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

type GetCartItemLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetCartItemLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetCartItemLogic {
	return &GetCartItemLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// GetCartItem serves a single line cache-first, falling back to the store and
// re-populating the cached cart on a fallback hit. The ownership check runs
// on both paths.
func (l *GetCartItemLogic) GetCartItem(req *types.CartItemPathRequest) (*types.CartItem, error) {
	userId, err := util.UserIdFromCtx(l.ctx)
	if err != nil {
		return nil, err
	}

	if cached, ok := l.svcCtx.CartCache.GetItem(l.ctx, userId, req.ItemId); ok {
		if cached.UserId != userId {
			return nil, errors.New(int(errno.Forbidden), "cart item belongs to another user")
		}
		resp := helper.ToCartItem(cached)
		return &resp, nil
	}

	item, err := l.svcCtx.CartModel.FindOne(l.ctx, req.ItemId)
	if err != nil {
		if err == cartmodel.ErrNotFound {
			return nil, errors.New(int(errno.CartItemNotFound), fmt.Sprintf("cart item %d not found", req.ItemId))
		}
		l.Errorf("load cart line %d: %v", req.ItemId, err)
		return nil, helper.BizError(err, "failed to load cart item")
	}
	if item.UserId != userId {
		return nil, errors.New(int(errno.Forbidden), "cart item belongs to another user")
	}

	l.svcCtx.CartCache.SetItem(l.ctx, item)

	resp := helper.ToCartItem(item)
	return &resp, nil
}
