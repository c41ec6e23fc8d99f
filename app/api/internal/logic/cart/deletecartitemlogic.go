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

type DeleteCartItemLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewDeleteCartItemLogic(ctx context.Context, svcCtx *svc.ServiceContext) *DeleteCartItemLogic {
	return &DeleteCartItemLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *DeleteCartItemLogic) DeleteCartItem(req *types.CartItemPathRequest) error {
	userId, err := util.UserIdFromCtx(l.ctx)
	if err != nil {
		return err
	}

	item, ok := l.svcCtx.CartCache.GetItem(l.ctx, userId, req.ItemId)
	if !ok {
		item, err = l.svcCtx.CartModel.FindOne(l.ctx, req.ItemId)
		if err != nil {
			if err == cartmodel.ErrNotFound {
				return errors.New(int(errno.CartItemNotFound), fmt.Sprintf("cart item %d not found", req.ItemId))
			}
			l.Errorf("load cart line %d: %v", req.ItemId, err)
			return helper.BizError(err, "failed to load cart item")
		}
	}
	if item.UserId != userId {
		return errors.New(int(errno.Forbidden), "cart item belongs to another user")
	}

	if err := l.svcCtx.CartModel.Delete(l.ctx, item.Id); err != nil {
		l.Errorf("delete cart line %d: %v", item.Id, err)
		return helper.BizError(err, "failed to delete cart item")
	}
	l.svcCtx.CartCache.RemoveItem(l.ctx, userId, item.Id)

	if n, err := l.svcCtx.CartModel.CountByUserId(l.ctx, userId); err == nil && n == 0 {
		l.svcCtx.CartCache.Clear(l.ctx, userId)
	}

	return nil
}
