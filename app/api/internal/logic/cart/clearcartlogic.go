// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package cart

import (
	"context"
	"fmt"

	"autopile/app/api/internal/logic/helper"
	"autopile/app/api/internal/svc"
	"autopile/app/common/consts/errno"
	"autopile/app/common/util"
	usermodel "autopile/app/dal/user"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type ClearCartLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewClearCartLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ClearCartLogic {
	return &ClearCartLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// ClearCart removes every line of the caller's cart. Clearing an already
// empty cart is rejected rather than treated as a no-op.
func (l *ClearCartLogic) ClearCart() error {
	userId, err := util.UserIdFromCtx(l.ctx)
	if err != nil {
		return err
	}

	if _, err := l.svcCtx.UserModel.FindOne(l.ctx, userId); err != nil {
		if err == usermodel.ErrNotFound {
			return errors.New(int(errno.UserNotFound), fmt.Sprintf("user %d not found", userId))
		}
		l.Errorf("load user %d: %v", userId, err)
		return helper.BizError(err, "failed to load user")
	}

	n, err := l.svcCtx.CartModel.CountByUserId(l.ctx, userId)
	if err != nil {
		l.Errorf("count cart user=%d: %v", userId, err)
		return helper.BizError(err, "failed to load cart")
	}
	if n == 0 {
		return errors.New(int(errno.CartAlreadyEmpty), "shopping cart is already empty")
	}

	if err := l.svcCtx.CartModel.DeleteByUserId(l.ctx, userId); err != nil {
		l.Errorf("clear cart user=%d: %v", userId, err)
		return helper.BizError(err, "failed to clear cart")
	}
	l.svcCtx.CartCache.Clear(l.ctx, userId)

	return nil
}
