// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package order

import (
	"context"
	"fmt"

	"autopile/app/api/internal/logic/helper"
	"autopile/app/api/internal/svc"
	"autopile/app/api/internal/types"
	"autopile/app/common/consts/errno"
	"autopile/app/common/util"
	ordermodel "autopile/app/dal/order"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
	"github.com/zeromicro/x/errors"
)

type DeleteOrderLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewDeleteOrderLogic(ctx context.Context, svcCtx *svc.ServiceContext) *DeleteOrderLogic {
	return &DeleteOrderLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// DeleteOrder removes a pending order and its lines in one transaction.
// Completed orders are immutable.
func (l *DeleteOrderLogic) DeleteOrder(req *types.OrderPathRequest) error {
	userId, err := util.UserIdFromCtx(l.ctx)
	if err != nil {
		return err
	}

	err = l.svcCtx.DB.TransactCtx(l.ctx, func(ctx context.Context, session sqlx.Session) error {
		order, err := l.svcCtx.OrderModel.FindOne(ctx, req.OrderId)
		if err != nil {
			if err == ordermodel.ErrNotFound {
				return errors.New(int(errno.OrderNotFound), fmt.Sprintf("order %d not found", req.OrderId))
			}
			return err
		}
		if order.UserId != userId {
			return errors.New(int(errno.Forbidden), "order belongs to another user")
		}
		if order.Status == ordermodel.StatusSuccess {
			return errors.New(int(errno.OrderCompleted), "cannot delete a completed order")
		}

		if err := l.svcCtx.OrderItemModel.DeleteByOrderId(ctx, session, order.Id); err != nil {
			return err
		}
		return l.svcCtx.OrderModel.Delete(ctx, session, order.Id)
	})
	if err != nil {
		l.Errorf("delete order %d: %v", req.OrderId, err)
		return helper.BizError(err, "failed to delete order")
	}

	l.svcCtx.OrderCache.Invalidate(l.ctx, userId)
	return nil
}
