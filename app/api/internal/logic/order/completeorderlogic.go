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
	"autopile/app/common/mq"
	"autopile/app/common/util"
	ordermodel "autopile/app/dal/order"
	usermodel "autopile/app/dal/user"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type CompleteOrderLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewCompleteOrderLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CompleteOrderLogic {
	return &CompleteOrderLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// CompleteOrder marks the order successful and its payment completed, then
// refreshes the cached order list and queues the confirmation email.
func (l *CompleteOrderLogic) CompleteOrder(req *types.OrderPathRequest) (*types.Order, error) {
	userId, err := util.UserIdFromCtx(l.ctx)
	if err != nil {
		return nil, err
	}

	user, err := l.svcCtx.UserModel.FindOne(l.ctx, userId)
	if err != nil {
		if err == usermodel.ErrNotFound {
			return nil, errors.New(int(errno.UserNotFound), fmt.Sprintf("user %d not found", userId))
		}
		l.Errorf("load user %d: %v", userId, err)
		return nil, helper.BizError(err, "failed to load user")
	}

	order, err := l.svcCtx.OrderModel.FindOne(l.ctx, req.OrderId)
	if err != nil {
		if err == ordermodel.ErrNotFound {
			return nil, errors.New(int(errno.OrderNotFound), fmt.Sprintf("order %d not found", req.OrderId))
		}
		l.Errorf("load order %d: %v", req.OrderId, err)
		return nil, helper.BizError(err, "failed to load order")
	}
	if order.UserId != userId {
		return nil, errors.New(int(errno.Forbidden), "order belongs to another user")
	}

	order.Status = ordermodel.StatusSuccess
	order.PaymentStatus = ordermodel.PaymentCompleted
	if err := l.svcCtx.OrderModel.Update(l.ctx, nil, order); err != nil {
		l.Errorf("complete order %d: %v", order.Id, err)
		return nil, helper.BizError(err, "failed to complete order")
	}

	items, err := l.svcCtx.OrderItemModel.ListByOrderId(l.ctx, order.Id)
	if err != nil {
		l.Errorf("list items order=%d: %v", order.Id, err)
		return nil, helper.BizError(err, "failed to load order items")
	}

	view := &ordermodel.OrderWithItems{Order: *order, Items: items}
	l.svcCtx.OrderCache.UpsertOrder(l.ctx, userId, view)

	if l.svcCtx.Email != nil {
		msg := mq.EmailMessage{
			To:       user.Email,
			Subject:  fmt.Sprintf("Order %s confirmed", order.OrderNumber),
			Template: "order_confirmation",
			Params: map[string]string{
				"username":    user.Username,
				"orderNumber": order.OrderNumber,
				"totalCents":  fmt.Sprintf("%d", order.TotalCents),
			},
		}
		if err := l.svcCtx.Email.EnqueueEmail(l.ctx, msg); err != nil {
			l.Errorf("enqueue confirmation email for order %d: %v", order.Id, err)
		}
	}

	resp := helper.ToOrder(view)
	return &resp, nil
}
