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
	"github.com/zeromicro/x/errors"
)

type GetOrderLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetOrderLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetOrderLogic {
	return &GetOrderLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GetOrderLogic) GetOrder(req *types.OrderPathRequest) (*types.Order, error) {
	userId, err := util.UserIdFromCtx(l.ctx)
	if err != nil {
		return nil, err
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

	items, err := l.svcCtx.OrderItemModel.ListByOrderId(l.ctx, order.Id)
	if err != nil {
		l.Errorf("list items order=%d: %v", order.Id, err)
		return nil, helper.BizError(err, "failed to load order items")
	}

	resp := helper.ToOrder(&ordermodel.OrderWithItems{Order: *order, Items: items})
	return &resp, nil
}
