// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package order

import (
	"context"

	"autopile/app/api/internal/logic/helper"
	"autopile/app/api/internal/svc"
	"autopile/app/api/internal/types"
	"autopile/app/common/util"
	ordermodel "autopile/app/dal/order"

	"github.com/zeromicro/go-zero/core/logx"
)

type ListOrdersLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewListOrdersLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListOrdersLogic {
	return &ListOrdersLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// ListOrders serves the caller's order history cache-first; a miss rebuilds
// the cached list from the store (non-empty lists only).
func (l *ListOrdersLogic) ListOrders() (*types.OrderListResponse, error) {
	userId, err := util.UserIdFromCtx(l.ctx)
	if err != nil {
		return nil, err
	}

	if cached, ok := l.svcCtx.OrderCache.GetOrders(l.ctx, userId); ok {
		return toOrderList(cached), nil
	}

	orders, err := l.svcCtx.OrderModel.ListByUserId(l.ctx, userId)
	if err != nil {
		l.Errorf("list orders user=%d: %v", userId, err)
		return nil, helper.BizError(err, "failed to load orders")
	}

	views := make([]*ordermodel.OrderWithItems, 0, len(orders))
	for _, o := range orders {
		items, err := l.svcCtx.OrderItemModel.ListByOrderId(l.ctx, o.Id)
		if err != nil {
			l.Errorf("list items order=%d: %v", o.Id, err)
			return nil, helper.BizError(err, "failed to load order items")
		}
		views = append(views, &ordermodel.OrderWithItems{Order: *o, Items: items})
	}
	l.svcCtx.OrderCache.SetOrders(l.ctx, userId, views)

	return toOrderList(views), nil
}

func toOrderList(views []*ordermodel.OrderWithItems) *types.OrderListResponse {
	resp := &types.OrderListResponse{Orders: make([]types.Order, 0, len(views))}
	for _, v := range views {
		resp.Orders = append(resp.Orders, helper.ToOrder(v))
	}
	return resp
}
