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
	productmodel "autopile/app/dal/product"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
	"github.com/zeromicro/x/errors"
)

type UpdateOrderLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewUpdateOrderLogic(ctx context.Context, svcCtx *svc.ServiceContext) *UpdateOrderLogic {
	return &UpdateOrderLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// UpdateOrder applies a partial patch to a pending order. Item patches merge
// by product id: mentioned lines are overwritten at current effective prices,
// unmentioned lines stay as they are, and lines patched to zero or below are
// removed. Subtotal and total are recomputed from the surviving lines.
func (l *UpdateOrderLogic) UpdateOrder(req *types.UpdateOrderRequest) (*types.Order, error) {
	userId, err := util.UserIdFromCtx(l.ctx)
	if err != nil {
		return nil, err
	}

	var view *ordermodel.OrderWithItems
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
			return errors.New(int(errno.OrderCompleted), "cannot update a completed order")
		}

		items, err := l.svcCtx.OrderItemModel.ListByOrderId(ctx, order.Id)
		if err != nil {
			return err
		}

		applyScalarPatch(order, req)

		if len(req.Items) > 0 {
			items, err = l.applyItemPatch(ctx, session, order, items, req.Items)
			if err != nil {
				return err
			}
			var subtotal int64
			for _, it := range items {
				subtotal += it.TotalCents
			}
			order.SubtotalCents = subtotal
			order.TotalCents = subtotal + order.DeliveryFeeCents
		}

		if err := l.svcCtx.OrderModel.Update(ctx, session, order); err != nil {
			return err
		}

		view = &ordermodel.OrderWithItems{Order: *order, Items: items}
		return nil
	})
	if err != nil {
		l.Errorf("update order %d: %v", req.OrderId, err)
		return nil, helper.BizError(err, "failed to update order")
	}

	l.svcCtx.OrderCache.UpsertOrder(l.ctx, userId, view)

	resp := helper.ToOrder(view)
	return &resp, nil
}

func applyScalarPatch(order *ordermodel.Orders, req *types.UpdateOrderRequest) {
	if req.PaymentMethod != "" {
		order.PaymentMethod = req.PaymentMethod
	}
	if req.ShippingLine1 != "" {
		order.ShippingLine1 = req.ShippingLine1
	}
	if req.ShippingLine2 != "" {
		order.ShippingLine2 = req.ShippingLine2
	}
	if req.ShippingCity != "" {
		order.ShippingCity = req.ShippingCity
	}
	if req.ShippingState != "" {
		order.ShippingState = req.ShippingState
	}
	if req.ShippingCountry != "" {
		order.ShippingCountry = req.ShippingCountry
	}
	if req.ShippingPostalCode != "" {
		order.ShippingPostalCode = req.ShippingPostalCode
	}
}

func (l *UpdateOrderLogic) applyItemPatch(ctx context.Context, session sqlx.Session, order *ordermodel.Orders,
	current []*ordermodel.OrderItems, patch []types.OrderItemInput) ([]*ordermodel.OrderItems, error) {

	byProduct := make(map[string]*ordermodel.OrderItems, len(current))
	for _, it := range current {
		byProduct[it.ProductId] = it
	}

	touched := make(map[string]bool, len(patch))
	for _, line := range patch {
		product, err := l.svcCtx.ProductModel.FindOne(ctx, line.ProductId)
		if err != nil {
			switch err {
			case productmodel.ErrInvalidObjectId:
				return nil, errors.New(int(errno.InvalidParam), fmt.Sprintf("invalid product id format: %s", line.ProductId))
			case productmodel.ErrNotFound:
				return nil, errors.New(int(errno.InvalidParam), fmt.Sprintf("product %s not found", line.ProductId))
			default:
				return nil, err
			}
		}
		if line.Quantity > 0 && product.StockQuantity < line.Quantity {
			return nil, errors.New(int(errno.InsufficientStock),
				fmt.Sprintf("Insufficient stock for product %s. Available: %d, Requested: %d",
					product.Name, product.StockQuantity, line.Quantity))
		}

		price := product.EffectivePriceCents()
		if existing, ok := byProduct[line.ProductId]; ok {
			existing.ProductName = product.Name
			existing.PriceCents = price
			existing.Quantity = line.Quantity
			existing.TotalCents = price * line.Quantity
		} else {
			item := &ordermodel.OrderItems{
				OrderId:     order.Id,
				ProductId:   line.ProductId,
				ProductName: product.Name,
				PriceCents:  price,
				Quantity:    line.Quantity,
				TotalCents:  price * line.Quantity,
			}
			byProduct[line.ProductId] = item
			current = append(current, item)
		}
		touched[line.ProductId] = true
	}

	final := make([]*ordermodel.OrderItems, 0, len(current))
	for _, it := range current {
		if it.Quantity <= 0 {
			// patched to zero or below: drop the line (never inserted if new)
			if it.Id != 0 {
				if err := l.svcCtx.OrderItemModel.Delete(ctx, session, it.Id); err != nil {
					return nil, err
				}
			}
			continue
		}
		if touched[it.ProductId] {
			if it.Id == 0 {
				if err := l.svcCtx.OrderItemModel.Insert(ctx, session, it); err != nil {
					return nil, err
				}
			} else {
				if err := l.svcCtx.OrderItemModel.Update(ctx, session, it); err != nil {
					return nil, err
				}
			}
		}
		final = append(final, it)
	}
	return final, nil
}
