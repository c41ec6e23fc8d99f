// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package order

import (
	"context"
	"fmt"
	"time"

	"autopile/app/api/internal/logic/helper"
	"autopile/app/api/internal/svc"
	"autopile/app/api/internal/types"
	"autopile/app/common/consts/errno"
	"autopile/app/common/mq"
	"autopile/app/common/ordernumber"
	"autopile/app/common/snowflake"
	"autopile/app/common/util"
	ordermodel "autopile/app/dal/order"
	productmodel "autopile/app/dal/product"
	usermodel "autopile/app/dal/user"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
	"github.com/zeromicro/x/errors"
)

type CreateOrderLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewCreateOrderLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CreateOrderLogic {
	return &CreateOrderLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// CreateOrder validates every line against the catalog, snapshots names and
// prices, and writes the header plus lines in one transaction. The stock
// adjustment batch goes to the inventory topic only after the commit; a
// failed publish is logged, the order stands.
func (l *CreateOrderLogic) CreateOrder(req *types.CreateOrderRequest) (*types.Order, error) {
	userId, err := util.UserIdFromCtx(l.ctx)
	if err != nil {
		return nil, err
	}

	if _, err := l.svcCtx.UserModel.FindOne(l.ctx, userId); err != nil {
		if err == usermodel.ErrNotFound {
			return nil, errors.New(int(errno.UserNotFound), fmt.Sprintf("user %d not found", userId))
		}
		l.Errorf("load user %d: %v", userId, err)
		return nil, helper.BizError(err, "failed to load user")
	}

	if len(req.Items) == 0 {
		return nil, errors.New(int(errno.InvalidParam), "order must contain at least one item")
	}
	if req.DeliveryFeeCents < 0 {
		return nil, errors.New(int(errno.InvalidParam), "delivery fee cannot be negative")
	}

	var (
		order *ordermodel.Orders
		items []*ordermodel.OrderItems
	)
	err = l.svcCtx.DB.TransactCtx(l.ctx, func(ctx context.Context, session sqlx.Session) error {
		var subtotal int64
		items = items[:0]
		for _, line := range req.Items {
			product, err := l.svcCtx.ProductModel.FindOne(ctx, line.ProductId)
			if err != nil {
				switch err {
				case productmodel.ErrInvalidObjectId:
					return errors.New(int(errno.InvalidParam), fmt.Sprintf("invalid product id format: %s", line.ProductId))
				case productmodel.ErrNotFound:
					return errors.New(int(errno.InvalidParam), fmt.Sprintf("product %s not found", line.ProductId))
				default:
					return err
				}
			}
			if line.Quantity <= 0 {
				return errors.New(int(errno.InvalidParam), "item quantity must be positive")
			}
			if product.StockQuantity < line.Quantity {
				return errors.New(int(errno.InsufficientStock),
					fmt.Sprintf("Insufficient stock for product %s. Available: %d, Requested: %d",
						product.Name, product.StockQuantity, line.Quantity))
			}

			price := product.EffectivePriceCents()
			total := price * line.Quantity
			items = append(items, &ordermodel.OrderItems{
				ProductId:   line.ProductId,
				ProductName: product.Name,
				PriceCents:  price,
				Quantity:    line.Quantity,
				TotalCents:  total,
			})
			subtotal += total
		}

		order = &ordermodel.Orders{
			Id:                 snowflake.Next(),
			UserId:             userId,
			OrderNumber:        ordernumber.Generate(),
			OrderDate:          time.Now(),
			Status:             ordermodel.StatusPending,
			PaymentStatus:      ordermodel.PaymentPending,
			PaymentMethod:      req.PaymentMethod,
			ShippingLine1:      req.ShippingLine1,
			ShippingLine2:      req.ShippingLine2,
			ShippingCity:       req.ShippingCity,
			ShippingState:      req.ShippingState,
			ShippingCountry:    req.ShippingCountry,
			ShippingPostalCode: req.ShippingPostalCode,
			SubtotalCents:      subtotal,
			DeliveryFeeCents:   req.DeliveryFeeCents,
			TotalCents:         subtotal + req.DeliveryFeeCents,
		}
		if err := l.svcCtx.OrderModel.Insert(ctx, session, order); err != nil {
			return err
		}
		for _, item := range items {
			item.OrderId = order.Id
			if err := l.svcCtx.OrderItemModel.Insert(ctx, session, item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		l.Errorf("create order user=%d: %v", userId, err)
		return nil, helper.BizError(err, "failed to create order")
	}

	l.publishStockAdjustment(order, items)
	l.svcCtx.OrderCache.Invalidate(l.ctx, userId)

	resp := helper.ToOrder(&ordermodel.OrderWithItems{Order: *order, Items: items})
	return &resp, nil
}

func (l *CreateOrderLogic) publishStockAdjustment(order *ordermodel.Orders, items []*ordermodel.OrderItems) {
	if l.svcCtx.Inventory == nil {
		l.Infof("inventory publisher not configured, skipping stock adjustment for order %d", order.Id)
		return
	}

	batch := mq.StockAdjustmentBatch{
		OrderId:     order.Id,
		OrderNumber: order.OrderNumber,
		Lines:       make([]mq.StockAdjustmentLine, 0, len(items)),
	}
	for _, item := range items {
		batch.Lines = append(batch.Lines, mq.StockAdjustmentLine{
			ProductId:   item.ProductId,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
		})
	}

	if err := l.svcCtx.Inventory.PublishStockAdjustment(l.ctx, batch); err != nil {
		// the order is already committed; stock reconciliation will lag
		l.Errorf("order %d committed but stock adjustment publish failed: %v", order.Id, err)
	}
}
