// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package payment

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

type CreatePaymentIntentLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewCreatePaymentIntentLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CreatePaymentIntentLogic {
	return &CreatePaymentIntentLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// CreatePaymentIntent opens an intent with the gateway for the stored order
// total. The client never supplies the amount.
func (l *CreatePaymentIntentLogic) CreatePaymentIntent(req *types.CreatePaymentIntentRequest) (*types.PaymentIntentResponse, error) {
	userId, err := util.UserIdFromCtx(l.ctx)
	if err != nil {
		return nil, err
	}

	if l.svcCtx.Payment == nil {
		return nil, errors.New(int(errno.InternalError), "payment gateway is not configured")
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
	if order.PaymentStatus == ordermodel.PaymentCompleted {
		return nil, errors.New(int(errno.OrderCompleted), "order is already paid")
	}

	intent, err := l.svcCtx.Payment.CreateIntent(l.ctx, order.OrderNumber, order.TotalCents, l.svcCtx.Config.PaymentConf.Currency)
	if err != nil {
		l.Errorf("create payment intent order=%d: %v", order.Id, err)
		return nil, helper.BizError(err, "failed to create payment intent")
	}

	return &types.PaymentIntentResponse{
		IntentId:     intent.IntentId,
		ClientSecret: intent.ClientSecret,
		AmountCents:  intent.AmountCents,
		Currency:     intent.Currency,
	}, nil
}
