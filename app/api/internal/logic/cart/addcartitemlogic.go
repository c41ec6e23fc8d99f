// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package cart

import (
	"context"
	"fmt"
	"time"

	"autopile/app/api/internal/logic/helper"
	"autopile/app/api/internal/svc"
	"autopile/app/api/internal/types"
	"autopile/app/common/consts/errno"
	"autopile/app/common/util"
	cartmodel "autopile/app/dal/cart"
	productmodel "autopile/app/dal/product"
	usermodel "autopile/app/dal/user"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type AddCartItemLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewAddCartItemLogic(ctx context.Context, svcCtx *svc.ServiceContext) *AddCartItemLogic {
	return &AddCartItemLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// AddCartItem merges the requested quantity into an existing line for the
// same product, or creates a new line. A merge that lands at or below zero
// removes the line instead.
func (l *AddCartItemLogic) AddCartItem(req *types.AddCartItemRequest) (*types.CartItem, error) {
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

	product, err := l.svcCtx.ProductModel.FindOne(l.ctx, req.ProductId)
	if err != nil {
		switch err {
		case productmodel.ErrInvalidObjectId:
			return nil, errors.New(int(errno.InvalidParam), "invalid product id format")
		case productmodel.ErrNotFound:
			return nil, errors.New(int(errno.ProductNotFound), fmt.Sprintf("product %s not found", req.ProductId))
		default:
			l.Errorf("load product %s: %v", req.ProductId, err)
			return nil, helper.BizError(err, "failed to load product")
		}
	}

	existing, err := l.svcCtx.CartModel.FindOneByUserProduct(l.ctx, userId, req.ProductId)
	switch err {
	case nil:
		return l.mergeIntoExisting(userId, existing, req.Quantity)
	case cartmodel.ErrNotFound:
		return l.insertNewLine(userId, product.Id.Hex(), req.Quantity)
	default:
		l.Errorf("lookup cart line user=%d product=%s: %v", userId, req.ProductId, err)
		return nil, helper.BizError(err, "failed to load cart")
	}
}

func (l *AddCartItemLogic) mergeIntoExisting(userId int64, existing *cartmodel.CartItems, delta int64) (*types.CartItem, error) {
	existing.Quantity += delta

	if existing.Quantity <= 0 {
		if err := l.svcCtx.CartModel.Delete(l.ctx, existing.Id); err != nil {
			l.Errorf("delete cart line %d: %v", existing.Id, err)
			return nil, helper.BizError(err, "failed to remove cart item")
		}
		l.svcCtx.CartCache.RemoveItem(l.ctx, userId, existing.Id)
		if n, err := l.svcCtx.CartModel.CountByUserId(l.ctx, userId); err == nil && n == 0 {
			l.svcCtx.CartCache.Clear(l.ctx, userId)
		}
		resp := helper.ToCartItem(existing)
		return &resp, nil
	}

	if err := l.svcCtx.CartModel.Update(l.ctx, existing); err != nil {
		l.Errorf("update cart line %d: %v", existing.Id, err)
		return nil, helper.BizError(err, "failed to update cart item")
	}
	l.svcCtx.CartCache.SetItem(l.ctx, existing)

	resp := helper.ToCartItem(existing)
	return &resp, nil
}

func (l *AddCartItemLogic) insertNewLine(userId int64, productId string, quantity int64) (*types.CartItem, error) {
	if quantity <= 0 {
		return nil, errors.New(int(errno.InvalidParam), "quantity must be positive for a new cart item")
	}

	item := &cartmodel.CartItems{
		UserId:    userId,
		ProductId: productId,
		Quantity:  quantity,
		CreatedAt: time.Now(),
	}
	res, err := l.svcCtx.CartModel.Insert(l.ctx, item)
	if err != nil {
		l.Errorf("insert cart line user=%d product=%s: %v", userId, productId, err)
		return nil, helper.BizError(err, "failed to add cart item")
	}
	if id, err := res.LastInsertId(); err == nil {
		item.Id = id
	}
	l.svcCtx.CartCache.SetItem(l.ctx, item)

	resp := helper.ToCartItem(item)
	return &resp, nil
}
