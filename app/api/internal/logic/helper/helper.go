package helper

import (
	stderrors "errors"
	"time"

	"autopile/app/api/internal/types"
	"autopile/app/common/consts/errno"
	cartmodel "autopile/app/dal/cart"
	ordermodel "autopile/app/dal/order"
	productmodel "autopile/app/dal/product"
	reviewmodel "autopile/app/dal/review"
	usermodel "autopile/app/dal/user"

	"github.com/zeromicro/x/errors"
)

// BizError passes business errors (code+message) through untouched and maps
// anything else to a generic internal error so store details never reach the
// client.
func BizError(err error, fallback string) error {
	var cm *errors.CodeMsg
	if stderrors.As(err, &cm) {
		return err
	}
	return errors.New(int(errno.InternalError), fallback)
}

func ToUserInfo(info *usermodel.UserInfo) types.UserInfo {
	return types.UserInfo{
		Id:        info.Id,
		Username:  info.Username,
		Email:     info.Email,
		Role:      info.Role,
		CreatedAt: info.CreatedAt.Format(time.RFC3339),
	}
}

func ToProduct(p *productmodel.Product) types.Product {
	media := make([]types.ProductMedia, 0, len(p.Media))
	for _, m := range p.Media {
		media = append(media, types.ProductMedia{
			Url:      m.Url,
			Type:     m.Type,
			Alt:      m.Alt,
			Position: m.Position,
		})
	}
	return types.Product{
		Id:                p.Id.Hex(),
		Name:              p.Name,
		Description:       p.Description,
		Sku:               p.Sku,
		PriceCents:        p.PriceCents,
		ComparePriceCents: p.ComparePriceCents,
		StockQuantity:     p.StockQuantity,
		IsInStock:         p.IsInStock,
		Ribbon:            p.Ribbon,
		Category:          p.Category,
		Media:             media,
		CreatedAt:         p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         p.UpdatedAt.Format(time.RFC3339),
	}
}

func ToReview(r *reviewmodel.Review) types.Review {
	return types.Review{
		Id:        r.Id.Hex(),
		ProductId: r.ProductId.Hex(),
		UserId:    r.UserId,
		Rating:    r.Rating,
		Title:     r.Title,
		Content:   r.Content,
		Images:    r.Images,
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
		UpdatedAt: r.UpdatedAt.Format(time.RFC3339),
	}
}

func ToCartItem(item *cartmodel.CartItems) types.CartItem {
	return types.CartItem{
		Id:        item.Id,
		ProductId: item.ProductId,
		Quantity:  item.Quantity,
		CreatedAt: item.CreatedAt.Format(time.RFC3339),
	}
}

func ToOrder(ov *ordermodel.OrderWithItems) types.Order {
	items := make([]types.OrderItem, 0, len(ov.Items))
	for _, it := range ov.Items {
		items = append(items, types.OrderItem{
			Id:          it.Id,
			ProductId:   it.ProductId,
			ProductName: it.ProductName,
			PriceCents:  it.PriceCents,
			Quantity:    it.Quantity,
			TotalCents:  it.TotalCents,
		})
	}
	o := ov.Order
	return types.Order{
		Id:                 o.Id,
		OrderNumber:        o.OrderNumber,
		OrderDate:          o.OrderDate.Format(time.RFC3339),
		Status:             o.Status,
		PaymentStatus:      o.PaymentStatus,
		PaymentMethod:      o.PaymentMethod,
		ShippingLine1:      o.ShippingLine1,
		ShippingLine2:      o.ShippingLine2,
		ShippingCity:       o.ShippingCity,
		ShippingState:      o.ShippingState,
		ShippingCountry:    o.ShippingCountry,
		ShippingPostalCode: o.ShippingPostalCode,
		SubtotalCents:      o.SubtotalCents,
		DeliveryFeeCents:   o.DeliveryFeeCents,
		TotalCents:         o.TotalCents,
		Items:              items,
	}
}
