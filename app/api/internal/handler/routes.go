// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package handler

import (
	"net/http"

	cart "autopile/app/api/internal/handler/cart"
	order "autopile/app/api/internal/handler/order"
	payment "autopile/app/api/internal/handler/payment"
	product "autopile/app/api/internal/handler/product"
	review "autopile/app/api/internal/handler/review"
	user "autopile/app/api/internal/handler/user"
	"autopile/app/api/internal/svc"

	"github.com/zeromicro/go-zero/rest"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	// public
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodPost,
				Path:    "/api/user/register",
				Handler: user.RegisterHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/api/user/login",
				Handler: user.LoginHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/products",
				Handler: product.ListProductsHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/product/:id",
				Handler: product.GetProductHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/product/:id/reviews",
				Handler: review.ListReviewsHandler(serverCtx),
			},
		},
	)

	// authenticated
	server.AddRoutes(
		rest.WithMiddlewares(
			[]rest.Middleware{serverCtx.AuthMiddleware},
			[]rest.Route{
				{
					Method:  http.MethodGet,
					Path:    "/api/user/info",
					Handler: user.GetUserInfoHandler(serverCtx),
				},
				{
					Method:  http.MethodPut,
					Path:    "/api/user/info",
					Handler: user.UpdateUserInfoHandler(serverCtx),
				},
				{
					Method:  http.MethodPost,
					Path:    "/api/product",
					Handler: product.CreateProductHandler(serverCtx),
				},
				{
					Method:  http.MethodPut,
					Path:    "/api/product/:id",
					Handler: product.UpdateProductHandler(serverCtx),
				},
				{
					Method:  http.MethodDelete,
					Path:    "/api/product/:id",
					Handler: product.DeleteProductHandler(serverCtx),
				},
				{
					Method:  http.MethodPost,
					Path:    "/api/review",
					Handler: review.CreateReviewHandler(serverCtx),
				},
				{
					Method:  http.MethodPut,
					Path:    "/api/review/:id",
					Handler: review.UpdateReviewHandler(serverCtx),
				},
				{
					Method:  http.MethodDelete,
					Path:    "/api/review/:id",
					Handler: review.DeleteReviewHandler(serverCtx),
				},
				{
					Method:  http.MethodPost,
					Path:    "/api/cart",
					Handler: cart.AddCartItemHandler(serverCtx),
				},
				{
					Method:  http.MethodGet,
					Path:    "/api/cart",
					Handler: cart.GetCartItemsHandler(serverCtx),
				},
				{
					Method:  http.MethodDelete,
					Path:    "/api/cart",
					Handler: cart.ClearCartHandler(serverCtx),
				},
				{
					Method:  http.MethodGet,
					Path:    "/api/cart/item/:id",
					Handler: cart.GetCartItemHandler(serverCtx),
				},
				{
					Method:  http.MethodPut,
					Path:    "/api/cart/item/:id",
					Handler: cart.UpdateCartItemHandler(serverCtx),
				},
				{
					Method:  http.MethodDelete,
					Path:    "/api/cart/item/:id",
					Handler: cart.DeleteCartItemHandler(serverCtx),
				},
				{
					Method:  http.MethodPost,
					Path:    "/api/order",
					Handler: order.CreateOrderHandler(serverCtx),
				},
				{
					Method:  http.MethodGet,
					Path:    "/api/orders",
					Handler: order.ListOrdersHandler(serverCtx),
				},
				{
					Method:  http.MethodGet,
					Path:    "/api/order/:id",
					Handler: order.GetOrderHandler(serverCtx),
				},
				{
					Method:  http.MethodGet,
					Path:    "/api/order/number/:orderNumber",
					Handler: order.GetOrderByNumberHandler(serverCtx),
				},
				{
					Method:  http.MethodPut,
					Path:    "/api/order/:id",
					Handler: order.UpdateOrderHandler(serverCtx),
				},
				{
					Method:  http.MethodDelete,
					Path:    "/api/order/:id",
					Handler: order.DeleteOrderHandler(serverCtx),
				},
				{
					Method:  http.MethodPost,
					Path:    "/api/order/:id/complete",
					Handler: order.CompleteOrderHandler(serverCtx),
				},
				{
					Method:  http.MethodPost,
					Path:    "/api/payment/intent",
					Handler: payment.CreatePaymentIntentHandler(serverCtx),
				},
			}...,
		),
	)
}
