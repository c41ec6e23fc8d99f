// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package svc

import (
	"context"

	"autopile/app/api/internal/config"
	"autopile/app/api/internal/gateway"
	"autopile/app/api/internal/mq"
	"autopile/app/common/middleware"
	"autopile/app/common/snowflake"
	"autopile/app/dal/cache"
	cartmodel "autopile/app/dal/cart"
	ordermodel "autopile/app/dal/order"
	productmodel "autopile/app/dal/product"
	reviewmodel "autopile/app/dal/review"
	usermodel "autopile/app/dal/user"

	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
	"github.com/zeromicro/go-zero/rest"
)

// Transactor runs fn inside a database transaction. sqlx.SqlConn satisfies
// it; tests swap in a fake that invokes fn with a nil session.
type Transactor interface {
	TransactCtx(ctx context.Context, fn func(ctx context.Context, session sqlx.Session) error) error
}

type ServiceContext struct {
	Config config.Config

	DB Transactor

	UserModel      usermodel.UsersModel
	CartModel      cartmodel.CartItemsModel
	OrderModel     ordermodel.OrdersModel
	OrderItemModel ordermodel.OrderItemsModel
	ProductModel   productmodel.ProductsModel
	ReviewModel    reviewmodel.ReviewsModel

	ProductCache  *cache.ProductCache
	ReviewCache   *cache.ReviewCache
	OrderCache    *cache.OrderCache
	UserInfoCache *cache.UserInfoCache
	CartCache     *cache.CartCache

	Inventory mq.InventoryPublisher
	Email     mq.EmailEnqueuer
	Payment   gateway.PaymentGateway

	AuthMiddleware rest.Middleware
}

func NewServiceContext(c config.Config) *ServiceContext {
	snowflake.SetNodeID(c.MachineId)

	conn := sqlx.NewMysql(c.MysqlConf.DataSource)
	rds := redis.MustNewRedis(c.RedisConf)

	return &ServiceContext{
		Config: c,

		DB: conn,

		UserModel:      usermodel.NewUsersModel(conn),
		CartModel:      cartmodel.NewCartItemsModel(conn),
		OrderModel:     ordermodel.NewOrdersModel(conn),
		OrderItemModel: ordermodel.NewOrderItemsModel(conn),
		ProductModel:   productmodel.NewProductsModel(c.MongoConf.Uri, c.MongoConf.Database),
		ReviewModel:    reviewmodel.NewReviewsModel(c.MongoConf.Uri, c.MongoConf.Database),

		ProductCache:  cache.NewProductCache(rds),
		ReviewCache:   cache.NewReviewCache(rds),
		OrderCache:    cache.NewOrderCache(rds),
		UserInfoCache: cache.NewUserInfoCache(rds),
		CartCache:     cache.NewCartCache(rds),

		Inventory: mq.NewInventoryPublisher(c.KafkaConf.Brokers, c.KafkaConf.InventoryTopic),
		Email:     mq.NewEmailEnqueuer(c.AsynqConf.Addr, c.AsynqConf.Password, c.AsynqConf.DB),
		Payment:   gateway.NewPaymentGateway(c.PaymentConf.Endpoint, c.PaymentConf.ApiKey),

		AuthMiddleware: middleware.NewAuthMiddleware(c.AuthConf.AccessSecret, c.AuthConf.RefreshSecret).Handle,
	}
}
