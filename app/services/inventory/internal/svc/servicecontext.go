package svc

import (
	"autopile/app/services/inventory/internal/config"
	productmodel "autopile/app/dal/product"
)

type ServiceContext struct {
	Config config.Config

	ProductModel productmodel.ProductsModel
}

func NewServiceContext(c config.Config) *ServiceContext {
	return &ServiceContext{
		Config:       c,
		ProductModel: productmodel.NewProductsModel(c.MongoConf.Uri, c.MongoConf.Database),
	}
}
