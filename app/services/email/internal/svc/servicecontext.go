package svc

import (
	"autopile/app/services/email/internal/config"
	"autopile/app/services/email/internal/sender"
)

type ServiceContext struct {
	Config config.Config

	Sender sender.Sender
}

func NewServiceContext(c config.Config) *ServiceContext {
	return &ServiceContext{
		Config: c,
		Sender: sender.New(c.SenderConf.Endpoint, c.SenderConf.ApiKey, c.SenderConf.From),
	}
}
