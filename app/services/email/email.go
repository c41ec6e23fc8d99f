package main

import (
	"flag"

	"autopile/app/services/email/internal/config"
	"autopile/app/services/email/internal/mq"
	"autopile/app/services/email/internal/svc"

	"github.com/hibiken/asynq"
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
)

var configFile = flag.String("f", "etc/email.yaml", "the config file")

func main() {
	flag.Parse()

	var c config.Config
	conf.MustLoad(*configFile, &c)
	logx.MustSetup(c.Log)
	defer logx.Close()

	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     c.AsynqConf.Addr,
			Password: c.AsynqConf.Password,
			DB:       c.AsynqConf.DB,
		},
		asynq.Config{Concurrency: c.AsynqConf.Concurrency},
	)

	logx.Info("email worker starting")
	if err := srv.Run(mq.NewMux(svc.NewServiceContext(c))); err != nil {
		logx.Errorf("email worker exited: %v", err)
	}
}
