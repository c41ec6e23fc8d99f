package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"autopile/app/services/inventory/internal/config"
	"autopile/app/services/inventory/internal/mq"
	"autopile/app/services/inventory/internal/svc"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
)

var configFile = flag.String("f", "etc/inventory.yaml", "the config file")

func main() {
	flag.Parse()

	var c config.Config
	conf.MustLoad(*configFile, &c)
	logx.MustSetup(c.Log)
	defer logx.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		<-ch
		cancel()
	}()

	logx.Info("inventory worker starting")
	if err := mq.StartStockConsumer(ctx, svc.NewServiceContext(c)); err != nil {
		logx.Errorf("stock consumer exited: %v", err)
	}
	logx.Info("inventory worker stopped")
}
