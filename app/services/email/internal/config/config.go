package config

import (
	"github.com/zeromicro/go-zero/core/logx"
)

type Config struct {
	Log logx.LogConf

	AsynqConf  AsynqConf
	SenderConf SenderConf
}

type AsynqConf struct {
	Addr        string
	Password    string `json:",optional"`
	DB          int    `json:",default=0"`
	Concurrency int    `json:",default=10"`
}

type SenderConf struct {
	// webhook of the mail delivery service; empty means log-only (dev)
	Endpoint string `json:",optional"`
	ApiKey   string `json:",optional"`
	From     string `json:",default=no-reply@autopile.dev"`
}
