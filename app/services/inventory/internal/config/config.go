package config

import (
	"github.com/zeromicro/go-zero/core/logx"
)

type Config struct {
	Log logx.LogConf

	MongoConf MongoConf
	KafkaConf KafkaConf
}

type MongoConf struct {
	Uri      string
	Database string `json:",default=autopile"`
}

type KafkaConf struct {
	Brokers        []string
	Group          string `json:",default=inventory-workers"`
	InventoryTopic string `json:",default=inventory"`
}
