// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package config

import (
	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/go-zero/rest"
)

type Config struct {
	rest.RestConf

	MysqlConf MysqlConf
	MongoConf MongoConf
	RedisConf redis.RedisConf
	KafkaConf KafkaConf
	AsynqConf AsynqConf
	AuthConf  AuthConf

	PaymentConf PaymentConf

	// snowflake worker id; override per instance when running more than one
	MachineId int64 `json:",default=1"`
}

type MysqlConf struct {
	DataSource string
}

type MongoConf struct {
	Uri      string
	Database string `json:",default=autopile"`
}

type KafkaConf struct {
	Brokers        []string `json:",optional"`
	InventoryTopic string   `json:",default=inventory"`
}

type AsynqConf struct {
	Addr     string `json:",optional"`
	Password string `json:",optional"`
	DB       int    `json:",default=0"`
}

type AuthConf struct {
	AccessSecret  string
	RefreshSecret string
}

type PaymentConf struct {
	Endpoint string `json:",optional"`
	ApiKey   string `json:",optional"`
	Currency string `json:",default=usd"`
}
