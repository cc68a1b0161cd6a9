package main

import (
	"lrukv/internal/config"
	"lrukv/internal/server"
	"lrukv/internal/shard"
	"lrukv/pkg/logger"
)

func main() {
	// 初始化配置
	conf, err := config.NewConfig(".")
	if err != nil {
		logger.Fatal("load config", "error", err)
	}

	if err := logger.InitLogger(conf.LogLevel, conf.LogFile); err != nil {
		logger.Fatal("init logger", "error", err)
	}
	defer logger.Sync()
	logger.Info("config loaded", "capacity", conf.Capacity, "shards", conf.Shards, "addr", conf.Addr)

	store, err := shard.New(conf.Capacity, conf.Shards)
	if err != nil {
		logger.Fatal("create store", "error", err)
	}

	if err := server.New(store).Run(conf.Addr); err != nil {
		logger.Fatal("server stopped", "error", err)
	}
}
