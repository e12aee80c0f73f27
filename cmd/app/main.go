package main

import (
	"gipnoze/config"
	"gipnoze/di"
	"gipnoze/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	bot := di.InitializeService()
	bot.Run()
}
