package main

import (
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"storedesk/internal/config"
	"storedesk/internal/logger"
)

func main() {
	// Load environment variables from .env file
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Init(logger.Config{Env: cfg.Log.Env, Level: cfg.Log.Level})
	defer logger.Sync()

	if err := newRootCmd(cfg).Execute(); err != nil {
		logger.L().Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}
