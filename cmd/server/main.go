package main

import (
	"estoque-backend/internal/config"
	"estoque-backend/internal/database"
	"estoque-backend/internal/router"

	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := config.Load(logger)

	db, err := database.Init(cfg)
	if err != nil {
		logger.Fatal("database init failed", zap.Error(err))
	}

	app := router.New(db, logger, cfg.CORSOrigins)

	logger.Info("server listening", zap.String("port", cfg.HTTPPort))
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
