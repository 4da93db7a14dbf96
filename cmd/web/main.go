package main

import (
	"ecomatch_backend/internal/app"
	"ecomatch_backend/internal/config"
	"ecomatch_backend/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load configuration", "error", err.Error())
	}

	application, err := app.New(cfg)
	if err != nil {
		logger.Fatal("failed to start application", "error", err.Error())
	}
	defer application.Close()

	if err := application.Run(); err != nil {
		logger.Fatal("server stopped", "error", err.Error())
	}
}
