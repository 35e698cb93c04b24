package main

import (
	"context"
	"os"

	"bikeshare-explorer/config"
	"bikeshare-explorer/services"
	"bikeshare-explorer/storage"
	"bikeshare-explorer/utils"
)

func main() {
	cfg := config.Load()
	logger := utils.NewLogger(utils.ParseLevel(cfg.LogLevel))

	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration: %v", err)
		os.Exit(1)
	}

	logger.Info("=== Bikeshare Explorer starting ===")
	logger.Info("Config — data dir: %s | page size: %d | max prompt attempts: %d",
		cfg.DataDir, cfg.RawPageSize, cfg.PromptMaxAttempts)

	reader := storage.NewTripReader(cfg, logger)
	session := services.NewSession(cfg, reader, os.Stdin, os.Stdout, logger)

	if err := session.Run(context.Background()); err != nil {
		logger.Error("Session failed: %v", err)
		os.Exit(1)
	}
}
