package main

import (
	"log"

	"cricwordle_backend/internal/app"
	"cricwordle_backend/internal/config"
	"cricwordle_backend/pkg/configwatcher"
	"cricwordle_backend/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	// Swap the whole snapshot atomically; handlers load it per request, so
	// a reload never races an in-flight read. Settings bound at startup
	// (database, redis, server port, game rules) still require a restart.
	go configwatcher.WatchConfig("configs/config.yaml", func(newCfg *config.Config) {
		logger.Log.Info("Config file reloaded")
		application.Config.Swap(newCfg)
	})

	application.Run()
}
