// @title Pretexta API
// @version 1.0.0
// @description Backend for the Pretexta social engineering awareness lab.

// @host localhost:8001
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"flag"
	"log"
	"pretexta_backend/internal/app"
	"pretexta_backend/internal/config"
	"pretexta_backend/pkg/configwatcher"
	"pretexta_backend/pkg/database"
	"pretexta_backend/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	configDir := flag.String("config", "configs", "directory holding config.yaml")
	migrateOnly := flag.Bool("migrate-only", false, "run database migrations and exit")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *migrateOnly {
		logger.InitLogger(cfg)
		defer logger.Log.Sync()
		db, err := database.InitDB(&cfg.Database, cfg.Server.Mode)
		if err != nil {
			logger.Log.Fatal("Migration failed", zap.Error(err))
		}
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
		logger.Log.Info("Database migration finished, exiting")
		return
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.File != "" {
		go func() {
			if err := configwatcher.WatchConfig(ctx, cfg.File, application.ApplyConfig); err != nil {
				logger.Log.Error("Config watcher stopped", zap.Error(err))
			}
		}()
	}

	application.Run()
}
