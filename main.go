// @title EarlyLedge API
// @version 1.0
// @description Backend for the EarlyLedge developmental activity tracker.

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"earlyledge_backend/internal/app"
	"earlyledge_backend/internal/config"
	"earlyledge_backend/pkg/configwatcher"
	"earlyledge_backend/pkg/logger"
	"flag"
	"log"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "run database migration and exit")
	migrate := flag.Bool("migrate", false, "force database migration on startup")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *migrateOnly {
		log.Println("Database migration finished, exiting")
		return
	}

	go configwatcher.WatchConfig("configs/config.yaml", cfg, func(raw interface{}) {
		newCfg, ok := raw.(*config.Config)
		if !ok {
			return
		}
		newCfg.ForceMigrate = cfg.ForceMigrate
		newCfg.MigrateOnly = cfg.MigrateOnly
		*cfg = *newCfg
		logger.Log.Info("Configuration reloaded")
	})

	application.Run()
}
