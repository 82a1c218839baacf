package main

import (
	"log"

	"anoa.com/gamificationdemo/internal/bootstrap"
	"anoa.com/gamificationdemo/internal/config"
	diagnosticService "anoa.com/gamificationdemo/internal/modules/diagnostic/service"
	"anoa.com/gamificationdemo/internal/server"
	"anoa.com/gamificationdemo/pkg/database"
)

func main() {
	cfg := config.Load()

	dataset, err := bootstrap.NewDataset()
	if err != nil {
		log.Fatalf("demo dataset invalid: %v", err)
	}

	// The database is an optional collaborator: without DATABASE_URL the
	// /test diagnostic reports the module as not found, everything else
	// serves from the in-memory dataset.
	var db diagnosticService.Collaborator
	if cfg.DatabaseURL != "" {
		db = database.Connect(cfg.DatabaseURL, cfg.DatabaseName)
	}

	srv := server.NewServer(cfg, dataset, db)

	log.Printf("✅ Gamification Demo API listening on :%s (env=%s)", cfg.Port, cfg.AppEnv)
	if err := srv.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}
