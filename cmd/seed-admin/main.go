package main

import (
	"context"

	"voter-pledge-admin/cmd/bootstrap"
	"voter-pledge-admin/config"
	"voter-pledge-admin/internal/infrastructure/database"
	"voter-pledge-admin/internal/repository"
	"voter-pledge-admin/internal/seeder"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	bootstrap.SetupLogger(cfg.App.LogLevel)
	log := logrus.StandardLogger()

	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Env)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	if cfg.DB.AutoMigrate {
		if err := database.RunMigrations(db, log); err != nil {
			logrus.Fatalf("Failed to run migrations: %v", err)
		}
	}

	if _, err := seeder.SeedAdmin(context.Background(), db, log, repository.NewUserRepository(), cfg.Admin); err != nil {
		logrus.Fatalf("Failed to seed admin user: %v", err)
	}
}
