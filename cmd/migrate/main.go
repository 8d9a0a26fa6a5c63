package main

import (
	"context"
	"flag"
	"log"
	"time"

	schema "elearning/database"
	"elearning/internal/config"
	"elearning/internal/database"
	"elearning/internal/logger"

	"go.uber.org/zap"
)

func main() {
	down := flag.Bool("down", false, "roll back instead of applying migrations")
	steps := flag.Int("steps", 1, "number of migrations to roll back with -down")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	l := logger.Get()
	defer logger.Sync()

	db, err := database.NewSQLXOracleDB(cfg)
	if err != nil {
		l.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	migrator, err := database.NewMigrator(db, schema.Migrations, schema.MigrationsDir)
	if err != nil {
		l.Fatal("Failed to open migrations", zap.Error(err))
	}
	defer migrator.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if *down {
		n, err := migrator.Down(ctx, *steps)
		if err != nil {
			l.Fatal("Failed to roll back migrations", zap.Error(err))
		}
		l.Info("Migrations rolled back", zap.Int("count", n))
		return
	}

	n, err := migrator.Up(ctx)
	if err != nil {
		l.Fatal("Failed to run migrations", zap.Error(err))
	}
	l.Info("Migrations applied", zap.Int("count", n))
}
