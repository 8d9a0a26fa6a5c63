package database

import (
	"context"
	"fmt"
	"time"

	"elearning/internal/config"
	"elearning/internal/logger"

	_ "github.com/godror/godror" // Oracle driver (OCI), registered as "godror"
	"github.com/jmoiron/sqlx"
	_ "github.com/sijms/go-ora/v2" // Oracle driver (pure Go), registered as "oracle"
	"go.uber.org/zap"
)

// NewSQLXOracleDB opens the configured Oracle driver and verifies the connection.
func NewSQLXOracleDB(cfg *config.Config) (*sqlx.DB, error) {
	driver := cfg.DB.Driver
	if driver == "" {
		driver = "oracle"
	}

	db, err := sqlx.Open(driver, cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open Oracle database with driver %s: %w", driver, err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping Oracle database: %w", err)
	}

	logger.Get().Info("Connected to Oracle database",
		zap.String("driver", driver),
		zap.String("host", cfg.DB.Host),
		zap.String("service", cfg.DB.DBName),
	)
	return db, nil
}
