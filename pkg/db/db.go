package db

import (
	"database/sql"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/doodlesbykumbi/story-in-go/pkg/config"
)

// Config holds database connection configuration
type Config struct {
	// URL is the database connection URL
	URL string
	// Debug enables SQL query logging
	Debug bool
	// Conn is an already opened connection. When set, URL is ignored.
	Conn *sql.DB
}

// ConfigFrom builds a Config from the application settings.
func ConfigFrom(s *config.Settings) Config {
	return Config{
		URL:   s.DatabaseURI(),
		Debug: s.Debug(),
	}
}

// Connect establishes a database connection.
func Connect(cfg Config) (*gorm.DB, error) {
	if cfg.Conn == nil && cfg.URL == "" {
		return nil, fmt.Errorf("DATABASE_URI is required")
	}

	logMode := logger.Silent
	if cfg.Debug {
		logMode = logger.Info
	}

	pgCfg := postgres.Config{
		DSN:                  cfg.URL,
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}
	if cfg.Conn != nil {
		pgCfg = postgres.Config{
			Conn:                 cfg.Conn,
			PreferSimpleProtocol: true,
		}
	}

	db, err := gorm.Open(
		postgres.New(pgCfg),
		&gorm.Config{
			Logger: logger.Default.LogMode(logMode),
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}
