package database

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sentra-hq/sentra/internal/common/config"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// SQLite implements the Database interface using SQLite
type SQLite struct {
	store
	cfg *config.DatabaseConfig
}

// NewSQLite creates a new SQLite instance
func NewSQLite(cfg *config.DatabaseConfig) (Database, error) {
	if !strings.HasPrefix(cfg.DBName, ":memory:") && !strings.HasPrefix(cfg.DBName, "file:") {
		dir := filepath.Dir(cfg.DBName)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	gormDB, err := gorm.Open(sqlite.Open(cfg.DBName), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := migrate(gormDB); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &SQLite{store: store{db: gormDB}, cfg: cfg}, nil
}
