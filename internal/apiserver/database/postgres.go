package database

import (
	"fmt"

	"github.com/sentra-hq/sentra/internal/common/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Postgres implements the Database interface using PostgreSQL
type Postgres struct {
	store
	cfg *config.DatabaseConfig
}

// NewPostgres creates a new Postgres instance
func NewPostgres(cfg *config.DatabaseConfig) (Database, error) {
	gormDB, err := gorm.Open(postgres.Open(cfg.GetDSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := migrate(gormDB); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Postgres{store: store{db: gormDB}, cfg: cfg}, nil
}
