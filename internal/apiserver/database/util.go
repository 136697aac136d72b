package database

import (
	"context"
	"time"

	"github.com/sentra-hq/sentra/internal/common/config"

	"golang.org/x/crypto/bcrypt"
)

// EnsureSuperAdmin creates the configured super admin account if no
// super_admin user exists yet. Super admins carry no company assignment.
func EnsureSuperAdmin(ctx context.Context, db Database, cfg *config.SuperAdminConfig) error {
	if cfg.Email == "" || cfg.Password == "" {
		return nil
	}

	users, err := db.ListUsers(ctx)
	if err != nil {
		return err
	}
	for _, user := range users {
		if user.Role == RoleSuperAdmin {
			return nil
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return db.CreateUser(ctx, &User{
		Email:     cfg.Email,
		Password:  string(hashedPassword),
		Role:      RoleSuperAdmin,
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	})
}
