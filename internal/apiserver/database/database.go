package database

import (
	"context"
)

// Database defines the methods for database operations.
type Database interface {
	// Close closes the database connection.
	Close() error

	// CreateUser creates a new user.
	CreateUser(ctx context.Context, user *User) error

	// GetUserByEmail gets a user by email.
	GetUserByEmail(ctx context.Context, email string) (*User, error)

	// GetUserByID gets a user by id.
	GetUserByID(ctx context.Context, id uint) (*User, error)

	// UpdateUser updates an existing user.
	UpdateUser(ctx context.Context, user *User) error

	// DeleteUser deletes a user by id.
	DeleteUser(ctx context.Context, id uint) error

	// ListUsers lists all users.
	ListUsers(ctx context.Context) ([]*User, error)

	// CreateTenant creates a new tenant.
	CreateTenant(ctx context.Context, tenant *Tenant) error

	// GetTenantByID gets a tenant by id.
	GetTenantByID(ctx context.Context, id uint) (*Tenant, error)

	// GetTenantBySlug gets a tenant by slug.
	GetTenantBySlug(ctx context.Context, slug string) (*Tenant, error)

	// GetEarliestTenant gets the oldest tenant whose slug is neither in
	// excludeSlugs nor matches excludePattern (SQL LIKE syntax). Ties break
	// on creation time ascending so repeated calls are stable.
	GetEarliestTenant(ctx context.Context, excludeSlugs []string, excludePattern string) (*Tenant, error)

	// UpdateTenant updates an existing tenant.
	UpdateTenant(ctx context.Context, tenant *Tenant) error

	// DeleteTenant deletes a tenant by id.
	DeleteTenant(ctx context.Context, id uint) error

	// ListTenants lists all tenants.
	ListTenants(ctx context.Context) ([]*Tenant, error)

	// CreateAuthSession records a new login session.
	CreateAuthSession(ctx context.Context, session *AuthSession) error

	// RevokeAuthSession marks a login session as revoked.
	RevokeAuthSession(ctx context.Context, id string) error

	// AuthSessionActive reports whether a login session exists and is not revoked.
	AuthSessionActive(ctx context.Context, id string) (bool, error)

	// Transaction runs fn inside a database transaction.
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}
