// Package preference persists the last-known-good company per principal. The
// slot is advisory, last-writer-wins: it speeds up repeated bootstraps but is
// never treated as authoritative over the profile or the tenant store.
package preference

import "context"

// Store is a per-principal single-slot company preference
type Store interface {
	// Save records companyID as the principal's last-known-good company.
	Save(ctx context.Context, principalID uint, companyID uint) error

	// Load returns the stored company id, if any.
	Load(ctx context.Context, principalID uint) (uint, bool, error)

	// Close releases any resources held by the store.
	Close() error
}
