package routing

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

var (
	// ErrTenantNotFound is returned by TenantStore lookups that match nothing
	ErrTenantNotFound = errors.New("tenant not found")
	// ErrNoCompanyAvailable is returned when no eligible tenant exists at all
	ErrNoCompanyAvailable = errors.New("no company available")
)

// Company is a resolved tenant destination
type Company struct {
	ID   uint
	Slug string
}

// TenantStore is the read side of tenant resolution
type TenantStore interface {
	// TenantByID loads a tenant by id, or ErrTenantNotFound.
	TenantByID(ctx context.Context, id uint) (Company, error)
	// EarliestTenant returns the oldest tenant outside the platform
	// namespace, or ErrTenantNotFound. Creation-time ascending order keeps
	// the fallback stable across calls.
	EarliestTenant(ctx context.Context) (Company, error)
}

// PreferenceStore persists the last-known-good company per principal. It is
// advisory only: a hint consulted when the profile carries no assignment,
// never an authority.
type PreferenceStore interface {
	Save(ctx context.Context, principalID uint, companyID uint) error
	Load(ctx context.Context, principalID uint) (uint, bool, error)
}

// Resolver picks the tenant a principal lands on.
type Resolver struct {
	tenants    TenantStore
	prefs      PreferenceStore
	classifier *Classifier
	logger     *zap.Logger
}

// NewResolver creates a company resolver
func NewResolver(tenants TenantStore, prefs PreferenceStore, classifier *Classifier, logger *zap.Logger) *Resolver {
	return &Resolver{
		tenants:    tenants,
		prefs:      prefs,
		classifier: classifier,
		logger:     logger.Named("routing.resolver"),
	}
}

// Resolve applies the ordered fallback chain: the profile's own company,
// then the stored preference (only when the profile has none), then the
// earliest-created eligible tenant. A tenant inside the platform namespace is
// never returned, no matter what the profile or preference point at.
func (r *Resolver) Resolve(ctx context.Context, principalID uint, companyID *uint) (Company, error) {
	if companyID != nil {
		if company, ok := r.eligible(ctx, *companyID); ok {
			return r.commit(ctx, principalID, company), nil
		}
		r.logger.Debug("profile company ineligible, falling back",
			zap.Uint("principal_id", principalID),
			zap.Uint("company_id", *companyID))
	} else if id, ok, err := r.prefs.Load(ctx, principalID); err == nil && ok {
		if company, ok := r.eligible(ctx, id); ok {
			return r.commit(ctx, principalID, company), nil
		}
	}

	company, err := r.tenants.EarliestTenant(ctx)
	if err != nil {
		if !errors.Is(err, ErrTenantNotFound) {
			r.logger.Warn("earliest tenant lookup failed", zap.Error(err))
		}
		return Company{}, ErrNoCompanyAvailable
	}
	// The store already excludes the platform namespace; re-check so the
	// invariant holds even against a misbehaving store.
	if r.classifier.IsPlatformSlug(company.Slug) {
		return Company{}, ErrNoCompanyAvailable
	}
	return r.commit(ctx, principalID, company), nil
}

// eligible loads a tenant hint and rejects it when missing or platform-slugged
func (r *Resolver) eligible(ctx context.Context, id uint) (Company, bool) {
	company, err := r.tenants.TenantByID(ctx, id)
	if err != nil {
		return Company{}, false
	}
	if r.classifier.IsPlatformSlug(company.Slug) {
		return Company{}, false
	}
	return company, true
}

// commit records the resolution as the new last-known-good company. The write
// is best-effort: the preference is a hint, not state the login depends on.
func (r *Resolver) commit(ctx context.Context, principalID uint, company Company) Company {
	if err := r.prefs.Save(ctx, principalID, company.ID); err != nil {
		r.logger.Warn("failed to save company preference",
			zap.Uint("principal_id", principalID),
			zap.Error(err))
	}
	return company
}
