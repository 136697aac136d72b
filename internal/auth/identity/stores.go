package identity

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/sentra-hq/sentra/internal/apiserver/database"
	"github.com/sentra-hq/sentra/internal/routing"
)

// Profiles adapts the database layer to routing.ProfileStore
type Profiles struct {
	db database.Database
}

var _ routing.ProfileStore = (*Profiles)(nil)

// NewProfiles creates a database-backed profile store
func NewProfiles(db database.Database) *Profiles {
	return &Profiles{db: db}
}

// Profile loads a principal's role and company assignment. A cancelled or
// superseded request maps to the transient aborted signal the bootstrapper
// may retry; a missing row maps to ErrProfileNotFound.
func (p *Profiles) Profile(ctx context.Context, principalID uint) (routing.Profile, error) {
	user, err := p.db.GetUserByID(ctx, principalID)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return routing.Profile{}, routing.ErrProfileNotFound
		case errors.Is(err, context.Canceled) || strings.Contains(err.Error(), "aborted"):
			return routing.Profile{}, routing.ErrProfileAborted
		default:
			return routing.Profile{}, err
		}
	}
	return routing.Profile{
		Role:      routing.ParseRole(string(user.Role)),
		CompanyID: user.CompanyID,
	}, nil
}

// Tenants adapts the database layer to routing.TenantStore. The classifier
// supplies the exclusion list and LIKE pattern so the platform namespace is
// filtered out at the query level.
type Tenants struct {
	db         database.Database
	classifier *routing.Classifier
}

var _ routing.TenantStore = (*Tenants)(nil)

// NewTenants creates a database-backed tenant store
func NewTenants(db database.Database, classifier *routing.Classifier) *Tenants {
	return &Tenants{db: db, classifier: classifier}
}

func (t *Tenants) TenantByID(ctx context.Context, id uint) (routing.Company, error) {
	tenant, err := t.db.GetTenantByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return routing.Company{}, routing.ErrTenantNotFound
		}
		return routing.Company{}, err
	}
	return routing.Company{ID: tenant.ID, Slug: tenant.Slug}, nil
}

func (t *Tenants) EarliestTenant(ctx context.Context) (routing.Company, error) {
	tenant, err := t.db.GetEarliestTenant(ctx, t.classifier.Reserved(), t.classifier.TokenPattern())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return routing.Company{}, routing.ErrTenantNotFound
		}
		return routing.Company{}, err
	}
	return routing.Company{ID: tenant.ID, Slug: tenant.Slug}, nil
}
