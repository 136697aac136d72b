package identity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/sentra-hq/sentra/internal/apiserver/database"
	"github.com/sentra-hq/sentra/internal/common/config"
	"github.com/sentra-hq/sentra/internal/routing"
)

func newTestDB(t *testing.T) database.Database {
	t.Helper()
	db, err := database.NewSQLite(&config.DatabaseConfig{Type: "sqlite", DBName: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func seedUser(t *testing.T, db database.Database, email, password string, role database.UserRole, companyID *uint, active bool) *database.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := &database.User{
		Email:     email,
		Password:  string(hash),
		Role:      role,
		CompanyID: companyID,
		IsActive:  active,
	}
	require.NoError(t, db.CreateUser(context.Background(), user))
	return user
}

func TestSignIn(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "m@acme.test", "secret", database.RoleManager, nil, true)
	p := NewProvider(db, zap.NewNop())

	sess, err := p.SignIn(context.Background(), "m@acme.test", "secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, sess.PrincipalID)
	assert.NotEmpty(t, sess.Token)

	active, err := db.AuthSessionActive(context.Background(), sess.Token)
	require.NoError(t, err)
	assert.True(t, active)
}

func TestSignInRejections(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "m@acme.test", "secret", database.RoleManager, nil, true)
	seedUser(t, db, "gone@acme.test", "secret", database.RoleEmployee, nil, false)
	p := NewProvider(db, zap.NewNop())
	ctx := context.Background()

	// Unknown email, wrong password and deactivated account are
	// indistinguishable from the outside
	_, err := p.SignIn(ctx, "nobody@acme.test", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = p.SignIn(ctx, "m@acme.test", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = p.SignIn(ctx, "gone@acme.test", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignOut(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "m@acme.test", "secret", database.RoleManager, nil, true)
	p := NewProvider(db, zap.NewNop())
	ctx := context.Background()

	sess, err := p.SignIn(ctx, "m@acme.test", "secret")
	require.NoError(t, err)

	require.NoError(t, p.SignOut(ctx, sess.Token))
	active, err := db.AuthSessionActive(ctx, sess.Token)
	require.NoError(t, err)
	assert.False(t, active)
}

func TestProfiles(t *testing.T) {
	db := newTestDB(t)
	companyID := uint(7)
	user := seedUser(t, db, "m@acme.test", "secret", database.RoleCompanyAdmin, &companyID, true)
	profiles := NewProfiles(db)
	ctx := context.Background()

	prof, err := profiles.Profile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, routing.RoleCompanyAdmin, prof.Role)
	require.NotNil(t, prof.CompanyID)
	assert.Equal(t, companyID, *prof.CompanyID)

	_, err = profiles.Profile(ctx, 9999)
	assert.ErrorIs(t, err, routing.ErrProfileNotFound)
}

func TestProfileCancelledMapsToAborted(t *testing.T) {
	db := newTestDB(t)
	profiles := NewProfiles(db)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := profiles.Profile(ctx, 1)
	assert.ErrorIs(t, err, routing.ErrProfileAborted)
}

func TestTenantsExcludePlatformNamespace(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	require.NoError(t, db.CreateTenant(ctx, &database.Tenant{Name: "Platform", Slug: "platform", IsActive: true}))
	require.NoError(t, db.CreateTenant(ctx, &database.Tenant{Name: "Acme", Slug: "acme", IsActive: true}))

	tenants := NewTenants(db, routing.NewClassifier(nil))

	company, err := tenants.EarliestTenant(ctx)
	require.NoError(t, err)
	assert.Equal(t, "acme", company.Slug)

	got, err := tenants.TenantByID(ctx, company.ID)
	require.NoError(t, err)
	assert.Equal(t, company, got)

	_, err = tenants.TenantByID(ctx, 9999)
	assert.ErrorIs(t, err, routing.ErrTenantNotFound)
}

func TestTenantsEmpty(t *testing.T) {
	db := newTestDB(t)
	tenants := NewTenants(db, routing.NewClassifier(nil))

	_, err := tenants.EarliestTenant(context.Background())
	assert.ErrorIs(t, err, routing.ErrTenantNotFound)
}
