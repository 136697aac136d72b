package routing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockIdentity struct {
	session      Session
	signInErr    error
	signOutCalls int
}

func (m *mockIdentity) SignIn(_ context.Context, _, _ string) (Session, error) {
	if m.signInErr != nil {
		return Session{}, m.signInErr
	}
	return m.session, nil
}

func (m *mockIdentity) SignOut(_ context.Context, _ string) error {
	m.signOutCalls++
	return nil
}

// mockProfiles replays a scripted sequence of results, one per call
type mockProfiles struct {
	profile Profile
	errs    []error
	calls   int
}

func (m *mockProfiles) Profile(_ context.Context, _ uint) (Profile, error) {
	defer func() { m.calls++ }()
	if m.calls < len(m.errs) && m.errs[m.calls] != nil {
		return Profile{}, m.errs[m.calls]
	}
	return m.profile, nil
}

type fixture struct {
	identity *mockIdentity
	profiles *mockProfiles
	tenants  *mockTenantStore
	prefs    *mockPrefStore
	demo     DemoAccount
}

func (f *fixture) bootstrapper() *Bootstrapper {
	resolver := NewResolver(f.tenants, f.prefs, NewClassifier(nil), zap.NewNop())
	retry := RetryPolicy{MaxRetries: 1, Delay: time.Millisecond}
	return NewBootstrapper(f.identity, f.profiles, resolver, retry, f.demo, zap.NewNop())
}

func newFixture() *fixture {
	return &fixture{
		identity: &mockIdentity{session: Session{PrincipalID: 1, Token: "tok-1"}},
		profiles: &mockProfiles{profile: Profile{Role: RoleManager, CompanyID: uintPtr(3)}},
		tenants:  &mockTenantStore{tenants: map[uint]Company{3: {ID: 3, Slug: "acme"}}},
		prefs:    &mockPrefStore{},
	}
}

func TestBootstrapResolved(t *testing.T) {
	f := newFixture()
	out := f.bootstrapper().Bootstrap(context.Background(), Input{
		Email: "m@acme.test", Password: "pw", Surface: SurfaceDashboard,
	})

	require.True(t, out.OK())
	assert.Equal(t, "acme", out.CompanySlug)
	assert.Equal(t, SurfaceDashboard, out.Surface)
	assert.Equal(t, RoleManager, out.Role)
	assert.Equal(t, "tok-1", out.SessionToken)
	assert.False(t, out.Portal)
	assert.Equal(t, "resolved", out.Result())
}

func TestBootstrapInvalidCredentials(t *testing.T) {
	f := newFixture()
	rejection := errors.New("invalid email or password")
	f.identity.signInErr = rejection

	out := f.bootstrapper().Bootstrap(context.Background(), Input{Surface: SurfaceApp})

	assert.Equal(t, FailureInvalidCredentials, out.Failure)
	assert.ErrorIs(t, out.Err, rejection)
	assert.Zero(t, f.profiles.calls)
}

func TestBootstrapSurfaceNotAllowedRevokesBeforeRouting(t *testing.T) {
	f := newFixture()
	f.profiles.profile = Profile{Role: RoleEmployee, CompanyID: uintPtr(3)}

	out := f.bootstrapper().Bootstrap(context.Background(), Input{
		Email: "e@acme.test", Password: "pw", Surface: SurfaceDashboard,
	})

	assert.Equal(t, FailureSurfaceNotAllowed, out.Failure)
	assert.Equal(t, 1, f.identity.signOutCalls)
	// Routing never ran, so the failure reveals nothing about tenant state
	assert.Zero(t, f.tenants.byIDCalls)
	assert.Zero(t, f.tenants.earliestCalls)
	assert.Empty(t, out.SessionToken)
}

func TestBootstrapRetriesAbortedOnce(t *testing.T) {
	f := newFixture()
	f.profiles.errs = []error{ErrProfileAborted}

	out := f.bootstrapper().Bootstrap(context.Background(), Input{
		Email: "m@acme.test", Password: "pw", Surface: SurfaceApp,
	})

	require.True(t, out.OK())
	assert.Equal(t, 2, f.profiles.calls)
}

func TestBootstrapAbortedTwiceIsTerminal(t *testing.T) {
	f := newFixture()
	f.profiles.errs = []error{ErrProfileAborted, ErrProfileAborted}

	out := f.bootstrapper().Bootstrap(context.Background(), Input{Surface: SurfaceApp})

	assert.Equal(t, FailureProfileLookup, out.Failure)
	assert.Equal(t, 2, f.profiles.calls)
}

func TestBootstrapProfileLookupErrorNotRetried(t *testing.T) {
	f := newFixture()
	f.profiles.errs = []error{errors.New("connection refused")}

	out := f.bootstrapper().Bootstrap(context.Background(), Input{Surface: SurfaceApp})

	assert.Equal(t, FailureProfileLookup, out.Failure)
	assert.Equal(t, 1, f.profiles.calls)
}

func TestBootstrapNoProfile(t *testing.T) {
	f := newFixture()
	f.profiles.errs = []error{ErrProfileNotFound, ErrProfileNotFound}

	out := f.bootstrapper().Bootstrap(context.Background(), Input{
		Email: "ghost@acme.test", Surface: SurfaceApp,
	})

	assert.Equal(t, FailureNoProfile, out.Failure)
	// Not-found is terminal, not transient
	assert.Equal(t, 1, f.profiles.calls)
}

func TestBootstrapDemoFallback(t *testing.T) {
	f := newFixture()
	f.profiles.errs = []error{ErrProfileNotFound}
	f.tenants.earliest = Company{ID: 2, Slug: "globex"}
	f.demo = DemoAccount{Enabled: true, Email: "Demo@Example.com"}

	out := f.bootstrapper().Bootstrap(context.Background(), Input{
		Email: "demo@example.com", Password: "pw", Surface: SurfaceApp,
	})

	require.True(t, out.OK())
	assert.True(t, out.DemoFallback)
	assert.Equal(t, "globex", out.CompanySlug)
	assert.Equal(t, SurfaceApp, out.Surface)
}

func TestBootstrapDemoFallbackDisabled(t *testing.T) {
	f := newFixture()
	f.profiles.errs = []error{ErrProfileNotFound}
	f.demo = DemoAccount{Enabled: false, Email: "demo@example.com"}

	out := f.bootstrapper().Bootstrap(context.Background(), Input{
		Email: "demo@example.com", Surface: SurfaceApp,
	})

	assert.Equal(t, FailureNoProfile, out.Failure)
}

func TestBootstrapNoCompanyAvailable(t *testing.T) {
	f := newFixture()
	f.profiles.profile = Profile{Role: RoleManager}
	f.tenants = &mockTenantStore{earliestErr: ErrTenantNotFound}

	out := f.bootstrapper().Bootstrap(context.Background(), Input{Surface: SurfaceApp})

	assert.Equal(t, FailureNoCompanyAvailable, out.Failure)
	assert.Equal(t, RoleManager, out.Role)
}

func TestBootstrapSuperAdminViaAdminLink(t *testing.T) {
	f := newFixture()
	f.profiles.profile = Profile{Role: RoleSuperAdmin}

	out := f.bootstrapper().Bootstrap(context.Background(), Input{
		Email: "root@sentra.test", Surface: SurfaceDashboard, AdminLink: true,
	})

	require.True(t, out.OK())
	assert.True(t, out.Portal)
	assert.Empty(t, out.CompanySlug)
	assert.Equal(t, SurfaceDashboard, out.Surface)
	// Tenant resolution is bypassed entirely
	assert.Zero(t, f.tenants.byIDCalls)
	assert.Zero(t, f.tenants.earliestCalls)
}

func TestBootstrapSuperAdminNormalLogin(t *testing.T) {
	f := newFixture()
	f.profiles.profile = Profile{Role: RoleSuperAdmin}
	f.tenants.earliest = Company{ID: 2, Slug: "globex"}

	out := f.bootstrapper().Bootstrap(context.Background(), Input{
		Email: "root@sentra.test", Surface: SurfaceDashboard,
	})

	require.True(t, out.OK())
	assert.False(t, out.Portal)
	assert.Equal(t, "globex", out.CompanySlug)
	assert.Equal(t, SurfaceDashboard, out.Surface)
}

func TestBootstrapIdempotent(t *testing.T) {
	f := newFixture()
	b := f.bootstrapper()
	in := Input{Email: "m@acme.test", Password: "pw", Surface: SurfaceApp}

	first := b.Bootstrap(context.Background(), in)
	second := b.Bootstrap(context.Background(), in)

	assert.Equal(t, first, second)
}
