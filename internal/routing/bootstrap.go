package routing

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrProfileNotFound is returned when no profile row exists for a principal
	ErrProfileNotFound = errors.New("profile not found")
	// ErrProfileAborted is the transient signal of a superseded in-flight
	// profile fetch; it is the only error the bootstrapper retries.
	ErrProfileAborted = errors.New("profile fetch aborted")
)

// Session is an established identity-provider session
type Session struct {
	PrincipalID uint
	Token       string
}

// Profile is a principal's stored role and tenant assignment
type Profile struct {
	Role      Role
	CompanyID *uint
}

// IdentityProvider authenticates credentials and revokes sessions
type IdentityProvider interface {
	SignIn(ctx context.Context, email, password string) (Session, error)
	SignOut(ctx context.Context, token string) error
}

// ProfileStore loads a principal's profile
type ProfileStore interface {
	Profile(ctx context.Context, principalID uint) (Profile, error)
}

// RetryPolicy bounds the retry of transiently aborted profile fetches
type RetryPolicy struct {
	MaxRetries int
	Delay      time.Duration
}

// DefaultRetryPolicy retries exactly once after a short fixed delay
var DefaultRetryPolicy = RetryPolicy{MaxRetries: 1, Delay: 250 * time.Millisecond}

func (p RetryPolicy) normalized() RetryPolicy {
	if p.MaxRetries <= 0 {
		p.MaxRetries = DefaultRetryPolicy.MaxRetries
	}
	if p.Delay <= 0 {
		p.Delay = DefaultRetryPolicy.Delay
	}
	return p
}

// DemoAccount is the sandbox escape hatch: when enabled, the designated email
// may log in without a profile row and lands on the first available tenant.
type DemoAccount struct {
	Enabled bool
	Email   string
}

// Input is one bootstrap request
type Input struct {
	Email    string
	Password string
	// Surface is the application surface the user asked for, passed
	// explicitly by the caller rather than read from ambient state.
	Surface Surface
	// AdminLink is true when the login came through the distinguished
	// admin-link entry point.
	AdminLink bool
}

// Bootstrapper orchestrates one login attempt into a single redirect decision:
// authenticate, fetch the profile, authorize the requested surface, then
// resolve the destination tenant.
type Bootstrapper struct {
	identity IdentityProvider
	profiles ProfileStore
	resolver *Resolver
	retry    RetryPolicy
	demo     DemoAccount
	logger   *zap.Logger
}

// NewBootstrapper creates a session bootstrapper
func NewBootstrapper(identity IdentityProvider, profiles ProfileStore, resolver *Resolver, retry RetryPolicy, demo DemoAccount, logger *zap.Logger) *Bootstrapper {
	return &Bootstrapper{
		identity: identity,
		profiles: profiles,
		resolver: resolver,
		retry:    retry.normalized(),
		demo:     demo,
		logger:   logger.Named("routing.bootstrap"),
	}
}

// Bootstrap runs one attempt to completion. Failures come back as tagged
// outcomes, never as errors: the caller owns the UX for each kind. Given the
// same inputs and unchanged backing data the outcome is identical on every
// call, so a reload after redirect cannot oscillate.
func (b *Bootstrapper) Bootstrap(ctx context.Context, in Input) Outcome {
	log := b.logger.With(
		zap.String("attempt_id", uuid.NewString()),
		zap.String("email", in.Email),
		zap.String("surface", string(in.Surface)),
	)

	sess, err := b.identity.SignIn(ctx, in.Email, in.Password)
	if err != nil {
		log.Info("sign-in rejected", zap.Error(err))
		return failure(FailureInvalidCredentials, err)
	}

	prof, err := b.fetchProfile(ctx, sess.PrincipalID)
	switch {
	case err == nil:
	case errors.Is(err, ErrProfileNotFound):
		if b.demo.Enabled && strings.EqualFold(in.Email, b.demo.Email) {
			return b.demoFallback(ctx, sess, in, log)
		}
		log.Warn("authenticated principal has no profile", zap.Uint("principal_id", sess.PrincipalID))
		return failure(FailureNoProfile, err)
	default:
		log.Error("profile lookup failed", zap.Error(err))
		return failure(FailureProfileLookup, err)
	}

	// Authorization strictly precedes routing: a principal who is not allowed
	// on the requested surface is signed out before any tenant is resolved,
	// so the failure leaks nothing about tenant assignment.
	if !IsAllowed(prof.Role, in.Surface) {
		if serr := b.identity.SignOut(ctx, sess.Token); serr != nil {
			log.Warn("failed to revoke session after denied surface", zap.Error(serr))
		}
		log.Info("surface not allowed for role", zap.String("role", string(prof.Role)))
		return Outcome{Failure: FailureSurfaceNotAllowed, Role: prof.Role}
	}

	if prof.Role == RoleSuperAdmin {
		return b.resolveSuperAdmin(ctx, sess, prof, in, log)
	}

	company, err := b.resolver.Resolve(ctx, sess.PrincipalID, prof.CompanyID)
	if err != nil {
		log.Warn("no company available", zap.Uint("principal_id", sess.PrincipalID))
		return Outcome{Failure: FailureNoCompanyAvailable, Role: prof.Role}
	}

	log.Info("session resolved",
		zap.String("company", company.Slug),
		zap.String("role", string(prof.Role)))
	return Outcome{
		CompanySlug:  company.Slug,
		Surface:      in.Surface,
		PrincipalID:  sess.PrincipalID,
		Role:         prof.Role,
		SessionToken: sess.Token,
	}
}

// fetchProfile loads the profile, retrying the transient aborted signal per
// the configured policy. Any other error is terminal.
func (b *Bootstrapper) fetchProfile(ctx context.Context, principalID uint) (Profile, error) {
	var lastErr error
	for attempt := 0; attempt <= b.retry.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(b.retry.Delay):
			case <-ctx.Done():
				return Profile{}, ctx.Err()
			}
		}
		prof, err := b.profiles.Profile(ctx, principalID)
		if err == nil {
			return prof, nil
		}
		if !errors.Is(err, ErrProfileAborted) {
			return Profile{}, err
		}
		lastErr = err
	}
	return Profile{}, lastErr
}

// demoFallback lands the demo account on the first available tenant with the
// surface it asked for.
func (b *Bootstrapper) demoFallback(ctx context.Context, sess Session, in Input, log *zap.Logger) Outcome {
	company, err := b.resolver.Resolve(ctx, sess.PrincipalID, nil)
	if err != nil {
		return Outcome{Failure: FailureNoCompanyAvailable}
	}
	log.Info("demo account fallback", zap.String("company", company.Slug))
	return Outcome{
		CompanySlug:  company.Slug,
		Surface:      in.Surface,
		PrincipalID:  sess.PrincipalID,
		DemoFallback: true,
		SessionToken: sess.Token,
	}
}
