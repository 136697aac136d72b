// Package identity implements the routing collaborators (identity provider,
// profile store, tenant store) on top of the database layer.
package identity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/sentra-hq/sentra/internal/apiserver/database"
	"github.com/sentra-hq/sentra/internal/routing"
)

// ErrInvalidCredentials is surfaced verbatim to the login UI
var ErrInvalidCredentials = errors.New("invalid email or password")

// Provider is the database-backed identity provider. Signing in verifies the
// password and records a revocable session row.
type Provider struct {
	db     database.Database
	logger *zap.Logger
}

var _ routing.IdentityProvider = (*Provider)(nil)

// NewProvider creates a database-backed identity provider
func NewProvider(db database.Database, logger *zap.Logger) *Provider {
	return &Provider{
		db:     db,
		logger: logger.Named("identity.provider"),
	}
}

// SignIn authenticates the credentials and establishes a session. Unknown
// emails, wrong passwords and deactivated accounts all collapse into the same
// rejection so the response does not reveal which one applied.
func (p *Provider) SignIn(ctx context.Context, email, password string) (routing.Session, error) {
	user, err := p.db.GetUserByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			p.logger.Error("user lookup failed", zap.Error(err))
		}
		return routing.Session{}, ErrInvalidCredentials
	}
	if !user.IsActive {
		return routing.Session{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return routing.Session{}, ErrInvalidCredentials
	}

	session := &database.AuthSession{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		CreatedAt: time.Now(),
	}
	if err := p.db.CreateAuthSession(ctx, session); err != nil {
		return routing.Session{}, err
	}

	return routing.Session{PrincipalID: user.ID, Token: session.ID}, nil
}

// SignOut revokes the session
func (p *Provider) SignOut(ctx context.Context, token string) error {
	return p.db.RevokeAuthSession(ctx, token)
}
