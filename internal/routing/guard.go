package routing

import (
	"context"

	"go.uber.org/zap"
)

// resolveSuperAdmin applies the admin-entry rule for the highest-privilege
// role. It runs before general company resolution: without it a super admin
// whose profile or preference points at a platform slug could land on the
// portal through an ordinary login.
//
// Through the admin link, tenant resolution is bypassed entirely and the
// platform-portal callback takes over. Through the normal login form, a super
// admin is dropped into a real tenant dashboard, indistinguishable in shape
// from a company admin's destination.
func (b *Bootstrapper) resolveSuperAdmin(ctx context.Context, sess Session, prof Profile, in Input, log *zap.Logger) Outcome {
	if in.AdminLink {
		log.Info("super admin entering platform portal")
		return Outcome{
			Surface:      SurfaceDashboard,
			Portal:       true,
			PrincipalID:  sess.PrincipalID,
			Role:         prof.Role,
			SessionToken: sess.Token,
		}
	}

	company, err := b.resolver.Resolve(ctx, sess.PrincipalID, prof.CompanyID)
	if err != nil {
		log.Warn("no tenant available for super admin login")
		return Outcome{Failure: FailureNoCompanyAvailable, Role: prof.Role}
	}

	log.Info("super admin routed to tenant dashboard", zap.String("company", company.Slug))
	return Outcome{
		CompanySlug:  company.Slug,
		Surface:      SurfaceDashboard,
		PrincipalID:  sess.PrincipalID,
		Role:         prof.Role,
		SessionToken: sess.Token,
	}
}
