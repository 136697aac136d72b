package routing

import "strings"

// Role is the closed set of principal roles. Unknown values survive parsing
// so that stale profiles still resolve to the most restrictive surface set.
type Role string

const (
	RoleEmployee     Role = "employee"
	RoleManager      Role = "manager"
	RoleCompanyAdmin Role = "company_admin"
	RoleSuperAdmin   Role = "super_admin"
)

// ParseRole normalizes a stored role string
func ParseRole(s string) Role {
	return Role(strings.ToLower(strings.TrimSpace(s)))
}

// Surface is an application surface a session can land on
type Surface string

const (
	// SurfaceDashboard is the management back-office UI
	SurfaceDashboard Surface = "dashboard"
	// SurfaceApp is the frontline employee UI
	SurfaceApp Surface = "app"
)

// ParseSurface validates a requested surface string
func ParseSurface(s string) (Surface, bool) {
	switch Surface(strings.ToLower(strings.TrimSpace(s))) {
	case SurfaceDashboard:
		return SurfaceDashboard, true
	case SurfaceApp:
		return SurfaceApp, true
	default:
		return "", false
	}
}

// AllowedSurfaces returns the application surfaces a role may enter. Super
// admins reach the platform portal only through the admin-link entry path,
// never through this table.
func AllowedSurfaces(role Role) []Surface {
	switch role {
	case RoleEmployee:
		return []Surface{SurfaceApp}
	case RoleManager, RoleCompanyAdmin:
		return []Surface{SurfaceDashboard, SurfaceApp}
	case RoleSuperAdmin:
		return []Surface{SurfaceDashboard}
	default:
		return []Surface{SurfaceDashboard}
	}
}

// IsAllowed reports whether the role may enter the requested surface
func IsAllowed(role Role, surface Surface) bool {
	for _, s := range AllowedSurfaces(role) {
		if s == surface {
			return true
		}
	}
	return false
}
