package routing

// FailureKind tags a terminal bootstrap failure. The kinds are disjoint and
// each implies a different corrective action for the caller to surface.
type FailureKind string

const (
	FailureInvalidCredentials FailureKind = "invalid_credentials"
	FailureProfileLookup      FailureKind = "profile_lookup_error"
	FailureNoProfile          FailureKind = "no_profile"
	FailureSurfaceNotAllowed  FailureKind = "surface_not_allowed"
	FailureNoCompanyAvailable FailureKind = "no_company_available"
)

// Outcome is the result of one session bootstrap attempt: either a redirect
// target or a tagged failure. It is computed fresh on every attempt and never
// persisted.
type Outcome struct {
	// CompanySlug and Surface form the redirect target on success. CompanySlug
	// is empty for a platform-portal continuation.
	CompanySlug string
	Surface     Surface

	// Portal marks an explicit admin-link entry: tenant resolution was
	// bypassed and the platform-portal callback takes over from here.
	Portal bool

	// DemoFallback marks the demo-account escape hatch: authenticated with no
	// profile row, dropped onto the first available tenant.
	DemoFallback bool

	PrincipalID  uint
	Role         Role
	SessionToken string

	// Failure is empty on success.
	Failure FailureKind
	// Err carries provider detail for failures whose message is surfaced
	// verbatim (identity provider rejections).
	Err error
}

// OK reports whether the bootstrap resolved to a redirect target
func (o Outcome) OK() bool {
	return o.Failure == ""
}

// Result returns the metrics label for this outcome
func (o Outcome) Result() string {
	if o.OK() {
		return "resolved"
	}
	return string(o.Failure)
}

func failure(kind FailureKind, err error) Outcome {
	return Outcome{Failure: kind, Err: err}
}
