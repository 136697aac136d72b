package cnst

const (
	// XLang is the header and context key carrying the client language preference
	XLang = "X-Lang"

	// LangEN is the English language code
	LangEN = "en"
	// LangES is the Spanish language code
	LangES = "es"
)

const (
	// PlatformSlugToken designates the platform namespace: any slug that
	// contains this token is treated as reserved, not a real tenant.
	PlatformSlugToken = "platform"
)

// DefaultReservedSlugs are the slugs reserved for the platform portal when no
// reserved-slug list is configured.
var DefaultReservedSlugs = []string{"platform", "admin", "system"}
