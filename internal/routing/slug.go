package routing

import (
	"strings"

	"github.com/sentra-hq/sentra/internal/common/cnst"
)

// Classifier decides whether a company slug belongs to the reserved platform
// namespace rather than a real tenant.
type Classifier struct {
	reserved map[string]struct{}
	token    string
}

// NewClassifier builds a classifier from a reserved-slug list. An empty list
// falls back to the documented defaults. Entries are trimmed and lowercased.
func NewClassifier(reserved []string) *Classifier {
	if len(reserved) == 0 {
		reserved = cnst.DefaultReservedSlugs
	}
	set := make(map[string]struct{}, len(reserved))
	for _, slug := range reserved {
		slug = strings.ToLower(strings.TrimSpace(slug))
		if slug == "" {
			continue
		}
		set[slug] = struct{}{}
	}
	return &Classifier{reserved: set, token: cnst.PlatformSlugToken}
}

// ParseReservedSlugs splits a comma-separated reserved-slug list
func ParseReservedSlugs(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// IsPlatformSlug reports whether slug is reserved for the platform portal.
// A slug matches if it equals a reserved entry (case-insensitively) or merely
// contains the platform namespace token. The substring rule deliberately
// over-matches: anything resembling the platform namespace is kept out of
// tenant resolution (see DESIGN.md on the false-positive trade-off).
func (c *Classifier) IsPlatformSlug(slug string) bool {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		return false
	}
	if _, ok := c.reserved[slug]; ok {
		return true
	}
	return strings.Contains(slug, c.token)
}

// Reserved returns the configured reserved slugs, for store-level exclusion
func (c *Classifier) Reserved() []string {
	out := make([]string, 0, len(c.reserved))
	for slug := range c.reserved {
		out = append(out, slug)
	}
	return out
}

// TokenPattern returns the SQL LIKE pattern matching the namespace token
func (c *Classifier) TokenPattern() string {
	return "%" + c.token + "%"
}
