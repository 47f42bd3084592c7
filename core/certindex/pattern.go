package certindex

import "strings"

// Pattern is a domain name a certificate covers: either an exact FQDN
// ("api.example.com") or a single-label wildcard ("*.example.com").
// Exact and wildcard patterns are distinct keys; a wildcard never covers
// its own apex.
type Pattern string

const wildcardPrefix = "*."

// ParsePattern validates and normalizes a SAN entry into a Pattern.
// Entries are lowercased and trimmed. Returns false for empty entries,
// bare wildcards, and wildcards anywhere but the leftmost label.
func ParsePattern(san string) (Pattern, bool) {
	san = strings.ToLower(strings.TrimSpace(san))
	if san == "" {
		return "", false
	}

	if rest, ok := strings.CutPrefix(san, wildcardPrefix); ok {
		if rest == "" || strings.Contains(rest, "*") {
			return "", false
		}
		return Pattern(san), true
	}

	if strings.Contains(san, "*") {
		return "", false
	}
	return Pattern(san), true
}

// IsWildcard reports whether the pattern is a single-label wildcard.
func (p Pattern) IsWildcard() bool {
	return strings.HasPrefix(string(p), wildcardPrefix)
}

// Suffix returns the part of a wildcard pattern after "*.". For exact
// patterns it returns the pattern itself.
func (p Pattern) Suffix() string {
	return strings.TrimPrefix(string(p), wildcardPrefix)
}

// Matches reports whether the pattern covers the given normalized domain.
// An exact pattern matches only itself. A wildcard "*.<suffix>" matches a
// domain with exactly one label prepended to <suffix>: it matches neither
// the apex <suffix> nor deeper subdomains.
func (p Pattern) Matches(domain string) bool {
	if domain == "" {
		return false
	}
	if !p.IsWildcard() {
		return string(p) == domain
	}

	label, ok := strings.CutSuffix(domain, "."+p.Suffix())
	return ok && label != "" && !strings.Contains(label, ".")
}
