// Package emailpkg validates email-shaped account identifiers.
package emailpkg

import "strings"

// Specials are allowed in the prefix after the first character,
// never two in a row.
const specials = ".!$%&'*+-/=?^_`{|}~"

// IsValid reports whether email is a well-formed account identifier.
//
// The grammar is deliberately narrower than RFC 5322: ASCII alphanumerics
// with a limited special set in the prefix, and alphanumerics, hyphens and
// periods in the domain. The top-level label must be at least two
// characters long.
func IsValid(email string) bool {
	if strings.TrimSpace(email) == "" {
		return false
	}

	at := strings.IndexByte(email, '@')
	if at == -1 || at != strings.LastIndexByte(email, '@') {
		return false
	}

	// At least one period must follow the @.
	lastDot := strings.LastIndexByte(email, '.')
	if lastDot == -1 || lastDot <= at {
		return false
	}

	return validPrefix(email[:at]) && validDomain(email[at+1:])
}

func isAlphanumeric(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

func validPrefix(prefix string) bool {
	if prefix == "" {
		return false
	}

	if !isAlphanumeric(prefix[0]) {
		return false
	}

	prevSpecial := false

	for i := 1; i < len(prefix); i++ {
		c := prefix[i]

		special := strings.IndexByte(specials, c) != -1
		if !special && !isAlphanumeric(c) {
			return false
		}

		if special && prevSpecial {
			return false
		}

		prevSpecial = special
	}

	return true
}

func validDomain(domain string) bool {
	if domain == "" {
		return false
	}

	lastDot := strings.LastIndexByte(domain, '.')
	if lastDot == -1 {
		return false
	}

	if len(domain)-lastDot-1 < 2 {
		return false
	}

	for i := 0; i < len(domain); i++ {
		c := domain[i]
		if !isAlphanumeric(c) && c != '-' && c != '.' {
			return false
		}
	}

	return true
}
