package domain

import (
	"strings"

	"golang.org/x/text/cases"
)

// NormalizeEmail trims the address and lowercases it for storage and comparison.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SameIdentifier reports whether two usernames or aliases are equal under Unicode case folding.
func SameIdentifier(a, b string) bool {
	// A Caser is stateful; never share one between goroutines.
	fold := cases.Fold()
	return fold.String(strings.TrimSpace(a)) == fold.String(strings.TrimSpace(b))
}

// LooksLikeEmail reports whether the identifier should be looked up as an email address.
func LooksLikeEmail(identifier string) bool {
	at := strings.IndexByte(identifier, '@')
	return at > 0 && at < len(identifier)-1
}
