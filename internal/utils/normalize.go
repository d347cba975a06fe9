package utils

import "strings"

// NormalizeWord trims surrounding whitespace and lower-cases a dictionary token.
// Empty lines normalize to the empty string; callers decide whether it is valid.
func NormalizeWord(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
