package pyvers

import "strings"

// toTok normalizes a free-form string into a lowercased token.
func toTok(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
