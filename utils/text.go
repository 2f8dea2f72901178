package utils

import "strings"

// NormalizeText collapses runs of whitespace into single spaces and trims
// the ends. Every form field goes through this before validation or storage.
func NormalizeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
