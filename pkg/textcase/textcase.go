// Package textcase provides small case-conversion helpers used as example
// transforms for text reassembly.
package textcase

import "strings"

// Upper returns s with all letters upper-cased.
func Upper(s string) string {
	return strings.ToUpper(s)
}

// Lower returns s with all letters lower-cased.
func Lower(s string) string {
	return strings.ToLower(s)
}

// Title returns s with its first byte upper-cased and the remainder
// lower-cased. It operates on bytes, not grapheme clusters, matching the
// byte-offset semantics of the rest of the module.
func Title(s string) string {
	switch len(s) {
	case 0:
		return ""
	case 1:
		return strings.ToUpper(s)
	default:
		return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
	}
}
