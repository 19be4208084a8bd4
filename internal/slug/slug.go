// Package slug derives URL-safe blog post identifiers from titles.
package slug

import "strings"

// Derive lowercases s, collapses every run of characters outside [a-z0-9] into a
// single hyphen and trims hyphens from both ends. Derive(Derive(s)) == Derive(s).
func Derive(s string) string {
	s = strings.ToLower(s)
	var b strings.Builder
	b.Grow(len(s))
	pending := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pending && b.Len() > 0 {
				b.WriteByte('-')
			}
			pending = false
			b.WriteRune(r)
		default:
			pending = true
		}
	}
	return b.String()
}

// Valid reports whether s is already in derived form.
func Valid(s string) bool {
	return s != "" && Derive(s) == s
}
