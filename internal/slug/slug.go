// Package slug produces and checks the lowercase-hyphen identifiers used for
// poem IDs and tags.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var pattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// Slug converts a string into an ID-safe slug. It NFD-normalizes, drops
// combining marks, lowercases, turns whitespace and underscores into dashes,
// strips anything that is not an ASCII letter, digit or dash, and collapses
// repeated dashes.
func Slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		r = unicode.ToLower(r)
		switch {
		case unicode.IsSpace(r) || r == '-' || r == '_':
			if !dash && b.Len() > 0 {
				b.WriteRune('-')
				dash = true
			}
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
			dash = false
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// Valid reports whether s is a non-empty slug of lowercase letters, digits
// and hyphens.
func Valid(s string) bool {
	return pattern.MatchString(s)
}

// Suggest returns a valid slug for s when s itself is not one. It reports
// false when s is already valid or nothing usable remains.
func Suggest(s string) (string, bool) {
	if Valid(s) {
		return "", false
	}
	out := Slug(s)
	if out == "" {
		return "", false
	}
	return out, true
}
