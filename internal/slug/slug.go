// Package slug derives URL-safe identifiers from human-readable names.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonWordRe    = regexp.MustCompile(`[^\w\s-]`)
	separatorsRe = regexp.MustCompile(`[-\s]+`)
	validRe      = regexp.MustCompile(`^[-a-z0-9_]+$`)
)

// Make returns the lowercase, hyphen-separated ASCII form of s.
// Accented letters are folded to their base letter, everything else
// outside [a-z0-9_-] is dropped.
func Make(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.Predicate(func(r rune) bool {
		return r > unicode.MaxASCII
	})))

	ascii, _, err := transform.String(t, s)
	if err != nil {
		ascii = s
	}

	ascii = nonWordRe.ReplaceAllString(strings.ToLower(ascii), "")
	ascii = separatorsRe.ReplaceAllString(strings.TrimSpace(ascii), "-")

	return strings.Trim(ascii, "-_")
}

// Valid reports whether s is a non-empty slug.
func Valid(s string) bool {
	return validRe.MatchString(s)
}
