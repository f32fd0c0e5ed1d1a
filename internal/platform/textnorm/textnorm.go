// Package textnorm provides the normalization primitive every free-text
// classifier in the engine is built on: case folding, diacritic stripping
// and punctuation reduction, so that "Tarjeta AMARILLA" and "tarjeta
// amarilla" compare equal.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases the input, strips combining marks and drops every
// rune that is not a letter, digit or whitespace. Absent input normalizes
// to the empty string.
func Normalize(value string) string {
	if value == "" {
		return ""
	}

	decomposed, _, err := transform.String(stripMarks, value)
	if err != nil {
		decomposed = value
	}

	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}

	return strings.TrimSpace(b.String())
}

// ContainsAny reports whether the normalized value contains any of the
// given keywords as a substring. An empty value never matches.
func ContainsAny(value string, keywords []string) bool {
	normalized := Normalize(value)
	if normalized == "" {
		return false
	}
	for _, keyword := range keywords {
		if keyword != "" && strings.Contains(normalized, keyword) {
			return true
		}
	}
	return false
}

// Equals reports whether the normalized value equals any of the given
// tokens exactly.
func Equals(value string, tokens []string) bool {
	normalized := Normalize(value)
	if normalized == "" {
		return false
	}
	for _, token := range tokens {
		if normalized == token {
			return true
		}
	}
	return false
}

// Slug turns a display name into the canonical key used for roster
// lookups: normalized words joined by hyphens.
func Slug(value string) string {
	return strings.Join(strings.Fields(Normalize(value)), "-")
}
