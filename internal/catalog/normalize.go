package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases s and strips diacritical marks, so "Años"
// matches "anos" and vice versa.
func Normalize(s string) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		// Transform only fails on malformed UTF-8; fold case anyway.
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}

// containsNormalized reports whether haystack contains needle after
// both are normalized. An empty needle matches everything.
func containsNormalized(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(Normalize(haystack), Normalize(needle))
}
