package util

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NormalizeName prepares a clip name for angle detection:
//   - Converts to lowercase
//   - Normalizes unicode (removes accents)
//
// NLEs pass clip names through from source filenames, which on some
// systems carry composed or decomposed accents.
func NormalizeName(s string) string {
	return removeAccents(strings.ToLower(s))
}

// removeAccents removes diacritical marks from unicode characters.
func removeAccents(s string) string {
	// Decompose unicode characters (NFD normalization)
	result := norm.NFD.String(s)

	// Remove combining characters (accents, diacritics)
	var b strings.Builder
	for _, r := range result {
		if !unicode.Is(unicode.Mn, r) { // Mn = Mark, Nonspacing
			b.WriteRune(r)
		}
	}

	return b.String()
}
