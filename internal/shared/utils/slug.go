package utils

import (
	"strings"
	"unicode"

	"github.com/mozillazg/go-unidecode"
)

// GenerateSlug turns a display name into a URL-safe identifier.
// It is not uniqueness-aware; callers check the result against storage.
func GenerateSlug(input string) string {
	// Step 1: Transliterate to ASCII
	// "Björk Guðmundsdóttir" → "Bjork Gudmundsdottir"
	ascii := unidecode.Unidecode(input)

	// Step 2: Lowercase
	lower := strings.ToLower(ascii)

	// Step 3: Keep only letters, digits and whitespace
	// "-!-the quick brown fox" → "the quick brown fox"
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, lower)

	// Step 4: Collapse whitespace runs (spaces, tabs, newlines) into single hyphens
	// Fields drops leading and trailing whitespace as well
	return strings.Join(strings.Fields(cleaned), "-")
}
