package strutils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToTitleCase returns the string with the first letter of each word
// capitalized, e.g. "jeron lau" becomes "Jeron Lau".
func ToTitleCase(s string) string {
	// Unicode-aware title caser; lowercase first so ALL-CAPS input folds.
	caser := cases.Title(language.English)

	return caser.String(strings.ToLower(s))
}
