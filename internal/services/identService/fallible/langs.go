package fallible

import (
	"strings"

	"github.com/redjax/ident/internal/services/identService/taxonomy"
)

// parseLocaleList splits a platform locale list and parses each entry.
// Both ':' (glibc $LANGUAGE) and ';' (the WASI convention) separate
// entries. Unparseable entries are skipped, duplicates collapse, order is
// the stated preference order.
func parseLocaleList(values ...string) []taxonomy.Language {
	var langs []taxonomy.Language

	for _, value := range values {
		for _, entry := range strings.FieldsFunc(value, func(r rune) bool {
			return r == ':' || r == ';'
		}) {
			if lang, ok := taxonomy.ParseLocale(entry); ok {
				langs = append(langs, lang)
			}
		}
	}

	return taxonomy.DedupLanguages(langs)
}
