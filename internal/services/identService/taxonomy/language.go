package taxonomy

import (
	"strings"

	"golang.org/x/text/language"
)

// Language is one entry of a user's preferred-language list: a language
// code, optionally qualified with a region. Built on BCP 47 tags via
// golang.org/x/text/language.
type Language struct {
	tag language.Tag
}

// defaultLanguage backs the C/POSIX locales and the infallible fallback.
var defaultLanguage = Language{tag: language.AmericanEnglish}

// DefaultLanguage returns en-US, the substitute for locales that carry no
// language information.
func DefaultLanguage() Language { return defaultLanguage }

// ParseLocale turns a platform locale string into a Language. Accepted
// shapes include "en_US.UTF-8", "en-US", "fr_FR@euro", "C" and "POSIX".
// Encoding and modifier suffixes are stripped. C and POSIX carry no language
// information and map to en-US. The second return is false when the string
// names no parseable language; callers skip such entries.
func ParseLocale(s string) (Language, bool) {
	s = strings.TrimSpace(s)
	// Strip ".UTF-8" style encoding and "@euro" style modifier suffixes.
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}
	if i := strings.IndexByte(s, '@'); i >= 0 {
		s = s[:i]
	}
	if s == "" {
		return Language{}, false
	}
	if s == "C" || s == "POSIX" {
		return defaultLanguage, true
	}

	tag, err := language.Parse(strings.ReplaceAll(s, "_", "-"))
	if err != nil || tag == language.Und {
		return Language{}, false
	}

	return Language{tag: tag}, true
}

// Tag returns the underlying BCP 47 tag.
func (l Language) Tag() language.Tag { return l.tag }

// Region returns the region subtag ("US" in "en-US"), or "" when the locale
// named none.
func (l Language) Region() string {
	region, conf := l.tag.Region()
	if conf == language.No || !region.IsCountry() {
		return ""
	}
	return region.String()
}

func (l Language) String() string { return l.tag.String() }

// DedupLanguages collapses repeated entries while preserving the first
// occurrence order. A locale variable set to a single value must never be
// reported as a multi-element list of duplicates.
func DedupLanguages(langs []Language) []Language {
	seen := make(map[string]struct{}, len(langs))
	out := langs[:0]

	for _, l := range langs {
		key := l.String()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, l)
	}

	return out
}
