package i18next

import (
	"strings"

	"golang.org/x/text/language"
)

// MatchLocale parses an Accept-Language header and returns the most
// applicable locale from the available list. Quality values are honored and
// base-language matches count (e.g. "en-US" matches an available "en").
// If nothing matches, the first available locale is returned.
//
// Example header: "en-US,en;q=0.9,pl;q=0.8"
// Available: ["pl", "en", "de"]
// Returns: "en"
func MatchLocale(header string, available []string) string {
	if len(available) == 0 {
		return ""
	}
	if header == "" {
		return available[0]
	}

	tags := make([]language.Tag, 0, len(available))
	for _, locale := range available {
		tags = append(tags, language.Make(strings.ReplaceAll(locale, "_", "-")))
	}

	desired, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(desired) == 0 {
		return available[0]
	}

	_, index, conf := language.NewMatcher(tags).Match(desired...)
	if conf == language.No {
		return available[0]
	}
	return available[index]
}
