package i18next

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// PluralRule describes how a language selects plural key variants: how many
// forms it distinguishes and which form a count maps to. Form indices are
// zero-based and ordered from singular to the most-plural category.
type PluralRule struct {
	// Forms is the number of plural forms the language distinguishes.
	Forms int

	// IndexOf maps a count to a form index in [0, Forms).
	IndexOf func(n int) int
}

// Suffix converts the selected form into a key suffix. Languages with a
// single form never produce a suffix. Two-form languages use the bare key
// for the singular and separator+"plural" otherwise. Languages with more
// forms use numeric suffixes: separator+"0", separator+"1", and so on.
func (r PluralRule) Suffix(n int, separator string) string {
	if r.Forms <= 1 || r.IndexOf == nil {
		return ""
	}

	idx := r.IndexOf(n)

	if r.Forms == 2 {
		if idx == 0 {
			return ""
		}
		return separator + "plural"
	}

	return separator + strconv.Itoa(idx)
}

// EnglishPluralRule covers English and most Germanic languages:
// one (1), plural (everything else, including 0).
var EnglishPluralRule = PluralRule{
	Forms: 2,
	IndexOf: func(n int) int {
		if n == 1 || n == -1 {
			return 0
		}
		return 1
	},
}

// RomancePluralRule covers French, Portuguese and similar languages where
// zero takes the singular form.
var RomancePluralRule = PluralRule{
	Forms: 2,
	IndexOf: func(n int) int {
		if n == 0 || n == 1 || n == -1 {
			return 0
		}
		return 1
	},
}

// SlavicPluralRule covers Russian, Ukrainian, Polish, Czech and similar
// languages with three forms: one, few, many.
var SlavicPluralRule = PluralRule{
	Forms: 3,
	IndexOf: func(n int) int {
		absN := n
		if n < 0 {
			absN = -n
		}

		mod10 := absN % 10
		mod100 := absN % 100

		if mod10 == 1 && mod100 != 11 {
			return 0
		}
		if mod10 >= 2 && mod10 <= 4 && (mod100 < 12 || mod100 > 14) {
			return 1
		}
		return 2
	},
}

// ArabicPluralRule covers the six Arabic forms:
// zero, one, two, few, many, other.
var ArabicPluralRule = PluralRule{
	Forms: 6,
	IndexOf: func(n int) int {
		if n == 0 {
			return 0
		}
		if n == 1 || n == -1 {
			return 1
		}
		if n == 2 || n == -2 {
			return 2
		}

		absN := n
		if n < 0 {
			absN = -n
		}

		mod100 := absN % 100

		if mod100 >= 3 && mod100 <= 10 {
			return 3
		}
		if mod100 >= 11 && mod100 <= 99 {
			return 4
		}
		return 5
	},
}

// AsianPluralRule covers languages without grammatical plural
// (Japanese, Chinese, Korean, Thai, Vietnamese).
var AsianPluralRule = PluralRule{
	Forms:   1,
	IndexOf: func(_ int) int { return 0 },
}

// GetPluralRule returns the plural rule for a locale, matching on the base
// language (e.g. "en-US" uses the English rule). Unknown languages fall back
// to EnglishPluralRule.
func GetPluralRule(locale string) PluralRule {
	switch baseLanguage(locale) {
	case "fr", "pt", "oc", "fil", "tl":
		return RomancePluralRule
	case "ru", "uk", "pl", "cs", "sk", "hr", "sr", "bs", "be", "lt":
		return SlavicPluralRule
	case "ar":
		return ArabicPluralRule
	case "ja", "zh", "ko", "th", "vi", "id", "ms", "lo", "my":
		return AsianPluralRule
	default:
		return EnglishPluralRule
	}
}

// ResolvePluralSuffix is the default PluralResolver. Per-locale overrides
// registered with WithPluralRule take precedence over the built-in table,
// first for the exact locale, then for its base language.
func ResolvePluralSuffix(locale string, count int, opts *Options) string {
	rule, ok := opts.PluralRules[locale]
	if !ok {
		rule, ok = opts.PluralRules[baseLanguage(locale)]
	}
	if !ok {
		rule = GetPluralRule(locale)
	}
	return rule.Suffix(count, opts.PluralSeparator)
}

// baseLanguage extracts the base language from a locale tag, e.g. "en" from
// "en-US" or "pt" from "pt_BR".
func baseLanguage(locale string) string {
	normalized := strings.ReplaceAll(locale, "_", "-")
	tag, err := language.Parse(normalized)
	if err != nil {
		if i := strings.IndexByte(normalized, '-'); i > 0 {
			return strings.ToLower(normalized[:i])
		}
		return strings.ToLower(normalized)
	}
	base, _ := tag.Base()
	return base.String()
}
