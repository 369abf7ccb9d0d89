package i18next

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// NumberFormat returns a Format that renders numeric values with
// locale-aware digit grouping, e.g. 1234567 becomes "1,234,567" for "en"
// and "1.234.567" for "de".
func NumberFormat() Format {
	return func(value any, locale string, _ *Options) (string, error) {
		p := message.NewPrinter(matchTag(locale))

		switch n := value.(type) {
		case int, int8, int16, int32, int64,
			uint, uint8, uint16, uint32, uint64,
			float32, float64:
			return p.Sprint(number.Decimal(n)), nil
		case json.Number:
			if i, err := n.Int64(); err == nil {
				return p.Sprint(number.Decimal(i)), nil
			}
			if f, err := n.Float64(); err == nil {
				return p.Sprint(number.Decimal(f)), nil
			}
		}
		return "", fmt.Errorf("value %v is not a number", value)
	}
}

// DateFormat returns a Format that renders time.Time values using the given
// Go time layout.
func DateFormat(layout string) Format {
	return func(value any, _ string, _ *Options) (string, error) {
		t, ok := value.(time.Time)
		if !ok {
			return "", fmt.Errorf("value %v is not a time", value)
		}
		return t.Format(layout), nil
	}
}

// UpperFormat returns a Format that upper-cases the stringified value.
func UpperFormat() Format {
	return func(value any, _ string, _ *Options) (string, error) {
		return strings.ToUpper(stringify(value)), nil
	}
}

// LowerFormat returns a Format that lower-cases the stringified value.
func LowerFormat() Format {
	return func(value any, _ string, _ *Options) (string, error) {
		return strings.ToLower(stringify(value)), nil
	}
}

func matchTag(locale string) language.Tag {
	return language.Make(strings.ReplaceAll(locale, "_", "-"))
}
