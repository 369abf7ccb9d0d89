package i18next

// M is a bag of per-call template variables.
type M map[string]any

// Format renders a variable value for a named interpolation token, e.g.
// {{price, currency}}. The returned string is substituted into the template
// (and escaped afterwards unless the token is raw). A non-nil error fails the
// whole render.
type Format func(value any, locale string, opts *Options) (string, error)

// MissingKeyHandler is consulted when no candidate resolves for a key.
// It may return a replacement string; reporting false falls through to the
// raw key.
type MissingKeyHandler func(locale, key string, variables M) (string, bool)

// TranslationFailedHandler intercepts render failures (missing variable,
// unregistered format, unresolvable nested key, malformed nesting options).
// It may return a replacement string; reporting false treats the call as a
// miss.
type TranslationFailedHandler func(locale, namespace, key string, variables M, err error) (string, bool)

// PluralResolver maps a locale and count to a plural key suffix, e.g. ""
// for the singular form, "_plural" for two-form languages, or "_0".."_5"
// for languages with more grammatical categories.
type PluralResolver func(locale string, count int, opts *Options) string

// Default configuration values.
const (
	DefaultLocale              = "en"
	DefaultNamespaceSeparator  = ":"
	DefaultContextSeparator    = "_"
	DefaultPluralSeparator     = "_"
	DefaultInterpolationPrefix = "{{"
	DefaultInterpolationSuffix = "}}"
	DefaultNestingPrefix       = "$t("
	DefaultNestingSuffix       = ")"
	DefaultUnescapePrefix      = "-"
	DefaultMaxNestingDepth     = 10
)

// Options holds the translation configuration. It is populated once during
// New and read-only afterwards, so it may be shared across goroutines.
type Options struct {
	// DefaultLocale is used when a call does not specify a locale.
	DefaultLocale string

	// NamespaceSeparator splits "namespace:key" on the first occurrence.
	NamespaceSeparator string

	// ContextSeparator joins a key with its context variant suffix.
	ContextSeparator string

	// PluralSeparator joins a key with its plural suffix.
	PluralSeparator string

	// FallbackNamespaces are searched, in order, after the primary namespace.
	FallbackNamespaces []string

	// EscapeValue enables HTML-escaping of substituted values. Individual
	// tokens opt out with the unescape prefix: {{- name}}.
	EscapeValue bool

	// EscapeFunc escapes substituted values when EscapeValue is on.
	EscapeFunc func(string) string

	// Formats maps format names to formatting functions.
	Formats map[string]Format

	// PluralRules overrides the built-in plural rule for specific locales.
	PluralRules map[string]PluralRule

	MissingKeyHandler        MissingKeyHandler
	TranslationFailedHandler TranslationFailedHandler
	PluralResolver           PluralResolver

	// Interpolation token delimiters, {{ and }} unless configured.
	InterpolationPrefix string
	InterpolationSuffix string

	// Nesting token delimiters, $t( and ) unless configured.
	NestingPrefix string
	NestingSuffix string

	// UnescapePrefix marks a token as raw when it immediately follows the
	// opening delimiter.
	UnescapePrefix string

	// MaxNestingDepth bounds recursive $t(...) resolution so that cycles
	// through different keys fail instead of growing the stack.
	MaxNestingDepth int
}

// Option configures the I18n instance during construction.
type Option func(*Options) error

func defaultOptions() *Options {
	return &Options{
		DefaultLocale:       DefaultLocale,
		NamespaceSeparator:  DefaultNamespaceSeparator,
		ContextSeparator:    DefaultContextSeparator,
		PluralSeparator:     DefaultPluralSeparator,
		EscapeValue:         true,
		EscapeFunc:          EscapeHTML,
		PluralResolver:      ResolvePluralSuffix,
		InterpolationPrefix: DefaultInterpolationPrefix,
		InterpolationSuffix: DefaultInterpolationSuffix,
		NestingPrefix:       DefaultNestingPrefix,
		NestingSuffix:       DefaultNestingSuffix,
		UnescapePrefix:      DefaultUnescapePrefix,
		MaxNestingDepth:     DefaultMaxNestingDepth,
	}
}

// WithDefaultLocale sets the locale used when a call does not specify one.
func WithDefaultLocale(locale string) Option {
	return func(o *Options) error {
		if locale == "" {
			return ErrEmptyLocale
		}
		o.DefaultLocale = locale
		return nil
	}
}

// WithNamespaceSeparator sets the separator between namespace and key.
func WithNamespaceSeparator(sep string) Option {
	return func(o *Options) error {
		if sep == "" {
			return ErrEmptySeparator
		}
		o.NamespaceSeparator = sep
		return nil
	}
}

// WithContextSeparator sets the separator between a key and its context suffix.
func WithContextSeparator(sep string) Option {
	return func(o *Options) error {
		if sep == "" {
			return ErrEmptySeparator
		}
		o.ContextSeparator = sep
		return nil
	}
}

// WithPluralSeparator sets the separator between a key and its plural suffix.
func WithPluralSeparator(sep string) Option {
	return func(o *Options) error {
		if sep == "" {
			return ErrEmptySeparator
		}
		o.PluralSeparator = sep
		return nil
	}
}

// WithFallbackNamespaces sets the namespaces searched after the primary one,
// in the order provided.
func WithFallbackNamespaces(namespaces ...string) Option {
	return func(o *Options) error {
		for _, ns := range namespaces {
			if ns == "" {
				return ErrEmptyNamespace
			}
		}
		o.FallbackNamespaces = append([]string(nil), namespaces...)
		return nil
	}
}

// WithoutEscaping disables HTML-escaping of substituted values globally.
func WithoutEscaping() Option {
	return func(o *Options) error {
		o.EscapeValue = false
		return nil
	}
}

// WithEscapeFunc replaces the escape function applied to substituted values.
func WithEscapeFunc(fn func(string) string) Option {
	return func(o *Options) error {
		if fn == nil {
			return ErrNilEscapeFunc
		}
		o.EscapeFunc = fn
		return nil
	}
}

// WithFormat registers a named formatting function for {{name, format}} tokens.
func WithFormat(name string, fn Format) Option {
	return func(o *Options) error {
		if name == "" {
			return ErrEmptyFormatName
		}
		if fn == nil {
			return ErrNilFormat
		}
		if o.Formats == nil {
			o.Formats = make(map[string]Format)
		}
		o.Formats[name] = fn
		return nil
	}
}

// WithPluralRule overrides the built-in plural rule for a locale.
// The override is consulted by the default PluralResolver.
func WithPluralRule(locale string, rule PluralRule) Option {
	return func(o *Options) error {
		if locale == "" {
			return ErrEmptyLocale
		}
		if rule.IndexOf == nil || rule.Forms < 1 {
			return ErrNilPluralRule
		}
		if o.PluralRules == nil {
			o.PluralRules = make(map[string]PluralRule)
		}
		o.PluralRules[locale] = rule
		return nil
	}
}

// WithMissingKeyHandler sets a handler consulted when no candidate resolves.
// Useful for detecting untranslated keys during development or monitoring
// gaps in translations.
func WithMissingKeyHandler(h MissingKeyHandler) Option {
	return func(o *Options) error {
		o.MissingKeyHandler = h
		return nil
	}
}

// WithTranslationFailedHandler sets a handler that intercepts render failures.
func WithTranslationFailedHandler(h TranslationFailedHandler) Option {
	return func(o *Options) error {
		o.TranslationFailedHandler = h
		return nil
	}
}

// WithPluralResolver replaces the plural suffix resolver.
func WithPluralResolver(r PluralResolver) Option {
	return func(o *Options) error {
		if r == nil {
			return ErrNilResolver
		}
		o.PluralResolver = r
		return nil
	}
}

// WithInterpolationDelimiters sets the interpolation token delimiters.
func WithInterpolationDelimiters(prefix, suffix string) Option {
	return func(o *Options) error {
		if prefix == "" || suffix == "" {
			return ErrEmptyDelimiter
		}
		o.InterpolationPrefix = prefix
		o.InterpolationSuffix = suffix
		return nil
	}
}

// WithNestingDelimiters sets the nesting token delimiters.
func WithNestingDelimiters(prefix, suffix string) Option {
	return func(o *Options) error {
		if prefix == "" || suffix == "" {
			return ErrEmptyDelimiter
		}
		o.NestingPrefix = prefix
		o.NestingSuffix = suffix
		return nil
	}
}

// WithMaxNestingDepth bounds recursive nested-key resolution.
func WithMaxNestingDepth(depth int) Option {
	return func(o *Options) error {
		if depth < 1 {
			return ErrInvalidDepth
		}
		o.MaxNestingDepth = depth
		return nil
	}
}
