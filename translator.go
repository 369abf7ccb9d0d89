package i18next

import "strings"

// Translator provides a simplified translation interface with a fixed locale
// and namespace context. It wraps an I18n instance and eliminates the need
// to qualify every key or pass the locale on each call.
type Translator struct {
	i18n      *I18n
	locale    string
	namespace string
}

// NewTranslator creates a Translator bound to the given locale and namespace.
// If locale is empty, it defaults to the I18n instance's default locale.
// An empty namespace leaves keys unqualified.
func NewTranslator(i18n *I18n, locale, namespace string) *Translator {
	if i18n == nil {
		panic("i18next: service is not provided")
	}
	if locale == "" {
		locale = i18n.DefaultLocale()
	}
	return &Translator{
		i18n:      i18n,
		locale:    locale,
		namespace: namespace,
	}
}

// T translates a key using the translator's locale and namespace context.
func (t *Translator) T(key string, opts ...TranslateOption) string {
	return t.i18n.T(t.qualify(key), t.withLocale(opts)...)
}

// Lookup translates a key, reporting whether anything was found.
func (t *Translator) Lookup(key string, opts ...TranslateOption) (string, bool) {
	return t.i18n.Lookup(t.qualify(key), t.withLocale(opts)...)
}

// Locale returns the translator's locale.
func (t *Translator) Locale() string {
	return t.locale
}

// Namespace returns the translator's namespace.
func (t *Translator) Namespace() string {
	return t.namespace
}

func (t *Translator) qualify(key string) string {
	sep := t.i18n.opts.NamespaceSeparator
	if t.namespace == "" || strings.Contains(key, sep) {
		return key
	}
	return t.namespace + sep + key
}

func (t *Translator) withLocale(opts []TranslateOption) []TranslateOption {
	// Bound locale first so per-call WithLocale can still override it.
	return append([]TranslateOption{WithLocale(t.locale)}, opts...)
}
