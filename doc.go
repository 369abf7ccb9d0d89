// Package i18next resolves symbolic translation keys plus runtime variables
// into localized, interpolated, pluralized display strings, following the
// i18next key and template conventions.
//
// The package is built around an immutable I18n instance backed by a
// ResourceStore. All configuration happens at construction time, making
// instances safe for concurrent use without synchronization. Translation
// calls build their state fresh and hold no shared mutable state.
//
// # Basic Usage
//
// Create a Store with resources and an I18n instance on top of it:
//
//	store, err := i18next.NewStore(
//		i18next.WithResource("en", "common", map[string]any{
//			"hello":   "Hello",
//			"welcome": "Welcome, {{name}}!",
//		}),
//		i18next.WithResource("de", "common", map[string]any{
//			"hello":   "Hallo",
//			"welcome": "Willkommen, {{name}}!",
//		}),
//	)
//
//	i18n, err := i18next.New(store, i18next.WithDefaultLocale("en"))
//
//	msg := i18n.T("common:welcome",
//		i18next.WithLocale("de"),
//		i18next.WithVariables(i18next.M{"name": "Hans"}),
//	)
//	// Output: "Willkommen, Hans!"
//
// When nothing resolves, T returns the raw key; Lookup reports the miss
// instead:
//
//	if msg, ok := i18n.Lookup("common:missing"); ok { ... }
//
// # Keys, Namespaces, Context, Plurals
//
// Keys are qualified with a namespace using ":" ("common:hello"). Namespaces
// are searched primary-first, then the configured fallback namespaces, in
// order. Within each namespace the most specific key variant wins:
//
//	friend_male_plural   context + plural
//	friend_male          context
//	friend_plural        plural
//	friend               bare key
//
// The context comes from WithContext (or a "context" variable), the plural
// suffix from the count via WithCount (or a "count" variable) and the
// locale's plural rule. Wrong-typed context or count values are silently
// ignored rather than failing the call.
//
//	i18n.T("common:friend", i18next.WithCount(2))  // "2 friends"
//
// # Interpolation
//
// Templates substitute {{name}} tokens from the call's variables, with an
// optional named format: {{price, number}}. Substituted values are
// HTML-escaped unless the token opts out ({{- name}}) or escaping is
// disabled globally with WithoutEscaping. Interpolation is all-or-nothing:
// if any token cannot be resolved, the whole call falls back to the raw key.
//
// Formats are registered by name:
//
//	i18next.WithFormat("number", i18next.NumberFormat())
//	i18next.WithFormat("date", i18next.DateFormat("02.01.2006"))
//
// # Nesting
//
// Templates reference other keys with $t(key), optionally overriding
// variables for the nested call with inline JSON whose values may themselves
// interpolate outer variables:
//
//	"boy":  "$t(girls, {\"count\": {{girls}} }) and {{count}} boy"
//
// Relative nested keys resolve in the namespace of the enclosing template.
// Direct self-reference and cycles are detected and fail the render;
// WithMaxNestingDepth bounds the recursion.
//
// # File-Based Resources
//
// Load resources from JSON, YAML, or TOML files in an fs.FS, laid out as
// {locale}/{namespace}.{ext}:
//
//	//go:embed locales
//	var localesFS embed.FS
//
//	subFS, _ := fs.Sub(localesFS, "locales")
//	store, err := i18next.NewStore(i18next.WithJSONDir(subFS))
//
// # Host Integration
//
// MatchLocale picks the best available locale for an Accept-Language header,
// and Translator binds a locale and namespace for handler-scoped use:
//
//	locale := i18next.MatchLocale(r.Header.Get("Accept-Language"), available)
//	tr := i18next.NewTranslator(i18n, locale, "common")
//	title := tr.T("page.title")
package i18next
