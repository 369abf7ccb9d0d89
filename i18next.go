package i18next

import (
	"fmt"
	"maps"
)

// I18n resolves symbolic translation keys against a ResourceStore into
// localized, interpolated, pluralized display strings. It is immutable after
// creation, making it safe for concurrent use; every call builds its working
// state fresh and discards it on return.
type I18n struct {
	store ResourceStore
	opts  *Options
}

// New creates an I18n instance backed by the given store. All configuration
// happens during construction, making the instance immutable and thread-safe
// from creation.
func New(store ResourceStore, opts ...Option) (*I18n, error) {
	if store == nil {
		return nil, ErrNilStore
	}

	o := defaultOptions()
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	return &I18n{store: store, opts: o}, nil
}

// DefaultLocale returns the locale used when a call does not specify one.
func (i *I18n) DefaultLocale() string {
	return i.opts.DefaultLocale
}

// request carries the per-call parameters assembled from TranslateOptions.
type request struct {
	locale   string
	vars     M
	context  *string
	count    *int
	fallback func(key string) string
}

// TranslateOption adjusts a single translation call.
type TranslateOption func(*request)

// WithLocale sets the locale for this call, overriding the default locale.
func WithLocale(locale string) TranslateOption {
	return func(req *request) {
		if locale != "" {
			req.locale = locale
		}
	}
}

// WithVariables merges template variables into the call's variable bag.
// Later options override earlier ones.
func WithVariables(variables M) TranslateOption {
	return func(req *request) {
		maps.Copy(req.vars, variables)
	}
}

// WithContext sets the context qualifier (e.g. grammatical gender) used to
// select a key variant. It takes precedence over a "context" entry in the
// variable bag.
func WithContext(context string) TranslateOption {
	return func(req *request) {
		req.context = &context
	}
}

// WithCount sets the count used for pluralization. It takes precedence over
// a "count" entry in the variable bag.
func WithCount(count int) TranslateOption {
	return func(req *request) {
		req.count = &count
	}
}

// WithDefault sets a fallback invoked with the raw key when nothing
// resolves. It takes precedence over the configured MissingKeyHandler.
func WithDefault(fn func(key string) string) TranslateOption {
	return func(req *request) {
		req.fallback = fn
	}
}

// T resolves a key into its localized string. On a miss it falls back, in
// order, to the per-call WithDefault function, the configured
// MissingKeyHandler, and finally the raw key itself.
func (i *I18n) T(key string, opts ...TranslateOption) string {
	req := i.newRequest(opts)

	if value, ok := i.translate(key, req); ok {
		return value
	}

	if req.fallback != nil {
		return req.fallback(key)
	}
	if h := i.opts.MissingKeyHandler; h != nil {
		if value, ok := h(req.locale, key, req.vars); ok {
			return value
		}
	}
	return key
}

// Lookup resolves a key and reports whether anything was found. Unlike T it
// never substitutes the raw key and ignores WithDefault and the
// MissingKeyHandler.
func (i *I18n) Lookup(key string, opts ...TranslateOption) (string, bool) {
	req := i.newRequest(opts)
	return i.translate(key, req)
}

func (i *I18n) translate(key string, req *request) (string, bool) {
	return newResolver(i.store, i.opts, req.locale).resolve(key, req.vars)
}

func (i *I18n) newRequest(opts []TranslateOption) *request {
	req := &request{
		locale: i.opts.DefaultLocale,
		vars:   make(M),
	}
	for _, opt := range opts {
		opt(req)
	}

	// Explicit context/count parameters win over same-named map entries.
	if req.context != nil {
		req.vars["context"] = *req.context
	}
	if req.count != nil {
		req.vars["count"] = *req.count
	}

	return req
}
