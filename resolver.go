package i18next

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// resolver performs a single translation call. A fresh resolver is created
// per call and discarded on return; nested $t(...) tokens re-enter the
// pipeline through a derived resolver scoped to the namespace active at the
// point of nesting, sharing the active-render chain.
type resolver struct {
	store     ResourceStore
	opts      *Options
	locale    string
	namespace string
	chain     map[string]struct{}
	depth     int
}

func newResolver(store ResourceStore, opts *Options, locale string) *resolver {
	return &resolver{
		store:  store,
		opts:   opts,
		locale: locale,
		chain:  make(map[string]struct{}),
	}
}

// resolve splits the raw key on the first namespace separator and delegates
// to translateKey. Without a separator the key resolves in this resolver's
// contextual namespace (empty at the top level).
func (r *resolver) resolve(key string, variables M) (string, bool) {
	namespace := r.namespace
	if ns, rest, found := strings.Cut(key, r.opts.NamespaceSeparator); found {
		namespace, key = ns, rest
	}
	return r.translateKey(namespace, key, variables)
}

// translateKey builds the ordered candidate list from the active context and
// count, then walks namespaces outer and candidates inner. The first
// non-missing result wins. A render failure stops the search immediately and
// is funneled through TranslationFailedHandler; without a handler it counts
// as a miss.
func (r *resolver) translateKey(namespace, key string, variables M) (string, bool) {
	context, hasContext := stringVariable(variables, "context")
	count, hasCount := intVariable(variables, "count")

	// Re-entry into a key that is currently being rendered with the same
	// effective context must miss instead of recursing forever.
	if _, active := r.chain[chainID(namespace, key, context)]; active {
		return "", false
	}

	var pluralSuffix string
	if hasCount {
		pluralSuffix = r.opts.PluralResolver(r.locale, count, r.opts)
	}

	// Most specific first: context+plural, context, plural, bare key.
	candidates := make([]string, 0, 4)
	if hasContext && hasCount {
		candidates = append(candidates, key+r.opts.ContextSeparator+context+pluralSuffix)
	}
	if hasContext {
		candidates = append(candidates, key+r.opts.ContextSeparator+context)
	}
	if hasCount {
		candidates = append(candidates, key+pluralSuffix)
	}
	candidates = append(candidates, key)

	namespaces := make([]string, 0, 1+len(r.opts.FallbackNamespaces))
	namespaces = append(namespaces, namespace)
	namespaces = append(namespaces, r.opts.FallbackNamespaces...)

	for _, ns := range namespaces {
		for _, candidate := range candidates {
			value, ok, err := r.find(ns, key, candidate, context, variables)
			if err != nil {
				if h := r.opts.TranslationFailedHandler; h != nil {
					return h(r.locale, ns, key, variables, err)
				}
				return "", false
			}
			if ok {
				return value, true
			}
		}
	}

	return "", false
}

// find retrieves one candidate and renders it: interpolation first, then
// nested-key substitution. A missing candidate is not an error; render
// failures abort the surrounding search.
func (r *resolver) find(namespace, key, candidate, context string, variables M) (string, bool, error) {
	template, ok := r.store.Retrieve(r.locale, namespace, candidate)
	if !ok {
		return "", false, nil
	}

	rendered, err := interpolate(template, variables, r.locale, r.opts)
	if err != nil {
		return "", false, err
	}

	id := chainID(namespace, key, context)
	r.chain[id] = struct{}{}
	rendered, err = nest(rendered, variables, r.locale, r.opts, r.nested(namespace))
	delete(r.chain, id)
	if err != nil {
		return "", false, err
	}

	return rendered, true, nil
}

// nested returns the resolve callback for $t(...) tokens found while
// rendering a template in the given namespace. Relative nested keys resolve
// in that namespace, not the global default.
func (r *resolver) nested(namespace string) nestFunc {
	return func(key string, variables M) (string, error) {
		if r.depth+1 > r.opts.MaxNestingDepth {
			return "", fmt.Errorf("%w: depth %d", ErrNestingTooDeep, r.depth+1)
		}

		inner := &resolver{
			store:     r.store,
			opts:      r.opts,
			locale:    r.locale,
			namespace: namespace,
			chain:     r.chain,
			depth:     r.depth + 1,
		}

		value, ok := inner.resolve(key, variables)
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrNestedKey, key)
		}
		return value, nil
	}
}

func chainID(namespace, key, context string) string {
	return namespace + ":" + key + ":" + context
}

// stringVariable extracts a non-empty string variable. Values of any other
// type are treated as absent, not as an error.
func stringVariable(variables M, name string) (string, bool) {
	s, ok := variables[name].(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// intVariable extracts an integer variable. JSON-decoded numbers arrive as
// json.Number or float64, so integral values of those types count as
// integers. Anything else is treated as absent, which skips pluralization.
func intVariable(variables M, name string) (int, bool) {
	switch n := variables[name].(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), true
		}
	case float64:
		if n == math.Trunc(n) {
			return int(n), true
		}
	}
	return 0, false
}
