package i18next

import (
	"fmt"
	"maps"
)

// ResourceStore supplies raw translation templates to the translation core.
// Implementations must be side-effect free and deterministic for a fixed
// snapshot; the core never mutates or caches through this interface.
type ResourceStore interface {
	// Retrieve returns the raw template for a key within a locale and
	// namespace, reporting whether it exists.
	Retrieve(locale, namespace, key string) (string, bool)
}

// Store is an in-memory ResourceStore. It is immutable after NewStore,
// making it safe for concurrent use. Nested resource maps are flattened
// to dot-notation keys for O(1) lookups.
type Store struct {
	// Key format: "locale:namespace:key.path"
	resources map[string]string
}

// StoreOption populates the Store during construction.
type StoreOption func(*Store) error

// NewStore creates a Store from the given options. All resources are loaded
// during construction; the resulting store is read-only.
func NewStore(opts ...StoreOption) (*Store, error) {
	s := &Store{resources: make(map[string]string)}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, fmt.Errorf("failed to apply store option: %w", err)
		}
	}

	return s, nil
}

// WithResource adds resources for a locale and namespace. The map may be
// nested; it is flattened internally. An empty namespace is valid and acts
// as the default namespace for unqualified keys.
func WithResource(locale, namespace string, resources map[string]any) StoreOption {
	return func(s *Store) error {
		if locale == "" {
			return ErrEmptyLocale
		}
		s.add(locale, namespace, resources)
		return nil
	}
}

// Retrieve implements ResourceStore.
func (s *Store) Retrieve(locale, namespace, key string) (string, bool) {
	value, ok := s.resources[storeKey(locale, namespace, key)]
	return value, ok
}

func (s *Store) add(locale, namespace string, resources map[string]any) {
	for key, value := range flattenResources(resources, "") {
		s.resources[storeKey(locale, namespace, key)] = value
	}
}

func storeKey(locale, namespace, key string) string {
	return locale + ":" + namespace + ":" + key
}

func flattenResources(data map[string]any, prefix string) map[string]string {
	result := make(map[string]string)

	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]any:
			nested := flattenResources(v, fullKey)
			maps.Copy(result, nested)
		case map[string]string:
			for subKey, subVal := range v {
				result[fullKey+"."+subKey] = subVal
			}
		default:
			result[fullKey] = fmt.Sprintf("%v", v)
		}
	}

	return result
}
