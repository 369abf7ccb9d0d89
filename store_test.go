package i18next_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/i18next"
)

func TestStore(t *testing.T) {
	t.Parallel()

	t.Run("retrieves flat resources", func(t *testing.T) {
		t.Parallel()
		store, err := i18next.NewStore(
			i18next.WithResource("en", "common", map[string]any{"hello": "Hello"}),
		)
		require.NoError(t, err)

		value, ok := store.Retrieve("en", "common", "hello")
		require.True(t, ok)
		require.Equal(t, "Hello", value)
	})

	t.Run("flattens nested resources to dot notation", func(t *testing.T) {
		t.Parallel()
		store, err := i18next.NewStore(
			i18next.WithResource("en", "ui", map[string]any{
				"buttons": map[string]any{
					"save": "Save",
					"deeper": map[string]any{
						"reset": "Reset",
					},
				},
				"labels": map[string]string{
					"name": "Name",
				},
			}),
		)
		require.NoError(t, err)

		value, ok := store.Retrieve("en", "ui", "buttons.save")
		require.True(t, ok)
		require.Equal(t, "Save", value)

		value, ok = store.Retrieve("en", "ui", "buttons.deeper.reset")
		require.True(t, ok)
		require.Equal(t, "Reset", value)

		value, ok = store.Retrieve("en", "ui", "labels.name")
		require.True(t, ok)
		require.Equal(t, "Name", value)
	})

	t.Run("stringifies non-string leaf values", func(t *testing.T) {
		t.Parallel()
		store, err := i18next.NewStore(
			i18next.WithResource("en", "misc", map[string]any{
				"number":  42,
				"boolean": true,
			}),
		)
		require.NoError(t, err)

		value, _ := store.Retrieve("en", "misc", "number")
		require.Equal(t, "42", value)
		value, _ = store.Retrieve("en", "misc", "boolean")
		require.Equal(t, "true", value)
	})

	t.Run("empty namespace is allowed", func(t *testing.T) {
		t.Parallel()
		store, err := i18next.NewStore(
			i18next.WithResource("en", "", map[string]any{"hello": "Hello"}),
		)
		require.NoError(t, err)

		value, ok := store.Retrieve("en", "", "hello")
		require.True(t, ok)
		require.Equal(t, "Hello", value)
	})

	t.Run("returns error for empty locale", func(t *testing.T) {
		t.Parallel()
		_, err := i18next.NewStore(
			i18next.WithResource("", "common", map[string]any{"hello": "Hello"}),
		)
		require.Error(t, err)
		require.ErrorIs(t, err, i18next.ErrEmptyLocale)
	})

	t.Run("reports missing keys", func(t *testing.T) {
		t.Parallel()
		store, err := i18next.NewStore()
		require.NoError(t, err)

		_, ok := store.Retrieve("en", "common", "hello")
		require.False(t, ok)
	})
}
