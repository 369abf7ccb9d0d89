package i18next_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/i18next"
)

func TestEscapeHTML(t *testing.T) {
	t.Parallel()

	require.Equal(t, "&lt;img &#x2F;&gt;", i18next.EscapeHTML("<img />"))
	require.Equal(t, "&quot;a&quot; &amp; &#x27;b&#x27;", i18next.EscapeHTML(`"a" & 'b'`))
	require.Equal(t, "plain", i18next.EscapeHTML("plain"))
}

func TestInterpolation(t *testing.T) {
	t.Parallel()

	setup := func(t *testing.T, opts ...i18next.Option) *i18next.I18n {
		t.Helper()
		store := newStore(t, i18next.WithResource("en", "ns", map[string]any{
			"simple":   "Hello, {{name}}!",
			"spaced":   "Hello, {{ name }}!",
			"two":      "{{first}}, {{second}}",
			"escaped":  "{{myVar}}",
			"raw":      "{{- myVar}}",
			"empty":    "broken {{}} token",
			"number":   "{{n, number}}",
			"unknown":  "{{n, missing}}",
			"noformat": "{{n, }}",
		}))
		inst, err := i18next.New(store, opts...)
		require.NoError(t, err)
		return inst
	}

	t.Run("substitutes a variable", func(t *testing.T) {
		t.Parallel()
		inst := setup(t)
		result := inst.T("ns:simple", i18next.WithVariables(i18next.M{"name": "John"}))
		require.Equal(t, "Hello, John!", result)
	})

	t.Run("token whitespace is trimmed", func(t *testing.T) {
		t.Parallel()
		inst := setup(t)
		result := inst.T("ns:spaced", i18next.WithVariables(i18next.M{"name": "John"}))
		require.Equal(t, "Hello, John!", result)
	})

	t.Run("missing variable fails the whole template", func(t *testing.T) {
		t.Parallel()
		inst := setup(t)
		result := inst.T("ns:two", i18next.WithVariables(i18next.M{"first": "fst"}))
		require.Equal(t, "ns:two", result)
	})

	t.Run("empty token fails the whole template", func(t *testing.T) {
		t.Parallel()
		inst := setup(t)
		require.Equal(t, "ns:empty", inst.T("ns:empty", i18next.WithVariables(i18next.M{"n": 1})))
	})

	t.Run("escapes substituted values by default", func(t *testing.T) {
		t.Parallel()
		inst := setup(t)
		result := inst.T("ns:escaped", i18next.WithVariables(i18next.M{"myVar": "<img />"}))
		require.Equal(t, "&lt;img &#x2F;&gt;", result)
	})

	t.Run("raw token skips escaping", func(t *testing.T) {
		t.Parallel()
		inst := setup(t)
		result := inst.T("ns:raw", i18next.WithVariables(i18next.M{"myVar": "<img />"}))
		require.Equal(t, "<img />", result)
	})

	t.Run("global escaping can be disabled", func(t *testing.T) {
		t.Parallel()
		inst := setup(t, i18next.WithoutEscaping())
		result := inst.T("ns:escaped", i18next.WithVariables(i18next.M{"myVar": "<img />"}))
		require.Equal(t, "<img />", result)
	})

	t.Run("custom escape function", func(t *testing.T) {
		t.Parallel()
		inst := setup(t, i18next.WithEscapeFunc(func(s string) string { return "[" + s + "]" }))
		result := inst.T("ns:escaped", i18next.WithVariables(i18next.M{"myVar": "x"}))
		require.Equal(t, "[x]", result)
	})

	t.Run("named format is applied before escaping", func(t *testing.T) {
		t.Parallel()
		inst := setup(t, i18next.WithFormat("number", i18next.NumberFormat()))
		result := inst.T("ns:number", i18next.WithVariables(i18next.M{"n": 1234567}))
		require.Equal(t, "1,234,567", result)
	})

	t.Run("unregistered format fails the template", func(t *testing.T) {
		t.Parallel()
		inst := setup(t)
		require.Equal(t, "ns:unknown", inst.T("ns:unknown", i18next.WithVariables(i18next.M{"n": 1})))
	})

	t.Run("empty format name fails the template", func(t *testing.T) {
		t.Parallel()
		inst := setup(t)
		require.Equal(t, "ns:noformat", inst.T("ns:noformat", i18next.WithVariables(i18next.M{"n": 1})))
	})

	t.Run("failing format surfaces through the failure handler", func(t *testing.T) {
		t.Parallel()
		var failed error
		store := newStore(t, i18next.WithResource("en", "ns", map[string]any{
			"when": "{{at, date}}",
		}))
		inst, err := i18next.New(store,
			i18next.WithFormat("date", i18next.DateFormat("2006-01-02")),
			i18next.WithTranslationFailedHandler(func(_, _, _ string, _ i18next.M, err error) (string, bool) {
				failed = err
				return "", false
			}),
		)
		require.NoError(t, err)

		require.Equal(t, "ns:when", inst.T("ns:when", i18next.WithVariables(i18next.M{"at": "not a time"})))
		require.ErrorIs(t, failed, i18next.ErrFormatFailed)
	})

	t.Run("custom interpolation delimiters", func(t *testing.T) {
		t.Parallel()
		store := newStore(t, i18next.WithResource("en", "ns", map[string]any{
			"simple": "Hello, ${name}!",
		}))
		inst, err := i18next.New(store, i18next.WithInterpolationDelimiters("${", "}"))
		require.NoError(t, err)

		result := inst.T("ns:simple", i18next.WithVariables(i18next.M{"name": "John"}))
		require.Equal(t, "Hello, John!", result)
	})

	t.Run("unterminated token is left as-is", func(t *testing.T) {
		t.Parallel()
		store := newStore(t, i18next.WithResource("en", "ns", map[string]any{
			"broken": "Hello, {{name",
		}))
		inst, err := i18next.New(store)
		require.NoError(t, err)

		require.Equal(t, "Hello, {{name", inst.T("ns:broken"))
	})
}
