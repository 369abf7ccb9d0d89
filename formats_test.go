package i18next_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/i18next"
)

func TestNumberFormat(t *testing.T) {
	t.Parallel()

	format := i18next.NumberFormat()

	t.Run("groups digits per locale", func(t *testing.T) {
		t.Parallel()
		result, err := format(1234567, "en", nil)
		require.NoError(t, err)
		require.Equal(t, "1,234,567", result)

		result, err = format(1234567, "de", nil)
		require.NoError(t, err)
		require.Equal(t, "1.234.567", result)
	})

	t.Run("accepts floats", func(t *testing.T) {
		t.Parallel()
		result, err := format(1234.5, "en", nil)
		require.NoError(t, err)
		require.Equal(t, "1,234.5", result)
	})

	t.Run("rejects non-numeric values", func(t *testing.T) {
		t.Parallel()
		_, err := format("not a number", "en", nil)
		require.Error(t, err)
	})
}

func TestDateFormat(t *testing.T) {
	t.Parallel()

	format := i18next.DateFormat("02.01.2006")

	t.Run("formats time values", func(t *testing.T) {
		t.Parallel()
		result, err := format(time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC), "en", nil)
		require.NoError(t, err)
		require.Equal(t, "30.08.2026", result)
	})

	t.Run("rejects non-time values", func(t *testing.T) {
		t.Parallel()
		_, err := format("2026-08-30", "en", nil)
		require.Error(t, err)
	})
}

func TestCaseFormats(t *testing.T) {
	t.Parallel()

	t.Run("upper", func(t *testing.T) {
		t.Parallel()
		result, err := i18next.UpperFormat()("loud", "en", nil)
		require.NoError(t, err)
		require.Equal(t, "LOUD", result)
	})

	t.Run("lower", func(t *testing.T) {
		t.Parallel()
		result, err := i18next.LowerFormat()("Quiet", "en", nil)
		require.NoError(t, err)
		require.Equal(t, "quiet", result)
	})
}
