package bergfex_test

import (
	"testing"
	"time"

	"github.com/mbarbey/bergfex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUpdateTime(t *testing.T) {
	t.Parallel()

	loc := bergfex.SiteLocation()
	now := time.Date(2025, 11, 20, 10, 0, 0, 0, loc)

	t.Run("parses the absolute form with explicit year", func(t *testing.T) {
		t.Parallel()

		got, ok := bergfex.ParseUpdateTime("05.11.2025, 14:40", now)

		require.True(t, ok)
		assert.Equal(t, time.Date(2025, 11, 5, 14, 40, 0, 0, loc), got)
	})

	t.Run("assumes the current year when omitted", func(t *testing.T) {
		t.Parallel()

		got, ok := bergfex.ParseUpdateTime("05.11. 14:40", now)

		require.True(t, ok)
		assert.Equal(t, time.Date(2025, 11, 5, 14, 40, 0, 0, loc), got)
	})

	t.Run("rolls the year back when the date would be far in the future", func(t *testing.T) {
		t.Parallel()

		// Just past year-end: a yearless 28.12. naively lands ~11 months ahead.
		janNow := time.Date(2026, 1, 10, 9, 0, 0, 0, loc)

		got, ok := bergfex.ParseUpdateTime("28.12., 17:30", janNow)

		require.True(t, ok)
		assert.Equal(t, time.Date(2025, 12, 28, 17, 30, 0, 0, loc), got)
	})

	t.Run("never rolls back an explicit year", func(t *testing.T) {
		t.Parallel()

		janNow := time.Date(2026, 1, 10, 9, 0, 0, 0, loc)

		got, ok := bergfex.ParseUpdateTime("28.12.2026, 17:30", janNow)

		require.True(t, ok)
		assert.Equal(t, time.Date(2026, 12, 28, 17, 30, 0, 0, loc), got)
	})

	t.Run("parses today forms in all three locales", func(t *testing.T) {
		t.Parallel()

		want := time.Date(2025, 11, 20, 8, 15, 0, 0, loc)

		for _, raw := range []string{"Aujourd'hui, 8:15", "Today, 8:15", "Heute, 8:15"} {
			got, ok := bergfex.ParseUpdateTime(raw, now)

			require.True(t, ok, raw)
			assert.Equal(t, want, got, raw)
		}
	})

	t.Run("parses yesterday forms shifted back one day", func(t *testing.T) {
		t.Parallel()

		want := time.Date(2025, 11, 19, 22, 5, 0, 0, loc)

		for _, raw := range []string{"Hier, 22:05", "Yesterday, 22:05", "Gestern, 22:05"} {
			got, ok := bergfex.ParseUpdateTime(raw, now)

			require.True(t, ok, raw)
			assert.Equal(t, want, got, raw)
		}
	})

	t.Run("rejects calendar-invalid dates", func(t *testing.T) {
		t.Parallel()

		_, ok := bergfex.ParseUpdateTime("31.11.2025, 10:00", now)

		assert.False(t, ok)
	})

	t.Run("rejects out-of-range clock times", func(t *testing.T) {
		t.Parallel()

		_, ok := bergfex.ParseUpdateTime("05.11.2025, 25:00", now)

		assert.False(t, ok)
	})

	t.Run("fails on unrecognized text", func(t *testing.T) {
		t.Parallel()

		_, ok := bergfex.ParseUpdateTime("mise à jour récemment", now)

		assert.False(t, ok)
	})

	t.Run("fails on empty input", func(t *testing.T) {
		t.Parallel()

		_, ok := bergfex.ParseUpdateTime("   ", now)

		assert.False(t, ok)
	})
}

func TestSiteLocation(t *testing.T) {
	t.Parallel()

	loc := bergfex.SiteLocation()

	assert.NotNil(t, loc)
	assert.Same(t, loc, bergfex.SiteLocation())
}
