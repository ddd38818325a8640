package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/omnifocus-cli/internal/model"
)

func TestParseDateTimeRFC3339(t *testing.T) {
	got, err := ParseDateTime("2026-01-02T03:04:05Z")
	require.NoError(t, err)
	assert.Equal(t, "2026-01-02T03:04:05Z", got)
}

func TestParseDateTimeOffsetNormalizedToUTC(t *testing.T) {
	got, err := ParseDateTime("2026-01-02T10:00:00+02:00")
	require.NoError(t, err)
	assert.Equal(t, "2026-01-02T08:00:00Z", got)
}

func TestParseDateTimeLocalLayouts(t *testing.T) {
	inputs := []string{
		"2026-01-02T15:04:05",
		"2026-01-02T15:04",
		"2026-01-02 15:04:05",
		"2026-01-02 15:04",
		"2026-01-02",
	}
	for _, in := range inputs {
		got, err := ParseDateTime(in)
		require.NoError(t, err, "input %q", in)

		parsed, err := time.Parse(time.RFC3339, got)
		require.NoError(t, err)
		assert.Equal(t, time.UTC, parsed.Location())
	}
}

func TestParseDateTimeDateOnlyIsLocalMidnight(t *testing.T) {
	got, err := ParseDateTime("2026-01-02")
	require.NoError(t, err)

	want := time.Date(2026, 1, 2, 0, 0, 0, 0, time.Local).UTC().Format(time.RFC3339)
	assert.Equal(t, want, got)
}

func TestParseDateTimeInvalid(t *testing.T) {
	for _, bad := range []string{"", "tomorrow", "01/02/2026", "2026-13-40"} {
		_, err := ParseDateTime(bad)
		require.Error(t, err, "input %q", bad)
		assert.True(t, model.IsValidation(err))
		assert.Contains(t, err.Error(), "invalid date")
	}
}
