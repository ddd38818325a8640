package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"active", "on hold", "dropped"} {
		got, err := ParseStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, Status(valid), got)
	}
}

func TestParseStatusRejectsUnknown(t *testing.T) {
	for _, bad := range []string{"", "done", "Active", "onhold", "paused"} {
		_, err := ParseStatus(bad)
		require.Error(t, err, "input %q", bad)
		assert.True(t, IsValidation(err))
	}
}

func TestParseTagSort(t *testing.T) {
	got, err := ParseTagSort("")
	require.NoError(t, err)
	assert.Equal(t, TagSortName, got)

	for _, valid := range []string{"name", "usage", "activity"} {
		got, err := ParseTagSort(valid)
		require.NoError(t, err)
		assert.Equal(t, TagSort(valid), got)
	}

	_, err = ParseTagSort("size")
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}
