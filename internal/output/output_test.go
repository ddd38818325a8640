package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFprintPretty(t *testing.T) {
	SetCompact(false)
	defer SetCompact(false)

	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, map[string]int{"count": 3}))
	assert.Equal(t, "{\n  \"count\": 3\n}\n", buf.String())
}

func TestFprintCompact(t *testing.T) {
	SetCompact(true)
	defer SetCompact(false)

	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, map[string]int{"count": 3}))
	assert.Equal(t, "{\"count\":3}\n", buf.String())
}

func TestFprintUnencodable(t *testing.T) {
	var buf bytes.Buffer
	err := Fprint(&buf, func() {})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "encoding output")
}
