package bridge

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscape(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Buy milk", "Buy milk"},
		{"double quote", `say "hi"`, `say \"hi\"`},
		{"backslash", `C:\temp`, `C:\\temp`},
		{"backslash before quote", `\"`, `\\\"`},
		{"newline", "line one\nline two", `line one\nline two`},
		{"carriage return", "a\rb", `a\rb`},
		{"tab", "a\tb", `a\tb`},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, SafeLiteral(tc.want), Escape(tc.in))
		})
	}
}

// An escaped literal must decode back to the original text under JSON
// string rules, which share the same escape sequences.
func TestEscapeRoundTrip(t *testing.T) {
	inputs := []string{
		"plain",
		`quotes " and \ slashes`,
		"multi\nline\twith\rcontrols",
		`"); deleteObject(everything); ("`,
	}
	for _, in := range inputs {
		var decoded string
		err := json.Unmarshal([]byte(`"`+string(Escape(in))+`"`), &decoded)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, in, decoded)
	}
}

// A hostile name must never terminate the string literal it is embedded in.
func TestQuoteInjection(t *testing.T) {
	hostile := `x"; throw new Error("pwned"); "`
	quoted := quote(hostile)

	require.True(t, strings.HasPrefix(quoted, `"`))
	require.True(t, strings.HasSuffix(quoted, `"`))

	// Every interior double quote must be escaped.
	body := quoted[1 : len(quoted)-1]
	for i := 0; i < len(body); i++ {
		if body[i] != '"' {
			continue
		}
		backslashes := 0
		for j := i - 1; j >= 0 && body[j] == '\\'; j-- {
			backslashes++
		}
		assert.Equal(t, 1, backslashes%2, "unescaped quote at %d in %s", i, quoted)
	}
}

func TestQuoteList(t *testing.T) {
	assert.Equal(t, "[]", quoteList(nil))
	assert.Equal(t, `["a"]`, quoteList([]string{"a"}))
	assert.Equal(t, `["a", "b c"]`, quoteList([]string{"a", "b c"}))
}

func TestScriptShape(t *testing.T) {
	s := newScript()
	s.stmt(0, "const x = 1;")
	s.stmt(1, "return x;")
	src := s.String()

	assert.True(t, strings.HasPrefix(src, helpersJS), "helpers prelude must come first")
	assert.Contains(t, src, "(() => {")
	assert.True(t, strings.HasSuffix(src, "})();"))
	assert.Contains(t, src, "\n  const x = 1;")
	assert.Contains(t, src, "\n    return x;")
}

func TestHelpersAvoidBackquotes(t *testing.T) {
	// The prelude is carried in a raw Go string, so it must never need one.
	assert.NotContains(t, helpersJS, "`")
}
