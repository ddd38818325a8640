package bridge

import (
	"fmt"
	"strings"
)

// SafeLiteral is user-supplied text already escaped for embedding inside a
// double-quoted literal of a generated script. Escape is the only producer;
// every interpolation of free-form text into script source must go through
// it. This is the sole defense against script injection via names, notes,
// and queries.
type SafeLiteral string

// escaper handles backslash first so escapes it inserts are not re-escaped.
var escaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// Escape makes arbitrary text safe for embedding in a script string literal.
func Escape(s string) SafeLiteral {
	return SafeLiteral(escaper.Replace(s))
}

// quote renders s as a double-quoted script literal.
func quote(s string) string {
	return `"` + string(Escape(s)) + `"`
}

// quoteList renders a string slice as a script array literal.
func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = quote(item)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// script accumulates generated statements for one bridge invocation. The
// body is wrapped in an IIFE so every operation evaluates to a single JSON
// string result.
type script struct {
	lines []string
}

func newScript() *script {
	s := &script{}
	s.lines = append(s.lines, helpersJS, "(() => {")
	return s
}

// stmt appends one body statement at the given indent depth.
func (s *script) stmt(depth int, line string) {
	s.lines = append(s.lines, strings.Repeat("  ", depth+1)+line)
}

// stmtf appends one formatted body statement.
func (s *script) stmtf(depth int, format string, args ...any) {
	s.stmt(depth, fmt.Sprintf(format, args...))
}

func (s *script) String() string {
	return strings.Join(s.lines, "\n") + "\n})();"
}
