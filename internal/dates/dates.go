// Package dates validates user-supplied date strings before they reach the
// script layer. The bridge only ever sees normalized ISO-8601 timestamps.
package dates

import (
	"fmt"
	"time"

	"github.com/nhle/omnifocus-cli/internal/model"
)

// layouts are tried in order. Date-only input resolves to midnight local
// time, matching what the desktop application does for bare dates.
var layouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseDateTime normalizes input to an RFC 3339 UTC timestamp. Malformed
// input yields a validation error.
func ParseDateTime(input string) (string, error) {
	for _, layout := range layouts {
		var (
			t   time.Time
			err error
		)
		if layout == time.RFC3339 {
			t, err = time.Parse(layout, input)
		} else {
			t, err = time.ParseInLocation(layout, input, time.Local)
		}
		if err == nil {
			return t.UTC().Format(time.RFC3339), nil
		}
	}
	return "", model.NewValidationError(fmt.Sprintf("invalid date: %s", input))
}
