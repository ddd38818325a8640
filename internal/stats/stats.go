// Package stats computes cross-cutting summaries over collections already
// fetched from the automation bridge. Every function is pure: inputs in,
// aggregates out, with the reference time passed explicitly.
package stats

import (
	"math"
	"time"
)

// topN is the length of every "top" list in the statistics reports.
const topN = 5

// parseTime decodes a bridge-emitted ISO-8601 timestamp. The zero time is
// returned for malformed input so a single bad record cannot fail a whole
// aggregation.
func parseTime(iso string) time.Time {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return time.Time{}
	}
	return t
}

// roundPercent converts a 0..1 ratio to the nearest integer percent.
func roundPercent(ratio float64) int {
	return int(math.Round(ratio * 100))
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// counter tallies names while preserving first-encounter order, so equal
// counts keep the iteration order of the source collection.
type counter struct {
	names  []string
	counts map[string]int
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(name string) {
	if _, seen := c.counts[name]; !seen {
		c.names = append(c.names, name)
	}
	c.counts[name]++
}
