package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/omnifocus-cli/internal/model"
)

func tag(name string, count int, lastActivity *string) model.Tag {
	return model.Tag{Name: name, TaskCount: count, LastActivity: lastActivity, Active: true}
}

func TestComputeTagStats(t *testing.T) {
	tags := []model.Tag{
		tag("errand", 4, nil),
		tag("call", 2, nil),
		tag("waiting", 1, nil),
		tag("someday", 0, nil),
		tag("someday2", 0, nil),
	}
	s := ComputeTagStats(tags, statsNow)

	assert.Equal(t, 5, s.TotalTags)
	assert.Equal(t, 3, s.TagsWithTasks)
	assert.Equal(t, 2, s.UnusedTags)
	assert.Equal(t, 2.3, s.AvgTasksPerTag)

	require.Len(t, s.MostUsedTags, 5)
	assert.Equal(t, "errand", s.MostUsedTags[0].Name)
	assert.Equal(t, 4, s.MostUsedTags[0].TaskCount)
	assert.Equal(t, "call", s.MostUsedTags[1].Name)
	assert.Equal(t, "waiting", s.MostUsedTags[2].Name)

	// Least-used only covers tags that are actually used.
	require.Len(t, s.LeastUsedTags, 3)
	assert.Equal(t, "waiting", s.LeastUsedTags[0].Name)
}

func TestComputeTagStatsStale(t *testing.T) {
	old := "2026-01-01T00:00:00Z"    // well past 30 days before statsNow
	recent := "2026-06-10T00:00:00Z" // 5 days ago
	older := "2025-06-15T00:00:00Z"  // a year ago

	s := ComputeTagStats([]model.Tag{
		tag("fresh", 1, &recent),
		tag("stale", 1, &old),
		tag("ancient", 1, &older),
		tag("silent", 1, nil),
	}, statsNow)

	require.Len(t, s.StaleTags, 2)
	assert.Equal(t, "ancient", s.StaleTags[0].Name)
	assert.Equal(t, 365, s.StaleTags[0].DaysSinceActivity)
	assert.Equal(t, "stale", s.StaleTags[1].Name)
}

func TestFilterUnusedTags(t *testing.T) {
	old := "2026-01-01T00:00:00Z"
	recent := "2026-06-14T00:00:00Z"

	out := FilterUnusedTags([]model.Tag{
		tag("quiet", 0, &old),
		tag("busy", 3, &recent),
		tag("never", 0, nil),
	}, 30, statsNow)

	require.Len(t, out, 2)
	assert.Equal(t, "quiet", out[0].Name)
	assert.Equal(t, "never", out[1].Name)
}

func TestSortTagsByName(t *testing.T) {
	tags := []model.Tag{tag("banana", 0, nil), tag("Apple", 0, nil), tag("apple", 0, nil)}
	SortTags(tags, model.TagSortName)
	assert.Equal(t, "Apple", tags[0].Name)
	assert.Equal(t, "apple", tags[1].Name)
	assert.Equal(t, "banana", tags[2].Name)
}

func TestSortTagsByUsage(t *testing.T) {
	tags := []model.Tag{tag("a", 1, nil), tag("b", 5, nil), tag("c", 5, nil)}
	SortTags(tags, model.TagSortUsage)
	assert.Equal(t, "b", tags[0].Name)
	assert.Equal(t, "c", tags[1].Name)
	assert.Equal(t, "a", tags[2].Name)
}

func TestSortTagsByActivity(t *testing.T) {
	early := "2026-01-01T00:00:00Z"
	late := "2026-06-01T00:00:00Z"
	tags := []model.Tag{
		tag("never1", 0, nil),
		tag("old", 0, &early),
		tag("new", 0, &late),
		tag("never2", 0, nil),
	}
	SortTags(tags, model.TagSortActivity)

	assert.Equal(t, "new", tags[0].Name)
	assert.Equal(t, "old", tags[1].Name)
	// Inactive tags trail in their original relative order.
	assert.Equal(t, "never1", tags[2].Name)
	assert.Equal(t, "never2", tags[3].Name)
}
