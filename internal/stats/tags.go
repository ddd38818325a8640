package stats

import (
	"sort"
	"strings"
	"time"

	"github.com/nhle/omnifocus-cli/internal/model"
)

// staleAfter is the activity age past which a tag counts as stale.
const staleAfter = 30 * 24 * time.Hour

// ComputeTagStats summarizes the full tag collection.
func ComputeTagStats(tags []model.Tag, now time.Time) model.TagStats {
	s := model.TagStats{TotalTags: len(tags)}

	var usedTaskSum int
	var used []model.Tag

	for _, t := range tags {
		if t.Active {
			s.ActiveTags++
		}
		if t.TaskCount > 0 {
			s.TagsWithTasks++
			usedTaskSum += t.TaskCount
			used = append(used, t)
		} else {
			s.UnusedTags++
		}
	}

	if s.TagsWithTasks > 0 {
		s.AvgTasksPerTag = round1(float64(usedTaskSum) / float64(s.TagsWithTasks))
	}

	mostUsed := make([]model.TaskCountEntry, 0, len(tags))
	for _, t := range tags {
		mostUsed = append(mostUsed, model.TaskCountEntry{Name: t.Name, TaskCount: t.TaskCount})
	}
	sort.SliceStable(mostUsed, func(i, j int) bool {
		return mostUsed[i].TaskCount > mostUsed[j].TaskCount
	})
	if len(mostUsed) > topN {
		mostUsed = mostUsed[:topN]
	}
	s.MostUsedTags = mostUsed

	leastUsed := make([]model.TaskCountEntry, 0, len(used))
	for _, t := range used {
		leastUsed = append(leastUsed, model.TaskCountEntry{Name: t.Name, TaskCount: t.TaskCount})
	}
	sort.SliceStable(leastUsed, func(i, j int) bool {
		return leastUsed[i].TaskCount < leastUsed[j].TaskCount
	})
	if len(leastUsed) > topN {
		leastUsed = leastUsed[:topN]
	}
	s.LeastUsedTags = leastUsed

	var stale []model.StaleTagEntry
	for _, t := range tags {
		if t.LastActivity == nil {
			continue
		}
		last := parseTime(*t.LastActivity)
		if last.IsZero() || now.Sub(last) <= staleAfter {
			continue
		}
		stale = append(stale, model.StaleTagEntry{
			Name:              t.Name,
			DaysSinceActivity: int(now.Sub(last).Hours() / 24),
		})
	}
	sort.SliceStable(stale, func(i, j int) bool {
		return stale[i].DaysSinceActivity > stale[j].DaysSinceActivity
	})
	s.StaleTags = stale

	return s
}

// FilterUnusedTags keeps tags with no recorded activity within the given
// number of days. Tags with no activity at all always qualify.
func FilterUnusedTags(tags []model.Tag, days int, now time.Time) []model.Tag {
	cutoff := now.AddDate(0, 0, -days)
	var out []model.Tag
	for _, t := range tags {
		if t.LastActivity == nil {
			out = append(out, t)
			continue
		}
		if last := parseTime(*t.LastActivity); last.Before(cutoff) {
			out = append(out, t)
		}
	}
	return out
}

// SortTags orders tags in place. Name sorting is case-insensitive with a
// byte-wise tiebreak; usage sorts by descending task count; activity sorts
// by descending last activity with inactive tags after all others,
// preserving their relative order.
func SortTags(tags []model.Tag, by model.TagSort) {
	switch by {
	case model.TagSortUsage:
		sort.SliceStable(tags, func(i, j int) bool {
			return tags[i].TaskCount > tags[j].TaskCount
		})
	case model.TagSortActivity:
		sort.SliceStable(tags, func(i, j int) bool {
			a, b := tags[i].LastActivity, tags[j].LastActivity
			if a == nil || b == nil {
				return a != nil && b == nil
			}
			return parseTime(*a).After(parseTime(*b))
		})
	default:
		sort.SliceStable(tags, func(i, j int) bool {
			a, b := strings.ToLower(tags[i].Name), strings.ToLower(tags[j].Name)
			if a != b {
				return a < b
			}
			return tags[i].Name < tags[j].Name
		})
	}
}
