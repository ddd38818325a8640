package stats

import (
	"sort"
	"time"

	"github.com/nhle/omnifocus-cli/internal/model"
)

// ComputeTaskStats summarizes the full task collection. The input must
// include completed and dropped tasks; callers fetch it with both include
// flags set.
func ComputeTaskStats(tasks []model.Task, now time.Time) model.TaskStats {
	s := model.TaskStats{TotalTasks: len(tasks)}

	byProject := newCounter()
	byTag := newCounter()
	var estimateSum int

	for _, t := range tasks {
		switch {
		case t.Completed:
			s.CompletedTasks++
		case t.EffectivelyActive:
			s.ActiveTasks++
			if t.Flagged {
				s.FlaggedTasks++
			}
			if t.Due != nil && parseTime(*t.Due).Before(now) {
				s.OverdueActiveTasks++
			}
		}

		if t.EstimatedMinutes != nil && *t.EstimatedMinutes > 0 {
			s.TasksWithEstimates++
			estimateSum += *t.EstimatedMinutes
		}

		// Dropped-only tasks are excluded from attribution.
		if t.EffectivelyActive || t.Completed {
			if t.Project != nil {
				byProject.add(*t.Project)
			}
			for _, tag := range t.Tags {
				byTag.add(tag)
			}
		}
	}

	if s.TasksWithEstimates > 0 {
		avg := float64(estimateSum) / float64(s.TasksWithEstimates)
		s.AvgEstimatedMinutes = &avg
	}
	if eligible := s.CompletedTasks + s.ActiveTasks; eligible > 0 {
		s.CompletionRate = roundPercent(float64(s.CompletedTasks) / float64(eligible))
	}

	s.TasksByProject = topTaskCounts(byProject)
	s.TasksByTag = topTaskCounts(byTag)
	return s
}

// topTaskCounts returns the counter's top entries by count, descending,
// with encounter order breaking ties.
func topTaskCounts(c *counter) []model.TaskCountEntry {
	entries := make([]model.TaskCountEntry, 0, len(c.names))
	for _, name := range c.names {
		entries = append(entries, model.TaskCountEntry{Name: name, TaskCount: c.counts[name]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TaskCount > entries[j].TaskCount
	})
	if len(entries) > topN {
		entries = entries[:topN]
	}
	return entries
}
