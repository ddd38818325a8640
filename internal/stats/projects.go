package stats

import (
	"sort"

	"github.com/nhle/omnifocus-cli/internal/model"
)

// ComputeProjectStats summarizes the full project collection. The input
// must include dropped projects. The serializer has already folded the
// external "done" status into "dropped".
func ComputeProjectStats(projects []model.Project) model.ProjectStats {
	s := model.ProjectStats{TotalProjects: len(projects)}

	var taskSum, remainingSum int
	var rateSum float64
	var rated int

	for _, p := range projects {
		switch p.Status {
		case model.StatusActive:
			s.ActiveProjects++
		case model.StatusOnHold:
			s.OnHoldProjects++
		default:
			s.DroppedProjects++
		}

		if p.EffectivelyActive {
			if p.Sequential {
				s.SequentialProjects++
			} else {
				s.ParallelProjects++
			}
		}

		taskSum += p.TaskCount
		remainingSum += p.RemainingCount

		if p.TaskCount > 0 {
			rated++
			rateSum += float64(p.TaskCount-p.RemainingCount) / float64(p.TaskCount)
		}
	}

	if len(projects) > 0 {
		s.AvgTasksPerProject = round1(float64(taskSum) / float64(len(projects)))
		s.AvgRemainingPerProject = round1(float64(remainingSum) / float64(len(projects)))
	}
	if rated > 0 {
		s.AvgCompletionRate = roundPercent(rateSum / float64(rated))
	}

	byTasks := make([]model.TaskCountEntry, 0, len(projects))
	for _, p := range projects {
		byTasks = append(byTasks, model.TaskCountEntry{Name: p.Name, TaskCount: p.TaskCount})
	}
	sort.SliceStable(byTasks, func(i, j int) bool {
		return byTasks[i].TaskCount > byTasks[j].TaskCount
	})
	if len(byTasks) > topN {
		byTasks = byTasks[:topN]
	}
	s.ProjectsWithMostTasks = byTasks

	// Projects with nothing left to do are not interesting here.
	var byRemaining []model.RemainingCountEntry
	for _, p := range projects {
		if p.RemainingCount > 0 {
			byRemaining = append(byRemaining, model.RemainingCountEntry{
				Name:           p.Name,
				RemainingCount: p.RemainingCount,
			})
		}
	}
	sort.SliceStable(byRemaining, func(i, j int) bool {
		return byRemaining[i].RemainingCount > byRemaining[j].RemainingCount
	})
	if len(byRemaining) > topN {
		byRemaining = byRemaining[:topN]
	}
	s.ProjectsWithMostRemaining = byRemaining

	return s
}
