package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/omnifocus-cli/internal/model"
)

var statsNow = time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

func strp(s string) *string { return &s }
func intp(n int) *int       { return &n }

func activeTask(name string) model.Task {
	return model.Task{Name: name, EffectivelyActive: true}
}

func TestComputeTaskStatsEmpty(t *testing.T) {
	s := ComputeTaskStats(nil, statsNow)
	assert.Equal(t, 0, s.TotalTasks)
	assert.Equal(t, 0, s.CompletionRate)
	assert.Nil(t, s.AvgEstimatedMinutes)
	assert.Empty(t, s.TasksByProject)
	assert.Empty(t, s.TasksByTag)
}

func TestComputeTaskStatsPartition(t *testing.T) {
	tasks := []model.Task{
		activeTask("a"),
		activeTask("b"),
		{Name: "done", Completed: true},
		{Name: "gone", Dropped: true},
	}
	s := ComputeTaskStats(tasks, statsNow)

	assert.Equal(t, 4, s.TotalTasks)
	assert.Equal(t, 2, s.ActiveTasks)
	assert.Equal(t, 1, s.CompletedTasks)
	// 1 completed of 3 eligible; the dropped task does not count.
	assert.Equal(t, 33, s.CompletionRate)
}

func TestComputeTaskStatsFlaggedAndOverdue(t *testing.T) {
	overdue := activeTask("late")
	overdue.Due = strp("2026-06-01T00:00:00Z")
	future := activeTask("soon")
	future.Due = strp("2026-07-01T00:00:00Z")
	flagged := activeTask("hot")
	flagged.Flagged = true
	completedFlagged := model.Task{Name: "done", Completed: true, Flagged: true}

	s := ComputeTaskStats([]model.Task{overdue, future, flagged, completedFlagged}, statsNow)

	assert.Equal(t, 1, s.OverdueActiveTasks)
	// Only active tasks count toward the flagged tally.
	assert.Equal(t, 1, s.FlaggedTasks)
}

func TestComputeTaskStatsEstimates(t *testing.T) {
	withEst := activeTask("a")
	withEst.EstimatedMinutes = intp(30)
	zeroEst := activeTask("b")
	zeroEst.EstimatedMinutes = intp(0)
	alsoEst := model.Task{Name: "c", Completed: true, EstimatedMinutes: intp(15)}

	s := ComputeTaskStats([]model.Task{withEst, zeroEst, alsoEst, activeTask("d")}, statsNow)

	assert.Equal(t, 2, s.TasksWithEstimates)
	require.NotNil(t, s.AvgEstimatedMinutes)
	assert.InDelta(t, 22.5, *s.AvgEstimatedMinutes, 0.001)
}

func TestComputeTaskStatsAttributionSkipsDropped(t *testing.T) {
	inProject := activeTask("a")
	inProject.Project = strp("Work")
	inProject.Tags = []string{"urgent"}
	droppedInProject := model.Task{
		Name:    "b",
		Dropped: true,
		Project: strp("Work"),
		Tags:    []string{"urgent"},
	}

	s := ComputeTaskStats([]model.Task{inProject, droppedInProject}, statsNow)

	require.Len(t, s.TasksByProject, 1)
	assert.Equal(t, model.TaskCountEntry{Name: "Work", TaskCount: 1}, s.TasksByProject[0])
	require.Len(t, s.TasksByTag, 1)
	assert.Equal(t, 1, s.TasksByTag[0].TaskCount)
}

func TestComputeTaskStatsTopFiveTies(t *testing.T) {
	var tasks []model.Task
	for _, project := range []string{"P1", "P2", "P3", "P4", "P5", "P6"} {
		task := activeTask(project)
		task.Project = strp(project)
		tasks = append(tasks, task)
	}
	// P4 pulls ahead with a second task.
	extra := activeTask("x")
	extra.Project = strp("P4")
	tasks = append(tasks, extra)

	s := ComputeTaskStats(tasks, statsNow)

	require.Len(t, s.TasksByProject, 5)
	assert.Equal(t, "P4", s.TasksByProject[0].Name)
	// Ties keep encounter order; P6 is the one cut off.
	assert.Equal(t, []string{"P1", "P2", "P3", "P5"}, []string{
		s.TasksByProject[1].Name, s.TasksByProject[2].Name,
		s.TasksByProject[3].Name, s.TasksByProject[4].Name,
	})
}

func TestCompletionRateBounds(t *testing.T) {
	allDone := []model.Task{{Completed: true}, {Completed: true}}
	assert.Equal(t, 100, ComputeTaskStats(allDone, statsNow).CompletionRate)

	noneDone := []model.Task{activeTask("a")}
	assert.Equal(t, 0, ComputeTaskStats(noneDone, statsNow).CompletionRate)

	onlyDropped := []model.Task{{Dropped: true}}
	assert.Equal(t, 0, ComputeTaskStats(onlyDropped, statsNow).CompletionRate)
}
