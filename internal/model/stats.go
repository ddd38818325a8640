package model

// TaskCountEntry is one row of a top-N usage list.
type TaskCountEntry struct {
	Name      string `json:"name"`
	TaskCount int    `json:"taskCount"`
}

// RemainingCountEntry is one row of a top-N remaining-work list.
type RemainingCountEntry struct {
	Name           string `json:"name"`
	RemainingCount int    `json:"remainingCount"`
}

// StaleTagEntry is one row of the stale-tag report.
type StaleTagEntry struct {
	Name              string `json:"name"`
	DaysSinceActivity int    `json:"daysSinceActivity"`
}

// TaskStats summarizes the full task collection.
type TaskStats struct {
	TotalTasks         int `json:"totalTasks"`
	ActiveTasks        int `json:"activeTasks"`
	CompletedTasks     int `json:"completedTasks"`
	FlaggedTasks       int `json:"flaggedTasks"`
	OverdueActiveTasks int `json:"overdueActiveTasks"`

	// AvgEstimatedMinutes is averaged over tasks with a positive
	// estimate, or nil when none exist.
	AvgEstimatedMinutes *float64 `json:"avgEstimatedMinutes"`
	TasksWithEstimates  int      `json:"tasksWithEstimates"`

	// CompletionRate is completed / (completed + active) as an integer
	// percentage, 0 when there are no eligible tasks.
	CompletionRate int `json:"completionRate"`

	TasksByProject []TaskCountEntry `json:"tasksByProject"`
	TasksByTag     []TaskCountEntry `json:"tasksByTag"`
}

// ProjectStats summarizes the full project collection.
type ProjectStats struct {
	TotalProjects   int `json:"totalProjects"`
	ActiveProjects  int `json:"activeProjects"`
	OnHoldProjects  int `json:"onHoldProjects"`
	DroppedProjects int `json:"droppedProjects"`

	// Sequential/parallel counts cover effectively-active projects only.
	SequentialProjects int `json:"sequentialProjects"`
	ParallelProjects   int `json:"parallelProjects"`

	AvgTasksPerProject     float64 `json:"avgTasksPerProject"`
	AvgRemainingPerProject float64 `json:"avgRemainingPerProject"`

	// AvgCompletionRate averages per-project completion percentages over
	// projects with at least one task, rounded to the nearest integer.
	AvgCompletionRate int `json:"avgCompletionRate"`

	ProjectsWithMostTasks     []TaskCountEntry      `json:"projectsWithMostTasks"`
	ProjectsWithMostRemaining []RemainingCountEntry `json:"projectsWithMostRemaining"`
}

// TagStats summarizes the full tag collection.
type TagStats struct {
	TotalTags     int `json:"totalTags"`
	ActiveTags    int `json:"activeTags"`
	TagsWithTasks int `json:"tagsWithTasks"`
	UnusedTags    int `json:"unusedTags"`

	// AvgTasksPerTag is computed over used tags only, rounded to one
	// decimal place.
	AvgTasksPerTag float64 `json:"avgTasksPerTag"`

	MostUsedTags  []TaskCountEntry `json:"mostUsedTags"`
	LeastUsedTags []TaskCountEntry `json:"leastUsedTags"`
	StaleTags     []StaleTagEntry  `json:"staleTags"`
}
