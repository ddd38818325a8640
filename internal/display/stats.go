package display

import (
	"fmt"

	"github.com/nhle/omnifocus-cli/internal/model"
	"github.com/nhle/omnifocus-cli/internal/theme"
)

func statsHeader(title string) {
	fmt.Fprintf(out, "\n%s\n\n", theme.BoldStyle.Underline(true).Render(title))
}

func statLine(label string, value string) {
	fmt.Fprintln(out, theme.MutedStyle.Render(label)+value)
}

// TaskStats prints the task statistics report.
func TaskStats(s model.TaskStats) {
	statsHeader("Task Statistics")
	statLine("Total:        ", fmt.Sprintf("%d", s.TotalTasks))
	statLine("Active:       ", fmt.Sprintf("%d", s.ActiveTasks))
	statLine("Completed:    ", fmt.Sprintf("%d", s.CompletedTasks))
	statLine("Flagged:      ", fmt.Sprintf("%d", s.FlaggedTasks))
	statLine("Overdue:      ", fmt.Sprintf("%d", s.OverdueActiveTasks))
	if s.AvgEstimatedMinutes != nil {
		statLine("Avg estimate: ", fmt.Sprintf("%.1f min (%d tasks)",
			*s.AvgEstimatedMinutes, s.TasksWithEstimates))
	}
	statLine("Completion:   ", fmt.Sprintf("%d%%", s.CompletionRate))

	if len(s.TasksByProject) > 0 {
		fmt.Fprintf(out, "\n%s\n", theme.BoldStyle.Render("Top projects:"))
		for _, e := range s.TasksByProject {
			fmt.Fprintf(out, "  %s %s\n",
				theme.ProjectRefStyle.Render(e.Name),
				theme.MutedStyle.Render(fmt.Sprintf("(%d)", e.TaskCount)))
		}
	}
	if len(s.TasksByTag) > 0 {
		fmt.Fprintf(out, "\n%s\n", theme.BoldStyle.Render("Top tags:"))
		for _, e := range s.TasksByTag {
			fmt.Fprintf(out, "  %s %s\n",
				theme.TagStyle.Render("#"+e.Name),
				theme.MutedStyle.Render(fmt.Sprintf("(%d)", e.TaskCount)))
		}
	}
	fmt.Fprintln(out)
}

// ProjectStats prints the project statistics report.
func ProjectStats(s model.ProjectStats) {
	statsHeader("Project Statistics")
	statLine("Total:          ", fmt.Sprintf("%d", s.TotalProjects))
	statLine("Active:         ", fmt.Sprintf("%d", s.ActiveProjects))
	statLine("On hold:        ", fmt.Sprintf("%d", s.OnHoldProjects))
	statLine("Dropped:        ", fmt.Sprintf("%d", s.DroppedProjects))
	statLine("Sequential:     ", fmt.Sprintf("%d", s.SequentialProjects))
	statLine("Parallel:       ", fmt.Sprintf("%d", s.ParallelProjects))
	statLine("Avg tasks:      ", fmt.Sprintf("%.1f", s.AvgTasksPerProject))
	statLine("Avg remaining:  ", fmt.Sprintf("%.1f", s.AvgRemainingPerProject))
	statLine("Avg completion: ", fmt.Sprintf("%d%%", s.AvgCompletionRate))

	if len(s.ProjectsWithMostTasks) > 0 {
		fmt.Fprintf(out, "\n%s\n", theme.BoldStyle.Render("Most tasks:"))
		for _, e := range s.ProjectsWithMostTasks {
			fmt.Fprintf(out, "  %s %s\n",
				theme.ProjectRefStyle.Render(e.Name),
				theme.MutedStyle.Render(fmt.Sprintf("(%d)", e.TaskCount)))
		}
	}
	if len(s.ProjectsWithMostRemaining) > 0 {
		fmt.Fprintf(out, "\n%s\n", theme.BoldStyle.Render("Most remaining:"))
		for _, e := range s.ProjectsWithMostRemaining {
			fmt.Fprintf(out, "  %s %s\n",
				theme.ProjectRefStyle.Render(e.Name),
				theme.MutedStyle.Render(fmt.Sprintf("(%d)", e.RemainingCount)))
		}
	}
	fmt.Fprintln(out)
}

// TagStats prints the tag statistics report.
func TagStats(s model.TagStats) {
	statsHeader("Tag Statistics")
	statLine("Total:         ", fmt.Sprintf("%d", s.TotalTags))
	statLine("Active:        ", fmt.Sprintf("%d", s.ActiveTags))
	statLine("With tasks:    ", fmt.Sprintf("%d", s.TagsWithTasks))
	statLine("Unused:        ", fmt.Sprintf("%d", s.UnusedTags))
	statLine("Avg tasks/tag: ", fmt.Sprintf("%.1f", s.AvgTasksPerTag))

	if len(s.MostUsedTags) > 0 {
		fmt.Fprintf(out, "\n%s\n", theme.BoldStyle.Render("Most used:"))
		for _, e := range s.MostUsedTags {
			fmt.Fprintf(out, "  %s %s\n",
				theme.TagStyle.Render("#"+e.Name),
				theme.MutedStyle.Render(fmt.Sprintf("(%d)", e.TaskCount)))
		}
	}
	if len(s.LeastUsedTags) > 0 {
		fmt.Fprintf(out, "\n%s\n", theme.BoldStyle.Render("Least used:"))
		for _, e := range s.LeastUsedTags {
			fmt.Fprintf(out, "  %s %s\n",
				theme.TagStyle.Render("#"+e.Name),
				theme.MutedStyle.Render(fmt.Sprintf("(%d)", e.TaskCount)))
		}
	}
	if len(s.StaleTags) > 0 {
		fmt.Fprintf(out, "\n%s\n", theme.WarnStyle.Render("Stale (30+ days):"))
		for _, e := range s.StaleTags {
			fmt.Fprintf(out, "  %s %s\n",
				theme.TagStyle.Render("#"+e.Name),
				theme.MutedStyle.Render(fmt.Sprintf("(%d days)", e.DaysSinceActivity)))
		}
	}
	fmt.Fprintln(out)
}
