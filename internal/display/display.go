// Package display renders entities for interactive terminal use. JSON-mode
// commands bypass it entirely; see the output package.
package display

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/nhle/omnifocus-cli/internal/model"
	"github.com/nhle/omnifocus-cli/internal/theme"
)

var out io.Writer = os.Stdout

// SuccessMessage prints a confirmation line.
func SuccessMessage(message string) {
	fmt.Fprintln(out, theme.SuccessStyle.Render("✓ "+message))
}

// ErrorMessage prints a failure line to stderr.
func ErrorMessage(err error) {
	fmt.Fprintln(os.Stderr, theme.ErrorStyle.Render(err.Error()))
}

// Pluralize formats a count with a singular or plural noun.
func Pluralize(count int, singular string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %ss", count, singular)
}

func formatEstimate(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, mins)
	}
	return fmt.Sprintf("%dm", mins)
}

func formatTags(tags []string, separator string) string {
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = "#" + t
	}
	return strings.Join(parts, separator)
}

func parseTime(iso string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339, iso)
	return t, err == nil
}

func isOverdue(task model.Task) bool {
	if task.Due == nil || task.Completed {
		return false
	}
	due, ok := parseTime(*task.Due)
	return ok && due.Before(time.Now())
}

// relativeTime renders a rough "in 2 days" / "3 hours ago" distance.
func relativeTime(t time.Time) string {
	d := time.Until(t)
	past := d < 0
	if past {
		d = -d
	}
	var span string
	switch {
	case d < time.Minute:
		span = "moments"
	case d < time.Hour:
		span = Pluralize(int(d.Minutes()), "minute")
	case d < 48*time.Hour:
		span = Pluralize(int(d.Hours()), "hour")
	default:
		span = Pluralize(int(d.Hours()/24), "day")
	}
	if past {
		return span + " ago"
	}
	return "in " + span
}

func formatDate(iso string) string {
	t, ok := parseTime(iso)
	if !ok {
		return iso
	}
	return t.Local().Format("Jan 2, 2006 3:04 PM")
}

func listHeader(count int, noun string) {
	if count == 0 {
		fmt.Fprintln(out, theme.MutedStyle.Render("No "+noun+"s found"))
		return
	}
	fmt.Fprintf(out, "\n%s\n\n", theme.BoldStyle.Render("Found "+Pluralize(count, noun)+":"))
}

// TaskLine prints one task as a single summary line.
func TaskLine(task model.Task, verbose bool) {
	var parts []string

	if task.Flagged {
		parts = append(parts, theme.FlagStyle.Render("⭐"))
	} else {
		parts = append(parts, "  ")
	}
	if task.Completed {
		parts = append(parts, theme.SuccessStyle.Render("✓"))
	} else {
		parts = append(parts, theme.MutedStyle.Render("○"))
	}
	parts = append(parts, theme.BoldStyle.Render(task.Name))

	if task.Project != nil {
		parts = append(parts, theme.ProjectRefStyle.Render("["+*task.Project+"]"))
	}
	if len(task.Tags) > 0 {
		parts = append(parts, theme.TagStyle.Render(formatTags(task.Tags, " ")))
	}
	if task.Due != nil {
		if due, ok := parseTime(*task.Due); ok {
			label := "due " + relativeTime(due)
			if isOverdue(task) {
				parts = append(parts, theme.ErrorStyle.Render(label))
			} else {
				parts = append(parts, theme.MutedStyle.Render(label))
			}
		}
	}
	if task.EstimatedMinutes != nil && *task.EstimatedMinutes > 0 {
		parts = append(parts, theme.MutedStyle.Render("["+formatEstimate(*task.EstimatedMinutes)+"]"))
	}

	fmt.Fprintln(out, strings.Join(parts, " "))

	if verbose {
		if task.Note != nil && *task.Note != "" {
			fmt.Fprintln(out, theme.MutedStyle.Render("  Note: "+*task.Note))
		}
		fmt.Fprintln(out, theme.MutedStyle.Render("  ID: "+task.ID))
		if task.Defer != nil {
			fmt.Fprintln(out, theme.MutedStyle.Render("  Defer: "+formatDate(*task.Defer)))
		}
		if task.CompletionDate != nil {
			fmt.Fprintln(out, theme.MutedStyle.Render("  Completed: "+formatDate(*task.CompletionDate)))
		}
	}
}

// TaskList prints a list of tasks with a count header.
func TaskList(tasks []model.Task, verbose bool) {
	listHeader(len(tasks), "task")
	for _, t := range tasks {
		TaskLine(t, verbose)
	}
}

// TaskDetails prints the full field breakdown for one task.
func TaskDetails(task model.Task) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, theme.BoldStyle.Underline(true).Render(task.Name))
	fmt.Fprintln(out)

	field := func(label, value string) {
		fmt.Fprintln(out, theme.MutedStyle.Render(label)+value)
	}

	field("ID:        ", task.ID)
	if task.Completed {
		field("Status:    ", theme.SuccessStyle.Render("✓ Completed"))
	} else {
		field("Status:    ", theme.WarnStyle.Render("○ Incomplete"))
	}
	if task.Flagged {
		field("Flagged:   ", theme.FlagStyle.Render("⭐ Yes"))
	} else {
		field("Flagged:   ", "No")
	}
	if task.Project != nil {
		field("Project:   ", theme.ProjectRefStyle.Render(*task.Project))
	}
	if len(task.Tags) > 0 {
		field("Tags:      ", theme.TagStyle.Render(formatTags(task.Tags, ", ")))
	}
	if task.Defer != nil {
		field("Defer:     ", formatDate(*task.Defer))
	}
	if task.Due != nil {
		due := formatDate(*task.Due)
		if isOverdue(task) {
			due = theme.ErrorStyle.Render(due)
		}
		field("Due:       ", due)
	}
	if task.EstimatedMinutes != nil && *task.EstimatedMinutes > 0 {
		field("Estimate:  ", formatEstimate(*task.EstimatedMinutes))
	}
	if task.CompletionDate != nil {
		field("Completed: ", formatDate(*task.CompletionDate))
	}
	if task.Note != nil && *task.Note != "" {
		fmt.Fprintln(out)
		fmt.Fprintln(out, theme.BoldStyle.Render("Note:"))
		fmt.Fprintln(out, *task.Note)
	}
	fmt.Fprintln(out)
}

// ProjectLine prints one project as a single summary line.
func ProjectLine(project model.Project, verbose bool) {
	var parts []string

	parts = append(parts, theme.StatusStyle(project.Status).Render("●"))
	parts = append(parts, theme.BoldStyle.Render(project.Name))
	parts = append(parts, theme.MutedStyle.Render(
		fmt.Sprintf("(%d/%d)", project.RemainingCount, project.TaskCount)))
	if project.Sequential {
		parts = append(parts, theme.ProjectRefStyle.Render("[sequential]"))
	}
	if project.Folder != nil {
		parts = append(parts, theme.ProjectRefStyle.Render("["+*project.Folder+"]"))
	}
	if len(project.Tags) > 0 {
		parts = append(parts, theme.TagStyle.Render(formatTags(project.Tags, " ")))
	}

	fmt.Fprintln(out, strings.Join(parts, " "))

	if verbose {
		if project.Note != nil && *project.Note != "" {
			fmt.Fprintln(out, theme.MutedStyle.Render("  Note: "+*project.Note))
		}
		fmt.Fprintln(out, theme.MutedStyle.Render("  ID: "+project.ID))
		fmt.Fprintln(out, theme.MutedStyle.Render("  Status: "+string(project.Status)))
	}
}

// ProjectList prints a list of projects with a count header.
func ProjectList(projects []model.Project, verbose bool) {
	listHeader(len(projects), "project")
	for _, p := range projects {
		ProjectLine(p, verbose)
	}
}

// ProjectDetails prints the full field breakdown for one project.
func ProjectDetails(project model.Project) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, theme.BoldStyle.Underline(true).Render(project.Name))
	fmt.Fprintln(out)

	field := func(label, value string) {
		fmt.Fprintln(out, theme.MutedStyle.Render(label)+value)
	}

	field("ID:        ", project.ID)
	field("Status:    ", theme.StatusStyle(project.Status).Render(string(project.Status)))
	if project.Sequential {
		field("Type:      ", theme.ProjectRefStyle.Render("Sequential"))
	} else {
		field("Type:      ", "Parallel")
	}
	field("Tasks:     ", fmt.Sprintf("%d remaining / %d total", project.RemainingCount, project.TaskCount))
	if project.Folder != nil {
		field("Folder:    ", theme.ProjectRefStyle.Render(*project.Folder))
	}
	if len(project.Tags) > 0 {
		field("Tags:      ", theme.TagStyle.Render(formatTags(project.Tags, ", ")))
	}
	if project.Note != nil && *project.Note != "" {
		fmt.Fprintln(out)
		fmt.Fprintln(out, theme.BoldStyle.Render("Note:"))
		fmt.Fprintln(out, *project.Note)
	}
	fmt.Fprintln(out)
}

// PerspectiveList prints perspective names.
func PerspectiveList(perspectives []model.Perspective) {
	listHeader(len(perspectives), "perspective")
	for _, p := range perspectives {
		fmt.Fprintf(out, "  %s %s\n",
			theme.ProjectRefStyle.Render("▶"), theme.BoldStyle.Render(p.Name))
	}
	if len(perspectives) > 0 {
		fmt.Fprintln(out)
	}
}

// TagLine prints one tag as a single summary line.
func TagLine(tag model.Tag, verbose bool) {
	var parts []string

	parts = append(parts, theme.StatusStyle(tag.Status).Render("●"))
	parts = append(parts, theme.BoldStyle.Render(tag.Name))
	parts = append(parts, theme.MutedStyle.Render(
		fmt.Sprintf("(%d tasks, %d remaining)", tag.TaskCount, tag.RemainingTaskCount)))
	if tag.Parent != nil {
		parts = append(parts, theme.ProjectRefStyle.Render("["+*tag.Parent+"]"))
	}
	if tag.LastActivity != nil {
		if last, ok := parseTime(*tag.LastActivity); ok {
			parts = append(parts, theme.MutedStyle.Render("active "+relativeTime(last)))
		}
	}

	fmt.Fprintln(out, strings.Join(parts, " "))

	if verbose {
		fmt.Fprintln(out, theme.MutedStyle.Render("  ID: "+tag.ID))
		if len(tag.Children) > 0 {
			fmt.Fprintln(out, theme.MutedStyle.Render("  Children: "+strings.Join(tag.Children, ", ")))
		}
	}
}

// TagList prints a list of tags with a count header.
func TagList(tags []model.Tag, verbose bool) {
	listHeader(len(tags), "tag")
	for _, t := range tags {
		TagLine(t, verbose)
	}
}

// TagDetails prints the full field breakdown for one tag.
func TagDetails(tag model.Tag) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, theme.BoldStyle.Underline(true).Render(tag.Name))
	fmt.Fprintln(out)

	field := func(label, value string) {
		fmt.Fprintln(out, theme.MutedStyle.Render(label)+value)
	}

	field("ID:         ", tag.ID)
	field("Status:     ", theme.StatusStyle(tag.Status).Render(string(tag.Status)))
	field("Tasks:      ", fmt.Sprintf("%d total, %d remaining", tag.TaskCount, tag.RemainingTaskCount))
	if tag.Parent != nil {
		field("Parent:     ", theme.ProjectRefStyle.Render(*tag.Parent))
	}
	if len(tag.Children) > 0 {
		field("Children:   ", strings.Join(tag.Children, ", "))
	}
	if tag.LastActivity != nil {
		field("Activity:   ", formatDate(*tag.LastActivity))
	}
	if tag.AllowsNextAction {
		field("Next action:", " allowed")
	}
	fmt.Fprintln(out)
}

// InboxCount prints the inbox summary line.
func InboxCount(count int) {
	if count == 0 {
		fmt.Fprintln(out, theme.SuccessStyle.Render("✓ Inbox is empty"))
		return
	}
	fmt.Fprintln(out, theme.WarnStyle.Render(
		fmt.Sprintf("📥 %s in inbox", Pluralize(count, "item"))))
}

// WithSuccessMessage prints a confirmation followed by the entity details.
func WithSuccessMessage(message string, details func()) {
	SuccessMessage(message)
	fmt.Fprintln(out)
	details()
}
