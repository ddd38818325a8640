package bridge

import (
	"fmt"

	"github.com/nhle/omnifocus-cli/internal/model"
)

// projectStatusNames maps normalized status strings to the automation
// enum's constant names.
var projectStatusNames = map[model.Status]string{
	model.StatusActive:  "Active",
	model.StatusOnHold:  "OnHold",
	model.StatusDropped: "Dropped",
}

// compileTaskFilters translates task filters into skip conditions applied
// while iterating flattenedTasks. Conditions are independent and
// order-insensitive; each one appears only when the corresponding filter
// field is set.
func compileTaskFilters(f model.TaskFilters) []string {
	var conds []string

	if !f.IncludeCompleted {
		conds = append(conds, "if (task.completed) continue;")
	}
	if !f.IncludeDropped {
		conds = append(conds, "if (task.dropped) continue;")
	}
	if f.Flagged {
		conds = append(conds, "if (!task.flagged) continue;")
		conds = append(conds, "if (task.taskStatus !== Task.Status.Available) continue;")
	}
	if f.Project != "" {
		conds = append(conds, fmt.Sprintf(
			"if (!task.containingProject || task.containingProject.name !== %s) continue;",
			quote(f.Project)))
	}
	if f.Tag != "" {
		conds = append(conds, fmt.Sprintf(
			"if (!task.tags.some(t => t.name === %s)) continue;", quote(f.Tag)))
	}

	return conds
}

// compileProjectFilters translates project filters into skip conditions
// applied while iterating flattenedProjects. By default dropped and done
// projects are excluded, as are projects inside folders that are not
// effectively active.
func compileProjectFilters(f model.ProjectFilters) []string {
	var conds []string

	if !f.IncludeDropped {
		conds = append(conds,
			"if (project.status === Project.Status.Dropped || project.status === Project.Status.Done) continue;")
		conds = append(conds,
			"if (project.folder && !project.folder.effectiveActive) continue;")
	}
	if f.Status != "" {
		conds = append(conds, fmt.Sprintf(
			"if (project.status !== Project.Status.%s) continue;",
			projectStatusNames[f.Status]))
	}
	if f.Folder != "" {
		conds = append(conds, fmt.Sprintf(
			"if (!project.folder || project.folder.name !== %s) continue;",
			quote(f.Folder)))
	}

	return conds
}
