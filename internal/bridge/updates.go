package bridge

import (
	"fmt"

	"github.com/nhle/omnifocus-cli/internal/model"
)

// compileTaskUpdates translates a task update request into mutation
// statements. Each present field produces exactly one mutation, emitted in
// a fixed order. Completion goes through markComplete/markIncomplete rather
// than raw field assignment so OmniFocus runs its own completion side
// effects (cascading subtask completion, repetition).
func compileTaskUpdates(o model.UpdateTaskOptions) []string {
	var stmts []string

	if o.Name != nil {
		stmts = append(stmts, fmt.Sprintf("task.name = %s;", quote(*o.Name)))
	}
	if o.Note != nil {
		stmts = append(stmts, fmt.Sprintf("task.note = %s;", quote(*o.Note)))
	}
	if o.Flagged != nil {
		stmts = append(stmts, fmt.Sprintf("task.flagged = %t;", *o.Flagged))
	}
	if o.Completed != nil {
		if *o.Completed {
			stmts = append(stmts, "task.markComplete();")
		} else {
			stmts = append(stmts, "task.markIncomplete();")
		}
	}
	if o.EstimatedMinutes != nil {
		stmts = append(stmts, fmt.Sprintf("task.estimatedMinutes = %d;", *o.EstimatedMinutes))
	}
	stmts = append(stmts, compileDatePatch("task.deferDate", o.Defer)...)
	stmts = append(stmts, compileDatePatch("task.dueDate", o.Due)...)
	if o.Project != nil {
		stmts = append(stmts, fmt.Sprintf(
			"const targetProject = findByName(flattenedProjects, %s, \"Project\");",
			quote(*o.Project)))
		stmts = append(stmts, "moveTasks([task], targetProject);")
	}
	if o.Tags != nil {
		stmts = append(stmts, fmt.Sprintf("replaceTagsOn(task, %s);", quoteList(*o.Tags)))
	}

	return stmts
}

// compileDatePatch renders a tri-state date change for the given target
// expression. An absent patch yields nothing; a clear patch assigns null.
func compileDatePatch(target string, p model.DatePatch) []string {
	if !p.Present() {
		return nil
	}
	if p.Clear() {
		return []string{target + " = null;"}
	}
	return []string{fmt.Sprintf("%s = new Date(%s);", target, quote(p.Value()))}
}

// compileProjectUpdates translates a project update request into mutation
// statements in a fixed order mirroring compileTaskUpdates.
func compileProjectUpdates(o model.UpdateProjectOptions) []string {
	var stmts []string

	if o.Name != nil {
		stmts = append(stmts, fmt.Sprintf("project.name = %s;", quote(*o.Name)))
	}
	if o.Note != nil {
		stmts = append(stmts, fmt.Sprintf("project.note = %s;", quote(*o.Note)))
	}
	if o.Sequential != nil {
		stmts = append(stmts, fmt.Sprintf("project.sequential = %t;", *o.Sequential))
	}
	if o.Status != "" {
		stmts = append(stmts, fmt.Sprintf(
			"project.status = stringToProjectStatus(%s);", quote(string(o.Status))))
	}
	if o.Folder != nil {
		stmts = append(stmts, fmt.Sprintf(
			"const targetFolder = findByName(flattenedFolders, %s, \"Folder\");",
			quote(*o.Folder)))
		stmts = append(stmts, "moveSections([project], targetFolder);")
	}
	if o.Tags != nil {
		stmts = append(stmts, fmt.Sprintf("replaceTagsOn(project, %s);", quoteList(*o.Tags)))
	}

	return stmts
}

// compileTagUpdates translates a tag update request into mutation
// statements.
func compileTagUpdates(o model.UpdateTagOptions) []string {
	var stmts []string

	if o.Name != nil {
		stmts = append(stmts, fmt.Sprintf("tag.name = %s;", quote(*o.Name)))
	}
	if o.Status != "" {
		stmts = append(stmts, fmt.Sprintf(
			"tag.status = stringToTagStatus(%s);", quote(string(o.Status))))
	}

	return stmts
}
