package bridge

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nhle/omnifocus-cli/internal/model"
)

func strp(s string) *string { return &s }
func boolp(b bool) *bool    { return &b }
func intp(n int) *int       { return &n }

func TestCompileTaskUpdatesEmpty(t *testing.T) {
	assert.Empty(t, compileTaskUpdates(model.UpdateTaskOptions{}))
}

func TestCompileTaskUpdatesOrder(t *testing.T) {
	tags := []string{"home", "weekend"}
	stmts := compileTaskUpdates(model.UpdateTaskOptions{
		Name:             strp("New name"),
		Note:             strp("notes"),
		Flagged:          boolp(true),
		Completed:        boolp(true),
		EstimatedMinutes: intp(25),
		Defer:            model.SetDate("2026-09-01T09:00:00Z"),
		Due:              model.ClearDate(),
		Project:          strp("Errands"),
		Tags:             &tags,
	})

	assert.Equal(t, []string{
		`task.name = "New name";`,
		`task.note = "notes";`,
		"task.flagged = true;",
		"task.markComplete();",
		"task.estimatedMinutes = 25;",
		`task.deferDate = new Date("2026-09-01T09:00:00Z");`,
		"task.dueDate = null;",
		`const targetProject = findByName(flattenedProjects, "Errands", "Project");`,
		"moveTasks([task], targetProject);",
		`replaceTagsOn(task, ["home", "weekend"]);`,
	}, stmts)
}

func TestCompileTaskUpdatesIncomplete(t *testing.T) {
	stmts := compileTaskUpdates(model.UpdateTaskOptions{Completed: boolp(false)})
	assert.Equal(t, []string{"task.markIncomplete();"}, stmts)
}

func TestCompileTaskUpdatesEmptyTagListClears(t *testing.T) {
	tags := []string{}
	stmts := compileTaskUpdates(model.UpdateTaskOptions{Tags: &tags})
	assert.Equal(t, []string{"replaceTagsOn(task, []);"}, stmts)
}

func TestCompileDatePatch(t *testing.T) {
	assert.Nil(t, compileDatePatch("task.dueDate", model.DatePatch{}))
	assert.Equal(t,
		[]string{"task.dueDate = null;"},
		compileDatePatch("task.dueDate", model.ClearDate()))
	assert.Equal(t,
		[]string{`task.dueDate = new Date("2026-01-02T03:04:05Z");`},
		compileDatePatch("task.dueDate", model.SetDate("2026-01-02T03:04:05Z")))
}

func TestCompileProjectUpdatesOrder(t *testing.T) {
	tags := []string{"deep"}
	stmts := compileProjectUpdates(model.UpdateProjectOptions{
		Name:       strp("Renamed"),
		Note:       strp(""),
		Sequential: boolp(false),
		Status:     model.StatusOnHold,
		Folder:     strp("Someday"),
		Tags:       &tags,
	})

	assert.Equal(t, []string{
		`project.name = "Renamed";`,
		`project.note = "";`,
		"project.sequential = false;",
		`project.status = stringToProjectStatus("on hold");`,
		`const targetFolder = findByName(flattenedFolders, "Someday", "Folder");`,
		"moveSections([project], targetFolder);",
		`replaceTagsOn(project, ["deep"]);`,
	}, stmts)
}

func TestCompileTagUpdates(t *testing.T) {
	assert.Empty(t, compileTagUpdates(model.UpdateTagOptions{}))
	assert.Equal(t, []string{
		`tag.name = "renamed";`,
		`tag.status = stringToTagStatus("dropped");`,
	}, compileTagUpdates(model.UpdateTagOptions{
		Name:   strp("renamed"),
		Status: model.StatusDropped,
	}))
}
