package bridge

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nhle/omnifocus-cli/internal/model"
)

func TestCompileTaskFiltersDefaults(t *testing.T) {
	conds := compileTaskFilters(model.TaskFilters{})
	assert.Equal(t, []string{
		"if (task.completed) continue;",
		"if (task.dropped) continue;",
	}, conds)
}

func TestCompileTaskFiltersIncludeEverything(t *testing.T) {
	conds := compileTaskFilters(model.TaskFilters{
		IncludeCompleted: true,
		IncludeDropped:   true,
	})
	assert.Empty(t, conds)
}

func TestCompileTaskFiltersFlagged(t *testing.T) {
	conds := compileTaskFilters(model.TaskFilters{
		IncludeCompleted: true,
		IncludeDropped:   true,
		Flagged:          true,
	})
	assert.Equal(t, []string{
		"if (!task.flagged) continue;",
		"if (task.taskStatus !== Task.Status.Available) continue;",
	}, conds)
}

func TestCompileTaskFiltersProjectAndTag(t *testing.T) {
	conds := compileTaskFilters(model.TaskFilters{
		IncludeCompleted: true,
		IncludeDropped:   true,
		Project:          `Work "Q3"`,
		Tag:              "errand",
	})
	assert.Equal(t, []string{
		`if (!task.containingProject || task.containingProject.name !== "Work \"Q3\"") continue;`,
		`if (!task.tags.some(t => t.name === "errand")) continue;`,
	}, conds)
}

func TestCompileProjectFiltersDefaults(t *testing.T) {
	conds := compileProjectFilters(model.ProjectFilters{})
	assert.Equal(t, []string{
		"if (project.status === Project.Status.Dropped || project.status === Project.Status.Done) continue;",
		"if (project.folder && !project.folder.effectiveActive) continue;",
	}, conds)
}

func TestCompileProjectFiltersStatusAndFolder(t *testing.T) {
	conds := compileProjectFilters(model.ProjectFilters{
		IncludeDropped: true,
		Status:         model.StatusOnHold,
		Folder:         "Home",
	})
	assert.Equal(t, []string{
		"if (project.status !== Project.Status.OnHold) continue;",
		`if (!project.folder || project.folder.name !== "Home") continue;`,
	}, conds)
}
