package display

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nhle/omnifocus-cli/internal/model"
)

// capture redirects package output for the duration of fn.
func capture(fn func()) string {
	var buf bytes.Buffer
	prev := out
	out = &buf
	defer func() { out = prev }()
	fn()
	return buf.String()
}

func TestPluralize(t *testing.T) {
	assert.Equal(t, "1 task", Pluralize(1, "task"))
	assert.Equal(t, "0 tasks", Pluralize(0, "task"))
	assert.Equal(t, "3 tags", Pluralize(3, "tag"))
}

func TestFormatEstimate(t *testing.T) {
	assert.Equal(t, "45m", formatEstimate(45))
	assert.Equal(t, "1h 0m", formatEstimate(60))
	assert.Equal(t, "2h 5m", formatEstimate(125))
	assert.Equal(t, "0m", formatEstimate(0))
}

func TestFormatTags(t *testing.T) {
	assert.Equal(t, "", formatTags(nil, ", "))
	assert.Equal(t, "#a", formatTags([]string{"a"}, ", "))
	assert.Equal(t, "#a, #b", formatTags([]string{"a", "b"}, ", "))
}

func TestRelativeTime(t *testing.T) {
	assert.Equal(t, "in 2 hours", relativeTime(time.Now().Add(2*time.Hour+time.Minute)))
	assert.Equal(t, "3 hours ago", relativeTime(time.Now().Add(-3*time.Hour-time.Minute)))
	assert.Equal(t, "in moments", relativeTime(time.Now().Add(10*time.Second)))
	assert.Equal(t, "in 5 days", relativeTime(time.Now().Add(5*24*time.Hour+time.Hour)))
}

func TestIsOverdue(t *testing.T) {
	past := time.Now().Add(-time.Hour).Format(time.RFC3339)
	future := time.Now().Add(time.Hour).Format(time.RFC3339)

	assert.True(t, isOverdue(model.Task{Due: &past}))
	assert.False(t, isOverdue(model.Task{Due: &future}))
	assert.False(t, isOverdue(model.Task{}))
	assert.False(t, isOverdue(model.Task{Due: &past, Completed: true}))
}

func TestTaskListEmpty(t *testing.T) {
	got := capture(func() { TaskList(nil, false) })
	assert.Contains(t, got, "No tasks found")
}

func TestTaskListRendersNames(t *testing.T) {
	tasks := []model.Task{
		{ID: "t1", Name: "Buy milk"},
		{ID: "t2", Name: "Call dentist", Flagged: true},
	}
	got := capture(func() { TaskList(tasks, false) })
	assert.Contains(t, got, "Found 2 tasks:")
	assert.Contains(t, got, "Buy milk")
	assert.Contains(t, got, "Call dentist")
}

func TestFolderListIndentsChildren(t *testing.T) {
	folders := []model.Folder{{
		Name:   "Work",
		Status: "active",
		Children: []model.Folder{
			{Name: "Clients", Status: "active"},
		},
	}}
	got := capture(func() { FolderList(folders) })
	assert.Contains(t, got, "Work")
	assert.Contains(t, got, "  Clients")
}
