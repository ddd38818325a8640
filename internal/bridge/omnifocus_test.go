package bridge

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/omnifocus-cli/internal/model"
)

// fakeRunner records the script it received and returns canned output.
type fakeRunner struct {
	script string
	out    string
	err    error
}

func (f *fakeRunner) Run(ctx context.Context, script string) (string, error) {
	f.script = script
	return f.out, f.err
}

func TestWrapScript(t *testing.T) {
	wrapped := wrapScript(`const x = "hi";` + "\nJSON.stringify(x);")

	assert.Contains(t, wrapped, "Application('OmniFocus')")
	assert.Contains(t, wrapped, "app.includeStandardAdditions = true;")
	assert.Contains(t, wrapped, "app.evaluateJavascript(")
	// The inner script travels as one JSON string literal, quotes escaped.
	assert.Contains(t, wrapped, `\"hi\"`)
	assert.True(t, strings.HasSuffix(wrapped, "result;"))
}

func TestListTasksDecodesOutput(t *testing.T) {
	runner := &fakeRunner{out: `[
		{"id": "t1", "name": "Buy milk", "completed": false, "dropped": false,
		 "effectivelyActive": true, "flagged": true, "project": "Errands",
		 "tags": ["store"], "note": null, "defer": null, "due": null,
		 "estimatedMinutes": 5, "completionDate": null,
		 "added": null, "modified": null}
	]`}
	of := New(runner)

	tasks, err := of.ListTasks(context.Background(), model.TaskFilters{})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "t1", tasks[0].ID)
	assert.Equal(t, "Buy milk", tasks[0].Name)
	assert.True(t, tasks[0].Flagged)
	require.NotNil(t, tasks[0].Project)
	assert.Equal(t, "Errands", *tasks[0].Project)
	require.NotNil(t, tasks[0].EstimatedMinutes)
	assert.Equal(t, 5, *tasks[0].EstimatedMinutes)

	// The executed script is the wrapped form carrying the prelude.
	assert.Contains(t, runner.script, "evaluateJavascript")
}

func TestGetTaskNotFound(t *testing.T) {
	runner := &fakeRunner{err: errors.New("Error: task not found: bogus")}
	of := New(runner)

	_, err := of.GetTask(context.Background(), "bogus")
	require.Error(t, err)
	assert.True(t, model.IsNotFound(err))
	assert.Equal(t, 404, model.StatusCodeOf(err))
}

func TestGetTagAmbiguous(t *testing.T) {
	runner := &fakeRunner{err: errors.New(
		`Error: Multiple tags named "home": Work/home (abc), Life/home (def)`)}
	of := New(runner)

	_, err := of.GetTag(context.Background(), "home")
	require.Error(t, err)
	assert.True(t, model.IsAmbiguous(err))
	assert.Equal(t, 400, model.StatusCodeOf(err))
}

func TestEvalIntoRejectsMalformedJSON(t *testing.T) {
	runner := &fakeRunner{out: "definitely not json"}
	of := New(runner)

	_, err := of.ListTasks(context.Background(), model.TaskFilters{})
	require.Error(t, err)
	assert.Equal(t, model.ErrKindInfrastructure, model.KindOf(err))
	assert.Equal(t, 500, model.StatusCodeOf(err))
}

func TestClassifyBridgeError(t *testing.T) {
	assert.True(t, model.IsNotFound(
		classifyBridgeError(errors.New("Error: project not found: X"))))
	assert.True(t, model.IsAmbiguous(
		classifyBridgeError(errors.New(`Multiple tags named "x"`))))
	assert.Equal(t, model.ErrKindInfrastructure,
		model.KindOf(classifyBridgeError(errors.New("osascript crashed"))))
}

func TestCreateTaskRequiresName(t *testing.T) {
	of := New(&fakeRunner{})

	_, err := of.CreateTask(context.Background(), model.CreateTaskOptions{})
	require.Error(t, err)
	assert.True(t, model.IsValidation(err))
}

func TestDeleteTask(t *testing.T) {
	runner := &fakeRunner{out: `{"deleted": true}`}
	of := New(runner)

	require.NoError(t, of.DeleteTask(context.Background(), "t1"))
	assert.Contains(t, runner.script, "deleteObject")
}

func TestWithClock(t *testing.T) {
	fixed := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	of := New(&fakeRunner{}, WithClock(func() time.Time { return fixed }))
	assert.Equal(t, fixed, of.now())
}
