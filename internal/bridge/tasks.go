package bridge

import (
	"context"
	"fmt"

	"github.com/nhle/omnifocus-cli/internal/model"
	"github.com/nhle/omnifocus-cli/internal/stats"
)

// ListTasks returns all tasks passing the given filters, in the bridge's
// iteration order over the flattened collection.
func (o *OmniFocus) ListTasks(ctx context.Context, f model.TaskFilters) ([]model.Task, error) {
	s := newScript()
	s.stmt(0, "const results = [];")
	s.stmt(0, "for (const task of flattenedTasks) {")
	for _, cond := range compileTaskFilters(f) {
		s.stmt(1, cond)
	}
	s.stmt(1, "results.push(serializeTask(task));")
	s.stmt(0, "}")
	s.stmt(0, "return JSON.stringify(results);")

	var tasks []model.Task
	if err := o.evalInto(ctx, s.String(), o.timeout, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// GetTask resolves idOrName against the flattened task collection and
// returns the matching task.
func (o *OmniFocus) GetTask(ctx context.Context, idOrName string) (*model.Task, error) {
	s := newScript()
	s.stmtf(0, "const task = findTask(%s);", quote(idOrName))
	s.stmt(0, "return JSON.stringify(serializeTask(task));")

	var task model.Task
	if err := o.evalInto(ctx, s.String(), o.timeout, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// CreateTask creates a task, in the inbox by default or inside the named
// project when one is given. The project is resolved by exact name.
func (o *OmniFocus) CreateTask(ctx context.Context, opts model.CreateTaskOptions) (*model.Task, error) {
	if opts.Name == "" {
		return nil, model.NewValidationError("task name is required")
	}

	s := newScript()
	if opts.Project != nil {
		s.stmtf(0, "const targetProject = findByName(flattenedProjects, %s, \"Project\");",
			quote(*opts.Project))
		s.stmtf(0, "const task = new Task(%s, targetProject);", quote(opts.Name))
	} else {
		s.stmtf(0, "const task = new Task(%s, inbox);", quote(opts.Name))
	}
	if opts.Note != nil {
		s.stmtf(0, "task.note = %s;", quote(*opts.Note))
	}
	if opts.Flagged {
		s.stmt(0, "task.flagged = true;")
	}
	if opts.EstimatedMinutes != nil {
		s.stmtf(0, "task.estimatedMinutes = %d;", *opts.EstimatedMinutes)
	}
	if opts.Defer != nil {
		s.stmtf(0, "task.deferDate = new Date(%s);", quote(*opts.Defer))
	}
	if opts.Due != nil {
		s.stmtf(0, "task.dueDate = new Date(%s);", quote(*opts.Due))
	}
	if len(opts.Tags) > 0 {
		s.stmtf(0, "assignTags(task, %s);", quoteList(opts.Tags))
	}
	s.stmt(0, "return JSON.stringify(serializeTask(task));")

	var task model.Task
	if err := o.evalInto(ctx, s.String(), o.timeout, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateTask applies a partial update to the task resolved from idOrName
// and returns the task's new state.
func (o *OmniFocus) UpdateTask(ctx context.Context, idOrName string, opts model.UpdateTaskOptions) (*model.Task, error) {
	s := newScript()
	s.stmtf(0, "const task = findTask(%s);", quote(idOrName))
	for _, stmt := range compileTaskUpdates(opts) {
		s.stmt(0, stmt)
	}
	s.stmt(0, "return JSON.stringify(serializeTask(task));")

	var task model.Task
	if err := o.evalInto(ctx, s.String(), o.timeout, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// DeleteTask removes the task resolved from idOrName.
func (o *OmniFocus) DeleteTask(ctx context.Context, idOrName string) error {
	s := newScript()
	s.stmtf(0, "deleteObject(findTask(%s));", quote(idOrName))
	s.stmt(0, "return JSON.stringify({deleted: true});")

	_, err := o.eval(ctx, s.String(), o.timeout)
	return err
}

// SearchTasks returns tasks whose name or note contains the query,
// case-insensitively. Completed and dropped tasks are excluded. This is the
// only operation with partial string matching.
func (o *OmniFocus) SearchTasks(ctx context.Context, query string) ([]model.Task, error) {
	s := newScript()
	s.stmt(0, "const results = [];")
	s.stmtf(0, "const searchQuery = %s.toLowerCase();", quote(query))
	s.stmt(0, "for (const task of flattenedTasks) {")
	s.stmt(1, "if (task.completed) continue;")
	s.stmt(1, "if (task.dropped) continue;")
	s.stmt(1, "const name = task.name.toLowerCase();")
	s.stmt(1, "const note = (task.note || \"\").toLowerCase();")
	s.stmt(1, "if (name.includes(searchQuery) || note.includes(searchQuery)) {")
	s.stmt(2, "results.push(serializeTask(task));")
	s.stmt(1, "}")
	s.stmt(0, "}")
	s.stmt(0, "return JSON.stringify(results);")

	var tasks []model.Task
	if err := o.evalInto(ctx, s.String(), o.timeout, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// GetTaskStats aggregates the full task collection, including completed and
// dropped tasks, into cross-cutting statistics.
func (o *OmniFocus) GetTaskStats(ctx context.Context) (*model.TaskStats, error) {
	tasks, err := o.ListTasks(ctx, model.TaskFilters{IncludeCompleted: true, IncludeDropped: true})
	if err != nil {
		return nil, fmt.Errorf("loading tasks for stats: %w", err)
	}
	result := stats.ComputeTaskStats(tasks, o.now())
	return &result, nil
}
