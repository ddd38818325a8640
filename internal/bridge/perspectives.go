package bridge

import (
	"context"

	"github.com/nhle/omnifocus-cli/internal/model"
)

// builtInPerspectives are always reported by ListPerspectives, ahead of any
// user-defined custom perspectives.
var builtInPerspectives = []string{
	"Inbox", "Flagged", "Forecast", "Projects", "Tags", "Nearby", "Review",
}

// ListPerspectives returns the built-in perspectives followed by all custom
// perspectives defined in the application.
func (o *OmniFocus) ListPerspectives(ctx context.Context) ([]model.Perspective, error) {
	s := newScript()
	s.stmt(0, "const results = [];")
	s.stmtf(0, "const builtInNames = %s;", quoteList(builtInPerspectives))
	s.stmt(0, "for (const name of builtInNames) {")
	s.stmt(1, "results.push({id: name, name: name});")
	s.stmt(0, "}")
	s.stmt(0, "for (const perspective of Perspective.Custom.all) {")
	s.stmt(1, "results.push({id: perspective.name, name: perspective.name});")
	s.stmt(0, "}")
	s.stmt(0, "return JSON.stringify(results);")

	var perspectives []model.Perspective
	if err := o.evalInto(ctx, s.String(), o.timeout, &perspectives); err != nil {
		return nil, err
	}
	return perspectives, nil
}

// PerspectiveTasks materializes the named perspective in the frontmost
// window and returns the tasks it displays. This requires an open window;
// the generated script raises a precondition error otherwise. The extended
// timeout applies because the window has to load and re-filter.
func (o *OmniFocus) PerspectiveTasks(ctx context.Context, name string) ([]model.Task, error) {
	s := newScript()
	s.stmt(0, "const windows = document.windows;")
	s.stmt(0, "if (windows.length === 0) {")
	s.stmt(1, "throw new Error(\"No OmniFocus window is open. Please open an OmniFocus window and try again.\");")
	s.stmt(0, "}")
	s.stmt(0, "const win = windows[0];")
	s.stmtf(0, "const perspectiveName = %s;", quote(name))
	s.stmt(0, "const builtIn = {")
	s.stmt(1, "inbox: Perspective.BuiltIn.Inbox,")
	s.stmt(1, "flagged: Perspective.BuiltIn.Flagged,")
	s.stmt(1, "forecast: Perspective.BuiltIn.Forecast,")
	s.stmt(1, "projects: Perspective.BuiltIn.Projects,")
	s.stmt(1, "tags: Perspective.BuiltIn.Tags,")
	s.stmt(1, "nearby: Perspective.BuiltIn.Nearby,")
	s.stmt(1, "review: Perspective.BuiltIn.Review")
	s.stmt(0, "};")
	s.stmt(0, "const lowerName = perspectiveName.toLowerCase();")
	s.stmt(0, "if (builtIn[lowerName]) {")
	s.stmt(1, "win.perspective = builtIn[lowerName];")
	s.stmt(0, "} else {")
	s.stmt(1, "const customPerspective = Perspective.Custom.byName(perspectiveName);")
	s.stmt(1, "if (!customPerspective) {")
	s.stmt(2, "throw new Error(\"Perspective not found: \" + perspectiveName);")
	s.stmt(1, "}")
	s.stmt(1, "win.perspective = customPerspective;")
	s.stmt(0, "}")
	s.stmt(0, "const content = win.content;")
	s.stmt(0, "if (!content) {")
	s.stmt(1, "throw new Error(\"No content available in window\");")
	s.stmt(0, "}")
	s.stmt(0, "const tasks = [];")
	s.stmt(0, "content.rootNode.apply(node => {")
	s.stmt(1, "const obj = node.object;")
	s.stmt(1, "if (obj instanceof Task) {")
	s.stmt(2, "tasks.push(serializeTask(obj));")
	s.stmt(1, "}")
	s.stmt(0, "});")
	s.stmt(0, "return JSON.stringify(tasks);")

	var tasks []model.Task
	if err := o.evalInto(ctx, s.String(), o.perspectiveTimeout, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListInboxTasks returns the tasks shown by the built-in Inbox perspective.
func (o *OmniFocus) ListInboxTasks(ctx context.Context) ([]model.Task, error) {
	return o.PerspectiveTasks(ctx, "Inbox")
}

// InboxCount returns the number of tasks currently in the inbox.
func (o *OmniFocus) InboxCount(ctx context.Context) (int, error) {
	tasks, err := o.ListInboxTasks(ctx)
	if err != nil {
		return 0, err
	}
	return len(tasks), nil
}
