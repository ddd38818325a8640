package model

// Task is a read-through projection of a single OmniFocus task. Every field
// is recomputed by the bridge serializer on each call; nothing is cached.
// Timestamps are ISO-8601 strings exactly as the bridge emits them.
type Task struct {
	// ID is the opaque stable identifier assigned by OmniFocus.
	ID string `json:"id"`

	// Name is the task title.
	Name string `json:"name"`

	// Note is the task body text, or nil when empty.
	Note *string `json:"note"`

	// Completed reports whether the task has been marked complete.
	Completed bool `json:"completed"`

	// Dropped reports the effective dropped state, including drops
	// inherited from a containing project or folder.
	Dropped bool `json:"dropped"`

	// EffectivelyActive is true when the task is neither completed nor
	// dropped. It is not the complement of Completed: a dropped task is
	// neither completed nor effectively active.
	EffectivelyActive bool `json:"effectivelyActive"`

	// Flagged reports whether the task carries a flag.
	Flagged bool `json:"flagged"`

	// Project is the containing project's name, or nil for inbox tasks.
	Project *string `json:"project"`

	// Tags holds the assigned tag names in OmniFocus order.
	Tags []string `json:"tags"`

	// Defer is the defer date, or nil when unset.
	Defer *string `json:"defer"`

	// Due is the due date, or nil when unset.
	Due *string `json:"due"`

	// EstimatedMinutes is the time estimate, or nil when unset.
	EstimatedMinutes *int `json:"estimatedMinutes"`

	// CompletionDate is when the task was completed, or nil.
	CompletionDate *string `json:"completionDate"`

	Added    *string `json:"added"`
	Modified *string `json:"modified"`
}

// TaskFilters selects tasks during a list operation. Every field is
// optional and additive: the zero value applies no constraint beyond the
// defaults (completed and dropped tasks excluded).
type TaskFilters struct {
	// IncludeCompleted keeps completed tasks in the result.
	IncludeCompleted bool

	// IncludeDropped keeps tasks that are not effectively active.
	IncludeDropped bool

	// Flagged restricts the result to flagged tasks that are currently
	// available (not blocked or deferred).
	Flagged bool

	// Project restricts the result to tasks whose containing project has
	// exactly this name. Empty means no constraint.
	Project string

	// Tag restricts the result to tasks carrying a tag with exactly this
	// name. Empty means no constraint.
	Tag string
}

// CreateTaskOptions carries the fields for a task creation. Name is
// required; everything else is optional.
type CreateTaskOptions struct {
	Name             string
	Note             *string
	Project          *string
	Tags             []string
	Defer            *string
	Due              *string
	Flagged          bool
	EstimatedMinutes *int
}

// UpdateTaskOptions carries a partial task update. Nil pointers leave the
// corresponding field untouched. Defer and Due are tri-state: unset, set to
// a timestamp, or explicitly cleared.
type UpdateTaskOptions struct {
	Name             *string
	Note             *string
	Project          *string
	Tags             *[]string
	Defer            DatePatch
	Due              DatePatch
	Flagged          *bool
	EstimatedMinutes *int
	Completed        *bool
}
