package model

// Project is a read-through projection of an OmniFocus project, including
// aggregate counts computed over its full descendant task collection.
type Project struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Note *string `json:"note"`

	// Status is the normalized project status. The external "done" status
	// is folded into "dropped" in this projection.
	Status Status `json:"status"`

	// EffectivelyActive is true when the project status is active and its
	// parent folder (if any) is itself effectively active.
	EffectivelyActive bool `json:"effectivelyActive"`

	// Folder is the parent folder's name, or nil for top-level projects.
	Folder *string `json:"folder"`

	// Sequential reports whether contained tasks must be completed in
	// order (as opposed to a parallel project).
	Sequential bool `json:"sequential"`

	// TaskCount is the number of descendant tasks.
	TaskCount int `json:"taskCount"`

	// RemainingCount is the number of non-completed descendant tasks.
	// Always less than or equal to TaskCount.
	RemainingCount int `json:"remainingCount"`

	Tags []string `json:"tags"`
}

// ProjectFilters selects projects during a list operation.
type ProjectFilters struct {
	// IncludeDropped keeps dropped/done projects and projects whose
	// parent folder is not effectively active.
	IncludeDropped bool

	// Status restricts the result to projects with exactly this status.
	// Empty means no constraint.
	Status Status

	// Folder restricts the result to projects whose parent folder has
	// exactly this name. Empty means no constraint.
	Folder string
}

// CreateProjectOptions carries the fields for a project creation.
type CreateProjectOptions struct {
	Name       string
	Note       *string
	Folder     *string
	Sequential *bool
	Tags       []string
	Status     Status
}

// UpdateProjectOptions carries a partial project update. Nil pointers and
// empty Status leave the corresponding field untouched.
type UpdateProjectOptions struct {
	Name       *string
	Note       *string
	Folder     *string
	Sequential *bool
	Tags       *[]string
	Status     Status
}
