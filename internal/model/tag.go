package model

// Tag is a read-through projection of an OmniFocus tag with usage counts
// and activity information derived from its counted tasks.
type Tag struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// TaskCount is the number of counted tasks. With TagListOptions
	// ActiveOnly set, only incomplete tasks are counted.
	TaskCount int `json:"taskCount"`

	// RemainingTaskCount is the number of incomplete tasks on the tag.
	// Always less than or equal to TaskCount.
	RemainingTaskCount int `json:"remainingTaskCount"`

	Added    *string `json:"added"`
	Modified *string `json:"modified"`

	// LastActivity is the most recent timestamp across the tag's own
	// added/modified dates and the added/modified/completion dates of all
	// counted tasks. Nil when no contributing timestamp exists.
	LastActivity *string `json:"lastActivity"`

	Active bool   `json:"active"`
	Status Status `json:"status"`

	// Parent is the parent tag's name, or nil for root tags.
	Parent *string `json:"parent"`

	// Children holds the names of direct child tags in order.
	Children []string `json:"children"`

	AllowsNextAction bool `json:"allowsNextAction"`
}

// TagSort identifies a tag list ordering.
type TagSort string

const (
	// TagSortName orders by name, case-insensitively.
	TagSortName TagSort = "name"

	// TagSortUsage orders by descending task count.
	TagSortUsage TagSort = "usage"

	// TagSortActivity orders by descending last activity; tags with no
	// recorded activity sort after all others in their original order.
	TagSortActivity TagSort = "activity"
)

// ParseTagSort validates a user-supplied sort field.
func ParseTagSort(s string) (TagSort, error) {
	switch TagSort(s) {
	case TagSortName, TagSortUsage, TagSortActivity:
		return TagSort(s), nil
	case "":
		return TagSortName, nil
	}
	return "", NewValidationError(
		"invalid sort field " + s + " (expected name, usage, or activity)")
}

// TagListOptions controls the tag list operation.
type TagListOptions struct {
	// UnusedDays, when positive, restricts the result to tags with no
	// recorded activity within that many days (tags with no activity at
	// all are always considered unused).
	UnusedDays int

	// SortBy orders the result; defaults to TagSortName.
	SortBy TagSort

	// ActiveOnly counts only incomplete tasks when computing usage.
	ActiveOnly bool
}

// CreateTagOptions carries the fields for a tag creation. Parent accepts a
// tag name, full path, or id.
type CreateTagOptions struct {
	Name   string
	Parent *string
	Status Status
}

// UpdateTagOptions carries a partial tag update.
type UpdateTagOptions struct {
	Name   *string
	Status Status
}
