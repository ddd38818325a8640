package model

import "fmt"

// Status is the normalized lifecycle state shared by projects, tags, and
// folders. OmniFocus additionally reports a "done" project status on read
// paths; it is folded into StatusDropped by the serializers and is not an
// accepted write value.
type Status string

const (
	StatusActive  Status = "active"
	StatusOnHold  Status = "on hold"
	StatusDropped Status = "dropped"
)

// ParseStatus validates a user-supplied status string. Unrecognized values
// are rejected rather than silently coerced.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusActive, StatusOnHold, StatusDropped:
		return Status(s), nil
	}
	return "", NewValidationError(fmt.Sprintf(
		"invalid status %q (expected active, on hold, or dropped)", s))
}
