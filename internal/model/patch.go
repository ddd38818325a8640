package model

// DatePatch is a tri-state update value for a nullable date field. The zero
// value leaves the field untouched; SetDate assigns a new timestamp;
// ClearDate removes the existing one. The distinction matters because a
// partial update must be able to clear a date without clobbering fields the
// caller never mentioned.
type DatePatch struct {
	present bool
	value   string
}

// SetDate returns a patch that assigns the given ISO-8601 timestamp.
func SetDate(iso string) DatePatch {
	return DatePatch{present: true, value: iso}
}

// ClearDate returns a patch that removes the current date.
func ClearDate() DatePatch {
	return DatePatch{present: true}
}

// Present reports whether the patch carries any change at all.
func (p DatePatch) Present() bool {
	return p.present
}

// Clear reports whether the patch removes the date.
func (p DatePatch) Clear() bool {
	return p.present && p.value == ""
}

// Value returns the timestamp to assign. Only meaningful when Present is
// true and Clear is false.
func (p DatePatch) Value() string {
	return p.value
}
