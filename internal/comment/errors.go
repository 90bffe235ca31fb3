package comment

import "errors"

var (
	// ErrNotFound is returned when no active comment matches the id.
	ErrNotFound = errors.New("comment not found")
	// ErrInvalidParent is returned when a parent id does not belong to
	// the comment set of the same target.
	ErrInvalidParent = errors.New("bad parent")
)
