package model

import "errors"

var (
	// ErrInvalidCoordinates reports malformed coordinate data at entity construction
	ErrInvalidCoordinates = errors.New("invalid coordinates")

	// ErrInvalidAge reports a negative or non-finite update age
	ErrInvalidAge = errors.New("invalid update age")

	// ErrInvalidZoneGeometry reports a malformed ring structure for a zone
	ErrInvalidZoneGeometry = errors.New("invalid zone geometry")

	// ErrTypeMismatch reports a nil entity passed to a predicate
	ErrTypeMismatch = errors.New("type mismatch")
)
