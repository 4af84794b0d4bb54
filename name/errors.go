package name

import "errors"

var (
	// ErrIndex reports a logical or original position outside the current
	// bounds of a view. It points at a stage or driver bug, never at the input.
	ErrIndex = errors.New("index out of range")

	// ErrConsistency reports an attempt to paint a canvas slot twice.
	ErrConsistency = errors.New("canvas slot already labeled")

	// ErrValidation reports mismatched token/label sequences or a label that
	// cannot be segmented.
	ErrValidation = errors.New("invalid parse result")
)
