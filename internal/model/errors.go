package model

import "errors"

// Sentinel errors for model loading. Callers match with errors.Is to decide
// whether to abort a single document or keep going.
var (
	// ErrNotAMapping is returned when the document root is not a key-value mapping.
	ErrNotAMapping = errors.New("model document root is not a mapping")

	// ErrMissingSystem is returned when the document has no (or an empty) system section.
	ErrMissingSystem = errors.New("model document missing 'system' section")
)
