package library

import "errors"

// Sentinel errors for the library package. Using sentinels allows callers to
// match with errors.Is for reliable error handling.
var (
	// ErrCatalogMissing is returned when a reference catalog file is absent.
	ErrCatalogMissing = errors.New("reference catalog missing")

	// ErrUnknownParent is returned when a distribution pattern names a
	// parent principle that does not exist in the principle catalog.
	ErrUnknownParent = errors.New("pattern parent principle not in catalog")
)
