package routereport

import "errors"

// Sentinel errors for report generation. The core is total over any input
// shape, so these only cover misuse of the API surface; renderer and
// persistence errors are propagated unchanged by Generate.
var (
	// ErrNilRenderer is returned by Generate when no renderer is supplied.
	ErrNilRenderer = errors.New("routereport: renderer is nil")
)
