package kit

import "errors"

var (
	// ErrBadAccess is the panic cause when the absent or wrong side of a
	// container is read.
	ErrBadAccess = errors.New("kit: bad access")

	// ErrNoValue is a ready-made failure for callers that convert an absent
	// Optional into an Expected.
	ErrNoValue = errors.New("kit: no value")
)
