package app

import "errors"

// Sentinel kinds for service errors. These allow errors.Is/As from callers.
var (
	// ErrNotTrained is returned from read paths before Train has
	// completed. Callers resolve it by training synchronously; it is
	// never hidden inside a read path.
	ErrNotTrained = errors.New("model not trained")
)
