package collab

import "errors"

// Sentinel kinds for collaborative-model errors.
var (
	ErrNotTrained = errors.New("collaborative model not trained")
)
