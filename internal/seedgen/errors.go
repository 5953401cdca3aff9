package seedgen

import "errors"

// Sentinel kinds for generator errors.
var (
	ErrInvalidConfig = errors.New("invalid generator config")
	ErrWriteOutput   = errors.New("write output failed")
)
