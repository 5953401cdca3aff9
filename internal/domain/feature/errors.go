package feature

import "errors"

// Sentinel kinds for preprocessing errors.
var (
	ErrNotFitted   = errors.New("preprocessor not fitted")
	ErrEmptyCorpus = errors.New("fit requires a non-empty corpus")
)
