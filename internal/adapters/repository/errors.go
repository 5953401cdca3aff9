package repository

import "errors"

// Sentinel kinds for corpus store errors.
var (
	ErrNotFound   = errors.New("freelancer not found")
	ErrLoadCorpus = errors.New("load corpus failed")
)
