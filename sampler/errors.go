package sampler

import "errors"

var (
	// ErrMissingRand indicates Select was called with a nil *rng.Source
	// while a positive sample count was requested.
	ErrMissingRand = errors.New("sampler: rng source required")

	// ErrNegativeCount indicates a negative requested sample count.
	ErrNegativeCount = errors.New("sampler: negative sample count")
)
