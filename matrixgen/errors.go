package matrixgen

import "errors"

var (
	// ErrTooFewDimensions indicates m or n is not positive.
	ErrTooFewDimensions = errors.New("matrixgen: m and n must be positive")

	// ErrNeedRandSource indicates a stochastic model was requested
	// (density strictly between 0 and 1) without WithSeed.
	ErrNeedRandSource = errors.New("matrixgen: a stochastic density requires WithSeed")
)
