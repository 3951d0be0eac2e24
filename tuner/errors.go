package tuner

import "errors"

var (
	// ErrNilMatrix indicates a nil *csr.Matrix was passed to Pick.
	ErrNilMatrix = errors.New("tuner: nil matrix")

	// ErrNilCost indicates Pick was called without a cost function.
	ErrNilCost = errors.New("tuner: cost function required")

	// ErrNoCandidate indicates b<1, leaving no (r,c) shape to evaluate.
	ErrNoCandidate = errors.New("tuner: no candidate block shape (b<1)")
)
