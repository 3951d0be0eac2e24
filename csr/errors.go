// Package csr: sentinel error set.
//
// Every algorithm in this module MUST return these sentinels (optionally
// wrapped with context via errorf) rather than ad hoc strings, and tests
// MUST check them via errors.Is. Panics are reserved for programmer
// errors in private helpers, never for user-triggered conditions.
package csr

import (
	"errors"
	"fmt"
)

var (
	// ErrNilMatrix indicates a nil *Matrix where one was required.
	ErrNilMatrix = errors.New("csr: nil matrix")

	// ErrBadShape indicates a negative maximum block dimension B (B==0 is
	// accepted and produces no output).
	ErrBadShape = errors.New("csr: block dimension must not be negative")

	// ErrDimensionMismatch indicates Nnz != Ptr[M], or len(Ptr) != M+1,
	// or len(Ind) != Nnz.
	ErrDimensionMismatch = errors.New("csr: dimension mismatch")

	// ErrNonMonotonicPtr indicates Ptr is not non-decreasing.
	ErrNonMonotonicPtr = errors.New("csr: row pointer is not monotone")

	// ErrUnsortedRow indicates a row's column indices are not strictly
	// increasing.
	ErrUnsortedRow = errors.New("csr: row column indices not sorted/unique")

	// ErrColumnOutOfRange indicates a column index outside [0,N).
	ErrColumnOutOfRange = errors.New("csr: column index out of range")

	// ErrInvariantViolation is returned for InternalInvariant-class
	// failures reachable only if the CSR contract itself is violated in
	// a way not already covered by a more specific sentinel above.
	ErrInvariantViolation = errors.New("csr: internal invariant violated")
)

// errorf wraps err with a method-name tag, matching lvlath's
// matrixErrorf/validatorErrorf convention: "<tag>: <err>".
func errorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
