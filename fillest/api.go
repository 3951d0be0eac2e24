// Package fillest implements the fill-ratio estimator:
// for a CSR matrix and a maximum block dimension B, it reports, for every
// candidate BCSR block shape (r,c) with 1<=r,c<=B (and, optionally, every
// block offset within that shape), the ratio of nonzeros a BCSR
// conversion at that shape would store versus the matrix's true nonzero
// count. EstimateFill is the package's single entry point; VariantExact,
// VariantDeterministic and VariantRandomized select which algorithm
// computes that ratio.
package fillest

import (
	"fmt"

	"github.com/oski-go/bcsrfill/csr"
	"github.com/oski-go/bcsrfill/rng"
)

// Variant selects which fill-ratio algorithm EstimateFill runs.
type Variant int

const (
	// VariantExact is the O(B^2*nnz) oracle: every fill ratio is exact.
	VariantExact Variant = iota

	// VariantDeterministic counts distinct blocks per block-row exactly,
	// optionally subsampling block-rows via Rho.
	VariantDeterministic

	// VariantRandomized estimates fill ratios from a random sample of
	// nonzeros and their local neighborhoods.
	VariantRandomized
)

// Options configures EstimateFill. Fields not used by the selected
// Variant are ignored.
type Options struct {
	// Variant selects the algorithm. Zero value is VariantExact.
	Variant Variant

	// Epsilon and Delta bound VariantRandomized's sample count: the
	// estimate is within a relative factor of Epsilon of the true ratio
	// with probability at least 1-Delta. Both must be in (0,1].
	Epsilon, Delta float64

	// WithOffsets selects the offset-enumeration FillResult layout
	// (csr.OffsetLen entries) instead of the no-offset layout
	// (csr.NoOffsetLen entries). Only VariantRandomized currently
	// implements the offset path.
	WithOffsets bool

	// WithReplacement selects sampling with replacement for
	// VariantRandomized. Without replacement (the default) uses Floyd's
	// algorithm and never repeats a nonzero.
	WithReplacement bool

	// Rho is the block-row examination probability for
	// VariantDeterministic. A value in (0,1] examines each block-row with
	// probability Rho and requires Rand; Rho==0 examines every block-row
	// (no subsampling); a negative Rho or Rho>1 is rejected with
	// ErrInvalidRho.
	Rho float64

	// Rand supplies randomness for VariantDeterministic (when Rho
	// subsamples) and VariantRandomized (always). Required whenever the
	// selected variant draws random numbers.
	Rand *rng.Source

	// Workers bounds how many goroutines an estimation may use for its
	// internal associative reductions. Workers<=1 runs sequentially.
	Workers int

	// Verbose is reserved for callers that want the estimator to log its
	// chosen sample count and variant; this package does not log on its
	// own, leaving structured logging to the caller.
	Verbose bool
}

// EstimateFill writes, into fillOut, the fill ratio for every candidate
// block shape (and, with Options.WithOffsets, every offset within every
// shape) up to maximum block dimension b, using the algorithm
// Options.Variant selects.
//
// fillOut must already be sized csr.NoOffsetLen(b) (or csr.OffsetLen(b)
// with WithOffsets); EstimateFill never resizes it. On any non-nil
// return, fillOut is left untouched — there is no partial-success state.
//
// Validation performed here is the cheap, O(1) boundary class (nil matrix, negative b, wrong-size fillOut, out-of-range
// Epsilon/Delta/Rho, a missing Rand where one is required). It does not
// run csr.Matrix.Validate()'s full O(Nnz) structural scan — callers that
// want that guarantee opt into it explicitly, once, rather than paying it
// on every estimation (see csr.Matrix.Validate's doc comment).
//
// A matrix with no nonzeros (or zero rows/columns)
// short-circuits: every fill ratio is defined as 1.0. b==0 is valid and
// produces no output (fillOut may be empty).
func EstimateFill(m *csr.Matrix, b int, opts Options, fillOut []float64) error {
	if m == nil {
		return fmt.Errorf("EstimateFill: %w", csr.ErrNilMatrix)
	}
	if b < 0 {
		return fmt.Errorf("EstimateFill: %w", csr.ErrBadShape)
	}

	wantLen := csr.NoOffsetLen(b)
	if opts.WithOffsets {
		wantLen = csr.OffsetLen(b)
	}
	if len(fillOut) != wantLen {
		return fmt.Errorf("EstimateFill: fillOut has length %d, want %d: %w", len(fillOut), wantLen, ErrBufferSize)
	}
	if b == 0 {
		return nil
	}

	if m.Empty() {
		for i := range fillOut {
			fillOut[i] = 1.0
		}
		return nil
	}

	switch opts.Variant {
	case VariantExact:
		return exact(m, b, fillOut)

	case VariantDeterministic:
		if opts.Rho > 0 && opts.Rho <= 1 {
			if opts.Rand == nil {
				return fmt.Errorf("EstimateFill: %w", ErrMissingRand)
			}
		} else if opts.Rho < 0 || opts.Rho > 1 {
			return fmt.Errorf("EstimateFill: rho=%v: %w", opts.Rho, ErrInvalidRho)
		}
		return deterministic(m, b, opts.Rho, opts.Rand, opts.Workers, fillOut)

	case VariantRandomized:
		if opts.Epsilon <= 0 || opts.Epsilon > 1 || opts.Delta <= 0 || opts.Delta > 1 {
			return fmt.Errorf("EstimateFill: epsilon=%v delta=%v: %w", opts.Epsilon, opts.Delta, ErrInvalidEpsilonDelta)
		}
		if opts.Rand == nil {
			return fmt.Errorf("EstimateFill: %w", ErrMissingRand)
		}
		return randomized(m, b, opts.Epsilon, opts.Delta, opts.WithReplacement, opts.WithOffsets, opts.Rand, opts.Workers, fillOut)

	default:
		return fmt.Errorf("EstimateFill: variant=%d: %w", opts.Variant, ErrUnknownVariant)
	}
}
