// Package fillest: sentinel error set for the fill-ratio estimator.
//
// Every exported function returns these sentinels (optionally wrapped
// with fmt.Errorf("%s: %w", tag, err), matching lvlath's matrixErrorf
// convention) rather than ad hoc strings; tests check them via
// errors.Is. The public output buffer is left untouched on any non-nil
// return — no partial-success state.
package fillest

import "errors"

var (
	// ErrBufferSize indicates fillOut's length does not match the
	// layout implied by (B, WithOffsets).
	ErrBufferSize = errors.New("fillest: output buffer wrong size")

	// ErrMissingRand indicates a variant that draws random numbers
	// (VariantRandomized, or VariantDeterministic with Rho in (0,1]) was
	// requested without an *rng.Source.
	ErrMissingRand = errors.New("fillest: randomized variant requires a rng.Source")

	// ErrInvalidEpsilonDelta indicates Epsilon or Delta fell outside (0,1].
	ErrInvalidEpsilonDelta = errors.New("fillest: epsilon/delta must be in (0,1]")

	// ErrInvalidRho indicates a Rho outside [0,1].
	ErrInvalidRho = errors.New("fillest: rho must be in [0,1]")

	// ErrUnknownVariant indicates an Options.Variant value outside the
	// three defined constants.
	ErrUnknownVariant = errors.New("fillest: unknown variant")

	// ErrScratchAlloc names the ResourceExhaustion error class. Go itself
	// panics on true out-of-memory conditions, and EstimateFill performs
	// no scratch-size check, so no function in this package returns it.
	ErrScratchAlloc = errors.New("fillest: scratch allocation too large")
)
