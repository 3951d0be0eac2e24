// Package rng wraps math/rand behind an explicit, seedable handle.
//
// The estimator's randomized variant (fillest) needs a reproducible
// source of uniform integers and uniform reals. Rather than reach for
// the process-global math/rand functions (which is what the generator
// this module descends from did), every caller constructs and owns its
// own *Source, so concurrent estimations never share mutable RNG state.
//
// Complexity: O(1) per draw.
package rng
