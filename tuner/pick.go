package tuner

import (
	"fmt"

	"github.com/oski-go/bcsrfill/csr"
	"github.com/oski-go/bcsrfill/fillest"
	"github.com/oski-go/bcsrfill/rng"
)

// defaultEpsilon and defaultDelta are the accuracy/confidence Pick asks
// the randomized estimator for when the caller has no reason to tune
// them directly — loose enough to keep the sample count modest for an
// interactive autotuning loop.
const (
	defaultEpsilon = 0.1
	defaultDelta   = 0.1
)

// Pick estimates the fill ratio of every block shape (r,c) with
// 1<=r,c<=b via fillest.EstimateFill's randomized variant, then returns
// the shape minimizing cost(r, c, fill). rnd must be non-nil; it seeds
// the one randomized estimation Pick performs.
func Pick(m *csr.Matrix, b int, cost func(r, c int, fill float64) float64, rnd *rng.Source) (csr.BlockShape, error) {
	if m == nil {
		return csr.BlockShape{}, ErrNilMatrix
	}
	if cost == nil {
		return csr.BlockShape{}, ErrNilCost
	}
	if b < 1 {
		return csr.BlockShape{}, ErrNoCandidate
	}
	if rnd == nil {
		return csr.BlockShape{}, fmt.Errorf("tuner: %w", fillest.ErrMissingRand)
	}

	fillOut := make([]float64, csr.NoOffsetLen(b))
	err := fillest.EstimateFill(m, b, fillest.Options{
		Variant: fillest.VariantRandomized,
		Epsilon: defaultEpsilon,
		Delta:   defaultDelta,
		Rand:    rnd,
	}, fillOut)
	if err != nil {
		return csr.BlockShape{}, fmt.Errorf("tuner: Pick: %w", err)
	}

	best := csr.BlockShape{R: 1, C: 1}
	bestCost := cost(1, 1, fillOut[csr.IndexNoOffset(b, 1, 1)])
	for r := 1; r <= b; r++ {
		for c := 1; c <= b; c++ {
			if r == 1 && c == 1 {
				continue
			}
			v := cost(r, c, fillOut[csr.IndexNoOffset(b, r, c)])
			if v < bestCost {
				bestCost = v
				best = csr.BlockShape{R: r, C: c}
			}
		}
	}
	return best, nil
}
