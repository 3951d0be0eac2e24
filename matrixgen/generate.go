package matrixgen

import (
	"fmt"

	"github.com/oski-go/bcsrfill/csr"
)

// Generate builds an m x n synthetic CSR matrix per the resolved config:
// the uniform Erdos-Renyi-like model by default, or the aligned
// block-structured model when WithBlockStructure was applied.
//
// Adapted from lvlath builder.RandomSparse's Bernoulli-trial-per-pair
// loop: "candidate edge (i,j)" becomes "candidate matrix cell (i,j)",
// and the deterministic density-in-{0,1} shortcut (no RNG required) is
// preserved identically.
//
// Complexity: O(m*n) time and space for the uniform model; O((m/r)*(n/c))
// Bernoulli trials plus an O(m*n) cell sweep for the block model.
func Generate(m, n int, opts ...Option) (*csr.Matrix, error) {
	if m <= 0 || n <= 0 {
		return nil, fmt.Errorf("Generate: m=%d n=%d: %w", m, n, ErrTooFewDimensions)
	}
	cfg := newConfig(opts...)

	if cfg.blockR > 0 && cfg.blockC > 0 {
		return generateBlockStructured(m, n, cfg)
	}
	return generateUniform(m, n, cfg)
}

func generateUniform(m, n int, cfg *config) (*csr.Matrix, error) {
	p := cfg.density
	if cfg.rng == nil && p > 0 && p < 1 {
		return nil, fmt.Errorf("Generate: p=%.6f: %w", p, ErrNeedRandSource)
	}

	ptr := make([]int, m+1)
	ind := make([]int, 0, int(float64(m*n)*p)+m)
	for i := 0; i < m; i++ {
		ptr[i] = len(ind)
		for j := 0; j < n; j++ {
			if p == 1.0 || (p > 0 && p < 1 && cfg.rng.Float64() < p) {
				ind = append(ind, j)
			}
		}
	}
	ptr[m] = len(ind)
	return csr.New(m, n, len(ind), ptr, ind), nil
}

func generateBlockStructured(m, n int, cfg *config) (*csr.Matrix, error) {
	r, c, p := cfg.blockR, cfg.blockC, cfg.blockDensity
	if cfg.rng == nil && p > 0 && p < 1 {
		return nil, fmt.Errorf("Generate: blockDensity=%.6f: %w", p, ErrNeedRandSource)
	}

	blockRows := (m + r - 1) / r
	blockCols := (n + c - 1) / c
	included := make([][]bool, blockRows)
	for br := 0; br < blockRows; br++ {
		included[br] = make([]bool, blockCols)
		for bc := 0; bc < blockCols; bc++ {
			included[br][bc] = p == 1.0 || (p > 0 && p < 1 && cfg.rng.Float64() < p)
		}
	}

	ptr := make([]int, m+1)
	ind := make([]int, 0, m*n)
	for i := 0; i < m; i++ {
		ptr[i] = len(ind)
		br := i / r
		for j := 0; j < n; j++ {
			bc := j / c
			if included[br][bc] {
				ind = append(ind, j)
			}
		}
	}
	ptr[m] = len(ind)
	return csr.New(m, n, len(ind), ptr, ind), nil
}
