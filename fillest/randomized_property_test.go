package fillest_test

import (
	"sort"
	"testing"

	"github.com/oski-go/bcsrfill/csr"
	"github.com/oski-go/bcsrfill/fillest"
	"github.com/oski-go/bcsrfill/rng"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

// randomMatrix builds an m x n CSR matrix with roughly the given density,
// driven by an *rng.Source so the test is reproducible.
func randomMatrix(m, n int, density float64, rs *rng.Source) *csr.Matrix {
	ptr := make([]int, m+1)
	ind := make([]int, 0, int(float64(m*n)*density)+m)
	for i := 0; i < m; i++ {
		ptr[i] = len(ind)
		cols := make([]int, 0, n)
		for j := 0; j < n; j++ {
			if rs.Uniform() < density {
				cols = append(cols, j)
			}
		}
		ind = append(ind, cols...)
	}
	ptr[m] = len(ind)
	return csr.New(m, n, len(ind), ptr, ind)
}

// TestRandomized_MedianRelativeError checks that, across
// many independent seeds, the median relative error of the randomized
// estimator against the exact oracle is at most epsilon plus a 0.1
// small-matrix slack.
func TestRandomized_MedianRelativeError(t *testing.T) {
	t.Parallel()

	const b = 3
	epsilon, delta := 0.15, 0.1

	seedSrc := rng.New(2024)
	m := randomMatrix(40, 40, 0.1, seedSrc)

	exact := make([]float64, csr.NoOffsetLen(b))
	require.NoError(t, fillest.EstimateFill(m, b, fillest.Options{Variant: fillest.VariantExact}, exact))

	const k = 25
	relErrs := make([]float64, 0, k*b*b)
	for seed := int64(0); seed < k; seed++ {
		got := make([]float64, csr.NoOffsetLen(b))
		err := fillest.EstimateFill(m, b, fillest.Options{
			Variant: fillest.VariantRandomized,
			Epsilon: epsilon,
			Delta:   delta,
			Rand:    rng.New(1000 + seed),
		}, got)
		require.NoError(t, err)

		for i := range exact {
			if exact[i] == 0 {
				continue
			}
			relErrs = append(relErrs, absFloat(got[i]-exact[i])/exact[i])
		}
	}

	sort.Float64s(relErrs)
	weights := make([]float64, len(relErrs))
	for i := range weights {
		weights[i] = 1
	}
	median := stat.Quantile(0.5, stat.Empirical, relErrs, weights)

	require.LessOrEqual(t, median, epsilon+0.1, "median relative error %v exceeds epsilon+tolerance", median)
}

func absFloat(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
