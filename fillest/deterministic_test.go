package fillest_test

import (
	"testing"

	"github.com/oski-go/bcsrfill/csr"
	"github.com/oski-go/bcsrfill/fillest"
	"github.com/oski-go/bcsrfill/rng"
	"github.com/stretchr/testify/require"
)

func denseCSR(m, n int) *csr.Matrix {
	ptr := make([]int, m+1)
	ind := make([]int, 0, m*n)
	for i := 0; i < m; i++ {
		ptr[i] = len(ind)
		for j := 0; j < n; j++ {
			ind = append(ind, j)
		}
	}
	ptr[m] = len(ind)
	return csr.New(m, n, len(ind), ptr, ind)
}

func TestDeterministic_AgreesWithExactNoSubsampling(t *testing.T) {
	t.Parallel()

	m := csr.New(4, 4, 4, []int{0, 1, 2, 3, 4}, []int{0, 1, 2, 3})
	exact := make([]float64, csr.NoOffsetLen(2))
	det := make([]float64, csr.NoOffsetLen(2))

	require.NoError(t, fillest.EstimateFill(m, 2, fillest.Options{Variant: fillest.VariantExact}, exact))
	require.NoError(t, fillest.EstimateFill(m, 2, fillest.Options{Variant: fillest.VariantDeterministic, Rho: 0}, det))
	require.Equal(t, exact, det)
}

func TestDeterministic_OneByOneAlwaysOne(t *testing.T) {
	t.Parallel()

	m := denseCSR(6, 6)
	got := make([]float64, csr.NoOffsetLen(3))
	require.NoError(t, fillest.EstimateFill(m, 3, fillest.Options{Variant: fillest.VariantDeterministic}, got))
	require.Equal(t, 1.0, got[csr.IndexNoOffset(3, 1, 1)])
}

func TestDeterministic_DenseAlignedIsOne(t *testing.T) {
	t.Parallel()

	m := denseCSR(6, 6)
	got := make([]float64, csr.NoOffsetLen(3))
	require.NoError(t, fillest.EstimateFill(m, 3, fillest.Options{Variant: fillest.VariantDeterministic}, got))
	for r := 1; r <= 3; r++ {
		for c := 1; c <= 3; c++ {
			if 6%r == 0 && 6%c == 0 {
				require.InDelta(t, 1.0, got[csr.IndexNoOffset(3, r, c)], 1e-9)
			}
		}
	}
}

func TestDeterministic_SubsamplingRequiresRand(t *testing.T) {
	t.Parallel()

	m := denseCSR(4, 4)
	got := make([]float64, csr.NoOffsetLen(2))
	err := fillest.EstimateFill(m, 2, fillest.Options{Variant: fillest.VariantDeterministic, Rho: 0.5}, got)
	require.ErrorIs(t, err, fillest.ErrMissingRand)
}

func TestDeterministic_InvalidRho(t *testing.T) {
	t.Parallel()

	m := denseCSR(4, 4)
	got := make([]float64, csr.NoOffsetLen(2))
	err := fillest.EstimateFill(m, 2, fillest.Options{Variant: fillest.VariantDeterministic, Rho: 1.5, Rand: rng.New(1)}, got)
	require.ErrorIs(t, err, fillest.ErrInvalidRho)
}

func TestDeterministic_FullSubsamplingMatchesExact(t *testing.T) {
	t.Parallel()

	m := denseCSR(8, 8)
	exact := make([]float64, csr.NoOffsetLen(2))
	det := make([]float64, csr.NoOffsetLen(2))

	require.NoError(t, fillest.EstimateFill(m, 2, fillest.Options{Variant: fillest.VariantExact}, exact))
	require.NoError(t, fillest.EstimateFill(m, 2, fillest.Options{
		Variant: fillest.VariantDeterministic,
		Rho:     1.0,
		Rand:    rng.New(42),
	}, det))
	for i := range exact {
		require.InDelta(t, exact[i], det[i], 1e-9)
	}
}

func TestDeterministic_Parallel_MatchesSequential(t *testing.T) {
	t.Parallel()

	m := denseCSR(20, 20)
	seq := make([]float64, csr.NoOffsetLen(4))
	par := make([]float64, csr.NoOffsetLen(4))

	require.NoError(t, fillest.EstimateFill(m, 4, fillest.Options{Variant: fillest.VariantDeterministic, Workers: 1}, seq))
	require.NoError(t, fillest.EstimateFill(m, 4, fillest.Options{Variant: fillest.VariantDeterministic, Workers: 4}, par))
	require.Equal(t, seq, par)
}
