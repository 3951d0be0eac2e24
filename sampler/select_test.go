package sampler_test

import (
	"testing"

	"github.com/oski-go/bcsrfill/csr"
	"github.com/oski-go/bcsrfill/rng"
	"github.com/oski-go/bcsrfill/sampler"
	"github.com/stretchr/testify/require"
)

// denseTestMatrix builds an m x n fully dense CSR matrix.
func denseTestMatrix(m, n int) *csr.Matrix {
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

func TestSelect_EmptyMatrix(t *testing.T) {
	t.Parallel()

	m := csr.New(3, 3, 0, []int{0, 0, 0, 0}, []int{})
	got, err := sampler.Select(m, 10, true, rng.New(1))
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestSelect_ZeroRequested(t *testing.T) {
	t.Parallel()

	m := denseTestMatrix(3, 3)
	got, err := sampler.Select(m, 0, true, rng.New(1))
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestSelect_MissingRandWhenNeeded(t *testing.T) {
	t.Parallel()

	m := denseTestMatrix(3, 3)
	_, err := sampler.Select(m, 4, true, nil)
	require.ErrorIs(t, err, sampler.ErrMissingRand)
}

func TestSelect_CapsAtNnz(t *testing.T) {
	t.Parallel()

	m := denseTestMatrix(3, 3) // nnz=9
	got, err := sampler.Select(m, 1000, true, rng.New(1))
	require.NoError(t, err)
	require.Len(t, got, 9)
}

func TestSelect_WithoutReplacement_Distinct(t *testing.T) {
	t.Parallel()

	m := denseTestMatrix(10, 10) // nnz=100
	got, err := sampler.Select(m, 30, false, rng.New(99))
	require.NoError(t, err)
	require.Len(t, got, 30)

	seen := map[int]bool{}
	for _, s := range got {
		require.False(t, seen[s.K], "offset %d repeated", s.K)
		seen[s.K] = true
	}
}

func TestSelect_LocatesRowColumnCorrectly(t *testing.T) {
	t.Parallel()

	// 3x3 dense: offset k maps to row k/3, column k%3.
	m := denseTestMatrix(3, 3)
	got, err := sampler.Select(m, 9, false, rng.New(5))
	require.NoError(t, err)
	require.Len(t, got, 9)

	for _, s := range got {
		require.Equal(t, s.K/3, s.I)
		require.Equal(t, s.K%3, s.J)
	}
}

func TestSelect_AscendingByOffset(t *testing.T) {
	t.Parallel()

	m := denseTestMatrix(5, 5)
	got, err := sampler.Select(m, 12, true, rng.New(3))
	require.NoError(t, err)
	for i := 1; i < len(got); i++ {
		require.LessOrEqual(t, got[i-1].K, got[i].K)
	}
}

func TestSelect_SparseRowLocation(t *testing.T) {
	t.Parallel()

	// Rows 0 and 1 nonempty, rows 2 and 3 empty.
	m := csr.New(4, 4, 2, []int{0, 1, 2, 2, 2}, []int{0, 3})
	got, err := sampler.Select(m, 2, false, rng.New(1))
	require.NoError(t, err)
	require.Len(t, got, 2)
	byK := map[int]csr.Sample{}
	for _, s := range got {
		byK[s.K] = s
	}
	require.Equal(t, 0, byK[0].I)
	require.Equal(t, 0, byK[0].J)
	require.Equal(t, 1, byK[1].I)
	require.Equal(t, 3, byK[1].J)
}
