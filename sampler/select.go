package sampler

import (
	"fmt"
	"sort"

	"github.com/oski-go/bcsrfill/csr"
	"github.com/oski-go/bcsrfill/rng"
	"github.com/oski-go/bcsrfill/search"
)

// Select picks s = min(sReq, m.Nnz) offsets from [0, m.Nnz), with or
// without replacement per withReplacement, and locates each as a
// csr.Sample. The returned samples are ordered by ascending offset.
//
// If m is empty (see (*csr.Matrix).Empty) or sReq==0, Select returns an
// empty, non-nil slice and no error — the estimator
// short-circuits on nnz==0 rather than treating it as a failure.
//
// Complexity: O(s) expected for offset selection (Floyd's algorithm
// without replacement, independent draws with), O(s log s) for the sort,
// O(s + m.M) amortized to locate rows (walk Ptr
// once, calling search.UpperBound only when the row cursor must jump).
func Select(m *csr.Matrix, sReq int, withReplacement bool, rs *rng.Source) ([]csr.Sample, error) {
	if m == nil {
		return nil, fmt.Errorf("Select: %w", csr.ErrNilMatrix)
	}
	if sReq < 0 {
		return nil, fmt.Errorf("Select: %w", ErrNegativeCount)
	}
	if sReq == 0 || m.Empty() {
		return []csr.Sample{}, nil
	}
	if rs == nil {
		return nil, fmt.Errorf("Select: %w", ErrMissingRand)
	}

	s := sReq
	if s > m.Nnz {
		s = m.Nnz
	}

	offsets := selectOffsets(s, m.Nnz, withReplacement, rs)
	sort.Ints(offsets)

	samples := make([]csr.Sample, s)
	row := 0
	for t, k := range offsets {
		if m.Ptr[row+1] <= k {
			// Row cursor must jump; binary-search Ptr for the new owner.
			row = search.UpperBound(m.Ptr, row, m.M, k) - 1
		}
		samples[t] = csr.Sample{K: k, I: row, J: m.Ind[k]}
	}
	return samples, nil
}

// selectOffsets draws s offsets from [0,nnz).
func selectOffsets(s, nnz int, withReplacement bool, rs *rng.Source) []int {
	if withReplacement {
		out := make([]int, s)
		for i := range out {
			out[i] = rs.Range(0, nnz)
		}
		return out
	}
	return floydSample(s, nnz, rs)
}

// floydSample implements Floyd's algorithm for choosing s distinct values
// from [0,nnz) in O(s) expected time and O(s) space: for each j in
// [nnz-s, nnz), draw t uniformly from [0,j], and include t unless it was
// already chosen, in which case include j instead. No post-deduplication
// pass is required; the algorithm's own invariant guarantees distinctness.
func floydSample(s, nnz int, rs *rng.Source) []int {
	chosen := make(map[int]struct{}, s)
	for j := nnz - s; j < nnz; j++ {
		t := rs.Range(0, j+1)
		if _, ok := chosen[t]; ok {
			chosen[j] = struct{}{}
		} else {
			chosen[t] = struct{}{}
		}
	}
	out := make([]int, 0, len(chosen))
	for k := range chosen {
		out = append(out, k)
	}
	return out
}
