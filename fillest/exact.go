package fillest

import "github.com/oski-go/bcsrfill/csr"

// exact implements the correctness oracle. For every
// (r,c) in [1,B]x[1,B], it walks every nonzero once, buckets it into its
// owning aligned r x c block, and counts distinct owning blocks with a
// set keyed by a block identifier (a Go map[int]struct{}, cleared and reused
// across (r,c) pairs via the clear builtin rather than reallocated).
//
// Complexity: O(B^2 * nnz) time, O(nnz) worst-case working memory.
func exact(m *csr.Matrix, b int, fillOut []float64) error {
	nnz := float64(m.Nnz)
	blocks := make(map[int]struct{}, m.Nnz)

	for r := 1; r <= b; r++ {
		for c := 1; c <= b; c++ {
			clear(blocks)
			i := 0
			for t := 0; t < m.Nnz; t++ {
				for m.Ptr[i+1] <= t {
					i++
				}
				j := m.Ind[t]
				blockRow := i / r
				blockCol := j / c
				id := blockRow*m.N + blockCol
				blocks[id] = struct{}{}
			}
			nb := len(blocks)
			fillOut[csr.IndexNoOffset(b, r, c)] = float64(r) * float64(c) * float64(nb) / nnz
		}
	}
	return nil
}
