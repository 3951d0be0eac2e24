package fillest

import (
	"math"
	"sync"

	"github.com/oski-go/bcsrfill/csr"
	"github.com/oski-go/bcsrfill/rng"
)

// deterministic implements the per-block-row counting variant: for each candidate r, it
// partitions rows into full block-rows of height r (the trailing partial
// block-row, if any, is ignored for counting), and for each block-row
// counts, for every candidate c, the distinct block-columns touched by
// that block-row's nonzeros. A dense per-(c,J) table is marked then reset
// in a second pass over the same nonzeros, keeping total work linear in
// nonzeros examined rather than requiring a full table clear between
// block-rows (grounded on original_source/src/oski.c's
// GET_BC/INC_BC/ZERO_BC macro trio operating on one flat block_count
// buffer of size B*n).
//
// rho, if in (0,1), subsamples block-rows: a block-row is examined only
// if rs.Uniform() < rho. rho<=0 or rho>1 is treated as "no subsampling"
// (examine every block-row); see DESIGN.md for this module's resolution
// of the rho-calibration open question.
//
// Complexity: O(B*(nnz+N)) per r; O(B*N) working memory.
func deterministic(m *csr.Matrix, b int, rho float64, rs *rng.Source, workers int, fillOut []float64) error {
	examineAll := rho <= 0 || rho > 1

	for r := 1; r <= b; r++ {
		M := m.M / r // number of full block-rows

		var nb []int
		var nnzEst int

		if workers > 1 && M > 1 {
			nb, nnzEst = detBlockRowCountsParallel(m, b, r, M, examineAll, rho, rs, workers)
		} else {
			nb, nnzEst = detBlockRowCounts(m, b, r, M, examineAll, rho, rs)
		}

		for c := 1; c <= b; c++ {
			nbNnz := int64(nb[c-1]) * int64(r) * int64(c)
			var ratio float64
			switch {
			case nnzEst == 0 && nbNnz == 0:
				ratio = 1.0
			case nnzEst == 0:
				ratio = math.Inf(1)
			default:
				ratio = float64(nbNnz) / float64(nnzEst)
			}
			fillOut[csr.IndexNoOffset(b, r, c)] = ratio
		}
	}
	return nil
}

// detBlockRowCounts runs the sequential Phase-I/Phase-II sweep over all M
// block-rows for a fixed r, returning nb[c-1] (distinct r x c blocks
// touched across examined block-rows) and the total nonzeros examined.
func detBlockRowCounts(m *csr.Matrix, b, r, M int, examineAll bool, rho float64, rs *rng.Source) ([]int, int) {
	n := m.N
	blockCount := make([]int, b*n)
	nb := make([]int, b)
	nnzEst := 0

	for blockRow := 0; blockRow < M; blockRow++ {
		if !examineAll && rs.Uniform() >= rho {
			continue
		}
		rowLo := blockRow * r
		rowHi := rowLo + r

		examined := 0
		for i := rowLo; i < rowHi; i++ {
			for k := m.Ptr[i]; k < m.Ptr[i+1]; k++ {
				j := m.Ind[k]
				for c := 1; c <= b; c++ {
					J := j / c
					idx := (c-1)*n + J
					if blockCount[idx] == 0 {
						blockCount[idx] = 1
						nb[c-1]++
					}
				}
			}
			examined += m.Ptr[i+1] - m.Ptr[i]
		}
		nnzEst += examined

		// Reset phase: re-walk the same nonzeros to zero blockCount,
		// avoiding an O(B*n) clear between block-rows.
		for i := rowLo; i < rowHi; i++ {
			for k := m.Ptr[i]; k < m.Ptr[i+1]; k++ {
				j := m.Ind[k]
				for c := 1; c <= b; c++ {
					J := j / c
					blockCount[(c-1)*n+J] = 0
				}
			}
		}
	}
	return nb, nnzEst
}

// detBlockRowCountsParallel partitions the M block-rows across workers
// goroutines, each with its own block-count table, combining nb and
// nnzEst by summation — an associative reduction.
// Random subsampling draws are made up front on the caller's goroutine so
// the result is independent of worker scheduling, keeping the *rng.Source
// single-owner even though work is parallelized.
func detBlockRowCountsParallel(m *csr.Matrix, b, r, M int, examineAll bool, rho float64, rs *rng.Source, workers int) ([]int, int) {
	examine := make([]bool, M)
	for i := range examine {
		examine[i] = examineAll || rs.Uniform() < rho
	}

	if workers > M {
		workers = M
	}
	chunk := (M + workers - 1) / workers

	type partial struct {
		nb     []int
		nnzEst int
	}
	results := make([]partial, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > M {
			hi = M
		}
		if lo >= hi {
			continue
		}
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			n := m.N
			blockCount := make([]int, b*n)
			nb := make([]int, b)
			nnzEst := 0
			for blockRow := lo; blockRow < hi; blockRow++ {
				if !examine[blockRow] {
					continue
				}
				rowLo := blockRow * r
				rowHi := rowLo + r
				examined := 0
				for i := rowLo; i < rowHi; i++ {
					for k := m.Ptr[i]; k < m.Ptr[i+1]; k++ {
						j := m.Ind[k]
						for c := 1; c <= b; c++ {
							J := j / c
							idx := (c-1)*n + J
							if blockCount[idx] == 0 {
								blockCount[idx] = 1
								nb[c-1]++
							}
						}
					}
					examined += m.Ptr[i+1] - m.Ptr[i]
				}
				nnzEst += examined
				for i := rowLo; i < rowHi; i++ {
					for k := m.Ptr[i]; k < m.Ptr[i+1]; k++ {
						j := m.Ind[k]
						for c := 1; c <= b; c++ {
							J := j / c
							blockCount[(c-1)*n+J] = 0
						}
					}
				}
			}
			results[w] = partial{nb: nb, nnzEst: nnzEst}
		}(w, lo, hi)
	}
	wg.Wait()

	nb := make([]int, b)
	nnzEst := 0
	for _, p := range results {
		if p.nb == nil {
			continue
		}
		nnzEst += p.nnzEst
		for c := 0; c < b; c++ {
			nb[c] += p.nb[c]
		}
	}
	return nb, nnzEst
}
