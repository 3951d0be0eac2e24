package fillest

import (
	"sync"

	"github.com/oski-go/bcsrfill/csr"
	"github.com/oski-go/bcsrfill/rng"
	"github.com/oski-go/bcsrfill/sampler"
	"github.com/oski-go/bcsrfill/search"
)

// randomized implements the neighborhood-sampling variant: for each of s sampled nonzeros,
// build a (2B-1)x(2B-1) 0/1 neighborhood grid centered on the sample,
// reduce it to a 2-D prefix sum, and accumulate 1/y (the reciprocal of
// the enclosing block's nonzero count) into every candidate (r,c) — or,
// with offsets, into every (r,c,or,oc). After all samples, each
// accumulator is scaled by r*c/s.
//
// Grounded on original_source/src/phil.c (no offsets) and
// original_source/code/asx.c (with offsets): both build the same Z grid
// and prefix sum; asx.c additionally derives per-offset strip sums Y1
// then per-offset block sums Y2 via two more 1-D differences.
func randomized(m *csr.Matrix, b int, epsilon, delta float64, withReplacement, withOffsets bool, rs *rng.Source, workers int, fillOut []float64) error {
	s := sampleCount(b, epsilon, delta, m.Nnz, withReplacement)

	samples, err := sampler.Select(m, s, withReplacement, rs)
	if err != nil {
		return err
	}

	var acc []float64
	if workers > 1 && len(samples) > 1 {
		acc = randomizedParallel(m, b, withOffsets, samples, workers)
	} else {
		g := newGrid(b)
		acc = make([]float64, len(fillOut))
		for _, smp := range samples {
			accumulateSample(m, b, smp, withOffsets, g, acc)
		}
	}

	scaleByRC(b, withOffsets, float64(len(samples)), acc, fillOut)
	return nil
}

// grid is reusable per-sample scratch: Z is the (2B)x(2B) 0/1 indicator
// (indices 0 and the row/column just below 1 act as the zero border the
// prefix-sum algebra relies on), Y1/Y2 are the offset-path's auxiliary
// strip/block sum tables.
type grid struct {
	b  int
	w  int // 2*b
	z  [][]int
	y1 [][]int // [b][w]
	y2 [][]int // [b][b]
}

func newGrid(b int) *grid {
	w := 2 * b
	g := &grid{b: b, w: w}
	g.z = make([][]int, w)
	for i := range g.z {
		g.z[i] = make([]int, w)
	}
	g.y1 = make([][]int, b)
	for i := range g.y1 {
		g.y1[i] = make([]int, w)
	}
	g.y2 = make([][]int, b)
	for i := range g.y2 {
		g.y2[i] = make([]int, b)
	}
	return g
}

func (g *grid) clearZ() {
	for r := 1; r < g.w; r++ {
		row := g.z[r]
		for c := 1; c < g.w; c++ {
			row[c] = 0
		}
	}
}

// accumulateSample builds the neighborhood grid for smp, prefix-sums it,
// and accumulates 1/y into acc for every candidate (r,c) (and, with
// offsets, every (r,c,or,oc)).
func accumulateSample(m *csr.Matrix, b int, smp csr.Sample, withOffsets bool, g *grid, acc []float64) {
	i, j := smp.I, smp.J
	g.clearZ()

	iiLo := i - b + 1
	if iiLo < 0 {
		iiLo = 0
	}
	iiHi := i + b - 1
	if iiHi > m.M-1 {
		iiHi = m.M - 1
	}
	jjMin := j - b + 1
	if jjMin < 0 {
		jjMin = 0
	}
	jjMax := j + b - 1
	if jjMax > m.N-1 {
		jjMax = m.N - 1
	}

	for ii := iiLo; ii <= iiHi; ii++ {
		r := b + (ii - i)
		scan := search.LowerBound(m.Ind, m.Ptr[ii], m.Ptr[ii+1], jjMin)
		for scan < m.Ptr[ii+1] {
			jj := m.Ind[scan]
			if jj > jjMax {
				break
			}
			c := b + (jj - j)
			g.z[r][c] = 1
			scan++
		}
	}

	// 2-D prefix sum: rows first, then columns.
	for r := 1; r < g.w; r++ {
		row := g.z[r]
		for c := 1; c < g.w; c++ {
			row[c] += row[c-1]
		}
	}
	for c := 1; c < g.w; c++ {
		for r := 1; r < g.w; r++ {
			g.z[r][c] += g.z[r-1][c]
		}
	}

	if !withOffsets {
		idx := 0
		for r := 1; r <= b; r++ {
			for c := 1; c <= b; c++ {
				rHi := b + (r - 1) - (i % r)
				rLo := rHi - r
				cHi := b + (c - 1) - (j % c)
				cLo := cHi - c
				y := g.z[rHi][cHi] - g.z[rHi][cLo] - g.z[rLo][cHi] + g.z[rLo][cLo]
				acc[idx] += 1.0 / float64(y)
				idx++
			}
		}
		return
	}

	idx := 0
	for br := 1; br <= b; br++ {
		for r := b; r < b+br; r++ {
			or := (i + r + 1 - b) % br
			for c := 0; c < g.w; c++ {
				g.y1[or][c] = g.z[r][c] - g.z[r-br][c]
			}
		}
		for bc := 1; bc <= b; bc++ {
			for c := b; c < b+bc; c++ {
				oc := (j + c + 1 - b) % bc
				for or := 0; or < br; or++ {
					g.y2[or][oc] = g.y1[or][c] - g.y1[or][c-bc]
				}
			}
			for or := 0; or < br; or++ {
				for oc := 0; oc < bc; oc++ {
					acc[idx] += 1.0 / float64(g.y2[or][oc])
					idx++
				}
			}
		}
	}
}

func scaleByRC(b int, withOffsets bool, s float64, acc, fillOut []float64) {
	if withOffsets {
		idx := 0
		for r := 1; r <= b; r++ {
			for c := 1; c <= b; c++ {
				scale := float64(r) * float64(c) / s
				for or := 0; or < r; or++ {
					for oc := 0; oc < c; oc++ {
						fillOut[idx] = acc[idx] * scale
						idx++
					}
				}
			}
		}
		return
	}
	idx := 0
	for r := 1; r <= b; r++ {
		for c := 1; c <= b; c++ {
			fillOut[idx] = acc[idx] * float64(r) * float64(c) / s
			idx++
		}
	}
}

// randomizedParallel splits samples across workers goroutines, each with
// its own grid and accumulator, summing accumulators at the end — the
// per-sample loop is embarrassingly parallel once the
// accumulators and neighborhood grid are replicated per worker.
func randomizedParallel(m *csr.Matrix, b int, withOffsets bool, samples []csr.Sample, workers int) []float64 {
	n := len(samples)
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	length := csr.NoOffsetLen(b)
	if withOffsets {
		length = csr.OffsetLen(b)
	}

	partials := make([][]float64, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		if lo >= hi {
			continue
		}
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			g := newGrid(b)
			local := make([]float64, length)
			for _, smp := range samples[lo:hi] {
				accumulateSample(m, b, smp, withOffsets, g, local)
			}
			partials[w] = local
		}(w, lo, hi)
	}
	wg.Wait()

	acc := make([]float64, length)
	for _, p := range partials {
		if p == nil {
			continue
		}
		for k, v := range p {
			acc[k] += v
		}
	}
	return acc
}
