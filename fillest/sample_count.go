package fillest

import "math"

// sampleCount returns s, the number of samples the randomized variant
// draws, a closed-form function of B, epsilon, delta and nnz. nnz must
// be > 0 (callers short-circuit nnz==0 before reaching here).
//
// Grounded on original_source/src/phil.c's T/REPLACEMENT branches: T is
// shared by both sampling modes, with-replacement takes s=ceil(T)
// directly, without-replacement solves the quadratic whose positive root
// makes its variance match the with-replacement target variance.
func sampleCount(b int, epsilon, delta float64, nnz int, withReplacement bool) int {
	fb := float64(b)
	t := 2 * math.Log(fb/delta) * fb * fb / (epsilon * epsilon)

	var s float64
	if withReplacement {
		s = math.Ceil(t)
	} else {
		fn := float64(nnz)
		num := t - t/fn + math.Sqrt(t*(t+(2*t+t/fn)/fn+4))
		den := 2 + 2*t/fn
		s = math.Ceil(num / den)
	}

	si := int(s)
	if si > nnz {
		si = nnz
	}
	if si < 1 {
		si = 1
	}
	return si
}
