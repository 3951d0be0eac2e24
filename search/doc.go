// Package search provides exact-semantic binary search over ascending
// []int slices: LowerBound and UpperBound on a window s[lo:hi].
//
// These are used by sampler to map a sampled nonzero offset to its
// owning row in the CSR row-pointer array, and by fillest's randomized
// variant to clip a neighborhood column scan to a bounded window.
package search
