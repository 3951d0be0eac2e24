// Package bcsrfill is the fill-ratio estimation core of a sparse-matrix
// autotuner: given a matrix in Compressed Sparse Row (CSR) form and a
// maximum block dimension B, it estimates how many nonzeros a conversion
// to Block CSR (BCSR) would need to explicitly store, for every candidate
// block shape (r,c) with 1<=r,c<=B — without performing the conversion.
//
// Three estimator variants live in fillest/, sharing one data model (csr/),
// one seedable RNG (rng/) and one binary-search helper (search/):
//
//   - exact:        O(B²·nnz) oracle, used as ground truth in tests.
//   - deterministic: O(B·(nnz+N)) per-block-row counter, random only when
//     block-rows are subsampled.
//   - randomized:   O(s·B²) (or O(s·B³) with block-offset enumeration)
//     neighborhood-sampling estimator with an (ε,δ) accuracy contract.
//
// sampler/ picks the nonzero offsets the randomized variant samples.
// matrixgen/ is test/benchmark-only synthetic CSR generation. tuner/ is a
// minimal demonstration of the external consumer side of the contract —
// the real autotuner (block-shape search, transformation, benchmarking,
// persistent heuristic registry) is out of scope here.
//
//	go get github.com/oski-go/bcsrfill/fillest
package bcsrfill
