// Package sampler implements SampleSelector: picking s
// distinct-or-repeated nonzero offsets out of a CSR matrix's [0,nnz)
// range and locating each one's owning (row, column).
package sampler
