// Package csr holds the data model shared by every component of the
// fill-ratio estimator: the read-only CSR matrix view, block-shape and
// fill-result layout helpers, and the package's sentinel errors.
//
// A Matrix is borrowed for the duration of one estimation and never
// mutated by this module. It carries no lock: unlike a long-lived,
// concurrently-mutated structure, a Matrix is an immutable view for the
// lifetime of a single call, so a lock would add cost without a
// corresponding hazard (see DESIGN.md).
package csr

import "fmt"

// Matrix is a read-only view over a Compressed Sparse Row matrix. Ptr has
// length M+1; Ind has length Nnz. Row i's column indices occupy
// Ind[Ptr[i]:Ptr[i+1]] and must be sorted and unique. Values are not part
// of this type: fill estimation only ever needs the sparsity pattern.
type Matrix struct {
	M, N, Nnz int
	Ptr       []int
	Ind       []int
}

// New constructs a Matrix from caller-owned slices without copying them;
// mutating ptr or ind after construction is the caller's responsibility
// to avoid. It does not validate — call Validate explicitly when the
// caller wants the invariant guarantee (see Validate's doc comment for
// why this is opt-in rather than automatic).
func New(m, n, nnz int, ptr, ind []int) *Matrix {
	return &Matrix{M: m, N: n, Nnz: nnz, Ptr: ptr, Ind: ind}
}

// Validate checks the invariants a well-formed CSR view must satisfy: non-negative
// dimensions, len(Ptr)==M+1, Ptr[0]==0, Ptr[M]==Nnz, Ptr non-decreasing,
// len(Ind)==Nnz, every entry in [0,N), and each row's column indices
// strictly increasing.
//
// This is deliberately opt-in rather than run automatically on every
// estimator call: the estimator is on the hot path of an autotuner that
// may call it many times per candidate matrix, and a full O(Nnz) scan per
// call would be a surprising, silent cost. Callers that want
// defense-in-depth validate once after loading a matrix, not per
// estimation — matching how lvlath's own ValidateSameShape/ValidateSquare
// are explicit helpers call sites opt into, not a hidden per-call tax.
//
// Complexity: O(Nnz).
func (m *Matrix) Validate() error {
	if m == nil {
		return errorf("Validate", ErrNilMatrix)
	}
	if m.M < 0 || m.N < 0 || m.Nnz < 0 {
		return errorf("Validate", fmt.Errorf("negative dimension m=%d n=%d nnz=%d: %w", m.M, m.N, m.Nnz, ErrDimensionMismatch))
	}
	if len(m.Ptr) != m.M+1 {
		return errorf("Validate", fmt.Errorf("len(Ptr)=%d want %d: %w", len(m.Ptr), m.M+1, ErrDimensionMismatch))
	}
	if len(m.Ind) != m.Nnz {
		return errorf("Validate", fmt.Errorf("len(Ind)=%d want Nnz=%d: %w", len(m.Ind), m.Nnz, ErrDimensionMismatch))
	}
	if m.M > 0 || m.N > 0 || m.Nnz > 0 {
		if m.Ptr[0] != 0 {
			return errorf("Validate", fmt.Errorf("Ptr[0]=%d want 0: %w", m.Ptr[0], ErrDimensionMismatch))
		}
		if m.Ptr[m.M] != m.Nnz {
			return errorf("Validate", fmt.Errorf("Ptr[M]=%d want Nnz=%d: %w", m.Ptr[m.M], m.Nnz, ErrDimensionMismatch))
		}
	}
	for i := 0; i < m.M; i++ {
		if m.Ptr[i+1] < m.Ptr[i] {
			return errorf("Validate", fmt.Errorf("Ptr[%d]=%d > Ptr[%d]=%d: %w", i, m.Ptr[i], i+1, m.Ptr[i+1], ErrNonMonotonicPtr))
		}
		prev := -1
		for k := m.Ptr[i]; k < m.Ptr[i+1]; k++ {
			j := m.Ind[k]
			if j < 0 || j >= m.N {
				return errorf("Validate", fmt.Errorf("row %d: column %d out of [0,%d): %w", i, j, m.N, ErrColumnOutOfRange))
			}
			if j <= prev {
				return errorf("Validate", fmt.Errorf("row %d: column %d not strictly increasing after %d: %w", i, j, prev, ErrUnsortedRow))
			}
			prev = j
		}
	}
	return nil
}

// Empty reports whether the matrix has no nonzeros worth estimating —
// Nnz==0, M==0 and N==0 are all treated identically (every fill
// ratio is defined as 1.0).
func (m *Matrix) Empty() bool {
	return m == nil || m.Nnz == 0 || m.M == 0 || m.N == 0
}
