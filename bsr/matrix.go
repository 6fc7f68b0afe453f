package bsr

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a Block Compressed Sparse Row (BSR) sparse matrix. The matrix is
// partitioned into dense BlockRows x BlockCols blocks, one block per nonzero
// pattern entry, which is the natural shape for matrices assembled from
// element-based meshes where each mesh node carries a fixed group of
// variables.
//
// The sparsity pattern (RowP, Cols) is fixed at construction - there is no
// block insertion or deletion. Values are populated afterward, typically by
// repeated AddValues calls, one per element.
//
// A Matrix value is a handle: assigning or passing a Matrix by value yields a
// second handle sharing the same pattern, value and metadata storage, so
// mutations through one handle are visible through all of them. Use Copy for
// an independent deep copy.
type Matrix struct {
	// Global matrix dimensions (in block counts).
	NbRows, NbCols int

	// Each block has dimensions BlockRows x BlockCols.
	BlockRows, BlockCols int

	// Number of nonzero blocks. The scalar nonzero count is
	// Nnz*BlockRows*BlockCols.
	Nnz int

	// RowP has length NbRows+1 with RowP[0] == 0 and RowP[NbRows] == Nnz;
	// block row i owns pattern entries RowP[i] through RowP[i+1].
	RowP []int

	// Cols has length Nnz; Cols[jp] is the block column of pattern entry jp.
	// Columns are not required to be sorted within a row - lookup is a
	// linear scan sized for the short rows of element-based meshes.
	Cols []int

	// Contiguous storage for all nonzero blocks, in pattern order. Block jp
	// occupies Vals[jp*BlockRows*BlockCols : (jp+1)*BlockRows*BlockCols],
	// row-major.
	Vals []float64

	// Solver metadata and assembly counters, shared across handles.
	meta *metadata
}

// New creates a Matrix with nbrows x nbcols blocks of dimension
// blockRows x blockCols each, from CSR-style block row pointers and block
// column indices. The rowp and cols contents are copied into newly owned
// storage; the caller's slices are not retained.
//
// The caller guarantees the CSR invariants: rowp has length nbrows+1, is
// monotonically non-decreasing with rowp[0] == 0, and every cols entry is a
// valid block column. No validation is performed - a malformed pattern
// produces undefined downstream behavior.
func New(nbrows, nbcols, blockRows, blockCols int, rowp, cols []int) (R Matrix) {
	var (
		nnz = len(cols)
	)
	R = Matrix{
		NbRows:    nbrows,
		NbCols:    nbcols,
		BlockRows: blockRows,
		BlockCols: blockCols,
		Nnz:       nnz,
		RowP:      make([]int, nbrows+1),
		Cols:      make([]int, nnz),
		Vals:      make([]float64, nnz*blockRows*blockCols),
		meta:      &metadata{},
	}
	copy(R.RowP, rowp)
	copy(R.Cols, cols)
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface, addressing the
// matrix by scalar (not block) coordinates.
func (A Matrix) Dims() (r, c int) {
	return A.NbRows * A.BlockRows, A.NbCols * A.BlockCols
}

func (A Matrix) At(i, j int) float64 {
	var (
		brow, eqRow = i / A.BlockRows, i % A.BlockRows
		bcol, eqCol = j / A.BlockCols, j % A.BlockCols
	)
	jp, ok := A.FindBlockIndex(brow, bcol)
	if !ok {
		return 0
	}
	return A.Vals[A.blockOffset(jp)+eqRow*A.BlockCols+eqCol]
}

func (A Matrix) T() mat.Matrix { return mat.Transpose{Matrix: A} }

// Zero overwrites every scalar in the value storage with zero. The pattern
// and metadata are untouched. Idempotent.
func (A Matrix) Zero() {
	for i := range A.Vals {
		A.Vals[i] = 0
	}
}

// FindBlockIndex scans block row brow for block column bcol and returns the
// storage index of the matching block, or ok == false when (brow, bcol) is
// not in the nonzero pattern. The scan is linear in the row degree, which is
// bounded by local mesh connectivity; callers with long rows should pre-sort
// and substitute their own search.
//
// An out-of-range brow is a caller-contract violation and panics.
func (A Matrix) FindBlockIndex(brow, bcol int) (jp int, ok bool) {
	if brow < 0 || brow >= A.NbRows {
		panic(fmt.Errorf("block row %d out of range [0,%d)", brow, A.NbRows))
	}
	for jp = A.RowP[brow]; jp < A.RowP[brow+1]; jp++ {
		if A.Cols[jp] == bcol {
			return jp, true
		}
	}
	return 0, false
}

// Block returns a dense view of pattern entry jp, sharing the matrix value
// storage. Writes through the view are visible in the matrix and in every
// handle sharing it.
func (A Matrix) Block(jp int) *mat.Dense {
	var (
		offset = A.blockOffset(jp)
		bsize  = A.BlockRows * A.BlockCols
	)
	return mat.NewDense(A.BlockRows, A.BlockCols, A.Vals[offset:offset+bsize])
}

func (A Matrix) blockOffset(jp int) int {
	return jp * A.BlockRows * A.BlockCols
}

// Copy produces a deep copy: a new Matrix with independent pattern, value
// and metadata storage. Plain assignment shares storage instead.
func (A Matrix) Copy() (R Matrix) {
	R = New(A.NbRows, A.NbCols, A.BlockRows, A.BlockCols, A.RowP, A.Cols)
	copy(R.Vals, A.Vals)
	*R.meta = A.meta.copy()
	return
}
