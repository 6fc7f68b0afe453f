package bsr

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// AddValues scatter-adds a dense local contribution matrix into the global
// matrix. rowDOFs and colDOFs address local rows and columns by global
// scalar degree-of-freedom index; each global index decomposes into a block
// index and an in-block offset (dof/blockDim, dof%blockDim). Contributions
// accumulate - multiple elements touching the same block add together, which
// is why assembly never overwrites.
//
// A contribution whose target block is absent from the pattern is dropped
// silently: callers are expected to size the pattern for every block any
// element will touch, and some callers rely on over-providing local
// contributions. Dropped contributions are counted - see
// DroppedContributions.
func (A Matrix) AddValues(rowDOFs, colDOFs []int, local mat.Matrix) {
	var (
		m, n = local.Dims()
	)
	if m != len(rowDOFs) || n != len(colDOFs) {
		panic(fmt.Errorf("local matrix is %dx%d, want %dx%d", m, n, len(rowDOFs), len(colDOFs)))
	}
	for i, rdof := range rowDOFs {
		var (
			brow  = rdof / A.BlockRows
			eqRow = rdof % A.BlockRows
		)
		for j, cdof := range colDOFs {
			var (
				bcol  = cdof / A.BlockCols
				eqCol = cdof % A.BlockCols
			)
			jp, ok := A.FindBlockIndex(brow, bcol)
			if !ok {
				A.meta.dropped++
				continue
			}
			A.Vals[A.blockOffset(jp)+eqRow*A.BlockCols+eqCol] += local.At(i, j)
		}
	}
}

// ZeroRows eliminates the scalar rows addressed by dofs, enforcing Dirichlet
// boundary conditions: every scalar in each constrained row is zeroed across
// all blocks of its block row, then the diagonal scalar entry is set to one.
// The diagonal block is located by direct pattern match, not through the
// Diag cache, so ZeroRows works before any factorization preparation.
//
// If a constrained block row has no diagonal block in the pattern, the
// identity re-assertion is skipped and the row is left entirely zero -
// keeping the diagonal block in the pattern is a caller obligation. The
// matching right-hand-side entries are not touched; that is the caller's
// concern.
func (A Matrix) ZeroRows(dofs []int) {
	for _, dof := range dofs {
		var (
			brow  = dof / A.BlockRows
			eqRow = dof % A.BlockRows
		)
		for jp := A.RowP[brow]; jp < A.RowP[brow+1]; jp++ {
			offset := A.blockOffset(jp) + eqRow*A.BlockCols
			for k := 0; k < A.BlockCols; k++ {
				A.Vals[offset+k] = 0
			}
			if A.Cols[jp] == brow {
				A.Vals[A.blockOffset(jp)+eqRow*A.BlockCols+eqRow] = 1
			}
		}
	}
}

// MulVec computes y = A*x over the block pattern. x has scalar length
// NbCols*BlockCols and the result has scalar length NbRows*BlockRows. This
// is a plain traversal for consumers and tests of assembled matrices, not a
// solver.
func (A Matrix) MulVec(x []float64) (y []float64) {
	var (
		nr, nc = A.Dims()
	)
	if len(x) != nc {
		panic(fmt.Errorf("vector length %d, want %d", len(x), nc))
	}
	y = make([]float64, nr)
	for i := 0; i < A.NbRows; i++ {
		for jp := A.RowP[i]; jp < A.RowP[i+1]; jp++ {
			var (
				j      = A.Cols[jp]
				offset = A.blockOffset(jp)
			)
			for ii := 0; ii < A.BlockRows; ii++ {
				sum := 0.0
				for jj := 0; jj < A.BlockCols; jj++ {
					sum += A.Vals[offset+ii*A.BlockCols+jj] * x[A.BlockCols*j+jj]
				}
				y[A.BlockRows*i+ii] += sum
			}
		}
	}
	return
}
