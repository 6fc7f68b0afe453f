package bsr

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

// ToDense materializes the matrix as a newly allocated gonum dense matrix of
// scalar dimensions (NbRows*BlockRows) x (NbCols*BlockCols). Blocks outside
// the pattern are zero. The returned matrix owns its storage - it does not
// alias the block values.
func (A Matrix) ToDense() (D *mat.Dense) {
	var (
		nr, nc = A.Dims()
	)
	D = mat.NewDense(nr, nc, nil)
	for i := 0; i < A.NbRows; i++ {
		for jp := A.RowP[i]; jp < A.RowP[i+1]; jp++ {
			var (
				j      = A.Cols[jp]
				offset = A.blockOffset(jp)
			)
			for ii := 0; ii < A.BlockRows; ii++ {
				for jj := 0; jj < A.BlockCols; jj++ {
					D.Set(A.BlockRows*i+ii, A.BlockCols*j+jj, A.Vals[offset+ii*A.BlockCols+jj])
				}
			}
		}
	}
	return
}

// ToCSR converts the matrix to scalar CSR form, unrolling each block row
// into BlockRows scalar rows. Column order within a scalar row follows the
// block pattern order, so it is only sorted if the block columns were. This
// is the hand-off format for iterative solvers working outside the block
// structure.
func (A Matrix) ToCSR() *sparse.CSR {
	var (
		nr, nc = A.Dims()
		snnz   = A.Nnz * A.BlockRows * A.BlockCols
		ia     = make([]int, nr+1)
		ja     = make([]int, 0, snnz)
		data   = make([]float64, 0, snnz)
	)
	for i := 0; i < A.NbRows; i++ {
		for ii := 0; ii < A.BlockRows; ii++ {
			for jp := A.RowP[i]; jp < A.RowP[i+1]; jp++ {
				var (
					j      = A.Cols[jp]
					offset = A.blockOffset(jp) + ii*A.BlockCols
				)
				for jj := 0; jj < A.BlockCols; jj++ {
					ja = append(ja, A.BlockCols*j+jj)
					data = append(data, A.Vals[offset+jj])
				}
			}
			ia[A.BlockRows*i+ii+1] = len(ja)
		}
	}
	return sparse.NewCSR(nr, nc, ia, ja, data)
}

// WriteMtx serializes the matrix to w in MatrixMarket coordinate real
// general format: a header line, a scalar size line, then one 1-based
// "row col value" line per nonzero scalar, iterating blocks in pattern order
// and unrolling each row-major.
func (A Matrix) WriteMtx(w io.Writer) (err error) {
	var (
		nr, nc = A.Dims()
		bw     = bufio.NewWriter(w)
	)
	if _, err = fmt.Fprintf(bw, "%%%%MatrixMarket matrix coordinate real general\n"); err != nil {
		return
	}
	if _, err = fmt.Fprintf(bw, "%d %d %d\n", nr, nc, A.Nnz*A.BlockRows*A.BlockCols); err != nil {
		return
	}
	for i := 0; i < A.NbRows; i++ {
		for jp := A.RowP[i]; jp < A.RowP[i+1]; jp++ {
			var (
				j      = A.Cols[jp]
				offset = A.blockOffset(jp)
			)
			for ii := 0; ii < A.BlockRows; ii++ {
				irow := A.BlockRows*i + ii + 1 // 1-based
				for jj := 0; jj < A.BlockCols; jj++ {
					jcol := A.BlockCols*j + jj + 1
					if _, err = fmt.Fprintf(bw, "%d %d %30.20e\n",
						irow, jcol, A.Vals[offset+ii*A.BlockCols+jj]); err != nil {
						return
					}
				}
			}
		}
	}
	return bw.Flush()
}

// WriteMtxFile writes the matrix to the named file in MatrixMarket format,
// truncating any existing content.
func (A Matrix) WriteMtxFile(filename string) (err error) {
	var (
		file *os.File
	)
	if file, err = os.Create(filename); err != nil {
		return fmt.Errorf("unable to create file %s: %w", filename, err)
	}
	defer file.Close()
	return A.WriteMtx(file)
}
