package bsr

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/notargets/blocksparse/readfiles"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

// assembled returns a small assembled test matrix: tridiagonal 3-block
// pattern, 2x2 blocks, two overlapping element contributions.
func assembled() (A Matrix) {
	A = tridiagonal(3)
	local := mat.NewDense(4, 4, []float64{
		4, -1, -1, 0,
		-1, 4, 0, -1,
		-1, 0, 4, -1,
		0, -1, -1, 4,
	})
	A.AddValues([]int{0, 1, 2, 3}, []int{0, 1, 2, 3}, local)
	A.AddValues([]int{2, 3, 4, 5}, []int{2, 3, 4, 5}, local)
	return
}

func TestToDense(t *testing.T) {
	A := assembled()
	D := A.ToDense()
	nr, nc := D.Dims()
	if nr != 6 || nc != 6 {
		t.Errorf("dense dims expected (6,6), got (%d,%d)", nr, nc)
	}
	// ToDense must agree with scalar At everywhere, including outside the
	// pattern.
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			if got, want := D.At(i, j), A.At(i, j); !almostEqual(got, want, 1e-15) {
				t.Errorf("dense (%d,%d): got %v, want %v", i, j, got, want)
			}
		}
	}
	// The returned buffer is owned by the caller.
	D.Set(0, 0, 999)
	if A.At(0, 0) == 999 {
		t.Errorf("ToDense aliases matrix storage")
	}
}

func TestWriteMtxFormat(t *testing.T) {
	A := assembled()
	var buf bytes.Buffer
	assert.NoError(t, A.WriteMtx(&buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if lines[0] != "%%MatrixMarket matrix coordinate real general" {
		t.Errorf("bad header line: %q", lines[0])
	}
	sizeFields := strings.Fields(lines[1])
	assert.Equal(t, []string{"6", "6", "28"}, sizeFields) // 7 blocks * 4 scalars
	if len(lines) != 2+28 {
		t.Errorf("expected %d lines, got %d", 2+28, len(lines))
	}
}

// TestDenseMtxEquivalence reparses WriteMtx output and checks it scalar by
// scalar against ToDense for the same matrix.
func TestDenseMtxEquivalence(t *testing.T) {
	A := assembled()
	A.ZeroRows([]int{1})

	var buf bytes.Buffer
	assert.NoError(t, A.WriteMtx(&buf))
	M, err := readfiles.ReadMtx(&buf)
	assert.NoError(t, err)

	D := A.ToDense()
	nr, nc := D.Dims()
	mr, mc := M.Dims()
	if mr != nr || mc != nc {
		t.Fatalf("parsed dims (%d,%d), dense dims (%d,%d)", mr, mc, nr, nc)
	}
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			if got, want := M.At(i, j), D.At(i, j); !almostEqual(got, want, 1e-15) {
				t.Errorf("parsed (%d,%d): got %v, want %v", i, j, got, want)
			}
		}
	}
}

func TestToCSR(t *testing.T) {
	A := assembled()
	C := A.ToCSR()
	D := A.ToDense()
	nr, nc := D.Dims()
	cr, cc := C.Dims()
	if cr != nr || cc != nc {
		t.Fatalf("CSR dims (%d,%d), want (%d,%d)", cr, cc, nr, nc)
	}
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			if got, want := C.At(i, j), D.At(i, j); !almostEqual(got, want, 1e-15) {
				t.Errorf("CSR (%d,%d): got %v, want %v", i, j, got, want)
			}
		}
	}
}

func TestWriteMtxFile(t *testing.T) {
	A := assembled()
	path := filepath.Join(t.TempDir(), "out.mtx")
	assert.NoError(t, A.WriteMtxFile(path))
	M, err := readfiles.ReadMtxFile(path)
	assert.NoError(t, err)
	if got, want := M.At(0, 0), A.At(0, 0); !almostEqual(got, want, 1e-15) {
		t.Errorf("file round trip (0,0): got %v, want %v", got, want)
	}

	// A failed open is reported, not ignored.
	err = A.WriteMtxFile(filepath.Join(t.TempDir(), "no", "such", "dir", "out.mtx"))
	assert.Error(t, err)
	_ = os.Remove(path)
}
