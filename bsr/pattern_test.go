package bsr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFromElements(t *testing.T) {
	// Two line elements sharing block node 1: [0,1] and [1,2]. The union
	// footprint is tridiagonal.
	A := NewFromElements(3, 3, 2, 2, [][]int{{0, 1}, {1, 2}})

	assert.Equal(t, []int{0, 2, 5, 7}, A.RowP)
	assert.Equal(t, []int{0, 1, 0, 1, 2, 1, 2}, A.Cols)
	if A.RowP[0] != 0 || A.RowP[A.NbRows] != A.Nnz {
		t.Errorf("row pointer invariant violated")
	}
}

func TestNewFromElementsDedup(t *testing.T) {
	// Repeated nodes within an element and overlapping elements must not
	// produce duplicate pattern entries.
	A := NewFromElements(2, 2, 1, 1, [][]int{{0, 0, 1}, {1, 0}})
	assert.Equal(t, 4, A.Nnz)
	assert.Equal(t, []int{0, 2, 4}, A.RowP)
	assert.Equal(t, []int{0, 1, 0, 1}, A.Cols)
}

func TestNewFromElementsIsolatedRow(t *testing.T) {
	// Block row 2 appears in no element and must come out empty.
	A := NewFromElements(3, 3, 2, 2, [][]int{{0, 1}})
	assert.Equal(t, []int{0, 2, 4, 4}, A.RowP)
	if _, ok := A.FindBlockIndex(2, 2); ok {
		t.Errorf("isolated row unexpectedly has a diagonal block")
	}
}
