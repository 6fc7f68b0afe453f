package bsr

import "sort"

// NewFromElements builds a Matrix whose pattern is the union of the dense
// couplings of each element: for an element listing block nodes
// [n0, n1, ...], every (ni, nj) pair becomes a nonzero block. Columns within
// each row come out sorted and deduplicated. This is a convenience for
// callers without a separate connectivity-graph builder; New remains the
// primary constructor for externally built patterns.
func NewFromElements(nbrows, nbcols, blockRows, blockCols int, elements [][]int) (R Matrix) {
	var (
		rowCols = make([]map[int]struct{}, nbrows)
	)
	for i := range rowCols {
		rowCols[i] = make(map[int]struct{})
	}
	for _, nodes := range elements {
		for _, ni := range nodes {
			for _, nj := range nodes {
				rowCols[ni][nj] = struct{}{}
			}
		}
	}
	var (
		rowp = make([]int, nbrows+1)
		cols []int
	)
	for i, set := range rowCols {
		row := make([]int, 0, len(set))
		for j := range set {
			row = append(row, j)
		}
		sort.Ints(row)
		cols = append(cols, row...)
		rowp[i+1] = len(cols)
	}
	return New(nbrows, nbcols, blockRows, blockCols, rowp, cols)
}
