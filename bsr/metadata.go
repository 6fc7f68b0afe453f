package bsr

import "fmt"

// metadata holds the passive solver slots and assembly counters. It lives
// behind a pointer on Matrix so that every handle sharing a matrix sees the
// same contents, including slots populated after the handles were copied.
//
// None of these are computed here: external ordering, coloring and
// factorization passes record their results on the matrix for reuse across
// repeated solves against the same pattern.
type metadata struct {
	// diag[r] is the storage index of the diagonal block of block row r.
	diag []int

	// Block row permutation and its inverse: perm[new] = old,
	// iperm[old] = new.
	perm, iperm []int

	// Coloring: number of colors and block-row count per color.
	numColors  int
	colorCount []int

	// Count of AddValues contributions dropped because their target block
	// was absent from the pattern.
	dropped int
}

func (m metadata) copy() (R metadata) {
	R = metadata{numColors: m.numColors, dropped: m.dropped}
	if m.diag != nil {
		R.diag = append([]int{}, m.diag...)
	}
	if m.perm != nil {
		R.perm = append([]int{}, m.perm...)
	}
	if m.iperm != nil {
		R.iperm = append([]int{}, m.iperm...)
	}
	if m.colorCount != nil {
		R.colorCount = append([]int{}, m.colorCount...)
	}
	return
}

// Diag returns the diagonal block index cache, or ok == false when no
// factorization-preparation pass has populated it yet. The returned slice
// aliases the stored one.
func (A Matrix) Diag() (diag []int, ok bool) {
	return A.meta.diag, A.meta.diag != nil
}

// SetDiag stores the diagonal block index cache. diag[r] must be a storage
// index within block row r whose column equals r; only the length is
// checked.
func (A Matrix) SetDiag(diag []int) {
	if len(diag) != A.NbRows {
		panic(fmt.Errorf("diag length %d, want %d", len(diag), A.NbRows))
	}
	A.meta.diag = diag
}

// Perm returns the block row permutation and its inverse, or ok == false
// when no ordering pass has populated them.
func (A Matrix) Perm() (perm, iperm []int, ok bool) {
	return A.meta.perm, A.meta.iperm, A.meta.perm != nil
}

// SetPerm stores a block row permutation and its inverse, both of length
// NbRows.
func (A Matrix) SetPerm(perm, iperm []int) {
	if len(perm) != A.NbRows || len(iperm) != A.NbRows {
		panic(fmt.Errorf("perm/iperm lengths %d/%d, want %d", len(perm), len(iperm), A.NbRows))
	}
	A.meta.perm = perm
	A.meta.iperm = iperm
}

// Colors returns the coloring metadata recorded by an external graph
// coloring pass: the number of colors and the block-row count per color.
// ok == false when no coloring has been recorded.
func (A Matrix) Colors() (numColors int, colorCount []int, ok bool) {
	return A.meta.numColors, A.meta.colorCount, A.meta.colorCount != nil
}

// SetColors records coloring metadata. colorCount must have one entry per
// color.
func (A Matrix) SetColors(numColors int, colorCount []int) {
	if len(colorCount) != numColors {
		panic(fmt.Errorf("colorCount length %d, want %d", len(colorCount), numColors))
	}
	A.meta.numColors = numColors
	A.meta.colorCount = colorCount
}

// DroppedContributions reports how many AddValues contributions have been
// silently dropped because their target block was absent from the pattern.
// A nonzero count after assembly usually means the pattern under-represents
// the mesh connectivity.
func (A Matrix) DroppedContributions() int { return A.meta.dropped }

// ResetDroppedContributions zeroes the dropped-contribution counter, e.g.
// between assembly passes.
func (A Matrix) ResetDroppedContributions() { A.meta.dropped = 0 }
