package readfiles

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadMtx(t *testing.T) {
	input := `%%MatrixMarket matrix coordinate real general
% a comment after the header
3 4 3
1 1      1.00000000000000000000e+00
3 4     -2.50000000000000000000e-01
2 2      3.00000000000000000000e+00
`
	M, err := ReadMtx(strings.NewReader(input))
	assert.NoError(t, err)
	nr, nc := M.Dims()
	assert.Equal(t, 3, nr)
	assert.Equal(t, 4, nc)
	assert.Equal(t, 3, M.NNZ())
	assert.InDelta(t, 1.0, M.At(0, 0), 1e-15)
	assert.InDelta(t, -0.25, M.At(2, 3), 1e-15)
	assert.InDelta(t, 3.0, M.At(1, 1), 1e-15)
	assert.InDelta(t, 0.0, M.At(0, 1), 1e-15)
}

func TestReadMtxAccumulatesDuplicates(t *testing.T) {
	// Duplicate coordinates follow the scatter-add convention.
	input := `%%MatrixMarket matrix coordinate real general
2 2 2
1 1 1.5
1 1 2.5
`
	M, err := ReadMtx(strings.NewReader(input))
	assert.NoError(t, err)
	assert.InDelta(t, 4.0, M.At(0, 0), 1e-15)
}

func TestReadMtxErrors(t *testing.T) {
	cases := []struct {
		name, input string
	}{
		{"empty", ""},
		{"bad header", "not a matrix market file\n1 1 1\n1 1 1.0\n"},
		{"unsupported type", "%%MatrixMarket matrix coordinate complex general\n1 1 1\n1 1 1.0\n"},
		{"missing size line", "%%MatrixMarket matrix coordinate real general\n"},
		{"short size line", "%%MatrixMarket matrix coordinate real general\n2 2\n"},
		{"bad entry", "%%MatrixMarket matrix coordinate real general\n2 2 1\n1 1\n"},
		{"bad value", "%%MatrixMarket matrix coordinate real general\n2 2 1\n1 1 abc\n"},
		{"out of range", "%%MatrixMarket matrix coordinate real general\n2 2 1\n3 1 1.0\n"},
		{"count mismatch", "%%MatrixMarket matrix coordinate real general\n2 2 5\n1 1 1.0\n"},
	}
	for _, tc := range cases {
		if _, err := ReadMtx(strings.NewReader(tc.input)); err == nil {
			t.Errorf("%s: expected an error", tc.name)
		}
	}
}
