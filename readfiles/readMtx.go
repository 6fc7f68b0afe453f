package readfiles

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/james-bowman/sparse"
)

const mtxHeader = "%%MatrixMarket matrix coordinate real general"

// ReadMtx parses a MatrixMarket coordinate real general stream into a DOK
// sparse matrix. Comment lines (leading %) after the header are skipped.
// Duplicate coordinate entries accumulate, matching the scatter-add
// convention of assembled matrices.
func ReadMtx(r io.Reader) (M *sparse.DOK, err error) {
	var (
		scanner = bufio.NewScanner(r)
		nr, nc  int
		nnz     int
	)
	if !scanner.Scan() {
		return nil, fmt.Errorf("empty input, expected MatrixMarket header")
	}
	header := strings.TrimSpace(scanner.Text())
	if !strings.HasPrefix(header, "%%MatrixMarket") {
		return nil, fmt.Errorf("bad MatrixMarket header: %q", header)
	}
	if header != mtxHeader {
		return nil, fmt.Errorf("unsupported MatrixMarket type: %q, only %q is supported", header, mtxHeader)
	}

	// Size line, after any comment lines.
	for {
		if !scanner.Scan() {
			return nil, fmt.Errorf("missing size line")
		}
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || strings.HasPrefix(line, "%") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("bad size line: %q", line)
		}
		if nr, err = strconv.Atoi(fields[0]); err != nil {
			return nil, fmt.Errorf("bad row count in size line %q: %w", line, err)
		}
		if nc, err = strconv.Atoi(fields[1]); err != nil {
			return nil, fmt.Errorf("bad column count in size line %q: %w", line, err)
		}
		if nnz, err = strconv.Atoi(fields[2]); err != nil {
			return nil, fmt.Errorf("bad nonzero count in size line %q: %w", line, err)
		}
		break
	}

	M = sparse.NewDOK(nr, nc)
	count := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || strings.HasPrefix(line, "%") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("bad entry line: %q", line)
		}
		var (
			i, j int
			v    float64
		)
		if i, err = strconv.Atoi(fields[0]); err != nil {
			return nil, fmt.Errorf("bad row index in %q: %w", line, err)
		}
		if j, err = strconv.Atoi(fields[1]); err != nil {
			return nil, fmt.Errorf("bad column index in %q: %w", line, err)
		}
		if v, err = strconv.ParseFloat(fields[2], 64); err != nil {
			return nil, fmt.Errorf("bad value in %q: %w", line, err)
		}
		if i < 1 || i > nr || j < 1 || j > nc {
			return nil, fmt.Errorf("entry (%d,%d) outside %dx%d matrix", i, j, nr, nc)
		}
		// Convert from 1-based coordinates, accumulating duplicates.
		M.Set(i-1, j-1, M.At(i-1, j-1)+v)
		count++
	}
	if err = scanner.Err(); err != nil {
		return nil, err
	}
	if count != nnz {
		return nil, fmt.Errorf("size line declared %d entries, read %d", nnz, count)
	}
	return M, nil
}

// ReadMtxFile reads a MatrixMarket file from disk.
func ReadMtxFile(filename string) (M *sparse.DOK, err error) {
	var (
		file *os.File
	)
	if file, err = os.Open(filename); err != nil {
		return nil, fmt.Errorf("unable to open file %s: %w", filename, err)
	}
	defer file.Close()
	return ReadMtx(file)
}
