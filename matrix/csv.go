// SPDX-License-Identifier: MIT

// Package matrix: CSV ingestion and emission.
// The accepted input format is one matrix row per non-blank line, numeric
// tokens separated by commas and/or whitespace, no header, no declared
// dimensions: the shape is inferred from the token and line counts. Blank
// (all-whitespace) lines never count as rows. Emission writes plain
// comma-separated lines that ingest back losslessly.
package matrix

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"
)

// Operation tags for error wrapping in this file.
const (
	opReadCSV  = "ReadCSV"
	opWriteCSV = "WriteCSV"
)

// maxCSVLine bounds a single input line (tokens included); lines of wide
// matrices easily exceed bufio.Scanner's 64 KiB default.
const maxCSVLine = 4 * 1024 * 1024

// csvSeparator reports whether r separates numeric tokens: a comma or any
// Unicode whitespace. Consecutive separators collapse (no empty tokens).
func csvSeparator(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}

// ReadCSV parses matrix content from r and returns a fresh Dense.
//
// Shape inference requires rectangular input: every non-blank line must
// carry the same number of tokens as the first one; a differing count fails
// with ErrRaggedRows naming the offending line instead of silently
// redistributing values into a truncated shape. An input with no non-blank
// lines yields the empty 0×0 matrix.
//
// Errors:
//   - ErrRaggedRows on inconsistent row widths (line number attached).
//   - strconv parse errors, wrapped with line and token position.
//   - read errors from r, wrapped as-is.
//
// Complexity: Time O(total tokens), Space O(rows*cols).
//
// AI-Hints:
//   - Whitespace-aligned exports (fixed-width dumps) parse without
//     preprocessing; commas are optional.
//   - Screen ingested systems with DiagonallyDominant before Inverse.
func ReadCSV(r io.Reader) (*Dense, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxCSVLine)

	var (
		vals   []float64 // row-major accumulation
		rows   int       // non-blank lines seen
		cols   = -1      // fixed by the first non-blank line
		lineNo int       // 1-based physical line counter (blank lines included)
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue // blank lines contribute nothing, not even a row
		}

		tokens := strings.FieldsFunc(line, csvSeparator)
		if cols == -1 {
			cols = len(tokens)
		} else if len(tokens) != cols {
			return nil, matrixErrorf(opReadCSV, fmt.Errorf(
				"line %d has %d values, want %d: %w", lineNo, len(tokens), cols, ErrRaggedRows))
		}

		for ti, tok := range tokens {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, matrixErrorf(opReadCSV, fmt.Errorf(
					"line %d, value %d: %w", lineNo, ti+1, err))
			}
			vals = append(vals, v)
		}
		rows++
	}
	if err := sc.Err(); err != nil {
		return nil, matrixErrorf(opReadCSV, err)
	}

	if rows == 0 {
		return NewDense(0, 0) // nothing but blank lines: empty matrix
	}

	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opReadCSV, err)
	}
	copy(out.data, vals)

	return out, nil
}

// ReadCSVFile opens path and parses it via ReadCSV. The open error wraps the
// underlying os error, so errors.Is(err, fs.ErrNotExist) keeps working.
func ReadCSVFile(path string) (*Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", opReadCSV, path, err)
	}
	defer f.Close()

	m, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("file %q: %w", path, err)
	}

	return m, nil
}

// WriteCSV emits m to w as one comma-separated line per row. Values use the
// shortest representation that parses back to the identical float64, so a
// ReadCSV round-trip reproduces the matrix exactly. An empty matrix emits
// nothing.
//
// Errors: ErrNilMatrix; write errors from w are propagated.
// Complexity: Time O(r*c).
// AI-Hints: 'g'/-1 formatting keeps integers integral ("4", not "4.000000").
func WriteCSV(m Matrix, w io.Writer) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opWriteCSV, err)
	}

	bw := bufio.NewWriter(w)
	rows, cols := m.Rows(), m.Cols()
	dm, fast := m.(*Dense)

	var i, j int // loop iterators
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if fast {
				v = dm.data[i*cols+j]
			} else if v, err = m.At(i, j); err != nil {
				return matrixErrorf(opWriteCSV, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if j > 0 {
				if err = bw.WriteByte(','); err != nil {
					return err
				}
			}
			if _, err = bw.WriteString(strconv.FormatFloat(v, 'g', -1, 64)); err != nil {
				return err
			}
		}
		if err = bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteCSVFile creates (or truncates) path and emits m via WriteCSV.
// The close error is reported when the write itself succeeded.
func WriteCSVFile(m Matrix, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%s %q: %w", opWriteCSV, path, err)
	}

	werr := WriteCSV(m, f)
	cerr := f.Close()
	if werr != nil {
		return fmt.Errorf("file %q: %w", path, werr)
	}
	if cerr != nil {
		return fmt.Errorf("%s %q: %w", opWriteCSV, path, cerr)
	}

	return nil
}
