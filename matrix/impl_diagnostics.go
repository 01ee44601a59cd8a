// SPDX-License-Identifier: MIT

// Package matrix: observational diagnostics — diagonal-dominance testing and
// tabular rendering. Nothing in this file mutates a matrix.
package matrix

import (
	"fmt"
	"io"
	"math"
	"os"
)

// opPrint tags rendering errors (no magic strings at wrap sites).
const opPrint = "Fprint"

// DiagonallyDominant reports whether every row of a square matrix has a
// diagonal entry whose magnitude is at least the sum of magnitudes of the
// remaining entries in that row:
//
//	|m[i,i]| ≥ Σ_j |m[i,j]| − |m[i,i]|   for every row i.
//
// Diagonally dominant inputs are exactly the ones guaranteed safe for the
// no-pivoting Inverse: no pivot can collapse below a reasonable epsilon.
// The scan short-circuits on the first failing row.
//
// Inputs: m square (any Matrix implementation).
// Returns: (true, nil) iff every row passes; (false, nil) otherwise.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: Time O(n²), Space O(1).
//
// AI-Hints:
//   - A false result is advisory, not fatal: plenty of non-dominant systems
//     invert fine; only near-zero pivots abort Inverse.
//   - Screen untrusted input here (O(n²)) before spending O(n³) in Inverse.
func DiagonallyDominant(m Matrix) (bool, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return false, matrixErrorf(opDominant, err)
	}

	n := m.Rows()
	var i, j int // loop iterators
	var sum, diag float64

	// Fast path: flat row scans over the backing slice.
	if dm, ok := m.(*Dense); ok {
		var off int
		for i = 0; i < n; i++ {
			off = i * n
			sum = ZeroSum
			for j = 0; j < n; j++ {
				sum += math.Abs(dm.data[off+j])
			}
			diag = math.Abs(dm.data[off+i])
			if diag < sum-diag {
				return false, nil // first failing row decides
			}
		}

		return true, nil
	}

	// Fallback: bounds-checked walk.
	var v float64
	var err error
	for i = 0; i < n; i++ {
		sum = ZeroSum
		for j = 0; j < n; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return false, matrixErrorf(opDominant, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			sum += math.Abs(v)
		}
		v, err = m.At(i, i)
		if err != nil {
			return false, matrixErrorf(opDominant, fmt.Errorf("At(%d,%d): %w", i, i, err))
		}
		diag = math.Abs(v)
		if diag < sum-diag {
			return false, nil
		}
	}

	return true, nil
}

// Fprint renders m to w as a human-readable table: a dimension header, a
// column-index row, then one line per row prefixed with its row index and
// every value tab-separated. A trailing blank line closes the block.
//
//	Matrix [2][2]:
//		[ ,0]	[ ,1]
//	[0, ]	4 	3
//	[1, ]	6 	3
//
// The output is observational only and not meant to be parsed back; use
// WriteCSV for machine-readable emission.
//
// Errors: ErrNilMatrix; write errors from w are propagated as-is.
// Complexity: Time O(r*c).
// AI-Hints: The layout is stable across releases; golden tests may pin it.
func Fprint(w io.Writer, m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opPrint, err)
	}

	rows, cols := m.Rows(), m.Cols()
	if _, err := fmt.Fprintf(w, "Matrix [%d][%d]:\n", rows, cols); err != nil {
		return err
	}

	// Column-index header.
	if _, err := fmt.Fprint(w, "\t"); err != nil {
		return err
	}
	var i, j int // loop iterators
	for j = 0; j < cols; j++ {
		if _, err := fmt.Fprintf(w, "[ ,%d]\t", j); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	// Row-indexed values.
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		if _, err = fmt.Fprintf(w, "[%d, ]\t", i); err != nil {
			return err
		}
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return matrixErrorf(opPrint, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if _, err = fmt.Fprintf(w, "%g \t", v); err != nil {
				return err
			}
		}
		if _, err = fmt.Fprintln(w); err != nil {
			return err
		}
	}

	// Trailing blank line closes the block.
	_, err = fmt.Fprintln(w)

	return err
}

// Print renders m to stdout; see Fprint.
func Print(m Matrix) error {
	return Fprint(os.Stdout, m)
}
