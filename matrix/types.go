// SPDX-License-Identifier: MIT

// Package matrix: domain-facing types shared across the package.
// This file intentionally contains ONLY the public Matrix abstraction and
// small value types. Errors and options live in dedicated files (errors.go,
// options.go) per the global conventions.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// Kernels accept any implementation; passing *Dense unlocks flat-slice
// fast paths, while other implementations go through the bounds-checked
// At/Set fallback.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}

// FlatBuffer is a contiguous, row-major snapshot of a matrix used for
// passing contents across API boundaries that cannot consume Matrix
// directly (foreign numeric libraries, message payloads). It owns its
// Data slice independently of any Dense; conversion in either direction
// performs a full copy. Empty shapes (0 rows or 0 cols) are rejected by
// both conversion directions.
//
// Invariant: Len == Rows*Cols == len(Data).
type FlatBuffer struct {
	Rows int       // row count of the source matrix
	Cols int       // column count of the source matrix
	Len  int       // total element count, Rows*Cols
	Data []float64 // row-major flattened values, length Len
}
