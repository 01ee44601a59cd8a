// SPDX-License-Identifier: MIT

// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All algorithms MUST return these sentinels and tests MUST check them
// via errors.Is. No algorithm should panic on user-triggered error conditions.
// Panics are reserved for programmer errors in option constructors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.
// I/O failures from CSV ingestion are NOT given sentinels here: they wrap the
// underlying os/io error so errors.Is(err, fs.ErrNotExist) keeps working.

var (
	// ErrInvalidDimensions is returned when a requested shape is invalid
	// (negative rows or cols). Constructors and Resize validate before
	// any allocation happens.
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned when a pivot or diagonal entry falls below the
	// configured epsilon during inversion. The scheme performs NO pivoting
	// (intentional for determinism and simplicity), so a near-zero entry on
	// the natural diagonal is fatal; the wrapping message carries the
	// offending value and position.
	ErrSingular = errors.New("matrix: singular or near-singular matrix")

	// ErrEmptyMatrix signals a degenerate shape (0 rows or 0 cols) where a
	// populated matrix is required, e.g., flat-buffer marshaling.
	ErrEmptyMatrix = errors.New("matrix: empty matrix")

	// ErrCountMismatch signals an internal consistency failure: the number of
	// elements copied during marshaling disagrees with rows*cols. Reaching it
	// means a shape invariant was already broken upstream.
	ErrCountMismatch = errors.New("matrix: element count mismatch")

	// ErrRaggedRows is returned by CSV ingestion when non-blank lines carry
	// differing token counts. Shape inference requires rectangular input;
	// ragged input fails instead of being silently reshaped.
	ErrRaggedRows = errors.New("matrix: ragged rows in input")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
