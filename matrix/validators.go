// SPDX-License-Identifier: MIT

// Package matrix: centralized argument validation.
// Every kernel funnels its precondition checks through the validators below so
// that the same condition always maps to the same sentinel and the same
// message shape. Validators return wrapped sentinels; they never panic.
package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	// Provides consistent error tagging for all validation errors.
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Inputs: Matrix interface value.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
// AI-Hints: Use as the first step in composite validations.
func ValidateNotNil(m Matrix) error {
	// If the matrix is nil, fail with the unified sentinel.
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix) // single source of truth for "nil argument"
	}

	// Otherwise accept.
	return nil
}

// ValidateShape ensures requested dimensions are non-negative.
// Zero dimensions are legal and describe the empty matrix.
//
// Returns ErrInvalidDimensions when rows < 0 or cols < 0.
// Complexity: O(1).
func ValidateShape(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return validatorErrorf(fmt.Sprintf("ValidateShape(%d,%d)", rows, cols), ErrInvalidDimensions)
	}

	return nil
}

// ValidateSameShape ensures both operands share the exact same shape.
//
// Returns ErrDimensionMismatch on the first differing dimension.
// Complexity: O(1).
// AI-Hints: Use for Add/Sub kernels and shape-compatibility guards.
func ValidateSameShape(a, b Matrix) error {
	// Execute comparisons.
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape composes nil checks and shape equality for
// two-operand elementwise kernels (Add/Sub).
//
// Complexity: O(1).
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateSquare ensures rows == cols.
//
// Returns ErrNonSquare otherwise.
// Complexity: O(1).
// AI-Hints: Use before inversion or dominance screening.
func ValidateSquare(m Matrix) error {
	// Check the square condition explicitly.
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSquareNonNil composes ValidateNotNil and ValidateSquare, the
// standard precondition of Inverse and DiagonallyDominant.
//
// Complexity: O(1).
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// ValidateMulCompatible ensures inner dimensions agree: a.Cols == b.Rows.
//
// Returns ErrDimensionMismatch otherwise.
// Complexity: O(1).
// AI-Hints: Use for general matrix multiplication compatibility.
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateNonEmpty rejects degenerate shapes (0 rows or 0 cols), the
// precondition of flat-buffer marshaling and rendering backends.
//
// Returns ErrEmptyMatrix on a degenerate shape.
// Complexity: O(1).
// AI-Hints: Use before flat-buffer export or any rendering backend.
func ValidateNonEmpty(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateNonEmpty", err)
	}
	if m.Rows() == 0 || m.Cols() == 0 {
		return validatorErrorf("ValidateNonEmpty", ErrEmptyMatrix)
	}

	return nil
}
