// Package matrix_test contains unit tests for the argument validators.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvlmat/matrix"
)

func TestValidateNotNil(t *testing.T) {
	t.Parallel()

	if err := matrix.ValidateNotNil(MustDense(t, 1, 1)); err != nil {
		t.Fatalf("non-nil matrix must pass, got: %v", err)
	}
	AssertErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
}

func TestValidateShape(t *testing.T) {
	t.Parallel()

	if err := matrix.ValidateShape(2, 3); err != nil {
		t.Fatalf("2x3 must pass, got: %v", err)
	}
	if err := matrix.ValidateShape(0, 0); err != nil {
		t.Fatalf("0x0 is a legal shape, got: %v", err)
	}
	AssertErrorIs(t, matrix.ValidateShape(-1, 3), matrix.ErrInvalidDimensions)
	AssertErrorIs(t, matrix.ValidateShape(3, -1), matrix.ErrInvalidDimensions)
}

func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	A := MustDense(t, 2, 3)
	if err := matrix.ValidateSameShape(A, MustDense(t, 2, 3)); err != nil {
		t.Fatalf("matching shapes must pass, got: %v", err)
	}
	AssertErrorIs(t, matrix.ValidateSameShape(A, MustDense(t, 3, 3)), matrix.ErrDimensionMismatch)
	AssertErrorIs(t, matrix.ValidateSameShape(A, MustDense(t, 2, 4)), matrix.ErrDimensionMismatch)
}

func TestValidateBinarySameShape(t *testing.T) {
	t.Parallel()

	A := MustDense(t, 2, 2)
	if err := matrix.ValidateBinarySameShape(A, MustDense(t, 2, 2)); err != nil {
		t.Fatalf("matching pair must pass, got: %v", err)
	}
	AssertErrorIs(t, matrix.ValidateBinarySameShape(nil, A), matrix.ErrNilMatrix)
	AssertErrorIs(t, matrix.ValidateBinarySameShape(A, nil), matrix.ErrNilMatrix)
	AssertErrorIs(t, matrix.ValidateBinarySameShape(A, MustDense(t, 2, 3)), matrix.ErrDimensionMismatch)
}

func TestValidateSquare(t *testing.T) {
	t.Parallel()

	if err := matrix.ValidateSquare(MustDense(t, 3, 3)); err != nil {
		t.Fatalf("square must pass, got: %v", err)
	}
	AssertErrorIs(t, matrix.ValidateSquare(MustDense(t, 2, 3)), matrix.ErrNonSquare)
}

func TestValidateSquareNonNil(t *testing.T) {
	t.Parallel()

	if err := matrix.ValidateSquareNonNil(MustDense(t, 3, 3)); err != nil {
		t.Fatalf("square must pass, got: %v", err)
	}
	AssertErrorIs(t, matrix.ValidateSquareNonNil(nil), matrix.ErrNilMatrix)
	AssertErrorIs(t, matrix.ValidateSquareNonNil(MustDense(t, 2, 3)), matrix.ErrNonSquare)
}

func TestValidateMulCompatible(t *testing.T) {
	t.Parallel()

	if err := matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 3, 4)); err != nil {
		t.Fatalf("(2x3)·(3x4) must pass, got: %v", err)
	}
	AssertErrorIs(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 2, 3)), matrix.ErrDimensionMismatch)
	AssertErrorIs(t, matrix.ValidateMulCompatible(nil, MustDense(t, 3, 4)), matrix.ErrNilMatrix)
}

func TestValidateNonEmpty(t *testing.T) {
	t.Parallel()

	if err := matrix.ValidateNonEmpty(MustDense(t, 1, 1)); err != nil {
		t.Fatalf("1x1 must pass, got: %v", err)
	}
	AssertErrorIs(t, matrix.ValidateNonEmpty(MustDense(t, 0, 5)), matrix.ErrEmptyMatrix)
	AssertErrorIs(t, matrix.ValidateNonEmpty(MustDense(t, 5, 0)), matrix.ErrEmptyMatrix)
	AssertErrorIs(t, matrix.ValidateNonEmpty(nil), matrix.ErrNilMatrix)
}
