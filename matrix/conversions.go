// Package matrix provides converters between Dense and external numeric
// representations. The FlatBuffer path (flat.go) is the canonical boundary
// format; the functions here bridge it to gonum's mat.Dense so callers can
// hand matrices to decompositions, solvers and statistics living outside
// this package.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Operation tags for error wrapping in this file.
const (
	opToGonum   = "ToGonum"
	opFromGonum = "FromGonum"
)

// ToGonum exports m as a gonum *mat.Dense. The export rides the flat-buffer
// path, so it copies in full and inherits its failure semantics: empty
// shapes (0 rows or 0 cols) are rejected, matching gonum's own refusal to
// build zero-extent matrices.
//
// Errors: ErrNilMatrix, ErrEmptyMatrix, ErrCountMismatch.
// Complexity: Time O(r*c), Space O(r*c).
//
// AI-Hints: Use when you need what this package deliberately omits (LU, QR,
// SVD, eigendecompositions); invert here, decompose there.
func ToGonum(m Matrix) (*mat.Dense, error) {
	buf, err := ToFlat(m)
	if err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}

	// The buffer is freshly owned, so gonum may take it without copying.
	return mat.NewDense(buf.Rows, buf.Cols, buf.Data), nil
}

// FromGonum imports a gonum *mat.Dense as a fresh Dense. Values are read
// through gonum's stride-aware accessor, so views and submatrices import
// correctly; the result never aliases gonum's storage.
//
// Errors: ErrNilMatrix on nil input, ErrEmptyMatrix on zero-extent input.
// Complexity: Time O(r*c), Space O(r*c).
//
// AI-Hints: Safe on d.Slice views; the stride-aware walk flattens them into
// contiguous storage.
func FromGonum(d *mat.Dense) (*Dense, error) {
	if d == nil {
		return nil, matrixErrorf(opFromGonum, fmt.Errorf("nil gonum matrix: %w", ErrNilMatrix))
	}
	rows, cols := d.Dims()
	if rows == 0 || cols == 0 {
		return nil, matrixErrorf(opFromGonum, ErrEmptyMatrix)
	}

	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}
	var i, j int // loop iterators
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			out.data[i*cols+j] = d.At(i, j)
		}
	}

	return out, nil
}
