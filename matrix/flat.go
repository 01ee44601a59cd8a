// SPDX-License-Identifier: MIT

// Package matrix: flat-buffer marshaling.
// FlatBuffer (types.go) carries matrix contents across API boundaries that
// cannot consume the Matrix interface. Both directions copy in full; neither
// side ever aliases the other's storage, and degenerate shapes are rejected
// because a buffer with zero extent cannot round-trip a shape faithfully.
package matrix

import "fmt"

// Operation tags for error wrapping in this file.
const (
	opToFlat   = "ToFlat"
	opFromFlat = "FromFlat"
)

// ToFlat snapshots m into a freshly allocated FlatBuffer in row-major order.
//
// Implementation:
//   - Stage 1: reject nil and degenerate shapes (0 rows or 0 cols).
//   - Stage 2: copy all elements; *Dense sources copy the backing slice,
//     other implementations walk At in fixed i→j order.
//   - Stage 3: verify the copied count equals Rows*Cols. The check can only
//     trip when a shape invariant was already broken upstream; it exists to
//     turn silent corruption into a loud ErrCountMismatch.
//
// Errors: ErrNilMatrix, ErrEmptyMatrix, ErrCountMismatch.
// Complexity: Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - The snapshot is yours: hand buf.Data to cgo, gonum or wire encoders
//     without defensive copies.
//   - Round-trip through FromFlat to clone across process boundaries.
func ToFlat(m Matrix) (*FlatBuffer, error) {
	if err := ValidateNonEmpty(m); err != nil {
		return nil, matrixErrorf(opToFlat, err)
	}

	rows, cols := m.Rows(), m.Cols()
	buf := &FlatBuffer{
		Rows: rows,
		Cols: cols,
		Len:  rows * cols,
		Data: make([]float64, rows*cols),
	}

	var copied int
	if dm, ok := m.(*Dense); ok {
		copied = copy(buf.Data, dm.data) // min(len) surfaces broken invariants below
	} else {
		var i, j int // loop iterators
		var v float64
		var err error
		for i = 0; i < rows; i++ {
			for j = 0; j < cols; j++ {
				v, err = m.At(i, j)
				if err != nil {
					return nil, matrixErrorf(opToFlat, fmt.Errorf("At(%d,%d): %w", i, j, err))
				}
				buf.Data[i*cols+j] = v
				copied++
			}
		}
	}

	if copied != buf.Len {
		return nil, matrixErrorf(opToFlat, fmt.Errorf(
			"copied %d of %d values: %w", copied, buf.Len, ErrCountMismatch))
	}

	return buf, nil
}

// FromFlat rebuilds a Dense from a FlatBuffer, copying values back out in
// row-major order. The buffer keeps its own storage; mutating the result
// afterwards never touches buf.Data.
//
// Errors:
//   - ErrNilMatrix on a nil buffer.
//   - ErrEmptyMatrix when buf.Rows or buf.Cols is zero.
//   - ErrInvalidDimensions on negative extents.
//   - ErrCountMismatch when Len or len(Data) disagrees with Rows*Cols.
//
// Complexity: Time O(r*c), Space O(r*c).
func FromFlat(buf *FlatBuffer) (*Dense, error) {
	if buf == nil {
		return nil, matrixErrorf(opFromFlat, fmt.Errorf("nil buffer: %w", ErrNilMatrix))
	}
	if buf.Rows == 0 || buf.Cols == 0 {
		return nil, matrixErrorf(opFromFlat, ErrEmptyMatrix)
	}

	out, err := NewDense(buf.Rows, buf.Cols)
	if err != nil {
		return nil, matrixErrorf(opFromFlat, err)
	}
	want := buf.Rows * buf.Cols
	if buf.Len != want || len(buf.Data) != want {
		return nil, matrixErrorf(opFromFlat, fmt.Errorf(
			"buffer declares %d values, carries %d, shape wants %d: %w",
			buf.Len, len(buf.Data), want, ErrCountMismatch))
	}

	copy(out.data, buf.Data)

	return out, nil
}
