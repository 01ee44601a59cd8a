// SPDX-License-Identifier: MIT

// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.
package matrix

import (
	"math"
)

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
// Complexity: O(r*c) zero-init by the runtime.
func NewZeros(rows, cols int) (*Dense, error) {
	// Delegate directly to the strict constructor (single allocation).
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n²) zeroing (constructor) + O(n) diagonal writes.
//
// AI-Hints: Use as the neutral element when seeding Inverse companions or
// verifying A·A⁻¹ against I.
func NewIdentity(n int) (*Dense, error) {
	// Allocate an n×n zero matrix via the constructor.
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	// Set the diagonal deterministically in a single loop.
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Handy to preallocate staging buffers.
// Complexity: O(r*c).
//
// AI-Hints: Useful for staging buffers before CopyFrom or FromFlat.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	// Read shape once and call NewDense with the same dimensions.
	return NewDense(m.Rows(), m.Cols())
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
// Complexity: O(n²). Validates square via the central validator.
//
// AI-Hints: Handy to verify inverses: compare Product(m, inv) against
// IdentityLike(m) with AllClose.
func IdentityLike(m Matrix) (*Dense, error) {
	// Ensure the input is square using the centralized validator.
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err) // wrap with call-site tag
	}

	// Construct the identity of matching dimension.
	return NewIdentity(m.Rows())
}

// ---------- Linear Algebra (facades map 1:1 to kernels) ----------

// Sum is an alias for Add: element-wise a + b. Complexity: O(r*c).
//
// AI-Hints: Prefer passing *Dense operands for the single flat-loop fast path.
func Sum(a, b Matrix, opts ...Option) (Matrix, error) { return Add(a, b, opts...) }

// Diff is an alias for Sub: element-wise a − b. Complexity: O(r*c).
func Diff(a, b Matrix, opts ...Option) (Matrix, error) { return Sub(a, b, opts...) }

// Product is an alias for Mul: matrix product a × b. Complexity: O(r*n*c).
//
// AI-Hints: Prefer Dense operands to unlock the cache-friendly fast path.
func Product(a, b Matrix, opts ...Option) (Matrix, error) { return Mul(a, b, opts...) }

// T is an alias for Transpose: returns mᵀ. Complexity: O(r*c).
//
// AI-Hints: Good for small helpers and chaining.
func T(m Matrix, opts ...Option) (Matrix, error) { return Transpose(m, opts...) }

// ---------- Numeric compare ----------

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN never compares close to anything; ±Inf compares close only to the same
// signed infinity. Negative tolerances are normalized to their magnitudes.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(1). Deterministic.
//
// AI-Hints:
//   - rtol scales with |b|, so pass the reference matrix second.
//   - For integer-valued data compared after exact kernels, rtol=0 atol=0
//     asserts bit equality.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	rows, cols := a.Rows(), a.Cols()
	var av, bv float64
	var err error

	// Fast path: flat walk over both backing slices.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := 0; idx < rows*cols; idx++ {
				if !closeAt(da.data[idx], db.data[idx], rtol, atol) {
					return false, nil
				}
			}

			return true, nil
		}
	}

	// Fallback: bounds-checked walk in fixed i→j order.
	var i, j int // loop iterators
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf("AllClose", err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf("AllClose", err)
			}
			if !closeAt(av, bv, rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// closeAt applies the scalar closeness relation behind AllClose.
// Complexity: O(1).
func closeAt(av, bv, rtol, atol float64) bool {
	if math.IsNaN(av) || math.IsNaN(bv) {
		return false // NaN poisons comparison
	}
	if math.IsInf(av, 0) || math.IsInf(bv, 0) {
		return av == bv // same-signed infinities only
	}

	return math.Abs(av-bv) <= atol+rtol*math.Abs(bv)
}
