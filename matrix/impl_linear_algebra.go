// SPDX-License-Identifier: MIT

// Package matrix: canonical linear-algebra kernels over the Matrix interface.
// Conventions enforced in this file:
//   - All kernels use central validators and return sentinels wrapped via
//     matrixErrorf at the operation boundary.
//   - Operands are read-only; every kernel allocates a fresh Dense result.
//   - Each kernel has a *Dense fast path (flat-slice loops, optionally
//     parallel over write-disjoint ranges) and a bounds-checked At/Set
//     fallback with fixed loop order.
//   - Parallel and sequential execution produce bit-identical results: chunk
//     boundaries never change per-element operation order.
package matrix

import "fmt"

// ZeroSum is the neutral accumulator start for dot products and row sums.
const ZeroSum = 0.0

// Operation tags used by matrixErrorf (no magic strings in wrap sites).
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opScale     = "Scale"
	opTranspose = "Transpose"
	opInverse   = "Inverse"
	opDominant  = "DiagonallyDominant"
)

// matrixErrorf wraps err with an operation tag, preserving the original error
// via %w. The wrapper keeps a stable "Op: underlying" shape for uniform
// reporting across the package. Call only with err != nil.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are
// not mutated. Internal helper for Add/Sub to share validation, allocation,
// and the fast-path/fallback split.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense — flat loop over row-major cells,
//     chunked across workers (cells are write-disjoint, so no synchronization
//     beyond the join). Otherwise, fallback At/Set with fixed i→j order.
//
// Determinism:
//   - Per-cell arithmetic is independent; chunking cannot reorder it.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
//
// Notes:
//   - Keeping `sign` as a float avoids an extra branch inside the hot loop.
func addSub(a, b Matrix, sign float64, opTag string, opts ...Option) (Matrix, error) {
	// Validate shapes match.
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Allocate result Dense.
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	o := gatherOptions(opts...)

	// Fast path: *Dense with *Dense → flat parallel loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			length := rows * cols
			parallelFor(length, o.workers, func(start, end int) {
				for idx := start; idx < end; idx++ { // deterministic per chunk
					res.data[idx] = da.data[idx] + sign*db.data[idx]
				}
			})

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order (sequential; error
	// propagation from At/Set has no place inside forked chunks).
	var i, j int       // loop iterators (deterministic order)
	var av, bv float64 // element temporaries
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, err = a.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			bv, err = b.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(i, j, av+sign*bv); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Implementation:
//   - Stage 1: Validate both operands are non-nil and have identical shapes.
//   - Stage 2: If both are *Dense, run the flat (optionally parallel) loop;
//     otherwise fall back to the bounds-checked i→j walk.
//
// Inputs:
//   - a, b: operands of identical shape (any Matrix implementation).
//   - opts: WithWorkers to tune the fork-join pool.
//
// Returns:
//   - Matrix: a new Dense with C[i,j] = A[i,j] + B[i,j].
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c). The fast path is bandwidth-bound.
//
// AI-Hints:
//   - Keep both operands *Dense to stay on the flat loop; a single wrapped
//     operand drops the whole call to the At/Set path.
func Add(a, b Matrix, opts ...Option) (Matrix, error) { return addSub(a, b, +1, opAdd, opts...) }

// Sub computes the element-wise difference C = A − B; mirror of Add.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r*c).
func Sub(a, b Matrix, opts ...Option) (Matrix, error) { return addSub(a, b, -1, opSub, opts...) }

// Mul computes the matrix product C = A × B with full float64 accumulation.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (a.Cols == b.Rows). Allocate result.
//   - Stage 2: Fast path for *Dense×*Dense — row-major i→k→j loops with
//     zero-skip on A[i,k], parallel over output rows i (each chunk owns its
//     rows of the result; inner k order is fixed, so numerics never depend
//     on the worker count). Fallback: generic i→j→k accumulation.
//
// Inputs:
//   - a: left operand (r×n), b: right operand (n×c).
//   - opts: WithWorkers to tune the fork-join pool.
//
// Returns:
//   - Matrix: a new Dense (r×c) with C[i,j] = Σ_k A[i,k]·B[k,j].
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner dims differ).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c). Skipping zero A[i,k] avoids useless multiplies.
//
// AI-Hints:
//   - The zero-skip makes sparse-ish Dense inputs (identity blocks, masks)
//     noticeably cheaper without a sparse type.
//   - For chains, multiply the smallest inner dimensions first.
func Mul(a, b Matrix, opts ...Option) (Matrix, error) {
	// Validate inputs via canonical validator.
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Allocate result Dense.
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	o := gatherOptions(opts...)

	// Fast-path for two Dense matrices: parallel over output rows.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// da.data layout: i*aCols + k
			// db.data layout: k*bCols + j
			parallelFor(aRows, o.workers, func(rowStart, rowEnd int) {
				var i, j, k int
				var av float64
				var rowOffsetA, rowOffsetB, rowOffsetR int
				for i = rowStart; i < rowEnd; i++ {
					rowOffsetA = i * aCols
					rowOffsetR = i * bCols
					for k = 0; k < aCols; k++ {
						av = da.data[rowOffsetA+k]
						if av == 0 {
							continue // skip zero for performance
						}
						rowOffsetB = k * bCols
						for j = 0; j < bCols; j++ {
							res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
						}
					}
				}
			})

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i→j→k), sequential.
	var (
		i, j, k         int // loop iterators
		av, bv, current float64
	)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av == 0 {
					continue // skip zero for performance
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv // accumulate product in full precision
			}
			if err = res.Set(i, j, current); err != nil {
				return nil, matrixErrorf(opMul, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ):
// out(j,i) = in(i,j). Input is validated non-nil and never mutated.
// Fast path walks *Dense data via flat indexing, parallel over source rows
// (chunk over rows i writes column i of the result; columns are disjoint
// across chunks). Fallback uses At/Set in fixed i→j order.
//
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
//
// AI-Hints: Transpose twice to round-trip; the result is always a fresh
// Dense, never a view, so mutating it leaves the source intact.
func Transpose(m Matrix, opts ...Option) (Matrix, error) {
	// Validate input non-nil.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Allocate result Dense with flipped dimensions.
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	o := gatherOptions(opts...)

	// Fast-path for Dense → Dense.
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		parallelFor(rows, o.workers, func(rowStart, rowEnd int) {
			var i, j, baseSrc int
			for i = rowStart; i < rowEnd; i++ {
				baseSrc = i * cols
				for j = 0; j < cols; j++ {
					res.data[j*rows+i] = dm.data[baseSrc+j]
				}
			}
		})

		return res, nil
	}

	// Fallback: generic interface loop.
	var i, j int // loop iterators
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(j, i, v); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("Set(%d,%d): %w", j, i, err))
			}
		}
	}

	return res, nil
}

// Scale returns a new matrix with every element multiplied by alpha.
// Same fast-path/fallback split as addSub; alpha is applied cell-wise.
//
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64, opts ...Option) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	o := gatherOptions(opts...)

	// Fast path: flat parallel loop over the backing slice.
	if dm, ok := m.(*Dense); ok {
		length := rows * cols
		parallelFor(length, o.workers, func(start, end int) {
			for idx := start; idx < end; idx++ {
				res.data[idx] = alpha * dm.data[idx]
			}
		})

		return res, nil
	}

	// Fallback: bounds-checked walk.
	var i, j int // loop iterators
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opScale, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(i, j, alpha*v); err != nil {
				return nil, matrixErrorf(opScale, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}
