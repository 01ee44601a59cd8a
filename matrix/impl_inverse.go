// SPDX-License-Identifier: MIT

// Package matrix: Gauss-Jordan inversion over an augmented identity.
// The kernel reduces a working copy of the input to the identity while
// mirroring every row operation onto an identity-initialized companion; the
// companion then holds the inverse. Three phases with fork-join barriers:
//
//	forward elimination  — clears below the diagonal, pivot by pivot;
//	normalization        — scales each row so the diagonal becomes 1;
//	backward elimination — clears above the diagonal, bottom-up.
//
// NO pivoting is ever performed: a pivot or diagonal entry with magnitude
// below the configured epsilon aborts with ErrSingular instead of reordering
// rows. Callers depend on exactly which inputs fail, so row permutation must
// not be introduced here.
package matrix

import (
	"fmt"
	"math"
)

// Inverse computes m⁻¹ for a square matrix via Gauss-Jordan elimination
// with an augmented identity and returns it as a fresh Dense.
//
// Implementation:
//   - Stage 1 (Validate): m non-nil and square; gather options (epsilon,
//     workers). n == 0 returns the empty matrix.
//   - Stage 2 (Prepare): materialize a flat working copy `work` of m and an
//     identity-initialized companion `inv`, both n×n.
//   - Stage 3 (Forward): for each pivot k = 0..n-2, fail fast when
//     |work[k,k]| < eps; otherwise every row i > k subtracts
//     coef·row(k) with coef = work[i,k]/work[k,k] — from work over
//     columns k..n-1 and from inv over the full width. Rows below the
//     pivot are write-disjoint, so they fork across workers; the join
//     is the barrier before pivot k+1.
//   - Stage 4 (Normalize): recheck every diagonal against eps in ascending
//     order (elimination can collapse a later diagonal even though every
//     used pivot passed), then divide row i of work (columns i..n-1;
//     entries left of the diagonal are already zero) and of inv (full
//     width) by work[i,i]. Rows fork freely; the join is the barrier
//     before Stage 5.
//   - Stage 5 (Backward): for i = n-2 down to 0 (strictly decreasing), each
//     result column m accumulates inv[i,m] -= work[i,j]·inv[j,m] for
//     j = n-1 down to i+1, then the work row clears its upper entries
//     via the elimination formula work[i,j] -= work[j,j]·work[i,j]
//     (work[j,j] is exactly 1 after normalization, so the entry lands
//     on exact zero). Columns are write-disjoint and fork; the join is
//     the barrier before the next (lower) i. The work-row update runs
//     after the join because every column reads work[i,j] while
//     accumulating.
//   - Stage 6 (Finalize): return inv; the working copy is discarded.
//
// Behavior highlights:
//   - No pivoting, no row swaps: near-zero pivots are an error by contract.
//   - Worker count never changes numerics: columns and rows are partitioned,
//     never reordered, and each element's operation sequence matches the
//     sequential reference bit for bit.
//
// Inputs:
//   - m: square matrix (any Matrix implementation; *Dense avoids the
//     bounds-checked materialization walk).
//   - opts: WithEpsilon to tune pivot sensitivity, WithWorkers for the pool.
//
// Returns:
//   - Matrix: a fresh Dense holding m⁻¹.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (preconditions).
//   - ErrSingular, wrapped with the offending value and (row,col) position,
//     from the forward pivot check or the normalization recheck.
//
// Determinism:
//   - Fixed phase order, fixed pivot order, fixed per-element arithmetic
//     order; the first unsafe pivot in scan order is always the one reported.
//
// Complexity:
//   - Time O(n³), Space O(n²) for work and inv.
//
// AI-Hints:
//   - Diagonally dominant inputs (see DiagonallyDominant) never trip the
//     pivot checks; permute rows upstream if your data needs it.
func Inverse(m Matrix, opts ...Option) (Matrix, error) {
	// Stage 1: validate preconditions and resolve options.
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	o := gatherOptions(opts...)

	n := m.Rows()
	inv, err := NewIdentity(n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if n == 0 {
		return inv, nil // empty in, empty out
	}

	// Stage 2: flat working copy of the input.
	work := make([]float64, n*n)
	if dm, ok := m.(*Dense); ok {
		copy(work, dm.data)
	} else {
		var i, j int // loop iterators
		var v float64
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				v, err = m.At(i, j)
				if err != nil {
					return nil, matrixErrorf(opInverse, fmt.Errorf("At(%d,%d): %w", i, j, err))
				}
				work[i*n+j] = v
			}
		}
	}

	if err = forwardEliminate(work, inv.data, n, o); err != nil {
		return nil, err
	}
	if err = normalizeRows(work, inv.data, n, o); err != nil {
		return nil, err
	}
	backwardEliminate(work, inv.data, n, o)

	// Stage 6: inv now holds the inverse; work is discarded.
	return inv, nil
}

// forwardEliminate clears everything below the diagonal of work, mirroring
// row operations onto inv. Pivots advance strictly in order; rows below the
// current pivot are eliminated in parallel, and the fork-join acts as the
// barrier each next pivot requires (it reads rows updated under the
// previous one).
//
// Fails with ErrSingular (value and position attached) when a pivot falls
// below o.eps. No pivoting: the natural diagonal is the only pivot source.
// Complexity: O(n³) total.
func forwardEliminate(work, inv []float64, n int, o Options) error {
	var k int
	var pivot float64
	for k = 0; k < n-1; k++ {
		pivot = work[k*n+k]
		if math.Abs(pivot) < o.eps {
			return matrixErrorf(opInverse, fmt.Errorf(
				"forward elimination: pivot %g at (%d,%d) below eps %g: %w",
				pivot, k, k, o.eps, ErrSingular))
		}

		// Rows k+1..n-1 each read row k and write only themselves.
		below := n - (k + 1)
		base := k + 1
		kOff := k * n
		parallelFor(below, o.workers, func(start, end int) {
			var i, j, iOff int
			var coef float64
			for i = base + start; i < base+end; i++ {
				iOff = i * n
				coef = work[iOff+k] / pivot
				for j = k; j < n; j++ { // trailing submatrix plus the cleared entry
					work[iOff+j] -= work[kOff+j] * coef
				}
				for j = 0; j < n; j++ { // companion mirrors across its full width
					inv[iOff+j] -= inv[kOff+j] * coef
				}
			}
		}) // join: barrier before the next pivot
	}

	return nil
}

// normalizeRows scales every row of work and inv so the work diagonal
// becomes exactly 1. The diagonal recheck runs first, sequentially and in
// ascending order, so the reported failure index never depends on worker
// scheduling; elimination may have collapsed a diagonal entry that was
// never used as a pivot, which is why the forward checks alone are not
// enough. The division sweep then forks across rows; the join is the
// barrier backward elimination requires.
// Complexity: O(n²) total.
func normalizeRows(work, inv []float64, n int, o Options) error {
	var i int
	for i = 0; i < n; i++ {
		if d := work[i*n+i]; math.Abs(d) < o.eps {
			return matrixErrorf(opInverse, fmt.Errorf(
				"normalization: diagonal %g at (%d,%d) below eps %g: %w",
				d, i, i, o.eps, ErrSingular))
		}
	}

	parallelFor(n, o.workers, func(start, end int) {
		var row, j, off int
		var coef float64
		for row = start; row < end; row++ {
			off = row * n
			coef = work[off+row]
			for j = row; j < n; j++ { // left of the diagonal is already zero
				work[off+j] /= coef
			}
			for j = 0; j < n; j++ { // companion divides across its full width
				inv[off+j] /= coef
			}
		}
	}) // join: barrier before backward elimination

	return nil
}

// backwardEliminate clears everything above the diagonal, completing the
// reduction of work to the identity while inv becomes the inverse. Rows are
// processed bottom-up (i strictly decreasing) because row i consumes the
// finalized rows below it. Within one i, result columns are write-disjoint
// and fork across workers; every column reads the row's work[i,j]
// multipliers, so the work-row cleanup runs after the column join, using
// the elimination formula (work[j,j] is exactly 1, driving the entry to
// exact zero rather than assigning it).
// Complexity: O(n³) total.
func backwardEliminate(work, inv []float64, n int, o Options) {
	var i, j int
	for i = n - 2; i >= 0; i-- {
		iOff := i * n
		parallelFor(n, o.workers, func(start, end int) {
			var col, jj int
			for col = start; col < end; col++ {
				for jj = n - 1; jj > i; jj-- { // high-to-low, matching the reference
					inv[iOff+col] -= work[iOff+jj] * inv[jj*n+col]
				}
			}
		}) // join: all columns done before the multipliers are cleared

		for j = n - 1; j > i; j-- {
			work[iOff+j] -= work[j*n+j] * work[iOff+j] // lands on exact zero: work[j,j] == 1 after normalization
		}
	} // next i only after the join: the barrier between row steps
}
