// Package matrix implements a dense, row-major float64 matrix and the
// linear-algebra kernels built on top of it.
//
// The matrix package provides:
//
//   - Dense, a flat contiguous row-major container with bounds-checked
//     element access, full-reset Resize and deep-copy semantics.
//   - Algebraic kernels (Add, Sub, Mul, Scale, Transpose) that treat
//     operands as read-only and allocate fresh results.
//   - Inverse, a Gauss-Jordan elimination over an augmented identity with
//     fail-fast near-zero pivot detection and NO row pivoting; unsafe
//     pivots are an error, never silently reordered.
//   - CSV ingestion/emission (ReadCSV, WriteCSV) with shape inference.
//   - FlatBuffer, a contiguous interop record for crossing API boundaries,
//     plus converters to and from gonum's mat.Dense.
//   - Diagnostics: diagonal-dominance testing and tabular rendering.
//
// Heavy kernels parallelize across write-disjoint index ranges with a
// fork-join worker pool; tune via WithWorkers and WithEpsilon options.
//
// Dense matrices are best when O(r*c) memory is acceptable and the
// element layout must stay cache-friendly for elimination hot loops.
//
// See the examples in this package for usage patterns.
package matrix
