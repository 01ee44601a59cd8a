// SPDX-License-Identifier: MIT

// Package viz renders matrices as heatmaps via gonum.org/v1/plot.
//
// The package covers the observational side of matrix work: turning a Dense
// (or any matrix.Matrix) into a picture a human can scan for structure,
// symmetry breaks or outlier cells. Heatmap builds a *plot.Plot the caller
// can compose further; SavePNG is the one-call file emitter.
//
// Orientation matches the textual rendering of matrix.Fprint: row 0 appears
// at the TOP of the image, columns grow to the right.
//
// Rendering needs a materialized value grid, so the degenerate shapes that
// cannot be flattened (0 rows or 0 cols) fail with matrix.ErrEmptyMatrix.
package viz
