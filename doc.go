// Package lvlmat is your in-memory toolkit for building, transforming,
// inverting and visualizing dense float64 matrices — from CSV ingestion to
// parallel Gauss-Jordan elimination.
//
// 🚀 What is lvlmat?
//
//	A compact numeric library that brings together:
//		• Dense storage: flat row-major float64 matrices with strict bounds checks
//		• Kernels: add, subtract, multiply, transpose, scale — all fork-join parallel
//		• Inversion: three-phase Gauss-Jordan with an explicit no-pivoting contract
//		• Screening: diagonal-dominance checks that predict inversion safety
//		• Interchange: CSV in/out, flat buffers, gonum.org/v1/gonum/mat bridges
//		• Visualization: heatmap rendering via gonum.org/v1/plot
//
// ✨ Why choose lvlmat?
//
//   - Deterministic – parallel and sequential runs produce bit-identical results
//   - Rock-solid errors – sentinel values under errors.Is, positions in messages
//   - Tunable – functional options for epsilon tolerance and worker counts
//   - Pure Go – no cgo; plays well with the wider gonum ecosystem
//
// Under the hood, everything is organized under two subpackages:
//
//	matrix/ — Dense type, kernels, inversion, CSV, flat-buffer & gonum interop
//	viz/    — heatmap rendering of any matrix via gonum/plot
//
// Quick ASCII example:
//
//	⎡4 1⎤        ⎡ 5/18 −1/18⎤
//	⎣2 5⎦   →    ⎣−2/18  4/18⎦
//
//	a diagonally dominant matrix and its inverse; their product is I.
//
// Dive into examples/ for an end-to-end pipeline: read a CSV, screen it for
// dominance, invert it, verify the product and render a heatmap.
//
//	go get github.com/katalvlaran/lvlmat/matrix
package lvlmat
