// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures and utilities shared by the
//     kernel, ingestion and marshaling tests.
//   - Keep all data finite and well-formed to avoid numeric-policy
//     interference unless a test deliberately probes failure paths.

package matrix_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlmat/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Implementation:
//   - Stage 1: Embed matrix.Matrix to forward all methods.
//   - Stage 2: Use hide{X} in tests to force non-*Dense (fallback) paths.
//
// Behavior highlights:
//   - Prevents "*Dense" fast-path via type switch in code under test.
//
// Notes:
//   - Useful to assert fast-path == fallback bitwise (or via AllClose).
//
// AI-Hints:
//   - Prefer wrapping ONLY the operand you want to de-opt; keep the other
//     one *Dense to isolate path differences.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
// AI-Hints: When you need non-zero data, pair with RandomFill or manual Set.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// IdentityDense RETURNS an n×n identity matrix (main diagonal = 1, else 0).
// AI-Hints: Great as a baseline for perturbations and property tests.
func IdentityDense(t *testing.T, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewIdentity(n)
	if err != nil {
		t.Fatalf("NewIdentity(%d): %v", n, err)
	}

	return m
}

// NewFilledDense BUILDS an r×c *Dense from a row-major value slice.
// Fatal when len(vals) != r*c ensures fixtures stay rectangular.
// AI-Hints: Use with CompareExact for integer-like matrices.
func NewFilledDense(t *testing.T, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	if len(vals) != r*c {
		t.Fatalf("NewFilledDense: want %d values, got %d", r*c, len(vals))
	}
	d := MustDense(t, r, c)
	var i, j int // loop iterators
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			MustSet(t, d, i, j, vals[i*c+j])
		}
	}

	return d
}

// RandomFill FILLS a Matrix with deterministic U(-1,1) values by seed.
// Reproducible randomness for property tests; fixed i→j write order.
// AI-Hints: Sweep multiple seeds in table-driven tests to increase coverage.
func RandomFill(t *testing.T, m matrix.Matrix, seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	var i, j int // loop iterators
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			MustSet(t, m, i, j, rng.Float64()*2-1)
		}
	}
}

// RandFilledDense ALLOCATES an r×c *Dense and fills it via RandomFill.
// AI-Hints: Use identical seeds across fast vs fallback runs to isolate
// path differences.
func RandFilledDense(t *testing.T, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	d := MustDense(t, r, c)
	RandomFill(t, d, seed)

	return d
}

// DominantDense RETURNS an n×n seeded random matrix made strictly
// diagonally dominant: off-diagonals in U(-1,1), each diagonal set to the
// row's absolute off-diagonal sum plus one. Such inputs never trip the
// no-pivoting inversion.
// AI-Hints: Feed to Inverse when the test targets post-inversion behavior
// rather than pivot failures.
func DominantDense(t *testing.T, n int, seed int64) *matrix.Dense {
	t.Helper()
	d := RandFilledDense(t, n, n, seed)
	var i, j int // loop iterators
	var sum float64
	for i = 0; i < n; i++ {
		sum = 0
		for j = 0; j < n; j++ {
			if j != i {
				sum += math.Abs(MustAt(t, d, i, j))
			}
		}
		MustSet(t, d, i, i, sum+1)
	}

	return d
}

// MustSet WRITES m[i,j] = v or fails the test.
// AI-Hints: Great with small builders like NewFilledDense.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d): %v", i, j, err)
	}
}

// MustAt READS m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// CompareExact ASSERTS m equals want element-for-element (no tolerance).
func CompareExact(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	r, c := m.Rows(), m.Cols()
	if len(want) != r {
		t.Fatalf("CompareExact: Rows = %d; want %d", r, len(want))
	}
	var i, j int // loop iterators
	var v float64
	for i = 0; i < r; i++ {
		if len(want[i]) != c {
			t.Fatalf("CompareExact: Cols[%d] = %d; want %d", i, c, len(want[i]))
		}
		for j = 0; j < c; j++ {
			if v = MustAt(t, m, i, j); v != want[i][j] {
				t.Fatalf("m[%d,%d]=%v; want %v", i, j, v, want[i][j])
			}
		}
	}
}

// CompareClose ASSERTS a ≈ b under matrix.AllClose with rtol/atol.
// AI-Hints: rtol=0 atol=0 asserts bit equality, e.g. parallel vs sequential.
func CompareClose(t *testing.T, a, b matrix.Matrix, rtol, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(a, b, rtol, atol)
	if err != nil {
		t.Fatalf("AllClose: %v", err)
	}
	if !ok {
		t.Fatalf("matrices differ beyond rtol=%g atol=%g:\na=%v\nb=%v", rtol, atol, a, b)
	}
}

// AssertErrorIs ASSERTS errors.Is(err, target).
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("error = %v; want errors.Is(..., %v)", err, target)
	}
}

// ExpectPanic ASSERTS fn panics; the recovered value is ignored.
func ExpectPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic, got none")
		}
	}()
	fn()
}
