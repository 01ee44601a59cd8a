// Package matrix_test contains unit tests for the gonum/mat bridge.
package matrix_test

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlmat/matrix"
)

// ---------- 8.1 ToGonum ----------

func TestToGonum_Known(t *testing.T) {
	t.Parallel()

	M := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})

	d, err := matrix.ToGonum(M)
	if err != nil {
		t.Fatalf("ToGonum: want err == nil, got: %v", err)
	}
	r, c := d.Dims()
	if r != 2 || c != 2 {
		t.Fatalf("Dims: got %dx%d, want 2x2", r, c)
	}
	want := [][]float64{{1, 2}, {3, 4}}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if d.At(i, j) != want[i][j] {
				t.Fatalf("At(%d,%d): got %g, want %g", i, j, d.At(i, j), want[i][j])
			}
		}
	}
}

func TestToGonum_Nil(t *testing.T) {
	t.Parallel()

	_, err := matrix.ToGonum(nil)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
}

// Zero-dimension shapes stop here: gonum's constructors refuse them with a
// panic, so the bridge turns the refusal into a sentinel instead.
func TestToGonum_Empty(t *testing.T) {
	t.Parallel()

	_, err := matrix.ToGonum(MustDense(t, 0, 0))
	AssertErrorIs(t, err, matrix.ErrEmptyMatrix)
}

func TestToGonum_Independence(t *testing.T) {
	t.Parallel()

	M := NewFilledDense(t, 1, 2, []float64{1, 2})

	d, err := matrix.ToGonum(M)
	if err != nil {
		t.Fatalf("ToGonum: %v", err)
	}
	MustSet(t, M, 0, 0, 99)
	if d.At(0, 0) != 1 {
		t.Fatal("gonum matrix must not alias the source")
	}
}

// ---------- 8.2 FromGonum ----------

func TestFromGonum_Known(t *testing.T) {
	t.Parallel()

	d := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})

	M, err := matrix.FromGonum(d)
	if err != nil {
		t.Fatalf("FromGonum: want err == nil, got: %v", err)
	}
	CompareExact(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, M)
}

func TestFromGonum_Nil(t *testing.T) {
	t.Parallel()

	_, err := matrix.FromGonum(nil)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestFromGonum_ZeroValue(t *testing.T) {
	t.Parallel()

	_, err := matrix.FromGonum(&mat.Dense{})
	AssertErrorIs(t, err, matrix.ErrEmptyMatrix)
}

// TestFromGonum_SlicedView reads a view whose stride exceeds its width, the
// case a naive RawMatrix copy would get wrong.
func TestFromGonum_SlicedView(t *testing.T) {
	t.Parallel()

	d := mat.NewDense(3, 3, []float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	})
	view := d.Slice(0, 2, 1, 3).(*mat.Dense)

	M, err := matrix.FromGonum(view)
	if err != nil {
		t.Fatalf("FromGonum(view): %v", err)
	}
	CompareExact(t, [][]float64{{2, 3}, {5, 6}}, M)
}

// ---------- 8.3 Round trip ----------

func TestGonum_RoundTrip(t *testing.T) {
	t.Parallel()

	M := RandFilledDense(t, 4, 6, 123)

	d, err := matrix.ToGonum(M)
	if err != nil {
		t.Fatalf("ToGonum: %v", err)
	}
	R, err := matrix.FromGonum(d)
	if err != nil {
		t.Fatalf("FromGonum: %v", err)
	}
	CompareClose(t, R, M, 0, 0)
}
