// Package matrix provides core linear algebra primitives for array-based computations.
// Dense is a concrete, row-major implementation of the Matrix interface,
// storing elements in one flat slice for performance and cache friendliness.
package matrix

import "fmt"

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order
// (element (i,j) lives at data[i*c+j]).
//
// The zero value is the empty 0×0 matrix, a legal state distinct from any
// populated matrix. Dense never shares storage: Clone, CopyFrom and every
// kernel produce independently-owned data.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates a rows×cols Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols ≥ 0 (zero dims describe the empty matrix).
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrInvalidDimensions.
// Complexity: O(r*c) time and memory.
//
// AI-Hints: NewDense(0,0) is the canonical empty matrix; kernels accept it
// and return empty results instead of erroring.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions.
	if err := ValidateShape(rows, cols); err != nil {
		return nil, err
	}

	// Allocate flat slice; zero-length for empty shapes.
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewSquare creates an n×n Dense matrix initialized to zeros.
// Complexity: O(n²) time and memory.
func NewSquare(n int) (*Dense, error) {
	return NewDense(n, n)
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r // return stored row count
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c // return stored column count
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Stage 1 (Validate): check 0 ≤ row < r and 0 ≤ col < c.
// Stage 2 (Execute): compute and return linear index.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	// Validate row index.
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	// Validate column index.
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	// Compute flat offset.
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Returns ErrOutOfRange (wrapped) on invalid indices.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Returns ErrOutOfRange (wrapped) on invalid indices.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Resize reshapes the matrix to rows×cols and sets EVERY cell to zero.
// This is a full reset, not a content-preserving reshape: no prior values
// survive the call. Resize(0, 0) empties the matrix and is the sanctioned
// way to release its storage.
// Stage 1 (Validate): rows and cols ≥ 0.
// Stage 2 (Execute): swap in a fresh zeroed backing slice.
// Complexity: O(rows*cols) time and memory.
//
// AI-Hints: To keep the old values across a reshape, Clone first and copy
// back cell by cell; Resize alone never preserves content.
func (m *Dense) Resize(rows, cols int) error {
	if err := ValidateShape(rows, cols); err != nil {
		return fmt.Errorf("Dense.Resize: %w", err)
	}

	m.r, m.c = rows, cols
	m.data = make([]float64, rows*cols) // old storage is dropped wholesale

	return nil
}

// CopyFrom deep-copies the shape and every element of src into m.
// Self-assignment is detected and skipped (no-op, nil error). After a
// successful call m shares no storage with src.
// Stage 1 (Validate): src non-nil.
// Stage 2 (Guard): skip when src is m itself.
// Stage 3 (Execute): resize and copy; fast path for *Dense sources.
// Complexity: O(r*c) time and memory.
//
// AI-Hints: m.CopyFrom(m) is a guaranteed no-op; callers need no aliasing
// checks of their own.
func (m *Dense) CopyFrom(src Matrix) error {
	if err := ValidateNotNil(src); err != nil {
		return fmt.Errorf("Dense.CopyFrom: %w", err)
	}
	// Self-assignment guard: copying a matrix onto itself changes nothing.
	if sd, ok := src.(*Dense); ok && sd == m {
		return nil
	}

	rows, cols := src.Rows(), src.Cols()
	if err := m.Resize(rows, cols); err != nil {
		return fmt.Errorf("Dense.CopyFrom: %w", err)
	}

	// Fast path: flat copy between Dense buffers.
	if sd, ok := src.(*Dense); ok {
		copy(m.data, sd.data)

		return nil
	}

	// Fallback: bounds-checked element walk in fixed i→j order.
	var i, j int // loop iterators
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err := src.At(i, j)
			if err != nil {
				return fmt.Errorf("Dense.CopyFrom: At(%d,%d): %w", i, j, err)
			}
			m.data[i*cols+j] = v
		}
	}

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() Matrix {
	// Allocate new slice for data copy.
	copyData := make([]float64, len(m.data))
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
//
// AI-Hints: String is the compact bracket form; use Fprint for the aligned
// table with row/column indices.
func (m *Dense) String() string {
	var s string
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		s += "["                  // open row
		for j = 0; j < m.c; j++ { // iterate over columns
			s += fmt.Sprintf("%g", m.data[i*m.c+j])
			if j < m.c-1 {
				s += ", " // separate values with comma
			}
		}
		s += "]\n" // close row
	}

	return s
}
