// SPDX-License-Identifier: MIT

package viz

import (
	"errors"
	"fmt"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"

	"github.com/katalvlaran/lvlmat/matrix"
)

// Operation tags for error wrapping (no magic strings at wrap sites).
const (
	opHeatmap = "Heatmap"
	opSavePNG = "SavePNG"
)

// ErrBadExtension is returned by SavePNG for a target path that does not
// end in ".png"; the extension selects the encoder.
var ErrBadExtension = errors.New("viz: path must end in .png")

// vizErrorf wraps err with the operation tag: "<op>: <err>".
func vizErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// grid adapts a flattened matrix to plotter.GridXYZ. The snapshot is taken
// once at construction so rendering never calls back into the source matrix.
type grid struct {
	data       []float64 // row-major copy
	rows, cols int
}

// newGrid flattens m into a render snapshot. Degenerate shapes surface the
// flat-buffer sentinels (ErrNilMatrix, ErrEmptyMatrix).
func newGrid(m matrix.Matrix) (grid, error) {
	buf, err := matrix.ToFlat(m)
	if err != nil {
		return grid{}, err
	}

	return grid{data: buf.Data, rows: buf.Rows, cols: buf.Cols}, nil
}

// Dims reports the grid extent in plotter order: columns first.
func (g grid) Dims() (c, r int) { return g.cols, g.rows }

// X maps a column index to its plot coordinate.
func (g grid) X(c int) float64 { return float64(c) }

// Y maps a grid row index to its plot coordinate.
func (g grid) Y(r int) float64 { return float64(r) }

// Z reads the cell value for plot position (c, r). Plot rows grow upward
// while matrix rows grow downward, so the row index flips here: matrix row 0
// lands at the top of the image, matching the textual rendering.
func (g grid) Z(c, r int) float64 {
	return g.data[(g.rows-1-r)*g.cols+c]
}

// Heatmap builds a heatmap plot of m using a smooth blue-red diverging
// palette: low values cold, high values warm. The returned *plot.Plot is
// fully composed (title, axis labels, heatmap layer) and still open for
// caller additions before saving.
//
// Inputs: m non-nil with at least one row and column; opts per options.go.
// Returns: the composed plot.
// Errors: matrix.ErrNilMatrix, matrix.ErrEmptyMatrix.
// Complexity: Time O(r*c) for the snapshot; rendering cost is deferred to
// the plot's own Save/WriterTo.
//
// AI-Hints:
//   - The plot is still open: add legends or overlays before saving.
//   - Symmetric data around zero reads best with this diverging palette;
//     raise WithColors for large matrices with fine value gradations.
func Heatmap(m matrix.Matrix, opts ...Option) (*plot.Plot, error) {
	o := gatherOptions(opts...)

	g, err := newGrid(m)
	if err != nil {
		return nil, vizErrorf(opHeatmap, err)
	}

	h := plotter.NewHeatMap(g, moreland.SmoothBlueRed().Palette(o.colors))
	if h.Min == h.Max {
		h.Max = h.Min + 1 // constant data: keep the color range nonzero
	}

	p := plot.New()
	p.Title.Text = o.title
	p.X.Label.Text = "column"
	p.Y.Label.Text = "row"
	p.Add(h)

	return p, nil
}

// SavePNG renders m as a heatmap into a PNG file at path. The canvas size
// comes from the options (DefaultWidth × DefaultHeight unless overridden).
//
// Errors: ErrBadExtension for a non-.png target; everything Heatmap returns;
// encoder and filesystem errors from the plot save, wrapped with the path.
func SavePNG(m matrix.Matrix, path string, opts ...Option) error {
	if filepath.Ext(path) != ".png" {
		return vizErrorf(opSavePNG, fmt.Errorf("%q: %w", path, ErrBadExtension))
	}

	o := gatherOptions(opts...)
	p, err := Heatmap(m, opts...)
	if err != nil {
		return err // already tagged by Heatmap
	}

	if err = p.Save(o.width, o.height, path); err != nil {
		return fmt.Errorf("%s %q: %w", opSavePNG, path, err)
	}

	return nil
}
