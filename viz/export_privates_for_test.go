// SPDX-License-Identifier: MIT

package viz

// Test-Bridge (White-Box) for the Grid Adapter and Options Snapshot
//
// Purpose:
//   - Expose the unexported grid adapter and options resolution to viz_test
//     ONLY, without widening the production API.
//
// Build Policy:
//   - The _test.go suffix keeps this file out of production builds.

import (
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/lvlmat/matrix"
)

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicColorsInvalid_TestOnly = panicColorsInvalid
	PanicSizeInvalid_TestOnly   = panicSizeInvalid
)

// Grid_TestOnly aliases the unexported plotter adapter.
type Grid_TestOnly = grid

// NewGrid_TestOnly forwards to newGrid.
func NewGrid_TestOnly(m matrix.Matrix) (Grid_TestOnly, error) {
	return newGrid(m)
}

// OptionsSnapshot is a stable, test-facing copy of the Options fields.
type OptionsSnapshot struct {
	Title         string
	Colors        int
	Width, Height vg.Length
}

// GatherOptionsSnapshot_TestOnly applies opts over the defaults and returns
// a snapshot of the derived configuration.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Title: o.title, Colors: o.colors, Width: o.width, Height: o.height}
}
