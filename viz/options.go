// SPDX-License-Identifier: MIT

// Package viz: functional configuration for heatmap rendering.
// Mirrors the option discipline of the matrix package: documented defaults,
// WithX constructors that panic on nonsensical values, unexported fields
// resolved internally via gatherOptions.
package viz

import "gonum.org/v1/plot/vg"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTitle is the plot title when none is configured (empty: no title).
	DefaultTitle = ""

	// DefaultColors is the number of palette steps in the diverging color map.
	DefaultColors = 255

	// DefaultWidth is the rendered canvas width.
	DefaultWidth = 12 * vg.Centimeter

	// DefaultHeight is the rendered canvas height.
	DefaultHeight = 12 * vg.Centimeter
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicColorsInvalid = "viz: WithColors: n must be >= 2"
	panicSizeInvalid   = "viz: WithSize: width and height must be positive"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective rendering configuration.
type Options struct {
	title         string    // plot title; empty renders none
	colors        int       // >= 2; palette steps
	width, height vg.Length // > 0; canvas size
}

// Title reports the configured plot title.
func (o Options) Title() string { return o.title }

// Colors reports the configured palette step count.
func (o Options) Colors() int { return o.colors }

// Size reports the configured canvas dimensions.
func (o Options) Size() (w, h vg.Length) { return o.width, o.height }

// ---------- Constructors (WithX) ----------

// WithTitle sets the plot title; an empty string renders no title.
func WithTitle(s string) Option {
	return func(o *Options) { o.title = s }
}

// WithColors sets the number of palette steps. More steps give a smoother
// gradient at a slightly higher render cost. Panics when n < 2: a palette
// needs at least two endpoints to interpolate.
func WithColors(n int) Option {
	if n < 2 {
		panic(panicColorsInvalid)
	}

	return func(o *Options) { o.colors = n }
}

// WithSize sets the canvas dimensions. Panics when either side is not
// positive.
func WithSize(width, height vg.Length) Option {
	if width <= 0 || height <= 0 {
		panic(panicSizeInvalid)
	}

	return func(o *Options) { o.width, o.height = width, height }
}

// ---------- Internal resolution ----------

// gatherOptions builds the effective Options: defaults first, then user
// setters in order (last-writer-wins), then invariant normalization.
func gatherOptions(user ...Option) Options {
	o := Options{
		title:  DefaultTitle,
		colors: DefaultColors,
		width:  DefaultWidth,
		height: DefaultHeight,
	}
	for _, set := range user {
		set(&o)
	}

	finalizeOptions(&o)

	return o
}

// finalizeOptions normalizes invariants for zero-value Options built without
// gatherOptions; constructors already reject invalid scalars.
func finalizeOptions(o *Options) {
	if o.colors < 2 {
		o.colors = DefaultColors
	}
	if o.width <= 0 {
		o.width = DefaultWidth
	}
	if o.height <= 0 {
		o.height = DefaultHeight
	}
}
