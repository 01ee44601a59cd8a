// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric policy and parallel
// execution. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - Epsilon guards the no-pivoting inversion: any pivot or diagonal entry
//     with |value| < eps aborts with ErrSingular. The default matches the
//     reference threshold; callers tune sensitivity per use case instead of
//     editing a constant.
//   - Workers bounds the fork-join pool used by parallel kernels. Zero means
//     "resolve to runtime.GOMAXPROCS(0) at call time"; one forces the
//     sequential path. Parallel and sequential paths produce bit-identical
//     results because per-element operation order never changes.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the near-zero pivot tolerance used by Inverse.
	// A pivot p with |p| < DefaultEpsilon is treated as singular.
	DefaultEpsilon = 1e-9

	// DefaultWorkers selects the worker count for parallel kernels.
	// Zero resolves to runtime.GOMAXPROCS(0) when a kernel runs.
	DefaultWorkers = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicWorkersInvalid = "matrix: WithWorkers: n must be >= 0"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept `...Option` and internally resolve them via gatherOptions.
type Options struct {
	// numeric policy
	eps float64 // >= 0; DefaultEpsilon

	// parallel execution policy
	workers int // >= 0; DefaultWorkers (0 ⇒ GOMAXPROCS at call time)
}

// Epsilon reports the resolved near-zero tolerance.
// Complexity: O(1).
func (o Options) Epsilon() float64 { return o.eps }

// Workers reports the configured worker count (0 ⇒ GOMAXPROCS at call time).
// Complexity: O(1).
func (o Options) Workers() int { return o.workers }

// ---------- Constructors (WithX) ----------

// WithEpsilon sets the near-zero tolerance used by pivot-safety checks.
//
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Behavior highlights:
//   - Strict validation in constructor; panics on nonsensical values.
//   - eps == 0 degrades the check to "exactly zero pivots fail", which
//     mirrors exact-arithmetic expectations but admits catastrophic
//     cancellation; prefer a small positive eps for float64 data.
//
// Inputs:
//   - eps: non-negative finite tolerance.
//
// Returns:
//   - Option: functional setter.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Prefer small positive eps (e.g., 1e-9) for double-precision data;
//     raise it when rejecting marginal systems early is cheaper than
//     inverting them.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	// Assign validated epsilon.
	return func(o *Options) { o.eps = eps }
}

// WithWorkers bounds the fork-join pool used by parallel kernels.
//
// Implementation:
//   - Stage 1: validate n ≥ 0.
//   - Stage 2: return a setter that writes n into Options.
//
// Behavior highlights:
//   - n == 0 resolves to runtime.GOMAXPROCS(0) when the kernel runs.
//   - n == 1 forces the sequential path (useful for profiling and
//     deterministic debugging; results are identical either way).
//
// Inputs:
//   - n: worker count, 0 for automatic.
//
// Returns:
//   - Option: functional setter.
//
// Errors:
//   - Panics with a stable message when n is negative.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Use WithWorkers(1) when comparing parallel vs sequential runs; the
//     outputs are bit-identical, so any difference is a bug elsewhere.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersInvalid)
	}

	// Assign validated worker bound.
	return func(o *Options) { o.workers = n }
}

// ---------- Internal resolution ----------

// gatherOptions builds the effective Options: defaults first, then user
// setters in order (last-writer-wins), then invariant normalization.
// Complexity: O(len(user)).
func gatherOptions(user ...Option) Options {
	o := Options{
		// numeric policy
		eps: DefaultEpsilon,

		// parallel execution policy
		workers: DefaultWorkers,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	finalizeOptions(&o)

	return o
}

// finalizeOptions normalizes cross-field invariants after user setters ran.
// Constructors already reject invalid scalars; this is the defensive clamp
// for zero-value Options built without gatherOptions.
func finalizeOptions(o *Options) {
	if isNonFinite(o.eps) || o.eps < 0 {
		o.eps = DefaultEpsilon
	}
	if o.workers < 0 {
		o.workers = DefaultWorkers
	}
}

// isNonFinite reports whether v is NaN or ±Inf.
// Complexity: O(1).
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
