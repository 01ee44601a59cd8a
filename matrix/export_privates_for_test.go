// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for Private Helpers and Options Snapshot
//
// Purpose:
//   - Expose the unexported options snapshot and the fork-join scheduler to
//     matrix_test ONLY, without widening the production API.
//
// Build Policy:
//   - The _test.go suffix keeps this file out of production builds; it is
//     compiled only alongside the package's tests.
//
// Risks & Maintenance:
//   - Keep OptionsSnapshot in sync with the Options fields. If Options grows,
//     update snapshotOf accordingly (tests will catch drift).

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicEpsilonInvalid_TestOnly = panicEpsilonInvalid
	PanicWorkersInvalid_TestOnly = panicWorkersInvalid
)

// MinParallelSpan_TestOnly mirrors the sequential-fallback threshold.
const MinParallelSpan_TestOnly = minParallelSpan

// --- options snapshot bridge --------------------------------------------------

// OptionsSnapshot is a stable, test-facing copy of the Options fields.
type OptionsSnapshot struct {
	Eps     float64
	Workers int
}

// GatherOptionsSnapshot_TestOnly applies opts over the defaults and returns a
// snapshot of the derived configuration.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	return snapshotOf(gatherOptions(opts...))
}

// snapshotOf copies internal fields to a public struct. Keep in sync with the
// Options layout.
func snapshotOf(o Options) OptionsSnapshot {
	return OptionsSnapshot{
		Eps:     o.eps,
		Workers: o.workers,
	}
}

// --- fork-join scheduler bridge -----------------------------------------------

// ParallelFor_TestOnly forwards to the private parallelFor scheduler.
func ParallelFor_TestOnly(n, workers int, fn func(start, end int)) {
	parallelFor(n, workers, fn)
}

// ResolveWorkers_TestOnly forwards to resolveWorkers.
func ResolveWorkers_TestOnly(workers int) int {
	return resolveWorkers(workers)
}
