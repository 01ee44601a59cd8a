// SPDX-License-Identifier: MIT

// Package matrix: fork-join execution of write-disjoint index ranges.
// Every parallel kernel in this package funnels through parallelFor so the
// chunking policy, the sequential cutoff and the join (= barrier) semantics
// live in exactly one place.
package matrix

import (
	"runtime"
	"sync"
)

// minParallelSpan is the smallest index span worth forking goroutines for.
// Below it the scheduling overhead dominates the per-element work of every
// kernel in this package, so parallelFor degrades to a plain call.
const minParallelSpan = 32

// resolveWorkers maps the configured worker count to an effective one:
// zero resolves to runtime.GOMAXPROCS(0), anything else passes through.
// Complexity: O(1).
func resolveWorkers(workers int) int {
	if workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}

	return workers
}

// parallelFor runs fn over [0,n) split into contiguous chunks, one goroutine
// per chunk, and joins them all before returning. The return IS the barrier:
// when parallelFor comes back, every index in [0,n) has been processed and
// its writes are visible to the caller (WaitGroup establishes the
// happens-before edge).
//
// fn must be write-disjoint across chunks: fn(s,e) may only write state
// owned by indices [s,e). All kernels here satisfy that by construction
// (row- or column-partitioned output).
//
// Sequential cutoff: workers == 1 or n < minParallelSpan executes fn(0, n)
// on the calling goroutine. Results are identical either way because chunk
// boundaries never change per-element operation order.
//
// Complexity: O(n·cost(fn)) work, O(workers) goroutines.
func parallelFor(n, workers int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	workers = resolveWorkers(workers)
	if workers == 1 || n < minParallelSpan {
		fn(0, n) // sequential path, no goroutines

		return
	}
	if workers > n {
		workers = n // never fork more goroutines than indices
	}

	chunk := (n + workers - 1) / workers // ceil(n/workers)

	var wg sync.WaitGroup
	var start, end int
	for w := 0; w < workers; w++ {
		start = w * chunk
		if start >= n {
			break
		}
		end = start + chunk
		if end > n {
			end = n
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait() // join = barrier; all chunk writes are now visible
}
