// Package parallel provides CPU-bound fan-out helpers for batch
// numerical evaluation.
package parallel

import (
	"runtime"
	"sync"
)

// Parallelize splits items across the available CPU cores and runs fn
// on each contiguous range [start, end). It returns once every range
// has been processed. fn must be safe for concurrent calls on disjoint
// ranges.
func Parallelize(items int, fn func(start, end int)) {
	if items == 0 {
		return
	}

	numWorkers := runtime.NumCPU()
	if numWorkers > items {
		numWorkers = items // no need for more workers than items
	}

	// Items per worker, ceiling division.
	chunkSize := (items + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup

	for i := 0; i < numWorkers; i++ {
		start := i * chunkSize
		end := start + chunkSize
		if end > items {
			end = items
		}

		if start >= end {
			continue
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}

	wg.Wait()
}

// ParallelizeWithThreshold runs fn(0, items) sequentially when items is
// at or below threshold, and fans out via Parallelize above it. Small
// batches stay on the calling goroutine where scheduling overhead would
// dominate the work.
func ParallelizeWithThreshold(items, threshold int, fn func(start, end int)) {
	if items <= threshold {
		fn(0, items)
		return
	}

	Parallelize(items, fn)
}
