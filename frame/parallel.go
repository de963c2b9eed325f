package frame

import (
	"runtime"
	"sync"
)

// parallelRows executes fn across multiple goroutines, partitioning the row
// range [0, rows) into contiguous, disjoint [start, end) chunks. Each worker
// only writes rows inside its own partition, so no synchronization beyond
// the final join is needed.
//
// Small row counts are processed serially; the goroutine overhead isn't
// worth it below a couple of rows per core.
func parallelRows(rows int, fn func(start, end int)) {
	workers := runtime.NumCPU()
	if rows < workers*2 {
		fn(0, rows)
		return
	}

	partSize := rows / workers

	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		start := i * partSize
		end := start + partSize
		// Last partition picks up the remainder rows.
		if i == workers-1 {
			end = rows
		}

		go func(start, end int) {
			defer wg.Done()
			fn(start, end)
		}(start, end)
	}

	wg.Wait()
}
