// Package parallel provides a bounded parallel-for over an index range.
//
// It targets embarrassingly parallel loops where iteration i writes only to
// output slot i: no locks, no shared accumulators. Filterbank construction
// (one row per bin) and frame analysis (one spectrum per frame) both fit this
// shape.
package parallel

import (
	"runtime"
	"sync"
)

// For runs fn(i) for every i in [0, n), distributing iterations across up to
// GOMAXPROCS worker goroutines and returning once all have completed.
//
// fn must confine its writes to state owned by its own index; under that
// contract the combined result is independent of scheduling and worker count.
// Small ranges run inline on the calling goroutine.
func For(n int, fn func(i int)) {
	if n <= 0 {
		return
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}

	if workers <= 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	jobs := make(chan int, n)
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				fn(i)
			}
		}()
	}
	wg.Wait()
}
