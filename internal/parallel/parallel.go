// Package parallel fans index ranges out over a bounded set of goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// Workers returns n if positive, otherwise GOMAXPROCS.
func Workers(n int) int {
	if n > 0 {
		return n
	}
	return runtime.GOMAXPROCS(0)
}

// For calls action(i) for every i in [0, n) using at most workers goroutines.
// It returns once every call has finished. Each index is visited exactly once.
func For(n, workers int, action func(i int)) {
	if n <= 0 {
		return
	}
	workers = Workers(workers)
	if workers > n {
		workers = n
	}
	if workers == 1 {
		for i := 0; i < n; i++ {
			action(i)
		}
		return
	}

	next := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range next {
				action(i)
			}
		}()
	}
	for i := 0; i < n; i++ {
		next <- i
	}
	close(next)
	wg.Wait()
}

// ForErr is like For but returns the error of the lowest failing index.
// Remaining indices are still visited.
func ForErr(n, workers int, action func(i int) error) error {
	var (
		mu       sync.Mutex
		firstErr error
		firstIdx = n
	)
	For(n, workers, func(i int) {
		if err := action(i); err != nil {
			mu.Lock()
			if i < firstIdx {
				firstIdx, firstErr = i, err
			}
			mu.Unlock()
		}
	})
	return firstErr
}
