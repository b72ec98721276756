// Package parallel provides chunked parallel iteration for loom's
// elementwise tensor loops.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls how For splits work across goroutines.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig sizes the worker pool to the machine.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:    n > 1,
		NumWorkers: n,
		// Elementwise callbacks are cheap; short loops stay sequential.
		MinChunkSize: 4096,
	}
}

// For executes f(i) for every i in [0, n), splitting the range into chunks
// when parallelism pays off and running sequentially otherwise. f must be
// safe to call concurrently for distinct i.
func For(n int, cfg Config, f func(i int)) {
	if !cfg.Enabled || cfg.NumWorkers < 2 || n < cfg.MinChunkSize {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	chunk := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize)

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}
