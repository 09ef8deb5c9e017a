package batch

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// Config controls a Run.
type Config struct {
	Workers int
	// Interval between Progress calls. Defaults to 2s.
	Interval time.Duration
	// Progress is called periodically from a separate goroutine while jobs
	// are running. It may be nil.
	Progress func(done, total int, elapsed time.Duration)
}

// Run calls job(i) for every i in [0, total) using a worker pool and blocks
// until all jobs have returned. Jobs must not share mutable state.
func Run(cfg Config, total int, job func(idx int)) {
	if total <= 0 {
		return
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > total {
		workers = total
	}
	interval := cfg.Interval
	if interval <= 0 {
		interval = 2 * time.Second
	}

	var processed atomic.Int64
	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	reporterDone := make(chan struct{})
	go func() {
		defer close(reporterDone)
		if cfg.Progress == nil {
			<-done
			return
		}
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if p := processed.Load(); p > 0 {
					cfg.Progress(int(p), total, time.Since(start))
				}
			}
		}
	}()

	// Worker pool
	jobs := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				job(idx)
				processed.Add(1)
			}
		}()
	}

	for i := 0; i < total; i++ {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	close(done)
	<-reporterDone

	if cfg.Progress != nil {
		cfg.Progress(total, total, time.Since(start))
	}
}
