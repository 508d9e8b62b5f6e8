package engine

import (
	"sync"

	"github.com/Ulferin/GameOfLife/internal/core"
)

// Static parallelizes a step with a fixed block partition: the rows are
// split into one contiguous range per worker up front, and each worker
// computes exactly its range. Ranges are balanced to within one row, so
// with a uniform per-cell cost no worker is left idle.
type Static struct {
	workers int
}

// NewStatic returns a stepper that uses the requested number of workers.
func NewStatic(workers int) *Static {
	if workers < 1 {
		workers = 1
	}
	return &Static{workers: workers}
}

// Name returns the stepper identifier.
func (s *Static) Name() string { return "static" }

// Step spawns one goroutine per range and blocks until all of them have
// finished. The WaitGroup is the generation barrier: no caller observes
// the next board before every worker's writes are complete.
func (s *Static) Step(b *core.Board) *core.Board {
	next := core.NewBoard(b.Rows, b.Cols)
	ranges := core.Partition(b.Rows, capWorkers(s.workers, b.Rows))

	var wg sync.WaitGroup
	wg.Add(len(ranges))
	for _, rg := range ranges {
		go func(rg core.Range) {
			defer wg.Done()
			computeRows(b, next, rg.Start, rg.End)
		}(rg)
	}
	wg.Wait()

	return next
}

func init() {
	core.Register("static", func(workers int) core.Stepper {
		return NewStatic(workers)
	})
}
