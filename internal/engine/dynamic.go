package engine

import (
	"sync"
	"sync/atomic"

	"github.com/Ulferin/GameOfLife/internal/core"
)

// Dynamic parallelizes a step with work stealing instead of a fixed
// partition: idle workers claim the next unprocessed row off a shared
// counter, so faster workers do more rows. The counter is the only shared
// mutable state; row writes stay disjoint because each claim hands out a
// row exactly once.
//
// For this automaton the per-cell cost is uniform, so Dynamic produces the
// same boards as Static with different scheduling overhead only.
type Dynamic struct {
	workers int
}

// NewDynamic returns a stepper that uses the requested number of workers.
func NewDynamic(workers int) *Dynamic {
	if workers < 1 {
		workers = 1
	}
	return &Dynamic{workers: workers}
}

// Name returns the stepper identifier.
func (d *Dynamic) Name() string { return "dynamic" }

// Step runs a fixed pool of workers that fetch-and-increment the shared
// row counter until every row is claimed, then joins them before the next
// board is returned.
func (d *Dynamic) Step(b *core.Board) *core.Board {
	next := core.NewBoard(b.Rows, b.Cols)
	workers := capWorkers(d.workers, b.Rows)

	var nextRow atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for {
				r := int(nextRow.Add(1)) - 1
				if r >= b.Rows {
					return
				}
				computeRows(b, next, r, r)
			}
		}()
	}
	wg.Wait()

	return next
}

func init() {
	core.Register("dynamic", func(workers int) core.Stepper {
		return NewDynamic(workers)
	})
}
