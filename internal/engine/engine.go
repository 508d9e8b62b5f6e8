// Package engine provides the generation steppers: a sequential reference
// implementation and two parallel schedules over a pool of workers. All
// steppers read the current board without mutating it and write disjoint
// rows of a fresh board, so a step needs no locks on cell data.
package engine

import "github.com/Ulferin/GameOfLife/internal/core"

// computeRows writes the next state of rows [start, end] of src into dst.
// Each row is owned by exactly one worker per step, so concurrent calls
// with disjoint spans never race.
func computeRows(src, dst *core.Board, start, end int) {
	for r := start; r <= end; r++ {
		for c := 0; c < src.Cols; c++ {
			dst.Set(r, c, core.NextCell(src, r, c))
		}
	}
}

// capWorkers bounds the worker count to [1, nrows] so every worker owns
// at least one row.
func capWorkers(workers, nrows int) int {
	if workers < 1 {
		workers = 1
	}
	if workers > nrows {
		workers = nrows
	}
	return workers
}
