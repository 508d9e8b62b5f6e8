package engine

import "github.com/Ulferin/GameOfLife/internal/core"

// Sequential advances the board on the calling goroutine. It is the
// reference stepper the parallel schedules are checked against.
type Sequential struct{}

// NewSequential returns the single-threaded stepper.
func NewSequential() Sequential { return Sequential{} }

// Name returns the stepper identifier.
func (Sequential) Name() string { return "seq" }

// Step computes the next generation row by row.
func (Sequential) Step(b *core.Board) *core.Board {
	next := core.NewBoard(b.Rows, b.Cols)
	computeRows(b, next, 0, b.Rows-1)
	return next
}

func init() {
	core.Register("seq", func(int) core.Stepper {
		return NewSequential()
	})
}
