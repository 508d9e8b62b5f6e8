package engine

import "github.com/Ulferin/GameOfLife/internal/core"

// Hook observes a freshly published generation. step counts from 1. The
// board passed in is the engine's current board: hooks must treat it as
// read-only.
type Hook func(step int, b *core.Board)

// Run advances the board for the given number of iterations, one full
// generation at a time. Step N+1 only starts once step N has published,
// so the hook always sees a settled board. The returned board is the
// final generation; the caller owns it exclusively.
func Run(b *core.Board, iterations int, s core.Stepper, hook Hook) *core.Board {
	for i := 1; i <= iterations; i++ {
		b = s.Step(b)
		if hook != nil {
			hook(i, b)
		}
	}
	return b
}
