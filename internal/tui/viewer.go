// Package tui is an interactive terminal viewer for the simulation. It is
// an observer of the step engine: it never changes step semantics, only
// when the next step is requested.
package tui

import (
	"fmt"
	"time"

	"github.com/Ulferin/GameOfLife/internal/core"

	termbox "github.com/nsf/termbox-go"
)

// Run drives the stepper for the given number of iterations, drawing every
// published generation to the terminal and sleeping delay between steps.
// 'p' toggles pause, 'q' or Esc stops the run early. The returned board is
// the last published generation.
func Run(b *core.Board, iterations int, s core.Stepper, delay time.Duration) (*core.Board, error) {
	if err := termbox.Init(); err != nil {
		return b, err
	}
	defer termbox.Close()

	events := make(chan termbox.Event)
	go func() {
		for {
			events <- termbox.PollEvent()
		}
	}()

	draw(b, 0, false)
	paused := false
	for step := 1; step <= iterations; {
		if paused {
			// Block on input until unpaused or quit.
			quit, toggle := handleKey(<-events)
			if quit {
				return b, nil
			}
			if toggle {
				paused = false
				draw(b, step-1, paused)
			}
			continue
		}

		select {
		case ev := <-events:
			quit, toggle := handleKey(ev)
			if quit {
				return b, nil
			}
			if toggle {
				paused = true
				draw(b, step-1, paused)
			}
			continue
		default:
		}

		b = s.Step(b)
		draw(b, step, false)
		step++
		if delay > 0 {
			time.Sleep(delay)
		}
	}
	return b, nil
}

func handleKey(ev termbox.Event) (quit, togglePause bool) {
	if ev.Type != termbox.EventKey {
		return false, false
	}
	switch {
	case ev.Ch == 'q' || ev.Key == termbox.KeyEsc:
		return true, false
	case ev.Ch == 'p':
		return false, true
	}
	return false, false
}

// draw paints one terminal cell per board cell with a status line below.
func draw(b *core.Board, step int, paused bool) {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			if b.At(r, c) != 0 {
				termbox.SetCell(c, r, 'X', termbox.ColorWhite, termbox.ColorDefault)
			}
		}
	}
	status := fmt.Sprintf("step %d  alive %d", step, b.Alive())
	if paused {
		status += "  [paused]"
	}
	for i, ch := range status {
		termbox.SetCell(i, b.Rows+1, ch, termbox.ColorYellow, termbox.ColorDefault)
	}
	termbox.Flush()
}
