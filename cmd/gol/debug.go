//go:build debug

package main

import (
	"fmt"
	"time"

	"github.com/Ulferin/GameOfLife/internal/app"
	"github.com/Ulferin/GameOfLife/internal/core"
	"github.com/Ulferin/GameOfLife/internal/engine"
	"github.com/Ulferin/GameOfLife/internal/render"
)

// stepHook prints every generation and throttles the loop by the
// configured sleeptime. Only compiled in with the debug tag.
func stepHook(cfg *app.Config) engine.Hook {
	delay := time.Duration(cfg.SleepMS) * time.Millisecond
	return func(step int, b *core.Board) {
		fmt.Print(render.Text(b))
		fmt.Println(" ---------------------- ")
		time.Sleep(delay)
	}
}
