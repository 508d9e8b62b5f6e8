//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Ulferin/GameOfLife/internal/app"
	"github.com/Ulferin/GameOfLife/internal/core"

	_ "github.com/Ulferin/GameOfLife/internal/engine"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.ParseArgs(flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, app.Usage(os.Args[0]))
		os.Exit(1)
	}
	if cfg.CapWorkers() {
		fmt.Fprintln(os.Stderr, "Warning: bounding workers with nrows.")
	}

	factory, ok := core.Steppers()[cfg.Strategy]
	if !ok {
		log.Fatalf("unknown strategy %q", cfg.Strategy)
	}

	board := core.NewRandomBoard(cfg.Rows, cfg.Cols, cfg.Seed)
	game := app.New(board, factory(cfg.Workers), cfg.Scale, cfg.Seed)

	ebiten.SetWindowTitle("game of life (" + cfg.Strategy + ")")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Cols*cfg.Scale, cfg.Rows*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
