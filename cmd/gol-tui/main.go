package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Ulferin/GameOfLife/internal/app"
	"github.com/Ulferin/GameOfLife/internal/core"
	"github.com/Ulferin/GameOfLife/internal/tui"

	_ "github.com/Ulferin/GameOfLife/internal/engine"
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
	delay := time.Duration(cfg.SleepMS) * time.Millisecond

	board, err := tui.Run(board, cfg.Iters, factory(cfg.Workers), delay)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Final alive cells: %d\n", board.Alive())
}
