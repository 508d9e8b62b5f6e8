//go:build ebiten

package app

import (
	"image/color"
	"time"

	"github.com/Ulferin/GameOfLife/internal/core"
	"github.com/Ulferin/GameOfLife/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a stepper-driven board to the ebiten.Game interface.
type Game struct {
	board   *core.Board
	stepper core.Stepper
	painter *render.GridPainter

	onColor  color.Color
	offColor color.Color

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game running the provided stepper over the board.
func New(b *core.Board, stepper core.Stepper, scale int, seed int64) *Game {
	return &Game{
		board:    b,
		stepper:  stepper,
		painter:  render.NewGridPainter(b.Cols, b.Rows),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
		seed:     seed,
	}
}

// Reset reseeds the board with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.board = core.NewRandomBoard(g.board.Rows, g.board.Cols, seed)
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	if (!g.paused) || g.tickOnce {
		g.board = g.stepper.Step(g.board)
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.board.Cells(), g.onColor, g.offColor, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.board.Cols * g.scale, g.board.Rows * g.scale
}
