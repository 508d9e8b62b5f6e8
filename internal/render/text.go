package render

import (
	"strings"

	"github.com/Ulferin/GameOfLife/internal/core"
)

const (
	aliveGlyph = 'X'
	deadGlyph  = '°'
)

// Text renders the board as one glyph per cell, row-major, each row
// terminated by a newline. Used by the debug build of the CLI.
func Text(b *core.Board) string {
	var sb strings.Builder
	sb.Grow((b.Cols + 1) * b.Rows)
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			if b.At(r, c) != 0 {
				sb.WriteRune(aliveGlyph)
			} else {
				sb.WriteRune(deadGlyph)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
