package core

// NextCell computes the next state of the cell at (row, col) from the
// current board. The board must not change for the duration of the call.
//
// The rule is Conway's: a live cell with 2 or 3 live neighbors survives,
// a dead cell with exactly 3 live neighbors is born, everything else is
// dead. Neighbors outside the board count as dead.
func NextCell(b *Board, row, col int) uint8 {
	neighbors := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if b.InBounds(row+dr, col+dc) {
				neighbors += int(b.At(row+dr, col+dc))
			}
		}
	}
	alive := b.At(row, col) != 0
	if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
		return 1
	}
	return 0
}
