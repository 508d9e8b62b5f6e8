package core

// Board stores a dense 2D grid of cell states in row-major order.
// A cell is 0 when dead and 1 when alive. Dimensions are fixed for
// the lifetime of the board.
type Board struct {
	Rows, Cols int
	data       []uint8
}

// NewBoard allocates an all-dead board with the given dimensions.
func NewBoard(rows, cols int) *Board {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	return &Board{Rows: rows, Cols: cols, data: make([]uint8, rows*cols)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (b *Board) Cells() []uint8 { return b.data }

// Index returns the linear slice index for coordinates (row, col).
func (b *Board) Index(row, col int) int { return row*b.Cols + col }

// At returns the state of the cell at (row, col).
func (b *Board) At(row, col int) uint8 { return b.data[row*b.Cols+col] }

// Set writes the state of the cell at (row, col).
func (b *Board) Set(row, col int, v uint8) { b.data[row*b.Cols+col] = v }

// InBounds reports whether (row, col) lies inside the board. The grid is
// bounded, not toroidal, so out-of-range neighbors contribute nothing.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.Rows && col >= 0 && col < b.Cols
}

// Alive returns the number of live cells on the board.
func (b *Board) Alive() int {
	n := 0
	for _, c := range b.data {
		if c != 0 {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	c := &Board{Rows: b.Rows, Cols: b.Cols, data: make([]uint8, len(b.data))}
	copy(c.data, b.data)
	return c
}
