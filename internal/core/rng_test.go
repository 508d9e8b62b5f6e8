package core

import (
	"slices"
	"testing"
)

func TestRandomBoardIsDeterministic(t *testing.T) {
	a := NewRandomBoard(24, 32, 42)
	b := NewRandomBoard(24, 32, 42)
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("same seed must produce the same board")
	}

	c := NewRandomBoard(24, 32, 43)
	if slices.Equal(a.Cells(), c.Cells()) {
		t.Fatal("different seeds produced identical boards")
	}
}

func TestRandomBoardCellsAreBinary(t *testing.T) {
	b := NewRandomBoard(16, 16, 7)
	for i, c := range b.Cells() {
		if c > 1 {
			t.Fatalf("cell %d holds %d, expected 0 or 1", i, c)
		}
	}
}
