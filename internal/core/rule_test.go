package core

import "testing"

func boardFrom(t *testing.T, rows, cols int, live [][2]int) *Board {
	t.Helper()
	b := NewBoard(rows, cols)
	for _, rc := range live {
		b.Set(rc[0], rc[1], 1)
	}
	return b
}

func TestIsolatedCellDies(t *testing.T) {
	b := boardFrom(t, 3, 3, [][2]int{{1, 1}})
	if NextCell(b, 1, 1) != 0 {
		t.Fatal("cell with 0 neighbors must die")
	}
}

func TestDeadCellWithNoNeighborsStaysDead(t *testing.T) {
	b := NewBoard(3, 3)
	if NextCell(b, 1, 1) != 0 {
		t.Fatal("dead cell with 0 neighbors must stay dead")
	}
}

func TestBirthOnExactlyThreeNeighbors(t *testing.T) {
	// (1,1) is dead with live neighbors at (0,0), (0,1), (0,2).
	b := boardFrom(t, 3, 3, [][2]int{{0, 0}, {0, 1}, {0, 2}})
	if NextCell(b, 1, 1) != 1 {
		t.Fatal("dead cell with 3 neighbors must become alive")
	}

	b.Set(1, 1, 1)
	if NextCell(b, 1, 1) != 1 {
		t.Fatal("live cell with 3 neighbors must survive")
	}
}

func TestSurvivalOnTwoNeighbors(t *testing.T) {
	b := boardFrom(t, 3, 3, [][2]int{{1, 0}, {1, 1}, {1, 2}})
	if NextCell(b, 1, 1) != 1 {
		t.Fatal("live cell with 2 neighbors must survive")
	}
}

func TestOvercrowdedCellDies(t *testing.T) {
	b := boardFrom(t, 3, 3, [][2]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}})
	if NextCell(b, 1, 1) != 0 {
		t.Fatal("live cell with 4 neighbors must die")
	}
}

func TestBoundaryNeighborsAreClipped(t *testing.T) {
	// Live cells on the left and right edges of the same row. With
	// wraparound they would be neighbors; here they must not be.
	b := boardFrom(t, 2, 3, [][2]int{{0, 0}, {0, 2}})
	if NextCell(b, 0, 0) != 0 {
		t.Fatal("corner cell must not see the opposite edge as a neighbor")
	}
	if NextCell(b, 0, 1) != 0 {
		t.Fatal("dead cell between two live cells has only 2 neighbors")
	}
}

func TestCornerCellCounts(t *testing.T) {
	// Corner (0,0) has exactly 3 in-bounds neighbors; all alive keeps it.
	b := boardFrom(t, 3, 3, [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}})
	if NextCell(b, 0, 0) != 1 {
		t.Fatal("corner cell with all 3 in-bounds neighbors alive must survive")
	}
}
