package world

import "testing"

func TestComputeVisible_SquareWindow(t *testing.T) {
	center := Cell{10, -3}
	const radius = 2
	visible := ComputeVisible(center, radius)

	if got, want := visible.Size(), 25; got != want {
		t.Fatalf("ComputeVisible size = %d, want %d", got, want)
	}
	// Corners belong to a square window, not a disc.
	for _, corner := range []Cell{center.Offset(2, 2), center.Offset(-2, -2), center.Offset(2, -2), center.Offset(-2, 2)} {
		if !visible.Has(corner) {
			t.Errorf("corner %v missing from window", corner)
		}
	}
	if visible.Has(center.Offset(3, 0)) {
		t.Error("cell outside the radius is visible")
	}
}

func TestVisibleCells_OrderAndMembership(t *testing.T) {
	center := Cell{0, 0}
	cells := VisibleCells(center, 1)
	want := []Cell{
		{1, -1}, {1, 0}, {1, 1},
		{0, -1}, {0, 0}, {0, 1},
		{-1, -1}, {-1, 0}, {-1, 1},
	}
	if len(cells) != len(want) {
		t.Fatalf("len = %d, want %d", len(cells), len(want))
	}
	for i := range want {
		if cells[i] != want[i] {
			t.Errorf("cells[%d] = %v, want %v", i, cells[i], want[i])
		}
		if !InWindow(center, cells[i], 1) {
			t.Errorf("InWindow(%v) = false", cells[i])
		}
	}
	if VisibleCells(center, -1) != nil {
		t.Error("negative radius should yield no cells")
	}
}

func TestReachableCells_Disc(t *testing.T) {
	reach := ReachableCells(Cell{0, 0}, 3)
	if !reach.Has(Cell{3, 0}) || !reach.Has(Cell{2, 2}) {
		t.Error("expected (3,0) and (2,2) to be reachable")
	}
	if reach.Has(Cell{3, 3}) {
		t.Error("(3,3) is at distance 4.24 and should not be reachable")
	}
}

func TestUnit_PureAndInRange(t *testing.T) {
	for i := -20; i <= 20; i++ {
		for j := -20; j <= 20; j++ {
			a := Unit(7, i, j, "spawn")
			if a < 0 || a >= 1 {
				t.Fatalf("Unit(7,%d,%d) = %v, out of [0,1)", i, j, a)
			}
			if b := Unit(7, i, j, "spawn"); a != b {
				t.Fatalf("Unit not stable at (%d,%d): %v vs %v", i, j, a, b)
			}
		}
	}
}

func TestHash_TagAndSeedIndependence(t *testing.T) {
	same := 0
	for i := 0; i < 64; i++ {
		if Hash(1, i, i, "spawn") == Hash(1, i, i, "value") {
			same++
		}
		if Hash(1, i, 0, "spawn") == Hash(2, i, 0, "spawn") {
			same++
		}
	}
	if same != 0 {
		t.Errorf("%d hash collisions between tags/seeds, want 0", same)
	}
}

func TestHash_PinnedValues(t *testing.T) {
	if got := Hash(0, 0, 0, "spawn"); got != 0xde1cb8009efaaadb {
		t.Errorf("Hash(0,0,0,spawn) = %#x", got)
	}
	if got := Hash(42, -3, 7, "value"); got != 0xbf74f3c9c01b69b8 {
		t.Errorf("Hash(42,-3,7,value) = %#x", got)
	}
}
