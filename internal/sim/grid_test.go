package sim

import "testing"

func TestGridSetClampsLife(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(1, 1, Cell{Kind: Fire, Life: 10000})
	if got := g.At(1, 1).Life; got != MaxLife {
		t.Fatalf("Life = %d, want %d", got, MaxLife)
	}
	g.Set(1, 1, Cell{Kind: Fire, Life: -5})
	if got := g.At(1, 1).Life; got != 0 {
		t.Fatalf("Life = %d, want 0", got)
	}
}

func TestGridSetZeroesEmptyLife(t *testing.T) {
	g := NewGrid(2, 2)
	g.Set(0, 0, Cell{Kind: Empty, Life: 99})
	if got := g.At(0, 0); got != (Cell{}) {
		t.Fatalf("Set(Empty, 99) = %+v, want zero cell", got)
	}
}

func TestGridOutOfBoundsNoSideEffect(t *testing.T) {
	g := NewGrid(2, 2)
	g.Set(5, 5, Cell{Kind: Sand})
	if g.At(5, 5) != (Cell{}) {
		t.Fatalf("out-of-bounds At must return zero cell")
	}
}

func TestGridSwap(t *testing.T) {
	g := NewGrid(2, 1)
	g.Set(0, 0, Cell{Kind: Sand})
	g.Set(1, 0, Cell{Kind: Water})
	g.Swap(0, 0, 1, 0)
	if g.At(0, 0).Kind != Water || g.At(1, 0).Kind != Sand {
		t.Fatalf("Swap did not exchange cells: %+v %+v", g.At(0, 0), g.At(1, 0))
	}
}

func TestGridCellConservation(t *testing.T) {
	g := NewGrid(5, 5)
	if got := len(g.cell); got != 25 {
		t.Fatalf("cell count = %d, want 25", got)
	}
	g.Resize(3, 3)
	if got := len(g.cell); got != 9 {
		t.Fatalf("after resize, cell count = %d, want 9", got)
	}
}
