package trailcut

import "testing"

func TestNewGridBorderIsWall(t *testing.T) {
	sizes := []struct {
		w, h, border int
	}{
		{8, 8, 1},
		{12, 10, 1},
		{20, 20, 2},
		{60, 22, 1},
	}

	for _, s := range sizes {
		g := NewGrid(s.w, s.h, s.border)
		for y := 0; y < s.h; y++ {
			for x := 0; x < s.w; x++ {
				onBorder := x < s.border || x >= s.w-s.border ||
					y < s.border || y >= s.h-s.border
				got := g.At(x, y)
				if onBorder && got != CellWall {
					t.Fatalf("grid %dx%d border %d: cell (%d,%d) = %v, want wall", s.w, s.h, s.border, x, y, got)
				}
				if !onBorder && got != CellEmpty {
					t.Fatalf("grid %dx%d border %d: cell (%d,%d) = %v, want empty", s.w, s.h, s.border, x, y, got)
				}
			}
		}
	}
}

func TestOutOfBoundsReadsWall(t *testing.T) {
	g := NewGrid(8, 8, 1)

	probes := []Point{
		{-1, 0}, {0, -1}, {8, 0}, {0, 8}, {-5, -5}, {100, 100},
	}
	for _, p := range probes {
		if got := g.At(p.X, p.Y); got != CellWall {
			t.Errorf("At(%d,%d) = %v, want wall", p.X, p.Y, got)
		}
	}
}

func TestOutOfBoundsWritesIgnored(t *testing.T) {
	g := NewGrid(8, 8, 1)
	before := g.copyCells()

	g.Set(-1, 0, CellTrail)
	g.Set(8, 3, CellTrail)
	g.Set(3, -2, CellTrail)

	after := g.copyCells()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("out-of-bounds write mutated cell %d", i)
		}
	}
}

func TestHasEmptyNeighborCoastline(t *testing.T) {
	g := NewGrid(8, 8, 1)

	// Border cell next to the void is coastline.
	if !g.HasEmptyNeighbor(3, 0) {
		t.Error("border cell (3,0) should be coastline")
	}
	// Corner cell touches only wall.
	if g.HasEmptyNeighbor(0, 0) {
		t.Error("corner cell (0,0) should not be coastline")
	}

	// Bury an interior cell in wall on all four sides.
	for _, p := range []Point{{3, 3}, {2, 3}, {4, 3}, {3, 2}, {3, 4}} {
		g.Set(p.X, p.Y, CellWall)
	}
	if g.HasEmptyNeighbor(3, 3) {
		t.Error("fully enclosed cell (3,3) should not be coastline")
	}
}

func TestPercentCaptured(t *testing.T) {
	// 12x12 with border 1 leaves a 10x10 = 100 cell play area, so each
	// interior wall cell is worth exactly one percent.
	g := NewGrid(12, 12, 1)

	if got := g.PercentCaptured(); got != 0 {
		t.Fatalf("fresh grid percent = %d, want 0", got)
	}

	for x := 1; x <= 10; x++ {
		g.Set(x, 1, CellWall)
	}
	if got := g.PercentCaptured(); got != 10 {
		t.Fatalf("10 captured cells: percent = %d, want 10", got)
	}

	// Trail cells are not captured until sealed.
	for x := 1; x <= 10; x++ {
		g.Set(x, 2, CellTrail)
	}
	if got := g.PercentCaptured(); got != 10 {
		t.Fatalf("trail must not count as captured: percent = %d, want 10", got)
	}

	g.sealTrail()
	if got := g.PercentCaptured(); got != 20 {
		t.Fatalf("after seal: percent = %d, want 20", got)
	}

	for y := 1; y <= 10; y++ {
		for x := 1; x <= 10; x++ {
			g.Set(x, y, CellWall)
		}
	}
	if got := g.PercentCaptured(); got != 100 {
		t.Fatalf("full grid percent = %d, want 100", got)
	}
}

func TestPercentCapturedFloors(t *testing.T) {
	// 9x9 play area = 81 cells; 40 walls = 49.38% which must floor to 49.
	g := NewGrid(11, 11, 1)
	filled := 0
	for y := 1; y <= 9 && filled < 40; y++ {
		for x := 1; x <= 9 && filled < 40; x++ {
			g.Set(x, y, CellWall)
			filled++
		}
	}
	if got := g.PercentCaptured(); got != 49 {
		t.Fatalf("40/81 walls: percent = %d, want 49", got)
	}
}

func TestSealTrail(t *testing.T) {
	g := NewGrid(8, 8, 1)
	g.Set(3, 3, CellTrail)
	g.Set(3, 4, CellTrail)
	g.Set(5, 5, CellEmpty)

	g.sealTrail()

	if g.At(3, 3) != CellWall || g.At(3, 4) != CellWall {
		t.Error("trail cells not sealed to wall")
	}
	if g.At(5, 5) != CellEmpty {
		t.Error("seal must not touch empty cells")
	}
}
