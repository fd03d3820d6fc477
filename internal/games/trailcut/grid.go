// Package trailcut implements a Qix-style territory-capture game: the
// cursor travels the coastline of captured ground, dives into the void
// leaving a vulnerable trail, and sealing the trail back to safe ground
// claims one side of the cut.
package trailcut

import "github.com/trailcut/trailcut/internal/core"

// Cell is the state of a single grid cell.
type Cell uint8

const (
	// CellEmpty is unclaimed void.
	CellEmpty Cell = iota
	// CellWall is permanently captured safe ground, including the border.
	CellWall
	// CellTrail is part of the in-progress cut. Transient: every trail
	// cell resolves to wall or empty when the cut closes.
	CellTrail
)

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}

// Grid is the dense cell map for the play area plus border.
// Storage is row-major so flood fills can index with a single integer.
type Grid struct {
	w, h   int
	border int
	cells  []Cell
}

// NewGrid creates a grid with all interior cells empty and the border
// ring (of the given thickness) pre-seeded as captured wall.
func NewGrid(w, h, border int) *Grid {
	g := &Grid{
		w:      w,
		h:      h,
		border: border,
		cells:  make([]Cell, w*h),
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x < border || x >= w-border || y < border || y >= h-border {
				g.cells[y*w+x] = CellWall
			}
		}
	}
	return g
}

// Width returns the grid width including the border.
func (g *Grid) Width() int { return g.w }

// Height returns the grid height including the border.
func (g *Grid) Height() int { return g.h }

// Border returns the border thickness.
func (g *Grid) Border() int { return g.border }

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// At returns the cell at (x, y). Out-of-bounds coordinates read as wall,
// so collision and adjacency checks near the edge behave like solid
// ground without special-casing.
func (g *Grid) At(x, y int) Cell {
	if !g.InBounds(x, y) {
		return CellWall
	}
	return g.cells[y*g.w+x]
}

// Set writes the cell at (x, y). Out-of-bounds writes are ignored.
func (g *Grid) Set(x, y int, c Cell) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[y*g.w+x] = c
}

// HasEmptyNeighbor reports whether any 4-connected neighbor of (x, y) is
// void. A wall cell with an empty neighbor is coastline, the only safe
// ground the cursor may traverse.
func (g *Grid) HasEmptyNeighbor(x, y int) bool {
	return g.At(x-1, y) == CellEmpty || g.At(x+1, y) == CellEmpty ||
		g.At(x, y-1) == CellEmpty || g.At(x, y+1) == CellEmpty
}

// PlayArea returns the interior rectangle excluded from the border.
func (g *Grid) PlayArea() core.Rect {
	return core.NewRect(g.border, g.border, g.w-2*g.border, g.h-2*g.border)
}

// PercentCaptured returns floor(100 * captured interior cells / total
// interior cells). Recomputed on demand, never cached.
func (g *Grid) PercentCaptured() int {
	area := g.PlayArea()
	total := area.W * area.H
	if total <= 0 {
		return 0
	}
	walls := 0
	for y := area.Y; y < area.Bottom(); y++ {
		row := y * g.w
		for x := area.X; x < area.Right(); x++ {
			if g.cells[row+x] == CellWall {
				walls++
			}
		}
	}
	return 100 * walls / total
}

// copyCells returns a private copy of the cell buffer for the flood-fill
// resolver; partial fill state must never leak into the live grid.
func (g *Grid) copyCells() []Cell {
	work := make([]Cell, len(g.cells))
	copy(work, g.cells)
	return work
}

// sealTrail commits every trail cell to wall. The cut itself is always
// sealed at closure, whichever side wins.
func (g *Grid) sealTrail() {
	for i, c := range g.cells {
		if c == CellTrail {
			g.cells[i] = CellWall
		}
	}
}
