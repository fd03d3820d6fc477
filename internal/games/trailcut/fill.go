package trailcut

import "github.com/trailcut/trailcut/internal/core"

// Side labels written into the working copy during capture resolution.
// They share the Cell value space but never touch the live grid.
const (
	cellSideA Cell = iota + 8
	cellSideB
)

// fillSide summarizes one side of a closed cut.
type fillSide struct {
	Cells   int // Void cells reachable from the seed
	Enemies int // Distinct enemies present in the region
}

// captureResult is the outcome of resolving a closed cut.
type captureResult struct {
	work  []Cell // Labeled working copy, same indexing as the grid
	sideA fillSide
	sideB fillSide
}

// degenerate reports whether no sensible region commit exists: a seed
// sat on non-void ground, or both seeds resolved to the same region.
func (r captureResult) degenerate() bool {
	return r.sideA.Cells == 0 || r.sideB.Cells == 0
}

// captured returns the label and stats of the winning side. The side
// holding more enemies is captured; that removes more threats and
// rewards the riskier cut. Ties go to side A, which keeps scoring
// deterministic (side A is above the cut for horizontal travel, left of
// it for vertical travel).
func (r captureResult) captured() (Cell, fillSide) {
	if r.sideA.Enemies >= r.sideB.Enemies {
		return cellSideA, r.sideA
	}
	return cellSideB, r.sideB
}

// resolveCapture runs two independent flood fills from the seed points on
// a private copy of the grid and reports region size and enemy occupancy
// per side. A pure function of its inputs: the live grid is never
// touched, so resolving the same snapshot twice yields identical labels.
//
// The fills are sequential over one shared working copy. Side B fills
// only cells still empty after side A, so the two labelings can never
// bleed into each other; if both seeds fall in one region, side B comes
// back empty and the result is degenerate.
func resolveCapture(g *Grid, seedA, seedB Point, enemies []Enemy) captureResult {
	work := g.copyCells()
	seen := make([]bool, len(enemies))

	res := captureResult{work: work}
	res.sideA = floodFill(g, work, seedA, cellSideA, enemies, seen)
	for i := range seen {
		seen[i] = false
	}
	res.sideB = floodFill(g, work, seedB, cellSideB, enemies, seen)
	return res
}

// floodFill labels the 4-connected void region around seed, using an
// explicit stack of row-major indices; play areas run well past a
// thousand cells, too deep for recursion.
func floodFill(g *Grid, work []Cell, seed Point, label Cell, enemies []Enemy, seen []bool) fillSide {
	var side fillSide

	if !g.InBounds(seed.X, seed.Y) || work[seed.Y*g.w+seed.X] != CellEmpty {
		return side
	}

	stack := make([]int, 0, 64)
	work[seed.Y*g.w+seed.X] = label
	stack = append(stack, seed.Y*g.w+seed.X)

	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		x, y := idx%g.w, idx/g.w
		side.Cells++

		// An enemy straddling a cell boundary still counts: any enemy
		// within one cell in both axes is present in this region.
		for i := range enemies {
			if seen[i] {
				continue
			}
			ex, ey := enemies[i].CellX(), enemies[i].CellY()
			if core.Abs(ex-x) <= 1 && core.Abs(ey-y) <= 1 {
				seen[i] = true
				side.Enemies++
			}
		}

		for _, n := range [4]Point{{x - 1, y}, {x + 1, y}, {x, y - 1}, {x, y + 1}} {
			if !g.InBounds(n.X, n.Y) {
				continue
			}
			nidx := n.Y*g.w + n.X
			if work[nidx] == CellEmpty {
				work[nidx] = label
				stack = append(stack, nidx)
			}
		}
	}

	return side
}
