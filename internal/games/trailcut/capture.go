package trailcut

import "github.com/trailcut/trailcut/internal/core"

// resolveClosure runs the capture sequence after the cursor touches safe
// ground with trail behind it: resolve both sides of the cut, seal the
// trail, commit the winning region, destroy walled-in enemies, score,
// and check the win threshold. The cursor always comes back OnWall.
func (g *Game) resolveClosure() {
	p := &g.player
	px, py := p.CellX(), p.CellY()

	// Seeds sit perpendicular to the travel direction so they land on
	// opposite sides of the cut: above/below for horizontal travel,
	// left/right for vertical.
	var seedA, seedB Point
	horizontal := p.VX != 0
	if horizontal {
		seedA = Point{px, py - 1}
		seedB = Point{px, py + 1}
	} else {
		seedA = Point{px - 1, py}
		seedB = Point{px + 1, py}
	}

	res := resolveCapture(g.grid, seedA, seedB, g.enemies)

	// The cut itself is always sealed, whichever side wins.
	g.grid.sealTrail()

	captured := 0
	if !res.degenerate() {
		// Winning side becomes wall. The losing side was never committed,
		// so leaving its cells untouched releases them back to void.
		label, side := res.captured()
		for i, c := range res.work {
			if c == label {
				g.grid.cells[i] = CellWall
			}
		}
		captured = side.Cells
	}

	// Any enemy now standing on captured ground is walled in and gone
	// for good. An enemy in the released side survives, even if the cut
	// briefly enclosed it.
	destroyed := 0
	kept := g.enemies[:0]
	for i := range g.enemies {
		e := g.enemies[i]
		ex, ey := e.CellX(), e.CellY()
		if g.grid.At(ex, ey) == CellWall {
			destroyed++
			g.events = append(g.events, core.Event{Kind: core.EventEnemyDestroyed, X: ex, Y: ey})
		} else {
			kept = append(kept, e)
		}
	}
	g.enemies = kept

	g.score += captured*g.cfg.Gameplay.CellPoints + destroyed*g.cfg.Gameplay.EnemyBonus

	p.Mode = ModeOnWall
	p.VX, p.VY = 0, 0

	if g.grid.PercentCaptured() >= g.cfg.Gameplay.WinPercent {
		g.announceTicks = g.cfg.Gameplay.AnnounceTicks
		return
	}

	// The landing cell was sealed solid by the commit, so hop the cursor
	// one cell to the side, back onto open void. The search is bounded
	// to the two perpendicular neighbors on purpose: if both are blocked
	// (a dead-end channel) the cursor stays on solid ground until the
	// next input.
	if g.grid.At(px, py) != CellEmpty {
		for _, q := range [2]Point{seedA, seedB} {
			if g.grid.At(q.X, q.Y) == CellEmpty {
				p.X, p.Y = float64(q.X), float64(q.Y)
				break
			}
		}
	}
}
