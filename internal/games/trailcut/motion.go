package trailcut

import (
	"math"

	"github.com/trailcut/trailcut/internal/core"
)

// Mode is the cursor's movement mode.
type Mode uint8

const (
	// ModeOnWall: idle on safe ground, free to change direction.
	ModeOnWall Mode = iota
	// ModeOnVoid: drawing a trail. Direction is committed until closure.
	ModeOnVoid
)

func (m Mode) String() string {
	if m == ModeOnVoid {
		return "drawing"
	}
	return "idle"
}

// Player is the territory-cutting cursor. Position is continuous and
// floored to a cell for all grid tests.
type Player struct {
	X, Y   float64
	VX, VY float64
	Mode   Mode
}

// CellX returns the player's floored x cell coordinate.
func (p *Player) CellX() int { return int(math.Floor(p.X)) }

// CellY returns the player's floored y cell coordinate.
func (p *Player) CellY() int { return int(math.Floor(p.Y)) }

// Enemy roams the void and kills the cursor on trail contact.
// Phase drives the spin animation only; it never affects gameplay.
type Enemy struct {
	X, Y   float64
	VX, VY float64
	Phase  float64
}

// CellX returns the enemy's floored x cell coordinate.
func (e *Enemy) CellX() int { return int(math.Floor(e.X)) }

// CellY returns the enemy's floored y cell coordinate.
func (e *Enemy) CellY() int { return int(math.Floor(e.Y)) }

// moveOutcome is the result of one player movement step.
type moveOutcome int

const (
	moveNone    moveOutcome = iota // No cell change (idle, blocked, or sub-cell)
	moveTrail                      // Advanced into the void, trail laid
	moveClosure                    // Touched safe ground with trail behind
	moveSelfHit                    // Ran into the own trail: fatal
)

// movePlayer advances the player one tick and mutates the grid with any
// trail laid. On closure the velocity is preserved so the orchestrator
// can still read the travel direction for seed placement.
func movePlayer(g *Grid, p *Player) moveOutcome {
	if p.VX == 0 && p.VY == 0 {
		return moveNone
	}

	nx := p.X + p.VX
	ny := p.Y + p.VY
	cx := int(math.Floor(nx))
	cy := int(math.Floor(ny))

	// Sub-cell advance: nothing to test until the cell changes.
	if cx == p.CellX() && cy == p.CellY() {
		p.X = core.ClampF(nx, 0, float64(g.Width()-1))
		p.Y = core.ClampF(ny, 0, float64(g.Height()-1))
		return moveNone
	}

	switch p.Mode {
	case ModeOnWall:
		if !g.InBounds(cx, cy) {
			p.VX, p.VY = 0, 0
			return moveNone
		}
		target := g.At(cx, cy)
		// Safe-ground travel is restricted to the coastline; the cursor
		// may not wander the interior of captured territory.
		if target == CellWall && !g.HasEmptyNeighbor(cx, cy) {
			p.VX, p.VY = 0, 0
			return moveNone
		}
		p.X = core.ClampF(nx, 0, float64(g.Width()-1))
		p.Y = core.ClampF(ny, 0, float64(g.Height()-1))
		if target == CellEmpty {
			p.Mode = ModeOnVoid
			g.Set(cx, cy, CellTrail)
			return moveTrail
		}
		return moveNone

	default: // ModeOnVoid
		switch g.At(cx, cy) {
		case CellWall:
			// Re-entering safe ground is a closure event, not a blocked
			// move: the player stays on the last trail cell.
			return moveClosure
		case CellTrail:
			return moveSelfHit
		default:
			p.X = core.ClampF(nx, 0, float64(g.Width()-1))
			p.Y = core.ClampF(ny, 0, float64(g.Height()-1))
			g.Set(cx, cy, CellTrail)
			return moveTrail
		}
	}
}

// moveEnemy advances one enemy by one move. Returns true if the enemy is
// sitting on a trail cell, which is fatal for the player and skips the
// enemy's motion for this move.
//
// Each axis bounces independently off walls; out-of-bounds cells read as
// wall, so the border reflects without special cases. After moving, the
// position is clamped strictly inside the play area and the velocity is
// pointed back inward whenever the clamp engaged.
func moveEnemy(g *Grid, e *Enemy) bool {
	cx, cy := e.CellX(), e.CellY()
	if g.At(cx, cy) == CellTrail {
		return true
	}

	if g.At(int(math.Floor(e.X+e.VX)), cy) == CellWall {
		e.VX = -e.VX
	}
	if g.At(cx, int(math.Floor(e.Y+e.VY))) == CellWall {
		e.VY = -e.VY
	}
	e.X += e.VX
	e.Y += e.VY

	area := g.PlayArea()
	minX, maxX := float64(area.X), float64(area.Right()-1)
	minY, maxY := float64(area.Y), float64(area.Bottom()-1)
	if e.X < minX {
		e.X = minX
		e.VX = math.Abs(e.VX)
	} else if e.X > maxX {
		e.X = maxX
		e.VX = -math.Abs(e.VX)
	}
	if e.Y < minY {
		e.Y = minY
		e.VY = math.Abs(e.VY)
	} else if e.Y > maxY {
		e.Y = maxY
		e.VY = -math.Abs(e.VY)
	}

	e.Phase += 0.2
	return false
}
