package trailcut

import (
	"math/rand"
	"testing"

	"github.com/trailcut/trailcut/internal/config"
	"github.com/trailcut/trailcut/internal/core"
)

// testConfig is a 10x10 play area with no enemies and deterministic
// speeds, so tests place their own enemies cell-exactly.
func testConfig() config.TrailcutConfig {
	return config.TrailcutConfig{
		Grid:   config.GridConfig{Width: 12, Height: 12, Border: 1},
		Player: config.PlayerConfig{Speed: 1.0},
		Enemies: config.EnemyConfig{
			Speed: 0.5,
			Count: 0,
		},
		Gameplay: config.GameplayConfig{
			Lives:         3,
			WinPercent:    75,
			CellPoints:    1,
			EnemyBonus:    100,
			AnnounceTicks: 5,
		},
	}
}

// newTestGame builds a game directly on the given config, bypassing the
// YAML loader.
func newTestGame(cfg config.TrailcutConfig) *Game {
	g := New()
	g.rng = rand.New(rand.NewSource(1))
	g.runtime = core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 60, Seed: 1}
	g.cfg = cfg
	g.level = 1
	g.lives = cfg.Gameplay.Lives
	g.hudHeight = 2
	g.resetBoard()
	return g
}

func dirFrame(a core.Action) core.InputFrame {
	f := core.NewInputFrame()
	f.Set(a)
	return f
}

func stepN(g *Game, f core.InputFrame, n int) core.StepResult {
	var res core.StepResult
	for i := 0; i < n; i++ {
		res = g.Step(f)
	}
	return res
}

// cutColumn walks the cursor from its spawn to the top of column x and
// dives straight down until the cut closes at the bottom border.
func cutColumn(t *testing.T, g *Game, x int) core.StepResult {
	t.Helper()
	empty := core.NewInputFrame()

	for g.player.CellX() != x {
		dir := core.ActionLeft
		if g.player.CellX() < x {
			dir = core.ActionRight
		}
		g.Step(dirFrame(dir))
	}

	res := g.Step(dirFrame(core.ActionDown))
	for g.player.Mode == ModeOnVoid {
		res = g.Step(empty)
	}
	return res
}

func TestStraightCutCapturesSmallerSide(t *testing.T) {
	g := newTestGame(testConfig())

	cutColumn(t, g, 2)

	// The cut at x=2 splits the void into one column on the left and
	// eight on the right. No enemies anywhere, so the tie-break picks
	// the left strip: 10 cells captured plus the 10-cell sealed trail.
	if got := g.PercentCaptured(); got != 20 {
		t.Fatalf("percent = %d, want 20", got)
	}
	for y := 1; y <= 10; y++ {
		if g.CellAt(1, y) != CellWall {
			t.Fatalf("left strip cell (1,%d) not captured", y)
		}
		if g.CellAt(2, y) != CellWall {
			t.Fatalf("trail cell (2,%d) not sealed", y)
		}
		if g.CellAt(4, y) != CellEmpty {
			t.Fatalf("released cell (4,%d) must stay void", y)
		}
	}
	if g.score != 10 {
		t.Errorf("score = %d, want 10 (captured cells only, trail does not score)", g.score)
	}
	if g.player.Mode != ModeOnWall {
		t.Error("cursor must come back to safe-ground mode after closure")
	}
}

func TestNoTrailSurvivesClosure(t *testing.T) {
	g := newTestGame(testConfig())
	cutColumn(t, g, 5)

	for y := 0; y < 12; y++ {
		for x := 0; x < 12; x++ {
			if g.CellAt(x, y) == CellTrail {
				t.Fatalf("trail cell (%d,%d) left behind after closure", x, y)
			}
		}
	}
}

func TestClosureSidestepsOntoReleasedVoid(t *testing.T) {
	g := newTestGame(testConfig())
	cutColumn(t, g, 2)

	// The landing cell was sealed solid, so the cursor hops onto the
	// released side of the cut and is ready for the next dive.
	px, py := g.player.CellX(), g.player.CellY()
	if px != 3 || py != 10 {
		t.Fatalf("player at (%d,%d), want sidestep onto (3,10)", px, py)
	}
	if g.CellAt(px, py) != CellEmpty {
		t.Error("sidestep must land on void")
	}
	if g.player.VX != 0 || g.player.VY != 0 {
		t.Error("closure must zero the velocity")
	}
}

func TestEnemyPullsCaptureToItsSide(t *testing.T) {
	g := newTestGame(testConfig())
	// Stationary enemy strictly inside the smaller (left) side.
	g.enemies = append(g.enemies, Enemy{X: 1, Y: 5})

	res := cutColumn(t, g, 2)

	if g.CellAt(1, 5) != CellWall {
		t.Fatal("enemy's side must be captured")
	}
	if len(g.enemies) != 0 {
		t.Fatalf("enemy roster = %d, want 0 after walling in", len(g.enemies))
	}
	if g.score != 110 {
		t.Errorf("score = %d, want 10 cells + 100 bonus", g.score)
	}

	found := false
	for _, ev := range res.Events {
		if ev.Kind == core.EventEnemyDestroyed && ev.X == 1 && ev.Y == 5 {
			found = true
		}
	}
	if !found {
		t.Error("missing enemy-destroyed event at (1,5)")
	}
}

func TestEnemyOnLargerSideFlipsCapture(t *testing.T) {
	g := newTestGame(testConfig())
	// Stationary enemy deep inside the larger (right) side.
	g.enemies = append(g.enemies, Enemy{X: 7, Y: 5})

	cutColumn(t, g, 2)

	// Right side captured: 80 cells plus the 10-cell trail and the
	// destroyed enemy. 90% also clears the 75% win threshold, so the
	// very same tick must report the level banner.
	if g.CellAt(1, 5) != CellEmpty {
		t.Error("losing left side must be released to void")
	}
	if g.score != 180 {
		t.Errorf("score = %d, want 80 cells + 100 bonus", g.score)
	}
	if len(g.enemies) != 0 {
		t.Error("walled-in enemy must be removed")
	}
	if got := g.Snapshot().State; got != StateLevelAnnounce {
		t.Fatalf("state = %q, want level announce on the closing tick", got)
	}
}

func TestEnemyInReleasedSideSurvives(t *testing.T) {
	g := newTestGame(testConfig())
	// One enemy per side: the tie-break captures side A (left), so the
	// right-side enemy was only ever briefly enclosed and lives on.
	g.enemies = append(g.enemies,
		Enemy{X: 1, Y: 8},
		Enemy{X: 7, Y: 5},
	)

	cutColumn(t, g, 3)

	if len(g.enemies) != 1 {
		t.Fatalf("enemy roster = %d, want the released-side enemy to survive", len(g.enemies))
	}
	if g.enemies[0].CellX() != 7 {
		t.Errorf("surviving enemy at x=%d, want 7", g.enemies[0].CellX())
	}
}

func TestTieBreakIsReproducible(t *testing.T) {
	run := func() (int, int) {
		g := newTestGame(testConfig())
		g.enemies = append(g.enemies,
			Enemy{X: 1, Y: 8},
			Enemy{X: 7, Y: 5},
		)
		cutColumn(t, g, 3)
		return g.score, g.PercentCaptured()
	}

	score0, pct0 := run()
	for i := 0; i < 3; i++ {
		score, pct := run()
		if score != score0 || pct != pct0 {
			t.Fatalf("run %d: score/percent = %d/%d, want %d/%d", i, score, pct, score0, pct0)
		}
	}
}

func TestDegenerateClosureSealsTrailOnly(t *testing.T) {
	g := newTestGame(testConfig())

	// A single trail cell does not split the void: both perpendicular
	// seeds fall in the same region, side A swallows it all, and side B
	// comes back empty. Nothing must be committed.
	g.player = Player{X: 5, Y: 1, VY: -1, Mode: ModeOnVoid}
	g.grid.Set(5, 1, CellTrail)
	before := g.score

	g.resolveClosure()

	if g.CellAt(5, 1) != CellWall {
		t.Error("the cut itself must still be sealed")
	}
	if g.score != before {
		t.Errorf("score = %d, want unchanged on a degenerate closure", g.score)
	}
	// Only the single sealed cell counts toward capture.
	if got := g.PercentCaptured(); got != 1 {
		t.Errorf("percent = %d, want 1", got)
	}
	for y := 2; y <= 10; y++ {
		if g.CellAt(5, y) != CellEmpty {
			t.Fatalf("cell (5,%d) must stay void after degenerate closure", y)
		}
	}
}

func TestStuckWhenBothProbesBlocked(t *testing.T) {
	// A one-wide dead-end channel: after sealing, both perpendicular
	// probes are wall. The bounded recovery leaves the cursor on solid
	// ground; that is the documented limit of the sidestep rule.
	g := newTestGame(testConfig())
	for y := 1; y <= 10; y++ {
		g.grid.Set(4, y, CellWall)
		g.grid.Set(6, y, CellWall)
	}
	g.grid.Set(5, 1, CellTrail)
	g.grid.Set(5, 2, CellTrail)
	g.player = Player{X: 5, Y: 2, VY: 1, Mode: ModeOnVoid}

	g.resolveClosure()

	if g.player.CellX() != 5 || g.player.CellY() != 2 {
		t.Errorf("player at (%d,%d), want to stay at (5,2)", g.player.CellX(), g.player.CellY())
	}
	if g.CellAt(5, 2) != CellWall {
		t.Error("landing cell must be sealed")
	}
}
