package trailcut

import (
	"fmt"
	"math/rand"

	"github.com/trailcut/trailcut/internal/config"
	"github.com/trailcut/trailcut/internal/core"
	"github.com/trailcut/trailcut/internal/registry"
)

// Visual characters for rendering
const (
	WallChar   = '▒'
	BorderChar = '█'
	TrailChar  = '·'
	PlayerChar = '◆'
)

// Enemy spin animation frames, indexed by phase.
var enemyGlyphs = []rune{'✶', '✸'}

// Variant selects the registered rule set.
type Variant int

const (
	VariantClassic  Variant = iota // 3 lives, standard enemy speed
	VariantHardcore                // 1 life, faster enemies
)

const hardcoreSpeedFactor = 1.3

// Package-level knobs set by the CLI before game creation
// (same pattern as the rest of the arcade commands).
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// Game is the territory-capture simulation. It owns the grid, the
// player, the enemy roster, and the game state exclusively; everything
// advances synchronously inside Step, so a caller that renders strictly
// between ticks never observes a half-applied capture.
type Game struct {
	variant Variant
	rng     *rand.Rand
	runtime core.RuntimeConfig
	cfg     config.TrailcutConfig

	tick    uint64
	grid    *Grid
	player  Player
	enemies []Enemy

	score int
	level int
	lives int

	dead          bool
	paused        bool
	tooSmall      bool
	announceTicks int // >0 while the level-complete banner is up

	events []core.Event

	// Layout (computed from screen size)
	hudHeight  int
	mapOffsetX int
	mapOffsetY int
}

// New creates a classic-rules game.
func New() *Game {
	return &Game{variant: VariantClassic}
}

// NewHardcore creates a hardcore-rules game: one life, faster enemies.
func NewHardcore() *Game {
	return &Game{variant: VariantHardcore}
}

func init() {
	registry.Register("trailcut", func() registry.Game {
		return New()
	})
	registry.Register("trailcut_hardcore", func() registry.Game {
		return NewHardcore()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.variant == VariantHardcore {
		return "trailcut_hardcore"
	}
	return "trailcut"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantHardcore {
		return "Trailcut (Hardcore)"
	}
	return "Trailcut"
}

// Reset initializes/restarts the game. A full reset: score, level and
// lives all start over.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.runtime = cfg

	loaded, err := config.LoadTrailcut(configPath)
	if err != nil {
		loaded = config.DefaultTrailcutConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&loaded, difficultyPreset)
	}
	if g.variant == VariantHardcore {
		loaded.Gameplay.Lives = 1
		loaded.Enemies.Speed *= hardcoreSpeedFactor
	}
	g.cfg = loaded

	g.tick = 0
	g.score = 0
	g.level = 1
	g.lives = g.cfg.Gameplay.Lives
	g.dead = false
	g.paused = false
	g.announceTicks = 0
	g.events = g.events[:0]

	g.hudHeight = 2
	requiredW := g.cfg.Grid.Width + 2
	requiredH := g.cfg.Grid.Height + g.hudHeight + 1
	g.tooSmall = cfg.ScreenW < requiredW || cfg.ScreenH < requiredH
	g.mapOffsetX = (cfg.ScreenW - g.cfg.Grid.Width) / 2
	g.mapOffsetY = g.hudHeight

	g.resetBoard()
}

// resetBoard rebuilds the level-start layout: a fresh grid (border
// pre-captured, interior void), the cursor parked on the top coastline,
// and the enemy roster for the current level. Score and level are not
// touched here.
func (g *Game) resetBoard() {
	w, h, border := g.cfg.Grid.Width, g.cfg.Grid.Height, g.cfg.Grid.Border
	g.grid = NewGrid(w, h, border)

	g.player = Player{
		X:    float64(w / 2),
		Y:    float64(border - 1),
		Mode: ModeOnWall,
	}

	// One extra enemy joins per level.
	count := g.cfg.Enemies.Count + (g.level - 1)
	speed := g.cfg.Enemies.Speed + g.cfg.Enemies.LevelScaling*float64(g.level-1)

	area := g.grid.PlayArea()
	g.enemies = g.enemies[:0]
	for i := 0; i < count; i++ {
		ex := float64(area.X + (i+1)*area.W/(count+1))
		ey := float64(area.Y + area.H/2)
		g.enemies = append(g.enemies, Enemy{
			X:  ex,
			Y:  ey,
			VX: speed * diagonalSign(g.rng),
			VY: speed * diagonalSign(g.rng),
		})
	}
}

// diagonalSign picks -1 or +1.
func diagonalSign(rng *rand.Rand) float64 {
	if rng.Intn(2) == 0 {
		return -1
	}
	return 1
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++
	g.events = g.events[:0]

	// Handle restart
	if input.Has(core.ActionRestart) && g.dead {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.runtime.ScreenW,
			ScreenH:  g.runtime.ScreenH,
			TickRate: g.runtime.TickRate,
		})
		return g.result()
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) && !g.dead {
		g.paused = !g.paused
	}

	if g.dead || g.paused || g.tooSmall {
		return g.result()
	}

	// Level-complete banner runs on the simulation clock, no timers.
	if g.announceTicks > 0 {
		g.announceTicks--
		if g.announceTicks == 0 {
			g.advanceLevel()
		}
		return g.result()
	}

	g.applyDirection(input)

	outcome := movePlayer(g.grid, &g.player)
	if outcome == moveSelfHit {
		g.onDeath(g.player.CellX(), g.player.CellY())
		return g.result()
	}

	// Enemies move at half the player's tick rate. Tunable difficulty,
	// not an artifact.
	if g.tick%2 == 0 {
		for i := range g.enemies {
			if moveEnemy(g.grid, &g.enemies[i]) {
				g.onDeath(g.enemies[i].CellX(), g.enemies[i].CellY())
				return g.result()
			}
		}
	}

	if outcome == moveClosure {
		g.resolveClosure()
	}

	return g.result()
}

// applyDirection folds directional input into the player's velocity.
// Movement commitment: direction changes are accepted only on safe
// ground, so a trail can never be reversed mid-cut. Anything that is
// not a direction is ignored.
func (g *Game) applyDirection(input core.InputFrame) {
	if g.player.Mode != ModeOnWall {
		return
	}
	speed := g.cfg.Player.Speed
	switch input.Direction() {
	case core.ActionUp:
		g.player.VX, g.player.VY = 0, -speed
	case core.ActionDown:
		g.player.VX, g.player.VY = 0, speed
	case core.ActionLeft:
		g.player.VX, g.player.VY = -speed, 0
	case core.ActionRight:
		g.player.VX, g.player.VY = speed, 0
	}
}

// onDeath handles both fatal conditions: enemy on the trail and the
// cursor crossing its own trail. With lives in hand the board resets to
// the level-start layout, keeping score and level; out of lives, the
// game is over.
func (g *Game) onDeath(x, y int) {
	g.events = append(g.events, core.Event{Kind: core.EventPlayerDied, X: x, Y: y})
	if g.lives == 0 {
		g.dead = true
		return
	}
	g.lives--
	g.resetBoard()
}

// advanceLevel moves to the next level once the banner expires.
func (g *Game) advanceLevel() {
	g.level++
	g.resetBoard()
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.dead,
		Paused:   g.paused,
	}
}

// PercentCaptured returns the captured share of the play area, 0-100.
func (g *Game) PercentCaptured() int {
	if g.grid == nil {
		return 0
	}
	return g.grid.PercentCaptured()
}

// CellAt exposes read-only grid access for the rendering collaborator.
func (g *Game) CellAt(x, y int) Cell {
	if g.grid == nil {
		return CellWall
	}
	return g.grid.At(x, y)
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderGrid(dst)
	g.renderEntities(dst)

	switch {
	case g.dead:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d — Press R to restart", g.score))
	case g.announceTicks > 0:
		g.renderOverlay(dst, fmt.Sprintf("Level %d cleared!", g.level), fmt.Sprintf("Captured %d%%", g.PercentCaptured()))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s — Score: %d  Lives: %d  Level: %d  Captured: %d%%/%d%%",
		g.Title(), g.score, g.lives, g.level, g.PercentCaptured(), g.cfg.Gameplay.WinPercent)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderGrid draws walls and the live trail.
func (g *Game) renderGrid(dst *core.Screen) {
	border := g.cfg.Grid.Border
	for y := 0; y < g.grid.Height(); y++ {
		for x := 0; x < g.grid.Width(); x++ {
			sx := g.mapOffsetX + x
			sy := g.mapOffsetY + y
			switch g.grid.At(x, y) {
			case CellWall:
				ch := WallChar
				if x < border || x >= g.grid.Width()-border || y < border || y >= g.grid.Height()-border {
					ch = BorderChar
				}
				dst.SetCell(sx, sy, ch, core.ColorCyan)
			case CellTrail:
				dst.SetCell(sx, sy, TrailChar, core.ColorBrightYellow)
			}
		}
	}
}

// renderEntities draws the cursor and the enemies.
func (g *Game) renderEntities(dst *core.Screen) {
	for i := range g.enemies {
		e := &g.enemies[i]
		glyph := enemyGlyphs[int(e.Phase)%len(enemyGlyphs)]
		dst.SetCell(g.mapOffsetX+e.CellX(), g.mapOffsetY+e.CellY(), glyph, core.ColorBrightRed)
	}

	color := core.ColorBrightWhite
	if g.player.Mode == ModeOnVoid {
		color = core.ColorBrightYellow
	}
	dst.SetCell(g.mapOffsetX+g.player.CellX(), g.mapOffsetY+g.player.CellY(), PlayerChar, color)
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
