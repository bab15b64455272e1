package invasion

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/core"
	"github.com/vovakirdan/alien-invasion/internal/registry"
)

// Visual characters for rendering
const (
	ShipChar   = '█'
	ShipNose   = '◀'
	AlienChar  = '▓'
	BulletChar = '─'
)

// Minimum host surface that can show the play field.
const (
	minScreenW = 24
	minScreenH = 10
)

// GameMode selects the wave-clear behavior.
type GameMode int

const (
	ModeStandard GameMode = iota // Difficulty grows on every cleared wave
	ModeClassic                  // Speeds and points never grow
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger receives World events; nil discards them.
var logger *log.Logger

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger sets the logger handed to every new World.
func SetLogger(l *log.Logger) {
	logger = l
}

// LoadConfig loads configuration for mode with the CLI path and preset applied.
func LoadConfig(mode GameMode) (config.InvasionConfig, error) {
	cfg, err := config.LoadInvasion(configPath)
	if err != nil {
		return config.InvasionConfig{}, fmt.Errorf("invasion: %w", err)
	}
	config.ApplyInvasionPreset(&cfg, difficultyPreset)
	if mode == ModeClassic {
		cfg.Scaling.ScaleOnWaveClear = false
	}
	if err := cfg.Validate(); err != nil {
		return config.InvasionConfig{}, fmt.Errorf("invasion: %w", err)
	}
	return cfg, nil
}

// Game adapts a World to the arcade platform. Actions arrive as per-tick
// frames; a held key is reported on every repeat, so movement stops once
// no repeat arrives for holdTicks ticks.
type Game struct {
	mode       GameMode
	world      *World
	scoreboard *Scoreboard
	runtime    core.RuntimeConfig
	holdTicks  int
	upHold     int
	downHold   int

	// Layout from the last Render, used to map clicks back to world units
	scaleX, scaleY float64
	fieldTop       int
	buttonCells    core.Rect
}

// New creates a new Alien Invasion game.
func New() *Game {
	return &Game{mode: ModeStandard}
}

// NewClassic creates a game whose waves never speed up.
func NewClassic() *Game {
	return &Game{mode: ModeClassic}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeClassic {
		return "invasion_classic"
	}
	return "invasion"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeClassic {
		return "Alien Invasion (Classic)"
	}
	return "Alien Invasion"
}

// Reset builds a fresh World. The high score of the previous World carries over.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if g.runtime.TickRate <= 0 {
		g.runtime.TickRate = 60
	}

	cfg, err := LoadConfig(g.mode)
	if err != nil {
		if logger != nil {
			logger.Error("config rejected, using defaults", "err", err)
		}
		cfg = config.DefaultInvasionConfig()
		if g.mode == ModeClassic {
			cfg.Scaling.ScaleOnWaveClear = false
		}
	}
	g.ResetWithConfig(cfg)
}

// ResetWithConfig builds a fresh World from an explicit configuration.
// An invalid configuration falls back to the defaults.
func (g *Game) ResetWithConfig(cfg config.InvasionConfig) {
	highScore := 0
	if g.world != nil {
		highScore = g.world.Stats().HighScore
	}
	if g.runtime.TickRate <= 0 {
		g.runtime.TickRate = 60
	}

	world, err := NewWorld(cfg, g.runtime.TickRate, logger)
	if err != nil {
		if logger != nil {
			logger.Error("config rejected, using defaults", "err", err)
		}
		cfg = config.DefaultInvasionConfig()
		world, _ = NewWorld(cfg, g.runtime.TickRate, logger)
	}
	g.world = world
	g.holdTicks = cfg.Gameplay.HoldTicks
	g.upHold, g.downHold = 0, 0

	g.scoreboard = NewScoreboard()
	g.world.AddListener(g.scoreboard)
	g.world.SetHighScore(highScore)
	g.scoreboard.PrepScoreboard(g.world.Stats())
	g.scoreboard.OnPointerVisibility(true)
}

// World exposes the underlying simulation.
func (g *Game) World() *World { return g.world }

// Scoreboard exposes the display adapter.
func (g *Game) Scoreboard() *Scoreboard { return g.scoreboard }

// Snapshot returns the current world snapshot.
func (g *Game) Snapshot() Snapshot { return g.world.Snapshot() }

// Step translates one input frame into World events and advances one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionQuit) {
		g.world.HandleEvent(NewEvent(EventQuit))
		return core.StepResult{State: g.State()}
	}

	up, down := in.Has(core.ActionUp), in.Has(core.ActionDown)
	if up && g.downHold > 0 {
		g.downHold = 0
		g.world.HandleEvent(NewEvent(EventMoveDownStop))
	}
	if down && !up && g.upHold > 0 {
		g.upHold = 0
		g.world.HandleEvent(NewEvent(EventMoveUpStop))
	}
	g.upHold = g.hold(up, g.upHold, EventMoveUpStart, EventMoveUpStop)
	g.downHold = g.hold(down, g.downHold, EventMoveDownStart, EventMoveDownStop)

	if in.Has(core.ActionFire) {
		g.world.HandleEvent(NewEvent(EventFire))
	}
	if in.Has(core.ActionConfirm) {
		g.world.HandleEvent(NewEvent(EventPlay))
	}
	for _, c := range in.Clicks {
		x, y := g.toWorld(c)
		g.world.HandleEvent(PointerClick(x, y))
	}

	g.world.Tick()
	return core.StepResult{State: g.State()}
}

// hold emits a start event on every press of a direction and a stop event
// once its hold window runs out.
func (g *Game) hold(pressed bool, remaining int, start, stop EventKind) int {
	if pressed {
		g.world.HandleEvent(NewEvent(start))
		return g.holdTicks
	}
	if remaining > 0 {
		remaining--
		if remaining == 0 {
			g.world.HandleEvent(NewEvent(stop))
		}
	}
	return remaining
}

// toWorld maps a host cell to world units using the last render layout.
// Clicks on the drawn Play button land on its center.
func (g *Game) toWorld(c core.Click) (float64, float64) {
	if g.buttonCells.W > 0 && g.buttonCells.Contains(c.X, c.Y) {
		b := g.world.PlayButton()
		return b.CenterX(), b.CenterY()
	}
	if g.scaleX == 0 || g.scaleY == 0 {
		return float64(c.X), float64(c.Y)
	}
	return (float64(c.X) + 0.5) / g.scaleX, (float64(c.Y-g.fieldTop) + 0.5) / g.scaleY
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := g.world.Stats()
	idle := g.world.State() == StateIdle
	return core.GameState{
		Score:    st.Score,
		Level:    st.Level,
		GameOver: idle && g.world.Played(),
		Paused:   idle || g.world.InBreather(),
		Quit:     g.world.QuitRequested(),
	}
}

// Render draws the play field and HUD into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()
	if w < minScreenW || h < minScreenH {
		dst.DrawTextCentered(h/2, "Too small", core.ColorBrightRed)
		g.buttonCells = core.Rect{}
		return
	}

	snap := g.world.Snapshot()
	g.fieldTop = 1
	g.scaleX = float64(w) / snap.ScreenW
	g.scaleY = float64(h-g.fieldTop) / snap.ScreenH

	g.renderHUD(dst)

	for _, a := range snap.Aliens {
		dst.DrawRect(g.project(a), AlienChar, core.ColorGreen)
	}
	for _, b := range snap.Bullets {
		dst.DrawRect(g.project(b), BulletChar, core.ColorBrightYellow)
	}
	ship := g.project(snap.Ship)
	dst.DrawRect(ship, ShipChar, core.ColorCyan)
	for y := ship.Y; y < ship.Bottom(); y++ {
		dst.SetColor(ship.X, y, ShipNose, core.ColorBrightCyan)
	}

	switch {
	case snap.Breather:
		dst.DrawTextCentered(h-1, fmt.Sprintf("Ship lost! %d left. Get ready...", snap.Lives), core.ColorBrightRed)
		g.buttonCells = core.Rect{}
	case !snap.Active:
		g.renderPlayButton(dst, snap)
	default:
		g.buttonCells = core.Rect{}
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	sb := g.scoreboard
	left := fmt.Sprintf(" Score: %s  Level: %s  Ships: %d", sb.ScoreText, sb.LevelText, sb.Lives)
	right := fmt.Sprintf("High: %s ", sb.HighScoreText)
	dst.DrawTextColor(0, 0, left, core.ColorBrightWhite)
	dst.DrawTextColor(dst.Width()-len([]rune(right)), 0, right, core.ColorYellow)
}

func (g *Game) renderPlayButton(dst *core.Screen, snap Snapshot) {
	const label = "PLAY"
	r := g.project(snap.PlayButton)
	if r.W < len(label)+4 {
		r.X -= (len(label) + 4 - r.W) / 2
		r.W = len(label) + 4
	}
	if r.H < 3 {
		r.Y -= (3 - r.H) / 2
		r.H = 3
	}
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			dst.SetColor(x, y, ' ', core.ColorDefault)
		}
	}
	dst.DrawBox(r, core.ColorBrightGreen)
	dst.DrawTextColor(r.X+(r.W-len(label))/2, r.Y+r.H/2, label, core.ColorBrightGreen)
	g.buttonCells = r

	hint := "Click PLAY or press Enter | Q to quit"
	if g.world.Played() {
		dst.DrawTextCentered(r.Y-2, fmt.Sprintf("GAME OVER  Score: %s", g.scoreboard.ScoreText), core.ColorBrightRed)
	}
	dst.DrawTextCentered(r.Bottom()+1, hint, core.ColorGray)
}

// project converts a world box into screen cells, keeping at least one cell.
func (g *Game) project(r core.RectF) core.Rect {
	x0 := int(math.Floor(r.X * g.scaleX))
	y0 := int(math.Floor(r.Y*g.scaleY)) + g.fieldTop
	x1 := int(math.Ceil(r.Right() * g.scaleX))
	y1 := int(math.Ceil(r.Bottom()*g.scaleY)) + g.fieldTop
	return core.NewRect(x0, y0, max(1, x1-x0), max(1, y1-y0))
}

func init() {
	registry.Register("invasion", func() registry.Game { return New() })
	registry.Register("invasion_classic", func() registry.Game { return NewClassic() })
}
