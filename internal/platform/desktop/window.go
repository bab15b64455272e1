// Package desktop runs the game in an Ebitengine window, drawing the world
// in its own pixel space.
package desktop

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/games/invasion"
	"github.com/vovakirdan/alien-invasion/internal/storage"
)

// Palette for sprites the configuration does not color.
var (
	shipColor    = colornames.Steelblue
	alienColor   = colornames.Seagreen
	buttonColor  = colornames.Green
	breatherTint = color.RGBA{R: 200, G: 30, B: 30, A: 40}
)

// Options configures the window.
type Options struct {
	Title    string
	TickRate int
	Scale    float64 // Window size relative to the world; 0 fits 1200 px wide worlds at 1.0
	Logger   *log.Logger

	// Finished runs are journaled to Store under GameID when it is set.
	Store  *storage.Store
	GameID string
	Player string
}

// Window adapts a World to ebiten.Game.
type Window struct {
	world  *invasion.World
	hud    *hud
	opts   Options
	logger *log.Logger

	background color.RGBA
	bullet     color.RGBA

	now      func() time.Time
	runStart time.Time
	inRun    bool
}

// hud keeps scoreboard text and remembers cursor visibility changes so
// they are applied from the update loop. The pointer hides when a run
// starts and shows again at game over.
type hud struct {
	*invasion.Scoreboard
	cursorChanged bool
	runStarted    bool
	runEnded      bool
}

func (h *hud) OnPointerVisibility(visible bool) {
	h.Scoreboard.OnPointerVisibility(visible)
	h.cursorChanged = true
	if visible {
		h.runEnded = true
	} else {
		h.runStarted = true
	}
}

// NewWindow wraps world for display.
func NewWindow(world *invasion.World, opts Options) *Window {
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	h := &hud{Scoreboard: invasion.NewScoreboard(), cursorChanged: true}
	h.PrepScoreboard(world.Stats())
	h.Scoreboard.OnPointerVisibility(world.Snapshot().PointerVisible)
	world.AddListener(h)

	settings := world.Settings()
	return &Window{
		world:      world,
		hud:        h,
		opts:       opts,
		logger:     logger,
		background: rgba(settings.Background),
		bullet:     rgba(settings.BulletColor),
		now:        time.Now,
	}
}

// Update applies this frame's input and advances the world one tick.
func (w *Window) Update() error {
	if err := w.step(translate(pollInput())); err != nil {
		return err
	}

	if w.hud.cursorChanged {
		w.hud.cursorChanged = false
		if w.hud.PointerShown {
			ebiten.SetCursorMode(ebiten.CursorModeVisible)
		} else {
			ebiten.SetCursorMode(ebiten.CursorModeHidden)
		}
	}
	return nil
}

// step applies events, advances the world and journals a run that just ended.
func (w *Window) step(events []invasion.Event) error {
	for _, e := range events {
		w.world.HandleEvent(e)
		w.trackRun()
	}
	if w.world.QuitRequested() {
		return ebiten.Termination
	}

	w.world.Tick()
	w.trackRun()
	return nil
}

// trackRun consumes run start and end notifications. Stats still hold the
// finished run here; the next Play resets them.
func (w *Window) trackRun() {
	if w.hud.runEnded {
		w.hud.runEnded = false
		if w.inRun && w.world.Played() {
			w.journal()
		}
	}
	if w.hud.runStarted {
		w.hud.runStarted = false
		w.inRun = true
		w.runStart = w.now()
	}
}

// Close journals a run still in progress when the window goes away.
func (w *Window) Close() {
	if w.inRun {
		w.journal()
	}
}

func (w *Window) journal() {
	w.inRun = false
	stats := w.world.Stats()
	if w.opts.Store == nil || w.opts.GameID == "" || stats.Score <= 0 {
		return
	}
	id, err := w.opts.Store.SaveRun(storage.Run{
		GameID:   w.opts.GameID,
		Player:   w.opts.Player,
		Score:    stats.Score,
		Level:    stats.Level,
		Duration: w.now().Sub(w.runStart),
	})
	if err != nil {
		w.logger.Error("journal run", "game", w.opts.GameID, "err", err)
		return
	}
	w.logger.Info("run journaled", "id", id, "score", stats.Score, "level", stats.Level)
}

// Draw renders the current snapshot.
func (w *Window) Draw(screen *ebiten.Image) {
	snap := w.world.Snapshot()
	screen.Fill(w.background)

	for _, a := range snap.Aliens {
		fillRect(screen, a.X, a.Y, a.W, a.H, alienColor)
	}
	for _, b := range snap.Bullets {
		fillRect(screen, b.X, b.Y, b.W, b.H, w.bullet)
	}
	fillRect(screen, snap.Ship.X, snap.Ship.Y, snap.Ship.W, snap.Ship.H, shipColor)

	hudText := fmt.Sprintf("Score %s   Level %s   Ships %d",
		w.hud.ScoreText, w.hud.LevelText, w.hud.Lives)
	ebitenutil.DebugPrintAt(screen, hudText, 10, 6)
	high := "High " + w.hud.HighScoreText
	ebitenutil.DebugPrintAt(screen, high, int(snap.ScreenW)-10-6*len(high), 6)

	if snap.Breather {
		fillRect(screen, 0, 0, snap.ScreenW, snap.ScreenH, breatherTint)
	}
	if !snap.Active {
		b := snap.PlayButton
		fillRect(screen, b.X, b.Y, b.W, b.H, buttonColor)
		const label = "Play"
		textX := int(b.CenterX()) - 3*len(label)
		textY := int(b.CenterY()) - 8
		ebitenutil.DebugPrintAt(screen, label, textX, textY)
	}
}

// Layout fixes the logical screen to the world size; Ebitengine scales it to the window.
func (w *Window) Layout(_, _ int) (int, int) {
	s := w.world.Settings()
	return int(s.ScreenWidth), int(s.ScreenHeight)
}

// Run opens the window and blocks until it closes or the player quits.
func Run(world *invasion.World, opts Options) error {
	win := NewWindow(world, opts)
	s := world.Settings()

	ebiten.SetWindowSize(int(s.ScreenWidth*win.opts.Scale), int(s.ScreenHeight*win.opts.Scale))
	ebiten.SetWindowTitle(win.opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(win.opts.TickRate)

	win.logger.Info("window opened", "width", s.ScreenWidth, "height", s.ScreenHeight, "tps", win.opts.TickRate)
	err := ebiten.RunGame(win)
	win.Close()
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// fillRect draws a world-unit box.
func fillRect(dst *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

// rgba converts a configured color to an opaque RGBA.
func rgba(c config.RGB) color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: 0xff}
}

// frameInput is the keyboard and mouse state that matters for one frame.
type frameInput struct {
	UpPressed, UpReleased     bool
	DownPressed, DownReleased bool
	Fire                      bool
	Play                      bool
	Quit                      bool
	Click                     bool
	CursorX, CursorY          int
}

// pollInput reads edge-triggered input from Ebitengine.
func pollInput() frameInput {
	var in frameInput
	in.UpPressed = inpututil.IsKeyJustPressed(ebiten.KeyUp) || inpututil.IsKeyJustPressed(ebiten.KeyW)
	in.UpReleased = inpututil.IsKeyJustReleased(ebiten.KeyUp) || inpututil.IsKeyJustReleased(ebiten.KeyW)
	in.DownPressed = inpututil.IsKeyJustPressed(ebiten.KeyDown) || inpututil.IsKeyJustPressed(ebiten.KeyS)
	in.DownReleased = inpututil.IsKeyJustReleased(ebiten.KeyDown) || inpututil.IsKeyJustReleased(ebiten.KeyS)
	in.Fire = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	in.Play = inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyP)
	in.Quit = inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		in.Click = true
		in.CursorX, in.CursorY = ebiten.CursorPosition()
	}
	return in
}

// translate converts frame input into World events, quit first.
func translate(in frameInput) []invasion.Event {
	if in.Quit {
		return []invasion.Event{invasion.NewEvent(invasion.EventQuit)}
	}

	var events []invasion.Event
	if in.UpReleased {
		events = append(events, invasion.NewEvent(invasion.EventMoveUpStop))
	}
	if in.DownReleased {
		events = append(events, invasion.NewEvent(invasion.EventMoveDownStop))
	}
	if in.UpPressed {
		events = append(events, invasion.NewEvent(invasion.EventMoveUpStart))
	}
	if in.DownPressed {
		events = append(events, invasion.NewEvent(invasion.EventMoveDownStart))
	}
	if in.Fire {
		events = append(events, invasion.NewEvent(invasion.EventFire))
	}
	if in.Play {
		events = append(events, invasion.NewEvent(invasion.EventPlay))
	}
	if in.Click {
		events = append(events, invasion.PointerClick(float64(in.CursorX), float64(in.CursorY)))
	}
	return events
}
