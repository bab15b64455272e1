package invasion

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/core"
)

// PlayButton dimensions in world units.
const (
	PlayButtonWidth  = 200
	PlayButtonHeight = 50
)

// State is the World's macro state.
type State int

const (
	StateIdle State = iota
	StateActive
)

// String returns the state name.
func (s State) String() string {
	if s == StateActive {
		return "active"
	}
	return "idle"
}

// World owns every entity and advances the simulation one tick at a time.
// It is not safe for concurrent use; one goroutine drives it.
type World struct {
	settings *Settings
	stats    *GameStats
	ship     *Ship
	bullets  []*Bullet
	aliens   []*Alien

	state          State
	played         bool // At least one run has started
	quit           bool
	pointerVisible bool
	playButton     core.RectF

	// Breather countdown after a lost ship. Events received meanwhile wait in pending.
	breather      int
	breatherTicks int
	pending       []Event

	tick      uint64
	listeners []Listener
	logger    *log.Logger
}

// NewWorld validates cfg and builds an idle World with a fleet in place.
// tickRate converts the breather duration into ticks. A nil logger discards output.
func NewWorld(cfg config.InvasionConfig, tickRate int, logger *log.Logger) (*World, error) {
	settings, err := NewSettings(cfg)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	w := &World{
		settings:       settings,
		stats:          NewGameStats(settings.ShipLimit),
		ship:           NewShip(settings.ShipWidth, settings.ShipHeight),
		state:          StateIdle,
		pointerVisible: true,
		breatherTicks:  settings.BreatherTicks(tickRate),
		logger:         logger,
	}
	w.playButton = core.NewRectF(
		(settings.ScreenWidth-PlayButtonWidth)/2,
		(settings.ScreenHeight-PlayButtonHeight)/2,
		PlayButtonWidth,
		PlayButtonHeight,
	)
	w.ship.Center(settings.ScreenWidth, settings.ScreenHeight)
	w.aliens = newFleet(settings)
	return w, nil
}

// AddListener subscribes l to scoreboard changes.
func (w *World) AddListener(l Listener) {
	w.listeners = append(w.listeners, l)
}

// Settings returns the live settings.
func (w *World) Settings() *Settings { return w.settings }

// Stats returns the live stats.
func (w *World) Stats() *GameStats { return w.stats }

// State returns the macro state.
func (w *World) State() State { return w.state }

// Played reports whether a run has been started since construction.
func (w *World) Played() bool { return w.played }

// QuitRequested reports whether a quit event was received.
func (w *World) QuitRequested() bool { return w.quit }

// InBreather reports whether the post-loss pause is running.
func (w *World) InBreather() bool { return w.breather > 0 }

// PlayButton returns the start affordance in world units.
func (w *World) PlayButton() core.RectF { return w.playButton }

// SetHighScore seeds the process-local high score, used to carry it across
// World instances.
func (w *World) SetHighScore(score int) {
	if score > w.stats.HighScore {
		w.stats.HighScore = score
		w.notify(func(l Listener) { l.OnHighScoreChanged(score) })
	}
}

// HandleEvent applies one input event.
func (w *World) HandleEvent(e Event) {
	if e.Kind == EventQuit {
		w.quit = true
		w.breather = 0
		w.pending = nil
		w.logger.Debug("quit requested", "tick", w.tick)
		return
	}
	if w.quit {
		return
	}
	if w.breather > 0 {
		w.pending = append(w.pending, e)
		return
	}

	switch e.Kind {
	case EventMoveUpStart:
		if w.state == StateActive {
			w.ship.MovingUp = true
		}
	case EventMoveUpStop:
		w.ship.MovingUp = false
	case EventMoveDownStart:
		if w.state == StateActive {
			w.ship.MovingDown = true
		}
	case EventMoveDownStop:
		w.ship.MovingDown = false
	case EventFire:
		if w.state == StateActive {
			w.fireBullet()
		}
	case EventPointerClick:
		if w.state == StateIdle && w.playButton.Contains(e.X, e.Y) {
			w.startGame()
		}
	case EventPlay:
		if w.state == StateIdle {
			w.startGame()
		}
	}
}

// Tick advances the simulation by one step.
func (w *World) Tick() {
	w.tick++
	if w.quit || w.state != StateActive {
		return
	}
	if w.breather > 0 {
		w.breather--
		if w.breather == 0 {
			w.flushPending()
		}
		return
	}

	w.ship.Update(w.settings.ShipSpeed, w.settings.ScreenHeight, w.settings.ShipBottomMargin)
	w.updateBullets()
	w.checkBulletAlienCollisions()
	w.updateAliens()
}

func (w *World) flushPending() {
	pending := w.pending
	w.pending = nil
	for _, e := range pending {
		w.HandleEvent(e)
	}
}

func (w *World) startGame() {
	w.settings.InitializeDynamicSettings()
	w.stats.ResetStats(w.settings.ShipLimit)
	w.state = StateActive
	w.played = true

	w.notify(func(l Listener) {
		l.OnScoreChanged(w.stats.Score)
		l.OnHighScoreChanged(w.stats.HighScore)
		l.OnLevelChanged(w.stats.Level)
		l.OnLivesChanged(w.stats.ShipsLeft)
	})

	w.bullets = nil
	w.aliens = newFleet(w.settings)
	w.ship.Center(w.settings.ScreenWidth, w.settings.ScreenHeight)
	w.setPointerVisible(false)
	w.logger.Info("run started", "ships", w.stats.ShipsLeft, "aliens", len(w.aliens))
}

func (w *World) fireBullet() {
	if len(w.bullets) >= w.settings.BulletsAllowed {
		return
	}
	w.bullets = append(w.bullets, NewBullet(
		w.ship.Bounds(),
		w.settings.BulletHeight,
		w.settings.BulletWidth,
		w.settings.BulletSpawnLift,
	))
}

func (w *World) updateBullets() {
	kept := w.bullets[:0]
	for _, b := range w.bullets {
		b.Update(w.settings.BulletSpeed)
		if !b.OffScreen() {
			kept = append(kept, b)
		}
	}
	clear(w.bullets[len(kept):])
	w.bullets = kept
}

// checkBulletAlienCollisions removes every overlapping bullet/alien pair,
// scores the removed aliens and handles a cleared wave.
func (w *World) checkBulletAlienCollisions() {
	hit := make([]bool, len(w.aliens))
	removed := 0

	keptBullets := w.bullets[:0]
	for _, b := range w.bullets {
		bb := b.Bounds()
		struck := false
		for i, a := range w.aliens {
			if hit[i] || !bb.Intersects(a.Bounds()) {
				continue
			}
			hit[i] = true
			struck = true
			removed++
		}
		if !struck {
			keptBullets = append(keptBullets, b)
		}
	}
	clear(w.bullets[len(keptBullets):])
	w.bullets = keptBullets

	if removed > 0 {
		keptAliens := w.aliens[:0]
		for i, a := range w.aliens {
			if !hit[i] {
				keptAliens = append(keptAliens, a)
			}
		}
		clear(w.aliens[len(keptAliens):])
		w.aliens = keptAliens

		w.stats.Score += w.settings.AlienPoints * removed
		w.notify(func(l Listener) { l.OnScoreChanged(w.stats.Score) })
		if w.stats.checkHighScore() {
			w.notify(func(l Listener) { l.OnHighScoreChanged(w.stats.HighScore) })
		}
	}

	if len(w.aliens) == 0 {
		w.bullets = nil
		w.aliens = newFleet(w.settings)
		if w.settings.ScaleOnWaveClear {
			w.settings.IncreaseSpeed()
		}
		w.stats.Level++
		w.notify(func(l Listener) { l.OnLevelChanged(w.stats.Level) })
		w.logger.Debug("wave cleared",
			"level", w.stats.Level,
			"alien_speed", w.settings.AlienSpeed,
			"alien_points", w.settings.AlienPoints,
		)
	}
}

func (w *World) updateAliens() {
	w.checkFleetEdges()
	for _, a := range w.aliens {
		a.Update(w.settings.AlienSpeed, w.settings.FleetDirection)
	}

	shipBounds := w.ship.Bounds()
	for _, a := range w.aliens {
		if a.Bounds().Intersects(shipBounds) {
			w.shipHit("collision")
			return
		}
	}

	for _, a := range w.aliens {
		if a.Bounds().Right() >= w.settings.ScreenWidth {
			w.shipHit("breach")
			return
		}
	}
}

func (w *World) checkFleetEdges() {
	for _, a := range w.aliens {
		if a.CheckEdges(w.settings.ScreenHeight) {
			w.changeFleetDirection()
			return
		}
	}
}

func (w *World) changeFleetDirection() {
	for _, a := range w.aliens {
		a.X += w.settings.DropSpeed
	}
	w.settings.ChangeFleetDirection()
}

// shipHit is the life-loss transition.
func (w *World) shipHit(cause string) {
	if w.stats.ShipsLeft > 0 {
		w.stats.ShipsLeft--
		w.notify(func(l Listener) { l.OnLivesChanged(w.stats.ShipsLeft) })

		w.bullets = nil
		w.aliens = newFleet(w.settings)
		w.ship.Center(w.settings.ScreenWidth, w.settings.ScreenHeight)
		w.breather = w.breatherTicks
		w.logger.Info("ship lost", "cause", cause, "ships_left", w.stats.ShipsLeft, "tick", w.tick)
		return
	}

	w.state = StateIdle
	w.setPointerVisible(true)
	w.logger.Info("game over",
		"cause", cause,
		"score", w.stats.Score,
		"level", w.stats.Level,
		"high_score", w.stats.HighScore,
	)
}

func (w *World) setPointerVisible(visible bool) {
	w.pointerVisible = visible
	w.notify(func(l Listener) { l.OnPointerVisibility(visible) })
}

func (w *World) notify(fn func(Listener)) {
	for _, l := range w.listeners {
		fn(l)
	}
}

// String summarizes the world for logs.
func (w *World) String() string {
	return fmt.Sprintf("world{state=%s tick=%d score=%d level=%d ships=%d aliens=%d bullets=%d}",
		w.state, w.tick, w.stats.Score, w.stats.Level, w.stats.ShipsLeft, len(w.aliens), len(w.bullets))
}
