package invasion

import (
	"math"

	"github.com/vovakirdan/alien-invasion/internal/core"
)

// Snapshot is a read-only copy of the World for renderers and tests.
// It shares no memory with the World.
type Snapshot struct {
	Tick           uint64
	State          string
	Active         bool
	Breather       bool
	PointerVisible bool
	QuitRequested  bool

	ScreenW, ScreenH float64
	Ship             core.RectF
	Aliens           []core.RectF
	Bullets          []core.RectF
	PlayButton       core.RectF

	Score          int
	Level          int
	Lives          int
	HighScore      int
	FleetDirection int
	AlienPoints    int
}

// Snapshot returns the current world state.
func (w *World) Snapshot() Snapshot {
	aliens := make([]core.RectF, len(w.aliens))
	for i, a := range w.aliens {
		aliens[i] = a.Bounds()
	}
	bullets := make([]core.RectF, len(w.bullets))
	for i, b := range w.bullets {
		bullets[i] = b.Bounds()
	}

	return Snapshot{
		Tick:           w.tick,
		State:          w.state.String(),
		Active:         w.state == StateActive,
		Breather:       w.breather > 0,
		PointerVisible: w.pointerVisible,
		QuitRequested:  w.quit,
		ScreenW:        w.settings.ScreenWidth,
		ScreenH:        w.settings.ScreenHeight,
		Ship:           w.ship.Bounds(),
		Aliens:         aliens,
		Bullets:        bullets,
		PlayButton:     w.playButton,
		Score:          w.stats.Score,
		Level:          w.stats.Level,
		Lives:          w.stats.ShipsLeft,
		HighScore:      w.stats.HighScore,
		FleetDirection: w.settings.FleetDirection,
		AlienPoints:    w.settings.AlienPoints,
	}
}

// Hash returns a simple hash of the snapshot for comparison.
func (s Snapshot) Hash() uint64 {
	var h uint64 = 17
	mix := func(v uint64) { h = h*31 + v }
	mixRect := func(r core.RectF) {
		mix(math.Float64bits(r.X))
		mix(math.Float64bits(r.Y))
		mix(math.Float64bits(r.W))
		mix(math.Float64bits(r.H))
	}
	mixInt := func(v int) { mix(uint64(v)) } //#nosec G115 -- hash computation

	mix(s.Tick)
	for _, c := range s.State {
		mix(uint64(c))
	}
	mixRect(s.Ship)
	mixInt(len(s.Aliens))
	for _, r := range s.Aliens {
		mixRect(r)
	}
	mixInt(len(s.Bullets))
	for _, r := range s.Bullets {
		mixRect(r)
	}
	mixInt(s.Score)
	mixInt(s.Level)
	mixInt(s.Lives)
	mixInt(s.HighScore)
	mixInt(s.FleetDirection)
	mixInt(s.AlienPoints)
	for _, b := range []bool{s.Breather, s.PointerVisible, s.QuitRequested} {
		if b {
			mix(1)
		} else {
			mix(0)
		}
	}
	return h
}
