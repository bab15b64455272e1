package invasion

import (
	"testing"

	"github.com/vovakirdan/alien-invasion/internal/config"
)

// recorder captures listener callbacks.
type recorder struct {
	scores     []int
	levels     []int
	lives      []int
	highScores []int
	pointer    []bool
}

func (r *recorder) OnScoreChanged(v int) { r.scores = append(r.scores, v) }
func (r *recorder) OnLevelChanged(v int) { r.levels = append(r.levels, v) }
func (r *recorder) OnLivesChanged(v int) { r.lives = append(r.lives, v) }
func (r *recorder) OnHighScoreChanged(v int) { r.highScores = append(r.highScores, v) }
func (r *recorder) OnPointerVisibility(v bool) { r.pointer = append(r.pointer, v) }

func newTestWorld(t *testing.T, mutate func(*config.InvasionConfig)) (*World, *recorder) {
	t.Helper()
	cfg := config.DefaultInvasionConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	w, err := NewWorld(cfg, 60, nil)
	if err != nil {
		t.Fatalf("NewWorld failed: %v", err)
	}
	rec := &recorder{}
	w.AddListener(rec)
	return w, rec
}

func startedWorld(t *testing.T, mutate func(*config.InvasionConfig)) (*World, *recorder) {
	t.Helper()
	w, rec := newTestWorld(t, mutate)
	w.HandleEvent(NewEvent(EventPlay))
	if w.State() != StateActive {
		t.Fatalf("Expected active world after Play, got %s", w.State())
	}
	return w, rec
}

func TestNewWorldRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultInvasionConfig()
	cfg.Screen.Width = -1
	if _, err := NewWorld(cfg, 60, nil); err == nil {
		t.Error("Expected an error for a negative screen width")
	}
}

func TestNewWorldRejectsFieldWithoutFleet(t *testing.T) {
	cfg := config.DefaultInvasionConfig()
	cfg.Screen.Width, cfg.Screen.Height = 120, 80
	if len(FleetLayout(120, 80, float64(cfg.Alien.Width), float64(cfg.Alien.Height))) != 0 {
		t.Fatal("a 120x80 field should have no fleet positions")
	}
	if _, err := NewWorld(cfg, 60, nil); err == nil {
		t.Error("Expected an error for a field with no room for a fleet")
	}
}

func TestWorldStartsIdleWithFleet(t *testing.T) {
	w, _ := newTestWorld(t, nil)
	snap := w.Snapshot()

	if snap.Active {
		t.Error("World should start idle")
	}
	if !snap.PointerVisible {
		t.Error("Pointer should be visible while idle")
	}
	if len(snap.Aliens) != 88 {
		t.Errorf("Expected 88 aliens at start, got %d", len(snap.Aliens))
	}
	if snap.Lives != 3 || snap.Level != 1 || snap.Score != 0 {
		t.Errorf("Unexpected initial stats: lives=%d level=%d score=%d", snap.Lives, snap.Level, snap.Score)
	}
}

func TestIdleIgnoresMovementAndFire(t *testing.T) {
	w, _ := newTestWorld(t, nil)
	before := w.Snapshot()

	w.HandleEvent(NewEvent(EventMoveUpStart))
	w.HandleEvent(NewEvent(EventMoveDownStart))
	w.HandleEvent(NewEvent(EventFire))
	for range 10 {
		w.Tick()
	}

	after := w.Snapshot()
	if w.ship.MovingUp || w.ship.MovingDown {
		t.Error("Move-start must be ignored while idle")
	}
	if len(after.Bullets) != 0 {
		t.Error("Fire must be ignored while idle")
	}
	if after.Ship != before.Ship {
		t.Error("Ship moved while idle")
	}
	if after.Aliens[0] != before.Aliens[0] {
		t.Error("Fleet moved while idle")
	}
}

func TestPlayButtonClick(t *testing.T) {
	w, rec := newTestWorld(t, nil)
	button := w.PlayButton()

	if button.X != 500 || button.Y != 375 || button.W != 200 || button.H != 50 {
		t.Errorf("Play button at %+v, expected centered 200x50", button)
	}

	w.HandleEvent(PointerClick(10, 10))
	if w.State() != StateIdle {
		t.Fatal("Click outside the Play button must not start a run")
	}

	w.HandleEvent(PointerClick(button.CenterX(), button.CenterY()))
	if w.State() != StateActive {
		t.Fatal("Click on the Play button should start a run")
	}
	if w.Snapshot().PointerVisible {
		t.Error("Pointer should be hidden while active")
	}
	if len(rec.pointer) == 0 || rec.pointer[len(rec.pointer)-1] {
		t.Error("Listener should receive pointer hidden")
	}

	// Clicking the button area again while active does nothing
	w.stats.Score = 100
	w.HandleEvent(PointerClick(button.CenterX(), button.CenterY()))
	if w.stats.Score != 100 {
		t.Error("Click while active must not restart the run")
	}
}

func TestFireRespectsCapacity(t *testing.T) {
	w, _ := startedWorld(t, nil)

	for range 5 {
		w.HandleEvent(NewEvent(EventFire))
	}
	if got := len(w.Snapshot().Bullets); got != 3 {
		t.Errorf("Expected 3 bullets in flight, got %d", got)
	}

	for range 100 {
		w.HandleEvent(NewEvent(EventFire))
		w.Tick()
		if n := len(w.bullets); n > w.settings.BulletsAllowed {
			t.Fatalf("Bullets in flight %d exceed allowed %d", n, w.settings.BulletsAllowed)
		}
	}
}

func TestBulletsLeavingScreenAreDropped(t *testing.T) {
	w, _ := startedWorld(t, func(c *config.InvasionConfig) {
		c.Bullet.Speed = 2000
	})
	w.HandleEvent(NewEvent(EventFire))
	w.Tick()
	if len(w.bullets) != 0 {
		t.Errorf("Bullet past the left edge should be removed, %d remain", len(w.bullets))
	}
	if w.stats.Score != 0 {
		t.Error("A bullet that left the field must not score")
	}
}

func TestCollisionScoresEveryRemovedAlien(t *testing.T) {
	w, rec := startedWorld(t, nil)

	// One bullet overlapping two aliens, one overlapping a third, one survivor
	w.aliens = []*Alien{
		NewAlien(100, 100, 32, 32),
		NewAlien(110, 100, 32, 32),
		NewAlien(300, 300, 32, 32),
		NewAlien(600, 600, 32, 32),
	}
	w.bullets = []*Bullet{
		{X: 105, Y: 110, Length: 15, Thickness: 3},
		{X: 310, Y: 310, Length: 15, Thickness: 3},
		{X: 900, Y: 50, Length: 15, Thickness: 3},
	}

	w.checkBulletAlienCollisions()

	if len(w.aliens) != 1 || w.aliens[0].X != 600 {
		t.Fatalf("Expected only the survivor to remain, got %d aliens", len(w.aliens))
	}
	if len(w.bullets) != 1 || w.bullets[0].X != 900 {
		t.Fatalf("Expected only the missing bullet to remain, got %d bullets", len(w.bullets))
	}
	if w.stats.Score != 150 {
		t.Errorf("Expected 3 x 50 = 150 points, got %d", w.stats.Score)
	}
	if w.stats.HighScore != 150 {
		t.Errorf("High score should follow the score, got %d", w.stats.HighScore)
	}
	if got := rec.scores[len(rec.scores)-1]; got != 150 {
		t.Errorf("Listener saw score %d, expected 150", got)
	}
	if got := rec.highScores[len(rec.highScores)-1]; got != 150 {
		t.Errorf("Listener saw high score %d, expected 150", got)
	}
}

func TestTouchingEdgesDoNotCollide(t *testing.T) {
	w, _ := startedWorld(t, nil)
	w.aliens = []*Alien{NewAlien(100, 100, 32, 32), NewAlien(600, 600, 32, 32)}
	w.bullets = []*Bullet{{X: 132, Y: 110, Length: 15, Thickness: 3}}

	w.checkBulletAlienCollisions()
	if len(w.aliens) != 2 || len(w.bullets) != 1 {
		t.Errorf("Edge contact must not collide: %d aliens, %d bullets", len(w.aliens), len(w.bullets))
	}
}

func TestWaveClearInSingleTick(t *testing.T) {
	w, rec := startedWorld(t, nil)
	w.aliens = []*Alien{NewAlien(100, 100, 32, 32)}
	w.bullets = []*Bullet{
		{X: 110, Y: 110, Length: 15, Thickness: 3},
		{X: 900, Y: 50, Length: 15, Thickness: 3},
	}

	w.checkBulletAlienCollisions()

	if len(w.aliens) != 88 {
		t.Errorf("Expected a fresh fleet of 88, got %d", len(w.aliens))
	}
	if len(w.bullets) != 0 {
		t.Errorf("Wave clear should remove all bullets, %d remain", len(w.bullets))
	}
	if w.stats.Level != 2 {
		t.Errorf("Expected level 2, got %d", w.stats.Level)
	}
	if w.stats.Score != 50 {
		t.Errorf("Last alien should score at pre-scaling value 50, got %d", w.stats.Score)
	}
	if !almostEqual(w.settings.AlienSpeed, 1.1) || w.settings.AlienPoints != 75 {
		t.Errorf("Expected scaled settings, got speed=%v points=%d", w.settings.AlienSpeed, w.settings.AlienPoints)
	}
	if got := rec.levels[len(rec.levels)-1]; got != 2 {
		t.Errorf("Listener saw level %d, expected 2", got)
	}
}

func TestWaveClearWithoutScaling(t *testing.T) {
	w, _ := startedWorld(t, func(c *config.InvasionConfig) {
		c.Scaling.ScaleOnWaveClear = false
	})
	w.aliens = []*Alien{NewAlien(100, 100, 32, 32)}
	w.bullets = []*Bullet{{X: 110, Y: 110, Length: 15, Thickness: 3}}

	w.checkBulletAlienCollisions()

	if w.stats.Level != 2 {
		t.Errorf("Expected level 2, got %d", w.stats.Level)
	}
	if w.settings.AlienSpeed != 1.0 || w.settings.ShipSpeed != 1.5 || w.settings.AlienPoints != 50 {
		t.Errorf("Speeds must stay unscaled: alien=%v ship=%v points=%d",
			w.settings.AlienSpeed, w.settings.ShipSpeed, w.settings.AlienPoints)
	}
}

func TestFleetReversesAtEdge(t *testing.T) {
	w, _ := startedWorld(t, nil)
	w.aliens = []*Alien{
		NewAlien(100, 800-32, 32, 32), // Touching the bottom
		NewAlien(200, 400, 32, 32),
	}

	w.updateAliens()

	if w.settings.FleetDirection != -1 {
		t.Errorf("Expected direction -1 after bottom contact, got %d", w.settings.FleetDirection)
	}
	if w.aliens[0].X != 110 || w.aliens[1].X != 210 {
		t.Errorf("Every alien should advance by the drop step: x=%v, %v", w.aliens[0].X, w.aliens[1].X)
	}
	if w.aliens[0].Y != 800-32-1 || w.aliens[1].Y != 399 {
		t.Errorf("Aliens should move up after reversal: y=%v, %v", w.aliens[0].Y, w.aliens[1].Y)
	}

	// Away from the edge the direction holds
	w.updateAliens()
	if w.settings.FleetDirection != -1 {
		t.Error("Direction should not flip without edge contact")
	}
}

func TestShipCollisionCostsLife(t *testing.T) {
	w, rec := startedWorld(t, nil)
	w.aliens = []*Alien{NewAlien(1150, 380, 32, 32)}
	w.bullets = []*Bullet{{X: 500, Y: 50, Length: 15, Thickness: 3}}

	w.Tick()

	if w.stats.ShipsLeft != 2 {
		t.Errorf("Expected 2 ships left, got %d", w.stats.ShipsLeft)
	}
	if len(w.aliens) != 88 {
		t.Errorf("Fleet should be regenerated, got %d aliens", len(w.aliens))
	}
	if len(w.bullets) != 0 {
		t.Error("Bullets should be cleared on life loss")
	}
	if w.ship.X != 1160 || w.ship.Y != 390 {
		t.Errorf("Ship should be recentered, got (%v, %v)", w.ship.X, w.ship.Y)
	}
	if !w.InBreather() {
		t.Error("Life loss should start the breather")
	}
	if got := rec.lives[len(rec.lives)-1]; got != 2 {
		t.Errorf("Listener saw %d lives, expected 2", got)
	}
}

func TestRightEdgeBreachCostsLife(t *testing.T) {
	w, _ := startedWorld(t, nil)
	w.aliens = []*Alien{NewAlien(1200-32, 100, 32, 32)}

	w.Tick()

	if w.stats.ShipsLeft != 2 {
		t.Errorf("Expected 2 ships left after a breach, got %d", w.stats.ShipsLeft)
	}
}

func TestGameOverWhenNoShipsLeft(t *testing.T) {
	w, rec := startedWorld(t, nil)
	w.stats.ShipsLeft = 0
	w.stats.Score = 300
	w.aliens = []*Alien{NewAlien(1150, 380, 32, 32)}

	w.Tick()

	if w.State() != StateIdle {
		t.Fatal("World should be idle after the last ship is lost")
	}
	if w.stats.ShipsLeft != 0 {
		t.Errorf("Ships left must not go negative, got %d", w.stats.ShipsLeft)
	}
	if !w.Snapshot().PointerVisible || !rec.pointer[len(rec.pointer)-1] {
		t.Error("Pointer should be shown on game over")
	}
	if w.stats.Score != 300 {
		t.Error("Score should remain visible after game over")
	}

	w.HandleEvent(NewEvent(EventMoveUpStart))
	w.HandleEvent(NewEvent(EventFire))
	if w.ship.MovingUp || len(w.bullets) != 0 {
		t.Error("Movement and fire must be ignored after game over")
	}
}

func TestLivesNeverNegative(t *testing.T) {
	w, _ := startedWorld(t, func(c *config.InvasionConfig) {
		c.Gameplay.BreatherMillis = 0
	})
	for range 10 {
		w.aliens = []*Alien{NewAlien(1150, 380, 32, 32)}
		w.Tick()
		if w.stats.ShipsLeft < 0 {
			t.Fatalf("Ships left went negative: %d", w.stats.ShipsLeft)
		}
	}
	if w.State() != StateIdle {
		t.Error("Repeated hits should end the run")
	}
}

func TestBreatherBlocksExactTickCount(t *testing.T) {
	w, _ := startedWorld(t, nil)
	w.aliens = []*Alien{NewAlien(1150, 380, 32, 32)}
	w.Tick()
	if !w.InBreather() {
		t.Fatal("Expected breather after life loss")
	}

	frozen := w.Snapshot()
	w.HandleEvent(NewEvent(EventMoveUpStart))
	if w.ship.MovingUp {
		t.Error("Events during the breather should be queued, not applied")
	}

	for i := range 29 {
		w.Tick()
		if !w.InBreather() {
			t.Fatalf("Breather ended early at tick %d", i+1)
		}
	}
	if w.Snapshot().Aliens[0] != frozen.Aliens[0] {
		t.Error("Fleet moved during the breather")
	}

	w.Tick() // 30th tick ends the breather and applies queued events
	if w.InBreather() {
		t.Fatal("Breather should last exactly 30 ticks at 60/s")
	}
	if !w.ship.MovingUp {
		t.Error("Queued move-start should apply when the breather ends")
	}
	if w.ship.Y != frozen.Ship.Y {
		t.Error("The tick that ends the breather must not move the ship")
	}

	w.Tick()
	if w.ship.Y >= frozen.Ship.Y {
		t.Error("Ship should move on the first tick after the breather")
	}
}

func TestQuitAbortsBreather(t *testing.T) {
	w, _ := startedWorld(t, nil)
	w.aliens = []*Alien{NewAlien(1150, 380, 32, 32)}
	w.Tick()
	w.HandleEvent(NewEvent(EventFire))

	w.HandleEvent(NewEvent(EventQuit))

	if w.InBreather() {
		t.Error("Quit should abort the breather")
	}
	if !w.QuitRequested() {
		t.Error("Quit should be recorded")
	}
	before := w.Snapshot()
	w.Tick()
	after := w.Snapshot()
	if len(after.Bullets) != 0 || after.Aliens[0] != before.Aliens[0] {
		t.Error("Nothing should advance after quit")
	}
}

func TestRestartResetsStatsButKeepsHighScore(t *testing.T) {
	w, _ := startedWorld(t, nil)
	w.stats.Score = 1200
	w.stats.checkHighScore()
	w.stats.Level = 5
	w.settings.IncreaseSpeed()
	w.settings.ChangeFleetDirection()
	w.stats.ShipsLeft = 0
	w.shipHit("test")

	w.HandleEvent(NewEvent(EventPlay))

	if w.stats.Score != 0 || w.stats.Level != 1 || w.stats.ShipsLeft != 3 {
		t.Errorf("Restart did not reset stats: %+v", w.stats)
	}
	if w.stats.HighScore != 1200 {
		t.Errorf("High score should survive restart, got %d", w.stats.HighScore)
	}
	if w.settings.AlienSpeed != 1.0 || w.settings.AlienPoints != 50 {
		t.Error("Dynamic settings should reset on restart")
	}
	if w.settings.FleetDirection != -1 {
		t.Error("Fleet direction is not reset on restart")
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	w, _ := startedWorld(t, nil)
	w.HandleEvent(NewEvent(EventFire))
	snap := w.Snapshot()
	snap.Aliens[0].X = -999
	snap.Bullets[0].X = -999

	if w.aliens[0].X == -999 || w.bullets[0].X == -999 {
		t.Error("Mutating a snapshot must not affect the world")
	}
}

func TestWorldDeterminism(t *testing.T) {
	script := func(w *World) {
		w.HandleEvent(NewEvent(EventPlay))
		for i := range 2000 {
			switch i % 120 {
			case 0:
				w.HandleEvent(NewEvent(EventMoveUpStart))
			case 40:
				w.HandleEvent(NewEvent(EventMoveUpStop))
				w.HandleEvent(NewEvent(EventMoveDownStart))
			case 90:
				w.HandleEvent(NewEvent(EventMoveDownStop))
			}
			if i%7 == 0 {
				w.HandleEvent(NewEvent(EventFire))
			}
			w.Tick()
		}
	}

	w1, _ := newTestWorld(t, nil)
	w2, _ := newTestWorld(t, nil)
	script(w1)
	script(w2)

	s1, s2 := w1.Snapshot(), w2.Snapshot()
	if s1.Hash() != s2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", s1.Hash(), s2.Hash())
	}
	if s1.Score != s2.Score || s1.Tick != s2.Tick {
		t.Errorf("Determinism failed: score %d/%d tick %d/%d", s1.Score, s2.Score, s1.Tick, s2.Tick)
	}
	if s1.Score == 0 {
		t.Error("Scripted run should score at least once")
	}
}
