package invasion

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/alien-invasion/internal/config"
)

// Settings holds the static play-field configuration together with the
// dynamic values that scale as waves are cleared.
type Settings struct {
	// Static, set once by ResetToDefaults
	ScreenWidth      float64
	ScreenHeight     float64
	Background       config.RGB
	BulletWidth      float64 // Thickness across the travel axis
	BulletHeight     float64 // Length along the travel axis
	BulletColor      config.RGB
	BulletsAllowed   int
	BulletSpawnLift  float64
	AlienWidth       float64
	AlienHeight      float64
	DropSpeed        float64
	ShipWidth        float64
	ShipHeight       float64
	ShipLimit        int
	ShipBottomMargin float64
	SpeedupScale     float64
	ScoreScale       float64
	ScaleOnWaveClear bool
	Breather         time.Duration

	// Dynamic, reset by InitializeDynamicSettings and grown by IncreaseSpeed
	ShipSpeed   float64
	BulletSpeed float64
	AlienSpeed  float64
	AlienPoints int

	// FleetDirection is +1 (down) or -1 (up). Only ChangeFleetDirection alters it
	// after construction; it survives run restarts.
	FleetDirection int

	cfg config.InvasionConfig
}

// NewSettings validates cfg and builds settings from it.
func NewSettings(cfg config.InvasionConfig) (*Settings, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invasion: %w", err)
	}
	s := &Settings{cfg: cfg}
	s.ResetToDefaults()
	return s, nil
}

// ResetToDefaults sets every static field from the configuration and
// initializes the dynamic ones.
func (s *Settings) ResetToDefaults() {
	c := s.cfg
	s.ScreenWidth = float64(c.Screen.Width)
	s.ScreenHeight = float64(c.Screen.Height)
	s.Background = c.Screen.Background

	s.BulletWidth = float64(c.Bullet.Width)
	s.BulletHeight = float64(c.Bullet.Height)
	s.BulletColor = c.Bullet.Color
	s.BulletsAllowed = c.Bullet.Allowed
	s.BulletSpawnLift = float64(c.Bullet.SpawnLift)

	s.AlienWidth = float64(c.Alien.Width)
	s.AlienHeight = float64(c.Alien.Height)
	s.DropSpeed = c.Alien.DropSpeed
	s.FleetDirection = c.Alien.Direction

	s.ShipWidth = float64(c.Ship.Width)
	s.ShipHeight = float64(c.Ship.Height)
	s.ShipLimit = c.Ship.Limit
	s.ShipBottomMargin = float64(c.Ship.BottomMargin)

	s.SpeedupScale = c.Scaling.SpeedupScale
	s.ScoreScale = c.Scaling.ScoreScale
	s.ScaleOnWaveClear = c.Scaling.ScaleOnWaveClear
	s.Breather = time.Duration(c.Gameplay.BreatherMillis) * time.Millisecond

	s.InitializeDynamicSettings()
}

// InitializeDynamicSettings restores the values that change during a run.
// Fleet direction is deliberately left as it is.
func (s *Settings) InitializeDynamicSettings() {
	s.ShipSpeed = s.cfg.Ship.Speed
	s.BulletSpeed = s.cfg.Bullet.Speed
	s.AlienSpeed = s.cfg.Alien.Speed
	s.AlienPoints = s.cfg.Alien.Points
}

// IncreaseSpeed applies one wave of difficulty growth.
func (s *Settings) IncreaseSpeed() {
	s.ShipSpeed *= s.SpeedupScale
	s.BulletSpeed *= s.SpeedupScale
	s.AlienSpeed *= s.SpeedupScale
	s.AlienPoints = int(math.Floor(float64(s.AlienPoints) * s.ScoreScale))
}

// ChangeFleetDirection flips the bobbing direction.
func (s *Settings) ChangeFleetDirection() {
	s.FleetDirection = -s.FleetDirection
}

// BreatherTicks converts the post-loss pause into whole ticks at the given rate.
func (s *Settings) BreatherTicks(tickRate int) int {
	if tickRate <= 0 {
		tickRate = 60
	}
	return int(math.Ceil(s.Breather.Seconds() * float64(tickRate)))
}

// Config returns the configuration the settings were built from.
func (s *Settings) Config() config.InvasionConfig {
	return s.cfg
}
