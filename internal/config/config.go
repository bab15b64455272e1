// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

// InvasionConfig contains all configuration for the Alien Invasion game.
// Distances are world units (pixels of the reference 1200x800 play field),
// speeds are world units per tick.
type InvasionConfig struct {
	Screen   InvasionScreen   `yaml:"screen"`
	Ship     InvasionShip     `yaml:"ship"`
	Bullet   InvasionBullet   `yaml:"bullet"`
	Alien    InvasionAlien    `yaml:"alien"`
	Scaling  InvasionScaling  `yaml:"scaling"`
	Gameplay InvasionGameplay `yaml:"gameplay"`
}

// InvasionScreen defines the play field.
type InvasionScreen struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Background RGB    `yaml:"background"`
	Title      string `yaml:"title"`
}

// InvasionShip defines the player ship.
type InvasionShip struct {
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	Speed        float64 `yaml:"speed"`         // Dynamic start value
	Limit        int     `yaml:"limit"`         // Spare ships per run
	BottomMargin int     `yaml:"bottom_margin"` // Lowest reachable bottom edge is height - margin
}

// InvasionBullet defines player projectiles.
type InvasionBullet struct {
	Speed     float64 `yaml:"speed"`      // Dynamic start value
	Width     int     `yaml:"width"`      // Thickness across the travel axis
	Height    int     `yaml:"height"`     // Length along the travel axis
	Color     RGB     `yaml:"color"`      // Opaque to the simulation
	Allowed   int     `yaml:"allowed"`    // Max bullets in flight
	SpawnLift int     `yaml:"spawn_lift"` // Raise from the ship's bottom edge at spawn
}

// InvasionAlien defines fleet members.
type InvasionAlien struct {
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	Speed     float64 `yaml:"speed"`  // Dynamic start value
	Points    int     `yaml:"points"` // Dynamic start value
	DropSpeed float64 `yaml:"drop_speed"`
	Direction int     `yaml:"direction"` // Initial fleet direction, +1 down or -1 up
}

// InvasionScaling defines per-wave difficulty growth.
type InvasionScaling struct {
	SpeedupScale     float64 `yaml:"speedup_scale"`
	ScoreScale       float64 `yaml:"score_scale"`
	ScaleOnWaveClear bool    `yaml:"scale_on_wave_clear"`
}

// InvasionGameplay defines timing of state transitions.
type InvasionGameplay struct {
	BreatherMillis int `yaml:"breather_ms"` // Pause after losing a ship
	HoldTicks      int `yaml:"hold_ticks"`  // Terminal key-hold window
}

// RGB is an opaque display color carried through configuration.
type RGB [3]uint8

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset. Unknown or empty values
// return an empty preset, which leaves the loaded config untouched.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
