package config

import (
	_ "embed"
)

//go:embed defaults/invasion.yaml
var defaultInvasionYAML []byte

// DefaultInvasionConfig returns the default Alien Invasion configuration.
func DefaultInvasionConfig() InvasionConfig {
	return InvasionConfig{
		Screen: InvasionScreen{
			Width:      1200,
			Height:     800,
			Background: RGB{230, 230, 230},
			Title:      "Alien Invasion",
		},
		Ship: InvasionShip{
			Width:        40,
			Height:       20,
			Speed:        1.5,
			Limit:        3,
			BottomMargin: 15,
		},
		Bullet: InvasionBullet{
			Speed:     2.5,
			Width:     3,
			Height:    15,
			Color:     RGB{60, 60, 60},
			Allowed:   3,
			SpawnLift: 7,
		},
		Alien: InvasionAlien{
			Width:     32,
			Height:    32,
			Speed:     1.0,
			Points:    50,
			DropSpeed: 10,
			Direction: 1,
		},
		Scaling: InvasionScaling{
			SpeedupScale:     1.1,
			ScoreScale:       1.5,
			ScaleOnWaveClear: true,
		},
		Gameplay: InvasionGameplay{
			BreatherMillis: 500,
			HoldTicks:      30,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "invasion", "invasion_classic":
		return defaultInvasionYAML
	default:
		return nil
	}
}
