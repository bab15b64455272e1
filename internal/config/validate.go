package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Validate checks that the configuration describes a playable field.
// All problems are reported together.
func (c InvasionConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	check(c.Screen.Width > 0 && c.Screen.Height > 0,
		"screen must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	check(c.Ship.Width > 0 && c.Ship.Height > 0,
		"ship size must be positive, got %dx%d", c.Ship.Width, c.Ship.Height)
	check(c.Alien.Width > 0 && c.Alien.Height > 0,
		"alien size must be positive, got %dx%d", c.Alien.Width, c.Alien.Height)
	check(c.Bullet.Width > 0 && c.Bullet.Height > 0,
		"bullet size must be positive, got %dx%d", c.Bullet.Width, c.Bullet.Height)
	check(c.Bullet.Allowed >= 1, "bullet.allowed must be at least 1, got %d", c.Bullet.Allowed)
	check(c.Ship.Limit >= 0, "ship.limit must not be negative, got %d", c.Ship.Limit)
	check(c.Ship.BottomMargin >= 0, "ship.bottom_margin must not be negative, got %d", c.Ship.BottomMargin)
	check(c.Ship.Speed > 0 && c.Bullet.Speed > 0 && c.Alien.Speed > 0,
		"speeds must be positive (ship %v, bullet %v, alien %v)", c.Ship.Speed, c.Bullet.Speed, c.Alien.Speed)
	check(c.Alien.Points >= 0, "alien.points must not be negative, got %d", c.Alien.Points)
	check(c.Alien.DropSpeed >= 0, "alien.drop_speed must not be negative, got %v", c.Alien.DropSpeed)
	check(c.Alien.Direction == 1 || c.Alien.Direction == -1,
		"alien.direction must be 1 or -1, got %d", c.Alien.Direction)
	check(c.Scaling.SpeedupScale > 0 && c.Scaling.ScoreScale > 0,
		"scales must be positive (speedup %v, score %v)", c.Scaling.SpeedupScale, c.Scaling.ScoreScale)
	check(c.Gameplay.BreatherMillis >= 0, "gameplay.breather_ms must not be negative, got %d", c.Gameplay.BreatherMillis)
	check(c.Gameplay.HoldTicks >= 1, "gameplay.hold_ticks must be at least 1, got %d", c.Gameplay.HoldTicks)

	if c.Screen.Width > 0 && c.Screen.Height > 0 {
		check(c.Ship.Width <= c.Screen.Width && c.Ship.Height+c.Ship.BottomMargin <= c.Screen.Height,
			"ship %dx%d does not fit a %dx%d screen", c.Ship.Width, c.Ship.Height, c.Screen.Width, c.Screen.Height)
		// The fleet starts one alien in from the top-left corner and needs a
		// column x < W-3w and a row y < H-2h to place its first alien.
		check(c.Screen.Width > 4*c.Alien.Width && c.Screen.Height > 3*c.Alien.Height,
			"a %dx%d screen has no room for a fleet of %dx%d aliens (need width > %d and height > %d)",
			c.Screen.Width, c.Screen.Height, c.Alien.Width, c.Alien.Height, 4*c.Alien.Width, 3*c.Alien.Height)
	}

	return errors.Join(errs...)
}
