package invasion

import "github.com/vovakirdan/alien-invasion/internal/core"

// Ship is the player's craft, anchored to the right edge and steered vertically.
type Ship struct {
	X, Y          float64
	Width, Height float64

	MovingUp   bool
	MovingDown bool
}

// NewShip creates a ship of the given size at the origin. Call Center to place it.
func NewShip(width, height float64) *Ship {
	return &Ship{Width: width, Height: height}
}

// Center places the ship at the middle of the right edge.
func (s *Ship) Center(screenW, screenH float64) {
	s.X = screenW - s.Width
	s.Y = (screenH - s.Height) / 2
}

// Update moves the ship by speed along its intent flags. Each direction is
// checked against its limit before moving, so the ship may overshoot a
// boundary by less than one step and then stop.
func (s *Ship) Update(speed, screenH, bottomMargin float64) {
	if s.MovingUp && s.Y > 0 {
		s.Y -= speed
	}
	if s.MovingDown && s.Y+s.Height < screenH-bottomMargin {
		s.Y += speed
	}
}

// Position returns the top-left corner.
func (s *Ship) Position() (float64, float64) { return s.X, s.Y }

// Bounds returns the ship's bounding box.
func (s *Ship) Bounds() core.RectF {
	return core.NewRectF(s.X, s.Y, s.Width, s.Height)
}
