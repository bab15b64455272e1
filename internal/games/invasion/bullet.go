package invasion

import "github.com/vovakirdan/alien-invasion/internal/core"

// Bullet is a horizontal bolt travelling left from the ship.
type Bullet struct {
	X, Y      float64
	Length    float64 // Extent along x
	Thickness float64 // Extent along y
}

// NewBullet spawns a bullet whose bottom-center matches the ship's
// bottom-center, raised by lift.
func NewBullet(ship core.RectF, length, thickness, lift float64) *Bullet {
	return &Bullet{
		X:         ship.CenterX() - length/2,
		Y:         ship.Bottom() - thickness - lift,
		Length:    length,
		Thickness: thickness,
	}
}

// Update advances the bullet toward the left edge.
func (b *Bullet) Update(speed float64) {
	b.X -= speed
}

// OffScreen reports whether the bullet has left the play field.
func (b *Bullet) OffScreen() bool {
	return b.X < 0
}

// Position returns the top-left corner.
func (b *Bullet) Position() (float64, float64) { return b.X, b.Y }

// Bounds returns the bullet's bounding box.
func (b *Bullet) Bounds() core.RectF {
	return core.NewRectF(b.X, b.Y, b.Length, b.Thickness)
}
