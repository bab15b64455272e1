package invasion

import "github.com/vovakirdan/alien-invasion/internal/core"

// Alien is a single fleet member.
type Alien struct {
	X, Y          float64
	Width, Height float64
}

// NewAlien creates an alien at the given spawn position.
func NewAlien(x, y, width, height float64) *Alien {
	return &Alien{X: x, Y: y, Width: width, Height: height}
}

// Update bobs the alien along y. Direction is +1 (down) or -1 (up).
func (a *Alien) Update(speed float64, direction int) {
	a.Y += speed * float64(direction)
}

// CheckEdges reports whether the alien touches the top or bottom edge.
func (a *Alien) CheckEdges(screenH float64) bool {
	return a.Y+a.Height >= screenH || a.Y <= 0
}

// Position returns the top-left corner.
func (a *Alien) Position() (float64, float64) { return a.X, a.Y }

// Bounds returns the alien's bounding box.
func (a *Alien) Bounds() core.RectF {
	return core.NewRectF(a.X, a.Y, a.Width, a.Height)
}
