package invasion

import "github.com/vovakirdan/alien-invasion/internal/core"

// Entity is anything placed on the play field.
type Entity interface {
	Position() (x, y float64)
	Bounds() core.RectF
}

var (
	_ Entity = (*Ship)(nil)
	_ Entity = (*Bullet)(nil)
	_ Entity = (*Alien)(nil)
)
