package invasion

// MaxFleetColumns caps how many columns a fleet may have.
const MaxFleetColumns = 8

// Point is a spawn position in world units.
type Point struct {
	X, Y float64
}

// FleetLayout returns the spawn positions of a fresh fleet, column by column.
// Columns start one alien width from the left edge and are spaced two widths
// apart; rows start one alien height from the top and are spaced two heights
// apart, leaving room for the fleet to bob.
func FleetLayout(screenW, screenH, alienW, alienH float64) []Point {
	var points []Point
	x, y := alienW, alienH
	columns := 0
	for x < screenW-3*alienW && columns < MaxFleetColumns {
		for y < screenH-2*alienH {
			points = append(points, Point{X: x, Y: y})
			y += 2 * alienH
		}
		y = alienH
		x += 2 * alienW
		columns++
	}
	return points
}

// newFleet builds aliens at every layout position.
func newFleet(s *Settings) []*Alien {
	layout := FleetLayout(s.ScreenWidth, s.ScreenHeight, s.AlienWidth, s.AlienHeight)
	aliens := make([]*Alien, 0, len(layout))
	for _, p := range layout {
		aliens = append(aliens, NewAlien(p.X, p.Y, s.AlienWidth, s.AlienHeight))
	}
	return aliens
}
