package model

import (
	"fmt"
	"math"
)

// Map geometry of the arena. Bases sit in opposite corners.
const (
	MapWidth  = 17630
	MapHeight = 9000

	// BaseVisionRadius is how far around a base the judge reports entities.
	BaseVisionRadius = 6000
	// BaseAttackRadius is the radius inside which monsters lock onto a base.
	BaseAttackRadius = 5000
	// HeroVisionRadius is the sight range of a single hero.
	HeroVisionRadius = 2200
)

// Point is a map position in game units.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

func (p Point) String() string { return fmt.Sprintf("(%d, %d)", p.X, p.Y) }

// Dist2 returns the squared distance, which is enough for comparisons.
func (p Point) Dist2(q Point) int {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// Dist returns the euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Sqrt(float64(p.Dist2(q)))
}

// Within reports whether q lies inside radius r of p.
func (p Point) Within(q Point, r int) bool {
	return p.Dist2(q) <= r*r
}

// InBounds reports whether p lies on the map. Coordinates outside the map are
// legal on the wire (monsters spawn off-edge) so this is informational.
func (p Point) InBounds() bool {
	return p.X >= 0 && p.X <= MapWidth && p.Y >= 0 && p.Y <= MapHeight
}

// Clamp returns p moved onto the map edge if it lies outside.
func (p Point) Clamp() Point {
	return Point{X: clampInt(p.X, 0, MapWidth), Y: clampInt(p.Y, 0, MapHeight)}
}

// clampInt restricts v to [min, max].
func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
