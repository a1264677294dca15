package types

import "errors"

// Game constants
const (
	MaxSnakeLength = 100  // Upper bound on body segments
	MaxSnakeSpeed  = 10.0 // Upper bound on snake speed
	BaseSnakeSpeed = 1.0
	SpeedStep      = 0.1
)

// StartPosition is where every new snake is born.
var StartPosition = Point{X: 1, Y: 1}

// ErrDegenerateBounds is returned when a Rect has no interior on some axis.
var ErrDegenerateBounds = errors.New("degenerate boundaries")

// Point is an integer 2D coordinate, also used as a step vector.
type Point struct {
	X, Y int
}

func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Dot returns the dot product of p and o.
func (p Point) Dot(o Point) int {
	return p.X*o.X + p.Y*o.Y
}

// Div divides p component-wise by o. o must have no zero component.
func (p Point) Div(o Point) Point {
	return Point{X: p.X / o.X, Y: p.Y / o.Y}
}

func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// Rect holds the play-field limits. Min and Max are both edges.
type Rect struct {
	MinX, MinY int
	MaxX, MaxY int
}

func NewRect(minX, minY, maxX, maxY int) Rect {
	return Rect{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

// Valid reports whether both axes satisfy min < max.
func (r Rect) Valid() bool {
	return r.MinX < r.MaxX && r.MinY < r.MaxY
}

// Inset shrinks every side of r by n.
func (r Rect) Inset(n int) Rect {
	return Rect{MinX: r.MinX + n, MinY: r.MinY + n, MaxX: r.MaxX - n, MaxY: r.MaxY - n}
}

func (r Rect) Width() int {
	return r.MaxX - r.MinX
}

func (r Rect) Height() int {
	return r.MaxY - r.MinY
}
