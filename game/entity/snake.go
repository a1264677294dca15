package entity

import (
	"term-snake/game/types"
)

// Snake is the player-controlled body. Body[0] is the head.
type Snake struct {
	Body      []types.Point
	Direction types.Point
	Speed     float64
}

func NewSnake() *Snake {
	return &Snake{
		Body:      []types.Point{types.StartPosition},
		Direction: types.Point{X: 0, Y: 0}, // Not moving until the first turn
		Speed:     types.BaseSnakeSpeed,
	}
}

// IsCollision reports whether a and b collide while moving in direction.
// Besides exact coincidence, b also collides when it sits one cell behind a
// on the x axis, which covers the cell skipped by the doubled x step.
func IsCollision(a, b, direction types.Point) bool {
	return a.Y == b.Y && (a.X == b.X || a.Sub(direction).X == b.X)
}

func (s *Snake) Head() types.Point {
	return s.Body[0]
}

func (s *Snake) Tail() types.Point {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// SetDirection turns the snake. Only perpendicular, non-zero requests are
// accepted; anything else is ignored.
func (s *Snake) SetDirection(dir types.Point) {
	dirLen := dir.Dot(dir)
	if dir.Dot(s.Direction) != 0 || dirLen == 0 {
		return
	}
	s.Direction = dir.Div(types.Point{X: dirLen, Y: dirLen})
}

// Step moves every segment onto its predecessor and advances the head.
// The head moves two cells per step horizontally and one vertically.
func (s *Snake) Step() {
	for i := len(s.Body) - 1; i > 0; i-- {
		s.Body[i] = s.Body[i-1]
	}
	s.Body[0] = s.Body[0].Add(types.Point{X: s.Direction.X * 2, Y: s.Direction.Y})
}

// Grow appends nutrition copies of the tail, never past MaxSnakeLength.
func (s *Snake) Grow(nutrition int) {
	if len(s.Body) >= types.MaxSnakeLength {
		return
	}
	if room := types.MaxSnakeLength - len(s.Body); nutrition > room {
		nutrition = room
	}
	tail := s.Tail()
	for i := 0; i < nutrition; i++ {
		s.Body = append(s.Body, tail)
	}
}

func (s *Snake) SpeedUp() {
	if s.Speed >= types.MaxSnakeSpeed {
		return
	}
	s.Speed += types.SpeedStep
	if s.Speed > types.MaxSnakeSpeed {
		s.Speed = types.MaxSnakeSpeed
	}
}

// TestCollision reports whether p collides with any segment of the body.
func (s *Snake) TestCollision(p types.Point) bool {
	for _, part := range s.Body {
		if IsCollision(part, p, s.Direction) {
			return true
		}
	}
	return false
}

// TryEatFood grows and speeds the snake up when it reaches food. The caller
// must spawn new food when it returns true.
func (s *Snake) TryEatFood(food Food) bool {
	if !s.TestCollision(food.Position) {
		return false
	}
	s.Grow(food.Nutrition())
	s.SpeedUp()
	return true
}

// TryEatSelf reports whether the head ran into the rest of the body.
// Snakes of four segments or fewer cannot reach themselves.
func (s *Snake) TryEatSelf() bool {
	if len(s.Body) <= 4 {
		return false
	}
	head := s.Body[0]
	for _, part := range s.Body[1:] {
		if IsCollision(head, part, s.Direction) {
			return true
		}
	}
	return false
}

// TryHitWalls reports whether the head touches or crosses any edge.
func (s *Snake) TryHitWalls(bounds types.Rect) bool {
	head := s.Body[0]
	return head.X <= bounds.MinX ||
		head.X >= bounds.MaxX ||
		head.Y <= bounds.MinY ||
		head.Y >= bounds.MaxY
}
