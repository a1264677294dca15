package manager

import (
	"term-snake/game/entity"
	"term-snake/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

type CollisionManager struct{}

func NewCollisionManager() *CollisionManager {
	return &CollisionManager{}
}

// Check classifies the terminal condition of the snake after a step.
// Walls are checked first.
func (cm *CollisionManager) Check(snake *entity.Snake, bounds types.Rect) CollisionType {
	if snake.TryHitWalls(bounds) {
		return WallCollision
	}
	if snake.TryEatSelf() {
		return SelfCollision
	}
	return NoCollision
}

// ValidateSpawnPosition reports whether food placed at pos would be clear of
// the snake, using the same rule that decides eating.
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake) bool {
	if snake == nil {
		return true
	}
	return !snake.TestCollision(pos)
}
