package entity

import (
	"fmt"

	"term-snake/game/types"
)

// FoodKind selects nutrition and look of a food item.
type FoodKind int

const (
	Berry FoodKind = iota
	Fruit
)

func (k FoodKind) Nutrition() int {
	switch k {
	case Fruit:
		return 2
	default:
		return 1
	}
}

func (k FoodKind) String() string {
	switch k {
	case Fruit:
		return "fruit"
	default:
		return "berry"
	}
}

// RandomSource is the subset of *rand.Rand used to place food.
type RandomSource interface {
	Float64() float64
	Intn(n int) int
}

// Food is the single edible item on the board. It is never mutated; eating
// it replaces it with a freshly spawned one.
type Food struct {
	Kind     FoodKind
	Position types.Point
}

func NewFood(kind FoodKind, pos types.Point) Food {
	return Food{Kind: kind, Position: pos}
}

func (f Food) Nutrition() int {
	return f.Kind.Nutrition()
}

// SpawnFood picks a kind with even odds and a position with
// x in [MinX, MaxX) and y in [MinY, MaxY).
func SpawnFood(rng RandomSource, bounds types.Rect) (Food, error) {
	if !bounds.Valid() {
		return Food{}, fmt.Errorf("spawn food in %+v: %w", bounds, types.ErrDegenerateBounds)
	}

	kind := Fruit
	if rng.Float64() < 0.5 {
		kind = Berry
	}

	pos := types.Point{
		X: bounds.MinX + rng.Intn(bounds.Width()),
		Y: bounds.MinY + rng.Intn(bounds.Height()),
	}
	return NewFood(kind, pos), nil
}
