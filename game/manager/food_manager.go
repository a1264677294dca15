package manager

import (
	"time"

	"golang.org/x/exp/rand"

	"term-snake/game/entity"
	"term-snake/game/types"
)

// MaxSpawnAttempts bounds the redraws made to keep food off the snake.
const MaxSpawnAttempts = 64

// NewRandomSource returns the generator used for food placement.
// A zero seed picks one from the clock.
func NewRandomSource(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}

type FoodManager struct {
	rng          entity.RandomSource
	avoidBody    bool
	collisionMgr *CollisionManager
}

func NewFoodManager(rng entity.RandomSource, avoidBody bool, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		rng:          rng,
		avoidBody:    avoidBody,
		collisionMgr: collisionMgr,
	}
}

// Spawn places new food strictly inside bounds, off the border cells.
// With avoidBody set it redraws while the position is on the snake and keeps
// the last draw once MaxSpawnAttempts is exhausted.
func (fm *FoodManager) Spawn(bounds types.Rect, snake *entity.Snake) (entity.Food, error) {
	area := bounds.Inset(1)

	var food entity.Food
	for attempt := 0; attempt < MaxSpawnAttempts; attempt++ {
		var err error
		food, err = entity.SpawnFood(fm.rng, area)
		if err != nil {
			return entity.Food{}, err
		}
		if !fm.avoidBody || fm.collisionMgr.ValidateSpawnPosition(food.Position, snake) {
			return food, nil
		}
	}
	return food, nil
}
