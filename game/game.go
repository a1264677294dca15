package game

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"term-snake/game/entity"
	"term-snake/game/manager"
	"term-snake/game/types"
)

// DefaultBaseTick is the tick length at speed 1.
const DefaultBaseTick = 125 * time.Millisecond

type Options struct {
	Seed      uint64              // 0 seeds from the clock
	AvoidBody bool                // keep new food off the snake
	BaseTick  time.Duration       // tick length at speed 1
	Rand      entity.RandomSource // overrides Seed when set
	Log       logrus.FieldLogger
}

// Outcome describes what happened during one tick.
type Outcome struct {
	Ate   bool
	Eaten entity.Food // valid when Ate is set
	Over  bool
	Cause manager.CollisionType
}

// Game drives one snake and its food through discrete ticks. It is not safe
// for concurrent use.
type Game struct {
	UUID  string
	snake *entity.Snake
	food  entity.Food
	over  bool
	cause manager.CollisionType

	baseTick     time.Duration
	log          logrus.FieldLogger
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager
}

func NewGame(opts Options, bounds types.Rect) (*Game, error) {
	rng := opts.Rand
	if rng == nil {
		rng = manager.NewRandomSource(opts.Seed)
	}
	baseTick := opts.BaseTick
	if baseTick <= 0 {
		baseTick = DefaultBaseTick
	}
	log := opts.Log
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}

	collisionMgr := manager.NewCollisionManager()
	g := &Game{
		baseTick:     baseTick,
		log:          log,
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(rng, opts.AvoidBody, collisionMgr),
		stateMgr:     manager.NewStateManager(),
	}
	if err := g.Reset(bounds); err != nil {
		return nil, err
	}
	return g, nil
}

// playable reports whether bounds leave room for food inside the walls.
func playable(bounds types.Rect) bool {
	return bounds.Valid() && bounds.Inset(1).Valid()
}

// Reset starts a new session with a fresh snake and food.
func (g *Game) Reset(bounds types.Rect) error {
	if !playable(bounds) {
		return fmt.Errorf("reset game: %w", types.ErrDegenerateBounds)
	}

	snake := entity.NewSnake()
	food, err := g.foodMgr.Spawn(bounds, snake)
	if err != nil {
		return fmt.Errorf("reset game: %w", err)
	}

	g.UUID = uuid.New().String()
	g.snake = snake
	g.food = food
	g.over = false
	g.cause = manager.NoCollision
	g.stateMgr.StartGame()

	g.log.WithFields(logrus.Fields{
		"session": g.UUID,
		"food":    food.Kind.String(),
	}).Info("new game")
	return nil
}

// Update advances the game by one tick. intent is the requested direction;
// the zero point means no change. Ticks after game over are ignored, and
// bounds too small to hold food leave the state untouched.
func (g *Game) Update(intent types.Point, bounds types.Rect) (Outcome, error) {
	if !playable(bounds) {
		return Outcome{}, fmt.Errorf("update game: %w", types.ErrDegenerateBounds)
	}
	if g.over {
		return Outcome{Over: true, Cause: g.cause}, nil
	}

	g.snake.SetDirection(intent)
	g.snake.Step()
	g.stateMgr.RecordStep()

	if cause := g.collisionMgr.Check(g.snake, bounds); cause != manager.NoCollision {
		g.over = true
		g.cause = cause
		g.stateMgr.UpdateScore(g.snake.Len())
		g.stateMgr.AddToHistory(g.snake.Len())
		g.log.WithFields(logrus.Fields{
			"session": g.UUID,
			"score":   g.snake.Len(),
			"steps":   g.stateMgr.GetSteps(),
			"cause":   cause.String(),
		}).Info("game over")
		return Outcome{Over: true, Cause: cause}, nil
	}

	out := Outcome{}
	if g.snake.TryEatFood(g.food) {
		eaten := g.food
		out.Ate = true
		out.Eaten = eaten
		food, err := g.foodMgr.Spawn(bounds, g.snake)
		if err != nil {
			return out, fmt.Errorf("respawn food: %w", err)
		}
		g.food = food
		g.log.WithFields(logrus.Fields{
			"session": g.UUID,
			"food":    eaten.Kind.String(),
			"score":   g.snake.Len(),
			"speed":   g.snake.Speed,
		}).Debug("food eaten")
	}
	g.stateMgr.UpdateScore(g.snake.Len())
	return out, nil
}

// TickDelay is how long the loop should wait before the next tick.
func (g *Game) TickDelay() time.Duration {
	return time.Duration(float64(g.baseTick) / g.snake.Speed)
}

func (g *Game) Snake() *entity.Snake {
	return g.snake
}

func (g *Game) Food() entity.Food {
	return g.food
}

// Score is the current body length.
func (g *Game) Score() int {
	return g.snake.Len()
}

func (g *Game) Over() bool {
	return g.over
}

func (g *Game) Cause() manager.CollisionType {
	return g.cause
}

func (g *Game) Stats() *manager.StateManager {
	return g.stateMgr
}
