package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"term-snake/game/types"
)

func TestNewSnake(t *testing.T) {
	s := NewSnake()

	require.Len(t, s.Body, 1)
	assert.Equal(t, types.Point{X: 1, Y: 1}, s.Head())
	assert.True(t, s.Direction.IsZero())
	assert.Equal(t, 1.0, s.Speed)
}

func TestStepDoublesHorizontalMove(t *testing.T) {
	s := NewSnake()
	s.SetDirection(types.Point{X: 1, Y: 0})
	s.Step()

	assert.Equal(t, []types.Point{{X: 3, Y: 1}}, s.Body)
	assert.Equal(t, types.Point{X: 1, Y: 0}, s.Direction)

	s.SetDirection(types.Point{X: 0, Y: 1})
	s.Step()
	assert.Equal(t, types.Point{X: 3, Y: 2}, s.Head())
}

func TestStepShiftsBodyTowardsHead(t *testing.T) {
	s := &Snake{
		Body:      []types.Point{{X: 5, Y: 5}, {X: 3, Y: 5}, {X: 1, Y: 5}},
		Direction: types.Point{X: 0, Y: -1},
		Speed:     1,
	}
	s.Step()

	assert.Equal(t, []types.Point{{X: 5, Y: 4}, {X: 5, Y: 5}, {X: 3, Y: 5}}, s.Body)
}

func TestStepWithoutDirectionStaysPut(t *testing.T) {
	s := NewSnake()
	s.Step()
	assert.Equal(t, types.StartPosition, s.Head())
}

func TestEatFood(t *testing.T) {
	s := NewSnake()
	s.SetDirection(types.Point{X: 1, Y: 0})
	s.Step()

	require.True(t, s.TryEatFood(NewFood(Berry, types.Point{X: 3, Y: 1})))
	assert.Len(t, s.Body, 2)
	assert.Equal(t, types.Point{X: 3, Y: 1}, s.Body[1])
	assert.InDelta(t, 1.1, s.Speed, 1e-9)

	require.True(t, s.TryEatFood(NewFood(Fruit, types.Point{X: 3, Y: 1})))
	assert.Len(t, s.Body, 4)
	assert.InDelta(t, 1.2, s.Speed, 1e-9)
}

func TestEatFoodMiss(t *testing.T) {
	s := NewSnake()
	s.SetDirection(types.Point{X: 1, Y: 0})
	s.Step()

	assert.False(t, s.TryEatFood(NewFood(Fruit, types.Point{X: 10, Y: 10})))
	assert.False(t, s.TryEatFood(NewFood(Fruit, types.Point{X: 3, Y: 2})))
	assert.Len(t, s.Body, 1)
	assert.Equal(t, 1.0, s.Speed)
}

func TestEatFoodBehindHead(t *testing.T) {
	// The cell skipped by the doubled x step still counts.
	s := NewSnake()
	s.SetDirection(types.Point{X: 1, Y: 0})
	s.Step()
	assert.True(t, s.TestCollision(types.Point{X: 2, Y: 1}))

	s = NewSnake()
	s.SetDirection(types.Point{X: -1, Y: 0})
	s.Step()
	require.Equal(t, types.Point{X: -1, Y: 1}, s.Head())
	assert.True(t, s.TestCollision(types.Point{X: 0, Y: 1}))
	assert.False(t, s.TestCollision(types.Point{X: -2, Y: 1}))
}

func TestSetDirection(t *testing.T) {
	s := NewSnake()
	s.SetDirection(types.Point{X: 1, Y: 0})
	require.Equal(t, types.Point{X: 1, Y: 0}, s.Direction)

	s.SetDirection(types.Point{X: -1, Y: 0})
	assert.Equal(t, types.Point{X: 1, Y: 0}, s.Direction, "reversal must be rejected")

	s.SetDirection(types.Point{X: 0, Y: 0})
	assert.Equal(t, types.Point{X: 1, Y: 0}, s.Direction, "zero request must be rejected")

	s.SetDirection(types.Point{X: 1, Y: 0})
	assert.Equal(t, types.Point{X: 1, Y: 0}, s.Direction)

	s.SetDirection(types.Point{X: 0, Y: -1})
	assert.Equal(t, types.Point{X: 0, Y: -1}, s.Direction)
}

func TestSetDirectionFromRest(t *testing.T) {
	for _, d := range []types.Direction{types.UP, types.RIGHT, types.DOWN, types.LEFT} {
		s := NewSnake()
		s.SetDirection(d.ToPoint())
		assert.Equal(t, d.ToPoint(), s.Direction, d.String())
	}
}

func TestSetDirectionPerpendicularAlwaysAccepted(t *testing.T) {
	all := []types.Direction{types.UP, types.RIGHT, types.DOWN, types.LEFT}
	for _, cur := range all {
		for _, req := range all {
			s := NewSnake()
			s.SetDirection(cur.ToPoint())
			s.SetDirection(req.ToPoint())

			if cur.ToPoint().Dot(req.ToPoint()) == 0 {
				assert.Equal(t, req.ToPoint(), s.Direction, "%s -> %s", cur, req)
			} else {
				assert.Equal(t, cur.ToPoint(), s.Direction, "%s -> %s", cur, req)
			}
		}
	}
}

func TestGrowCapped(t *testing.T) {
	s := NewSnake()
	for i := 0; i < 500; i++ {
		s.Grow(2)
		require.LessOrEqual(t, s.Len(), types.MaxSnakeLength)
	}
	assert.Equal(t, types.MaxSnakeLength, s.Len())

	s = NewSnake()
	s.Body = make([]types.Point, types.MaxSnakeLength-1)
	s.Grow(2)
	assert.Equal(t, types.MaxSnakeLength, s.Len())
}

func TestGrowCopiesTail(t *testing.T) {
	s := &Snake{Body: []types.Point{{X: 4, Y: 4}, {X: 2, Y: 4}}, Speed: 1}
	s.Grow(2)
	assert.Equal(t, []types.Point{{X: 4, Y: 4}, {X: 2, Y: 4}, {X: 2, Y: 4}, {X: 2, Y: 4}}, s.Body)
}

func TestSpeedUpCapped(t *testing.T) {
	s := NewSnake()
	prev := s.Speed
	for i := 0; i < 200; i++ {
		s.SpeedUp()
		require.GreaterOrEqual(t, s.Speed, prev)
		require.LessOrEqual(t, s.Speed, types.MaxSnakeSpeed)
		prev = s.Speed
	}
	assert.Equal(t, types.MaxSnakeSpeed, s.Speed)
}

func TestTryHitWalls(t *testing.T) {
	s := NewSnake()
	s.SetDirection(types.Point{X: 1, Y: 0})
	s.Step()
	assert.True(t, s.TryHitWalls(types.NewRect(0, 0, 1, 1)))

	bounds := types.NewRect(0, 0, 10, 10)
	tests := []struct {
		head types.Point
		want bool
	}{
		{types.Point{X: 5, Y: 5}, false},
		{types.Point{X: 1, Y: 1}, false},
		{types.Point{X: 9, Y: 9}, false},
		{types.Point{X: 0, Y: 5}, true},
		{types.Point{X: 10, Y: 5}, true},
		{types.Point{X: 5, Y: 0}, true},
		{types.Point{X: 5, Y: 10}, true},
		{types.Point{X: -3, Y: 12}, true},
	}
	for _, tt := range tests {
		s.Body[0] = tt.head
		assert.Equal(t, tt.want, s.TryHitWalls(bounds), "head %+v", tt.head)
	}
}

func TestTryEatSelf(t *testing.T) {
	overlap := func(n int) *Snake {
		body := make([]types.Point, n)
		for i := range body {
			body[i] = types.Point{X: 5, Y: 5}
		}
		return &Snake{Body: body, Direction: types.Point{X: 1, Y: 0}, Speed: 1}
	}

	for n := 1; n <= 4; n++ {
		assert.False(t, overlap(n).TryEatSelf(), "length %d", n)
	}
	assert.True(t, overlap(5).TryEatSelf())

	s := &Snake{
		Body: []types.Point{
			{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 7, Y: 6}, {X: 7, Y: 5}, {X: 4, Y: 5},
		},
		Direction: types.Point{X: 1, Y: 0},
		Speed:     1,
	}
	assert.True(t, s.TryEatSelf(), "segment one cell behind the head collides")

	s.Body[4] = types.Point{X: 3, Y: 5}
	assert.False(t, s.TryEatSelf())
}

func TestIsCollision(t *testing.T) {
	right := types.Point{X: 1, Y: 0}
	up := types.Point{X: 0, Y: -1}

	assert.True(t, IsCollision(types.Point{X: 2, Y: 2}, types.Point{X: 2, Y: 2}, types.Point{}))
	assert.False(t, IsCollision(types.Point{X: 2, Y: 2}, types.Point{X: 1, Y: 2}, types.Point{}))
	assert.True(t, IsCollision(types.Point{X: 2, Y: 2}, types.Point{X: 1, Y: 2}, right))
	assert.False(t, IsCollision(types.Point{X: 2, Y: 2}, types.Point{X: 3, Y: 2}, right))
	assert.False(t, IsCollision(types.Point{X: 2, Y: 2}, types.Point{X: 2, Y: 3}, up))
	assert.False(t, IsCollision(types.Point{X: 2, Y: 2}, types.Point{X: 1, Y: 3}, right))
}
