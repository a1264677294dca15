package ui

import (
	"fmt"
	"time"
	"unicode"

	"term-snake/game"
	"term-snake/game/types"
)

// Frontend draws the game and collects player input.
type Frontend interface {
	// Bounds returns the play-field limits for the current display size.
	Bounds() types.Rect
	// Poll returns pending input without blocking.
	Poll() Input
	Draw(g *game.Game)
	Close()
}

// Input is what the player asked for since the last poll. A zero Direction
// means no change.
type Input struct {
	Direction types.Point
	Quit      bool
	Restart   bool
}

// RuneDirection maps letter keys (WASD and hjkl) to directions.
func RuneDirection(r rune) types.Direction {
	switch unicode.ToLower(r) {
	case 'w', 'k':
		return types.UP
	case 'd', 'l':
		return types.RIGHT
	case 's', 'j':
		return types.DOWN
	case 'a', 'h':
		return types.LEFT
	default:
		return types.NONE
	}
}

// StatusLine is the score text shown on the border.
func StatusLine(g *game.Game) string {
	return fmt.Sprintf("Score: %d  Best: %d  Speed: %.1f",
		g.Score(), g.Stats().GetHighScore(), g.Snake().Speed)
}

// GameOverLines is the banner shown once the game ends.
func GameOverLines(g *game.Game) []string {
	return []string{
		fmt.Sprintf("GAME OVER (%s)", g.Cause()),
		fmt.Sprintf("Score %d in %s, games %d, average %.1f",
			g.Score(), g.Stats().Elapsed().Round(time.Second),
			g.Stats().GamesPlayed(), g.Stats().AverageScore()),
		"r: restart   esc: quit",
	}
}
