package window

import (
	"errors"
	"unicode"

	rl "github.com/gen2brain/raylib-go/raylib"

	"term-snake/game"
	"term-snake/game/entity"
	"term-snake/game/types"
	"term-snake/ui"
)

const (
	borderPadding = 10 // Padding around game area
	hudHeight     = 60 // Room for the status line under the grid
)

var snakeColor = rl.Color{R: 0, G: 200, B: 0, A: 255}

// Window renders the board with raylib. Cells are twice as tall as wide so
// the board keeps the proportions of a terminal.
type Window struct {
	cellW        int32
	cellH        int32
	screenWidth  int32
	screenHeight int32
	offsetX      int32
	offsetY      int32
}

func New(width, height, cellSize int) (*Window, error) {
	rl.InitWindow(int32(width), int32(height), "term-snake")
	if !rl.IsWindowReady() {
		return nil, errors.New("raylib window is not ready")
	}
	rl.SetWindowState(rl.FlagWindowResizable)
	rl.SetExitKey(rl.KeyNull) // Escape is handled by Poll
	rl.SetTargetFPS(60)

	w := &Window{
		cellW:   int32(cellSize / 2),
		cellH:   int32(cellSize),
		offsetX: borderPadding,
		offsetY: borderPadding,
	}
	w.UpdateDimensions()
	return w, nil
}

func (w *Window) UpdateDimensions() {
	w.screenWidth = int32(rl.GetScreenWidth())
	w.screenHeight = int32(rl.GetScreenHeight())
}

// Bounds counts whole cells that fit in the window; the outermost ones are
// the walls.
func (w *Window) Bounds() types.Rect {
	w.UpdateDimensions()
	cols := (w.screenWidth - borderPadding*2) / w.cellW
	rows := (w.screenHeight - borderPadding*2 - hudHeight) / w.cellH
	return types.NewRect(0, 0, int(cols), int(rows))
}

// Poll reads raylib's key queue up to the first turn.
func (w *Window) Poll() ui.Input {
	var in ui.Input
	if rl.WindowShouldClose() {
		in.Quit = true
		return in
	}
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		k := keyInput(key)
		if k.Quit {
			return k
		}
		in.Restart = in.Restart || k.Restart
		if !k.Direction.IsZero() {
			in.Direction = k.Direction
			return in
		}
	}
	return in
}

func keyInput(key int32) ui.Input {
	switch key {
	case rl.KeyEscape, rl.KeyQ:
		return ui.Input{Quit: true}
	case rl.KeyR:
		return ui.Input{Restart: true}
	case rl.KeyUp:
		return ui.Input{Direction: types.UP.ToPoint()}
	case rl.KeyDown:
		return ui.Input{Direction: types.DOWN.ToPoint()}
	case rl.KeyLeft:
		return ui.Input{Direction: types.LEFT.ToPoint()}
	case rl.KeyRight:
		return ui.Input{Direction: types.RIGHT.ToPoint()}
	}
	// Letter key codes are their upper case ASCII values.
	if key >= rl.KeyA && key <= rl.KeyZ {
		return ui.Input{Direction: ui.RuneDirection(unicode.ToLower(rune(key))).ToPoint()}
	}
	return ui.Input{}
}

func (w *Window) Draw(g *game.Game) {
	bounds := w.Bounds()
	fontSize := w.screenHeight / 30

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	gridWidth := int32(bounds.Width()) * w.cellW
	gridHeight := int32(bounds.Height()) * w.cellH

	// Walls occupy the outer ring of cells.
	rl.DrawRectangle(w.offsetX, w.offsetY, gridWidth, gridHeight, rl.DarkGray)
	rl.DrawRectangle(w.offsetX+w.cellW, w.offsetY+w.cellH,
		gridWidth-2*w.cellW, gridHeight-2*w.cellH, rl.Black)

	w.drawFood(g.Food())
	w.drawSnake(g.Snake())

	rl.DrawText(ui.StatusLine(g), w.offsetX, w.offsetY+gridHeight+borderPadding, fontSize, rl.White)

	if g.Over() {
		y := w.offsetY + gridHeight/3
		for _, line := range ui.GameOverLines(g) {
			x := w.offsetX + (gridWidth-rl.MeasureText(line, fontSize))/2
			rl.DrawText(line, x, y, fontSize, rl.Yellow)
			y += fontSize + 4
		}
	}

	rl.EndDrawing()
}

func (w *Window) cell(p types.Point) (int32, int32) {
	return w.offsetX + int32(p.X)*w.cellW, w.offsetY + int32(p.Y)*w.cellH
}

func (w *Window) drawSnake(s *entity.Snake) {
	for i := len(s.Body) - 1; i >= 1; i-- {
		x, y := w.cell(s.Body[i])
		rl.DrawRectangle(x, y, w.cellW, w.cellH, snakeColor)
	}

	head := rl.Color{
		R: uint8(float32(snakeColor.R) * 1.3),
		G: uint8(float32(snakeColor.G) * 1.25),
		B: uint8(float32(snakeColor.B) * 1.3),
		A: 255,
	}
	x, y := w.cell(s.Head())
	rl.DrawRectangle(x, y, w.cellW, w.cellH, head)

	// Direction indicator
	fx, fy := float32(x), float32(y)
	cw, ch := float32(w.cellW), float32(w.cellH)
	switch {
	case s.Direction.X > 0:
		rl.DrawTriangle(
			rl.Vector2{X: fx + cw, Y: fy + ch/2},
			rl.Vector2{X: fx + cw/2, Y: fy},
			rl.Vector2{X: fx + cw/2, Y: fy + ch},
			rl.Yellow)
	case s.Direction.X < 0:
		rl.DrawTriangle(
			rl.Vector2{X: fx, Y: fy + ch/2},
			rl.Vector2{X: fx + cw/2, Y: fy + ch},
			rl.Vector2{X: fx + cw/2, Y: fy},
			rl.Yellow)
	case s.Direction.Y > 0:
		rl.DrawTriangle(
			rl.Vector2{X: fx + cw/2, Y: fy + ch},
			rl.Vector2{X: fx + cw, Y: fy + ch/2},
			rl.Vector2{X: fx, Y: fy + ch/2},
			rl.Yellow)
	case s.Direction.Y < 0:
		rl.DrawTriangle(
			rl.Vector2{X: fx + cw/2, Y: fy},
			rl.Vector2{X: fx, Y: fy + ch/2},
			rl.Vector2{X: fx + cw, Y: fy + ch/2},
			rl.Yellow)
	}
}

func (w *Window) drawFood(f entity.Food) {
	color := rl.Red
	if f.Kind == entity.Fruit {
		color = rl.Yellow
	}
	x, y := w.cell(f.Position)
	rl.DrawRectangle(x, y, w.cellW, w.cellH, color)
}

func (w *Window) Close() {
	rl.CloseWindow()
}
