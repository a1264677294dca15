package terminal

import (
	"github.com/gdamore/tcell/v2"

	"term-snake/game"
	"term-snake/game/entity"
	"term-snake/game/types"
	"term-snake/ui"
)

var (
	borderStyle = tcell.StyleDefault
	snakeStyle  = tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorBlack)
	berryStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorBlack)
	fruitStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlack)
	bannerStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
)

// Terminal is a full-screen tcell frontend.
type Terminal struct {
	screen tcell.Screen
	events chan tcell.Event
	done   chan struct{}
}

func New() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return NewWithScreen(screen), nil
}

// NewWithScreen wraps an initialized screen and starts pumping its events.
func NewWithScreen(screen tcell.Screen) *Terminal {
	screen.HideCursor()
	t := &Terminal{
		screen: screen,
		events: make(chan tcell.Event, 100),
		done:   make(chan struct{}),
	}
	go t.pump()
	return t
}

func (t *Terminal) pump() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

func (t *Terminal) Bounds() types.Rect {
	w, h := t.screen.Size()
	return types.NewRect(0, 0, w, h)
}

// Poll drains queued events up to and including the first turn, so quick
// successive turns land on successive ticks.
func (t *Terminal) Poll() ui.Input {
	var in ui.Input
	for {
		select {
		case ev := <-t.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				key := keyInput(ev)
				if key.Quit {
					return key
				}
				in.Restart = in.Restart || key.Restart
				if !key.Direction.IsZero() {
					in.Direction = key.Direction
					return in
				}
			case *tcell.EventResize:
				t.screen.Sync()
			}
		default:
			return in
		}
	}
}

func keyInput(ev *tcell.EventKey) ui.Input {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ui.Input{Quit: true}
	case tcell.KeyUp:
		return ui.Input{Direction: types.UP.ToPoint()}
	case tcell.KeyDown:
		return ui.Input{Direction: types.DOWN.ToPoint()}
	case tcell.KeyLeft:
		return ui.Input{Direction: types.LEFT.ToPoint()}
	case tcell.KeyRight:
		return ui.Input{Direction: types.RIGHT.ToPoint()}
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return ui.Input{Quit: true}
		case 'r', 'R':
			return ui.Input{Restart: true}
		}
		return ui.Input{Direction: ui.RuneDirection(ev.Rune()).ToPoint()}
	}
	return ui.Input{}
}

func (t *Terminal) Draw(g *game.Game) {
	t.screen.Clear()
	w, h := t.screen.Size()

	t.drawBorder(w, h)
	t.drawSnake(g.Snake())
	t.drawFood(g.Food())
	t.print(2, 0, " "+ui.StatusLine(g)+" ", borderStyle)

	if g.Over() {
		lines := ui.GameOverLines(g)
		y := h/2 - len(lines)/2
		for i, line := range lines {
			t.print((w-len(line))/2, y+i, line, bannerStyle)
		}
	}
	t.screen.Show()
}

func (t *Terminal) drawBorder(w, h int) {
	if w < 2 || h < 2 {
		return
	}
	for x := 1; x < w-1; x++ {
		t.screen.SetContent(x, 0, '-', nil, borderStyle)
		t.screen.SetContent(x, h-1, '-', nil, borderStyle)
	}
	for y := 1; y < h-1; y++ {
		t.screen.SetContent(0, y, '|', nil, borderStyle)
		t.screen.SetContent(w-1, y, '|', nil, borderStyle)
	}
	for _, c := range [][2]int{{0, 0}, {w - 1, 0}, {0, h - 1}, {w - 1, h - 1}} {
		t.screen.SetContent(c[0], c[1], '+', nil, borderStyle)
	}
}

func (t *Terminal) drawSnake(s *entity.Snake) {
	for i := len(s.Body) - 1; i >= 0; i-- {
		glyph := 'o'
		if i == 0 {
			glyph = 'O'
		}
		t.screen.SetContent(s.Body[i].X, s.Body[i].Y, glyph, nil, snakeStyle)
	}
}

func (t *Terminal) drawFood(f entity.Food) {
	glyph, style := '@', berryStyle
	if f.Kind == entity.Fruit {
		glyph, style = '%', fruitStyle
	}
	t.screen.SetContent(f.Position.X, f.Position.Y, glyph, nil, style)
}

func (t *Terminal) print(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}

// Close restores the terminal.
func (t *Terminal) Close() {
	close(t.done)
	t.screen.Fini()
}
