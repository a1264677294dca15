package sound

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"term-snake/game/entity"
)

const sampleRate = beep.SampleRate(44100)

// Player plays short tones for game events. A disabled Player is silent.
type Player struct {
	enabled bool
}

// New initializes the speaker when enabled. On failure it still returns a
// usable, silent Player together with the error.
func New(enabled bool) (*Player, error) {
	if !enabled {
		return &Player{}, nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &Player{}, err
	}
	return &Player{enabled: true}, nil
}

func (p *Player) Enabled() bool {
	return p.enabled
}

// Eat plays a higher note for richer food.
func (p *Player) Eat(kind entity.FoodKind) {
	p.tone(660*float64(kind.Nutrition()), 50*time.Millisecond)
}

func (p *Player) GameOver() {
	p.tone(220, 300*time.Millisecond)
}

func (p *Player) tone(freq float64, d time.Duration) {
	if !p.enabled {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}

func (p *Player) Close() {
	if p.enabled {
		speaker.Close()
	}
}
