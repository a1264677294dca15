package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	FrontendTerminal = "terminal"
	FrontendWindow   = "window"
)

type Config struct {
	Frontend      string        `env:"FRONTEND" envDefault:"terminal"`
	Tick          time.Duration `env:"TICK" envDefault:"125ms"`
	Seed          uint64        `env:"SEED" envDefault:"0"`
	FoodAvoidBody bool          `env:"FOOD_AVOID_BODY" envDefault:"true"`
	Sound         bool          `env:"SOUND" envDefault:"false"`
	LogLevel      string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFile       string        `env:"LOG_FILE"`
	WindowWidth   int           `env:"WINDOW_WIDTH" envDefault:"1024"`
	WindowHeight  int           `env:"WINDOW_HEIGHT" envDefault:"640"`
	CellSize      int           `env:"CELL_SIZE" envDefault:"16"`
}

// Load reads the configuration from SNAKE_* environment variables.
func Load() (*Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](env.Options{Prefix: "SNAKE_"})
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Frontend {
	case FrontendTerminal, FrontendWindow:
	default:
		return fmt.Errorf("unknown frontend %q", c.Frontend)
	}
	if c.Tick <= 0 {
		return fmt.Errorf("tick must be positive, got %s", c.Tick)
	}
	if c.CellSize < 2 {
		return fmt.Errorf("cell size must be at least 2, got %d", c.CellSize)
	}
	if c.WindowWidth < c.CellSize || c.WindowHeight < c.CellSize {
		return fmt.Errorf("window %dx%d is smaller than one cell", c.WindowWidth, c.WindowHeight)
	}
	return nil
}
