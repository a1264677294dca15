package main

import (
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"term-snake/game"
	"term-snake/internal/config"
	"term-snake/internal/logging"
	"term-snake/ui"
	"term-snake/ui/sound"
	"term-snake/ui/terminal"
	"term-snake/ui/window"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, closer, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(1)
	}

	g, err := run(cfg, logger)
	if err != nil {
		logger.WithError(err).Error("snake exited")
		closer.Close()
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(1)
	}
	closer.Close()

	stats := g.Stats()
	fmt.Printf("Score: %d  Best: %d  Games: %d\n", g.Score(), stats.GetHighScore(), stats.GamesPlayed())
}

func newFrontend(cfg *config.Config) (ui.Frontend, error) {
	switch cfg.Frontend {
	case config.FrontendWindow:
		w, err := window.New(cfg.WindowWidth, cfg.WindowHeight, cfg.CellSize)
		if err != nil {
			return nil, err
		}
		return w, nil
	default:
		t, err := terminal.New()
		if err != nil {
			return nil, err
		}
		return t, nil
	}
}

func run(cfg *config.Config, logger *log.Logger) (*game.Game, error) {
	frontend, err := newFrontend(cfg)
	if err != nil {
		return nil, fmt.Errorf("init %s frontend: %w", cfg.Frontend, err)
	}
	defer frontend.Close()

	player, err := sound.New(cfg.Sound)
	if err != nil {
		// Non-fatal, game can run without sound
		logger.WithError(err).Warn("audio initialization failed")
	}
	defer player.Close()
	logger.WithFields(log.Fields{
		"frontend": cfg.Frontend,
		"sound":    player.Enabled(),
	}).Info("starting")

	g, err := game.NewGame(game.Options{
		Seed:      cfg.Seed,
		AvoidBody: cfg.FoodAvoidBody,
		BaseTick:  cfg.Tick,
		Log:       logger,
	}, frontend.Bounds())
	if err != nil {
		return nil, err
	}

	for {
		in := frontend.Poll()
		if in.Quit {
			return g, nil
		}
		bounds := frontend.Bounds()

		if g.Over() {
			if in.Restart {
				if err := g.Reset(bounds); err != nil {
					logger.WithError(err).Warn("restart failed")
				}
			}
			frontend.Draw(g)
			time.Sleep(cfg.Tick)
			continue
		}

		out, err := g.Update(in.Direction, bounds)
		if err != nil {
			logger.WithError(err).WithField("bounds", fmt.Sprintf("%+v", bounds)).Warn("tick skipped")
		}
		if out.Ate {
			player.Eat(out.Eaten.Kind)
		}
		if out.Over {
			player.GameOver()
		}

		frontend.Draw(g)
		time.Sleep(g.TickDelay())
	}
}
