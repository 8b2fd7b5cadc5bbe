// Command dulko plays a two-player game of Dulko in the terminal.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"dulko/internal/config"
	"dulko/internal/game"
	"dulko/internal/logging"
	"dulko/internal/tui"
)

func main() {
	// Env first, flags override.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	deadzone := flag.String("deadzone", cfg.Deadzone, `fixed deadzone as "row,col" (empty draws one at random)`)
	seed := flag.Uint64("seed", cfg.Seed, "seed for the deadzone draw (0 uses the clock)")
	level := flag.String("log-level", cfg.Log.Level.String(), "log level: debug, info, warn, error")
	format := flag.String("log-format", cfg.Log.Format, "log format: json or console")
	logFile := flag.String("log-file", cfg.Log.File, "log output path")
	flag.Parse()

	cfg.Deadzone = *deadzone
	cfg.Seed = *seed
	cfg.Log.Format = *format
	cfg.Log.File = *logFile
	lvl, err := zapcore.ParseLevel(*level)
	if err != nil {
		log.Fatalf("log level: %v", err)
	}
	cfg.Log.Level = lvl
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("dulko exited", zap.Error(err))
	}
}

func run(cfg config.Config, logger *zap.Logger) error {
	opts, err := cfg.EngineOptions()
	if err != nil {
		return err
	}
	opts = append(opts, game.WithLogger(logger), game.WithNotifier(func(ev game.Event) {
		if ev.Kind == game.EventKingCaptured || ev.Kind == game.EventStalemate {
			logger.Info("game over", zap.String("kind", string(ev.Kind)), zap.String("note", ev.Message))
		}
	}))
	eng, err := game.NewEngine(opts...)
	if err != nil {
		return fmt.Errorf("engine init: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer screen.Fini()

	return tui.NewSession(eng, screen, logger).Run()
}
