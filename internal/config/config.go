// Package config loads runtime settings from DULKO_* environment variables.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap/zapcore"

	"dulko/internal/game"
)

// Prefix is prepended to every variable name.
const Prefix = "DULKO_"

// Config is the full runtime configuration.
type Config struct {
	// Deadzone pins the deadzone as "row,col". Empty draws it at random.
	Deadzone string `env:"DEADZONE"`
	// Seed seeds the deadzone draw. Zero means time-based.
	Seed uint64 `env:"SEED"`
	Log  Log    `envPrefix:"LOG_"`
}

// Log configures the zap logger.
type Log struct {
	Level  zapcore.Level `env:"LEVEL" envDefault:"info"`
	Format string        `env:"FORMAT" envDefault:"console"`
	File   string        `env:"FILE" envDefault:"dulko.log"`
}

// Load reads the configuration from the process environment.
func Load() (Config, error) {
	return parse(env.Options{Prefix: Prefix})
}

// LoadFrom reads the configuration from vars instead of the process
// environment. Keys carry the DULKO_ prefix.
func LoadFrom(vars map[string]string) (Config, error) {
	return parse(env.Options{Prefix: Prefix, Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values the env parser cannot.
func (c Config) Validate() error {
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("%w: log format %q (want json or console)", game.ErrInvalidConfig, c.Log.Format)
	}
	if _, _, err := c.DeadzoneCoord(); err != nil {
		return err
	}
	return nil
}

// DeadzoneCoord parses Deadzone. ok is false when no deadzone is pinned.
func (c Config) DeadzoneCoord() (coord game.Coord, ok bool, err error) {
	return ParseCoord(c.Deadzone)
}

// ParseCoord parses "row,col". An empty string yields ok == false.
func ParseCoord(s string) (coord game.Coord, ok bool, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return game.Coord{}, false, nil
	}
	rowText, colText, found := strings.Cut(s, ",")
	if !found {
		return game.Coord{}, false, fmt.Errorf("%w: deadzone %q (want row,col)", game.ErrInvalidConfig, s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(rowText))
	if err != nil {
		return game.Coord{}, false, fmt.Errorf("%w: deadzone row %q", game.ErrInvalidConfig, rowText)
	}
	col, err := strconv.Atoi(strings.TrimSpace(colText))
	if err != nil {
		return game.Coord{}, false, fmt.Errorf("%w: deadzone col %q", game.ErrInvalidConfig, colText)
	}
	coord = game.Coord{Row: row, Col: col}
	if !coord.Valid() {
		return game.Coord{}, false, fmt.Errorf("%w: deadzone %s outside the board", game.ErrInvalidConfig, coord)
	}
	return coord, true, nil
}

// EngineOptions translates the configuration into engine options.
func (c Config) EngineOptions() ([]game.Option, error) {
	opts := []game.Option{game.WithSeed(c.Seed)}
	coord, ok, err := c.DeadzoneCoord()
	if err != nil {
		return nil, err
	}
	if ok {
		opts = append(opts, game.WithDeadzone(coord))
	}
	return opts, nil
}
