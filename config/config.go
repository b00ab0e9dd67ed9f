// Package config reads frontend settings from flags, with defaults taken from
// DINOSHOOT_* environment variables.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"dinoshoot/level"
)

type Config struct {
	Width  int
	Height int
	TPS    int
	Seed   int64 // 0 picks a time-based seed

	Levels string // TOML level table; empty uses level.Default
	Assets string // directory with background images and shot.wav
	Sound  string // shot sample inside Assets

	Record       string // write a replay here
	VerifyReplay string // re-simulate this replay and exit

	Mute     bool
	LogLevel string
	LogFile  string
}

func getEnvDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// Load parses args (without the program name).
func Load(name string, args []string) (Config, error) {
	var (
		c    Config
		errs []error
	)
	envInt := func(key string, def int) int {
		v, err := strconv.Atoi(getEnvDefault(key, strconv.Itoa(def)))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
			return def
		}
		return v
	}
	envBool := func(key string) bool {
		v, err := strconv.ParseBool(getEnvDefault(key, "false"))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
		}
		return v
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.IntVar(&c.Width, "width", envInt("DINOSHOOT_WIDTH", 800), "play area width")
	fs.IntVar(&c.Height, "height", envInt("DINOSHOOT_HEIGHT", 600), "play area height")
	fs.IntVar(&c.TPS, "tps", envInt("DINOSHOOT_TPS", 60), "simulation ticks per second")
	fs.Int64Var(&c.Seed, "seed", int64(envInt("DINOSHOOT_SEED", 0)), "random seed (0 = time based)")
	fs.StringVar(&c.Levels, "levels", getEnvDefault("DINOSHOOT_LEVELS", ""), "level table TOML file")
	fs.StringVar(&c.Assets, "assets", getEnvDefault("DINOSHOOT_ASSETS", "assets"), "assets directory")
	fs.StringVar(&c.Sound, "sound", getEnvDefault("DINOSHOOT_SOUND", "shot.wav"), "shot sound file in the assets directory")
	fs.StringVar(&c.Record, "record", getEnvDefault("DINOSHOOT_RECORD", ""), "record a replay to this file")
	fs.StringVar(&c.VerifyReplay, "verify-replay", "", "re-simulate a replay file and exit")
	fs.BoolVar(&c.Mute, "mute", envBool("DINOSHOOT_MUTE"), "disable sound")
	fs.StringVar(&c.LogLevel, "log-level", getEnvDefault("DINOSHOOT_LOG_LEVEL", "info"), "debug, info, warn or error")
	fs.StringVar(&c.LogFile, "log-file", getEnvDefault("DINOSHOOT_LOG_FILE", ""), "log destination (default stderr)")

	if err := errors.Join(errs...); err != nil {
		return Config{}, fmt.Errorf("environment: %w", err)
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("invalid play area %dx%d", c.Width, c.Height)
	case c.TPS <= 0:
		return fmt.Errorf("invalid tps %d", c.TPS)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Table returns the configured level table, or the built-in one.
func (c Config) Table() (level.Table, error) {
	if c.Levels == "" {
		return level.Default(), nil
	}
	return level.LoadFile(c.Levels)
}

// StepMillis is the simulation time covered by one tick.
func (c Config) StepMillis() float64 { return 1000 / float64(c.TPS) }

// Logger builds a text logger writing to w at the configured level.
func (c Config) Logger(w io.Writer) *slog.Logger {
	lvl, err := parseLevel(c.LogLevel)
	if err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("log level %q: %w", s, err)
	}
	return lvl, nil
}
