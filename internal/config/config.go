// Package config holds runtime settings for the tank binaries. Gameplay
// constants live with the simulation in internal/game.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	WindowTitle  = "Tank Siege"
	DefaultScale = 1.0
	MaxScale     = 4.0
)

// Environment variables read by FromEnv.
const (
	EnvSprites   = "TANKS_SPRITES"
	EnvSeed      = "TANKS_SEED"
	EnvScale     = "TANKS_SCALE"
	EnvLogLevel  = "LOG_LEVEL"
	EnvLogFormat = "LOG_FORMAT"
)

// Config is what a frontend needs to start a session.
type Config struct {
	SpriteDir string  // empty: generated placeholder sprites
	Seed      int64   // 0: seeded from the wall clock
	LogLevel  string  // logrus level name
	LogFormat string  // "text" or "json"
	Scale     float64 // window scale factor
}

// Default returns the stock settings.
func Default() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: "text",
		Scale:     DefaultScale,
	}
}

// FromEnv overlays environment variables on Default.
func FromEnv() (Config, error) {
	c := Default()
	if v, ok := os.LookupEnv(EnvSprites); ok {
		c.SpriteDir = v
	}
	if v, ok := os.LookupEnv(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c, fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Seed = seed
	}
	if v, ok := os.LookupEnv(EnvScale); ok && v != "" {
		scale, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c, fmt.Errorf("%s: %w", EnvScale, err)
		}
		c.Scale = scale
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvLogFormat); ok && v != "" {
		c.LogFormat = strings.ToLower(v)
	}
	return c, nil
}

// BindFlags registers command-line overrides for c on fs, using c's current
// values as defaults. Call it after FromEnv so flags win over the environment.
func (c *Config) BindFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.SpriteDir, "sprites", c.SpriteDir, "directory holding the sprite PNGs (empty: placeholders)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "RNG seed (0: random)")
	fs.Float64Var(&c.Scale, "scale", c.Scale, "window scale factor")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (trace, debug, info, warn, error)")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "log format (text or json)")
}

var errBadScale = errors.New("scale must be in (0, 4]")

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	if c.Scale <= 0 || c.Scale > MaxScale {
		return fmt.Errorf("%w: got %v", errBadScale, c.Scale)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("log format %q: want text or json", c.LogFormat)
	}
	if c.SpriteDir != "" {
		info, err := os.Stat(c.SpriteDir)
		if err != nil {
			return fmt.Errorf("sprite dir: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("sprite dir %s: not a directory", c.SpriteDir)
		}
	}
	return nil
}

// ResolvedSeed returns Seed, or a clock-derived seed when Seed is 0.
func (c Config) ResolvedSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
