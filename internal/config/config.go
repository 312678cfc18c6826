// Package config loads server configuration from an optional YAML file with
// environment overrides.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  Server  `yaml:"server"`
	Logging Logging `yaml:"logging"`
	Game    Game    `yaml:"game"`
}

type Server struct {
	Addr string `yaml:"addr"`
}

type Logging struct {
	Level string `yaml:"level"`
}

type Game struct {
	// Seed fixes the shuffle sequence for reproducible matches. Zero means
	// seed from the clock.
	Seed int64 `yaml:"seed"`
}

func Default() Config {
	return Config{
		Server:  Server{Addr: ":8080"},
		Logging: Logging{Level: "info"},
	}
}

// Load reads the YAML file at path over the defaults. A missing path (or a
// path that does not exist) yields the defaults; ADDR, LOG_LEVEL and
// GAME_SEED environment variables override either.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if v := os.Getenv("ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("GAME_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("parse GAME_SEED: %w", err)
		}
		cfg.Game.Seed = seed
	}
	return cfg, nil
}

// SlogLevel maps the configured level name to a slog level, defaulting to
// info for anything unrecognized.
func (l Logging) SlogLevel() slog.Level {
	switch l.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
