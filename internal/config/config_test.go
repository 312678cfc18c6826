package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.Server.Addr)
	require.Equal(t, slog.LevelInfo, cfg.Logging.SlogLevel())
	require.Zero(t, cfg.Game.Seed)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "server:\n  addr: \":9000\"\nlogging:\n  level: debug\ngame:\n  seed: 42\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, ":9000", cfg.Server.Addr)
	require.Equal(t, slog.LevelDebug, cfg.Logging.SlogLevel())
	require.EqualValues(t, 42, cfg.Game.Seed)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("ADDR", ":7001")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("GAME_SEED", "9")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, ":7001", cfg.Server.Addr)
	require.Equal(t, slog.LevelWarn, cfg.Logging.SlogLevel())
	require.EqualValues(t, 9, cfg.Game.Seed)
}

func TestMissingFileFallsBack(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.Server.Addr)
}

func TestBadYAMLRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: ["), 0o644))
	_, err := Load(path)
	require.Error(t, err)
}
