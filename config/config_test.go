package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/plus3/termtris/config"
	"github.com/plus3/termtris/tetris"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "termtris.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, uint64(0), cfg.Seed)
	assert.Equal(t, "info", cfg.Log.Level)

	bindings := cfg.Bindings()
	assert.Equal(t, []string{"a"}, bindings[tetris.MoveLeft])
	assert.Equal(t, []string{"space"}, bindings[tetris.HardDrop])
	assert.Equal(t, []string{";"}, bindings[tetris.Hold])
	assert.Equal(t, []string{"ctrl+c"}, bindings[tetris.Quit])
	for _, action := range tetris.Actions {
		assert.NotEmpty(t, bindings[action], "%s has a default key", action)
	}

	for _, kind := range tetris.Kinds {
		assert.NotEmpty(t, cfg.ColorOf(kind))
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
seed: 42
keys:
  move_left: [left, a]
  hard_drop: [up]
colors:
  T: fuchsia
log:
  file: game.log
  level: debug
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, []string{"left", "a"}, cfg.Keys["move_left"])
	assert.Equal(t, []string{"up"}, cfg.Keys["hard_drop"])
	assert.Equal(t, []string{"d"}, cfg.Keys["move_right"], "unset actions keep their defaults")
	assert.Equal(t, "fuchsia", cfg.ColorOf(tetris.T))
	assert.Equal(t, "aqua", cfg.ColorOf(tetris.I))
	assert.Equal(t, "game.log", cfg.Log.File)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"malformed yaml", "keys: [", "failed to parse config file"},
		{"unknown action", "keys:\n  teleport: [t]\n", `unknown action "teleport"`},
		{"unknown kind", "colors:\n  X: red\n", `unknown piece kind "X"`},
		{"bad level", "log:\n  level: loud\n", "log:"},
		{"empty key", "keys:\n  hold: ['']\n", "empty key bound to hold"},
		{"duplicate key", "keys:\n  hold: [a]\n", `"a" bound to both`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadOrDefault(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		cfg, err := config.LoadOrDefault(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
	})

	t.Run("environment fallback", func(t *testing.T) {
		t.Setenv(config.EnvPath, writeConfig(t, "seed: 7\n"))
		cfg, err := config.LoadOrDefault("")
		require.NoError(t, err)
		assert.Equal(t, uint64(7), cfg.Seed)
	})

	t.Run("no path at all", func(t *testing.T) {
		t.Setenv(config.EnvPath, "")
		cfg, err := config.LoadOrDefault("")
		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
	})

	t.Run("invalid file is an error", func(t *testing.T) {
		_, err := config.LoadOrDefault(writeConfig(t, "keys:\n  nope: [x]\n"))
		assert.Error(t, err)
	})
}

func TestNewLogger(t *testing.T) {
	t.Run("no file discards", func(t *testing.T) {
		log, closer, err := config.Default().NewLogger()
		require.NoError(t, err)
		defer closer.Close()
		assert.Equal(t, zerolog.Disabled, log.GetLevel())
	})

	t.Run("writes json lines", func(t *testing.T) {
		cfg := config.Default()
		cfg.Log.File = filepath.Join(t.TempDir(), "termtris.log")
		cfg.Debug = true

		log, closer, err := cfg.NewLogger()
		require.NoError(t, err)
		log.Debug().Str("event", "lock").Msg("piece lock")
		require.NoError(t, closer.Close())

		data, err := os.ReadFile(cfg.Log.File)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"event":"lock"`)
		assert.Contains(t, string(data), `"time":`)
	})

	t.Run("info level hides debug", func(t *testing.T) {
		cfg := config.Default()
		cfg.Log.File = filepath.Join(t.TempDir(), "termtris.log")

		log, closer, err := cfg.NewLogger()
		require.NoError(t, err)
		log.Debug().Msg("hidden")
		log.Info().Msg("shown")
		require.NoError(t, closer.Close())

		data, err := os.ReadFile(cfg.Log.File)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "hidden")
		assert.Contains(t, string(data), "shown")
	})
}
