package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_File(t *testing.T) {
	// Given a config file overriding some values
	path := writeConfig(t, `
log-level: debug
log-format: json
game:
  mode: pvp
  difficulty: hard
  think-delay: 1s
http:
  addr: 127.0.0.1:9999
telemetry:
  enabled: true
  exporter: otlp
  endpoint: collector:4317
`)

	// When it is loaded
	cfg, err := Load(path)

	// Then every value is taken from the file
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, Game{Mode: "pvp", Difficulty: "hard", ThinkDelay: time.Second}, cfg.Game)
	assert.Equal(t, "127.0.0.1:9999", cfg.HTTP.Addr)
	assert.True(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "otlp", cfg.Telemetry.Exporter)
	assert.Equal(t, "collector:4317", cfg.Telemetry.Endpoint)
	assert.Equal(t, "tictactoe", cfg.Telemetry.ServiceName)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	// Given a file and an environment variable for the same key
	path := writeConfig(t, "game:\n  difficulty: easy\n")
	t.Setenv("TICTACTOE_GAME_DIFFICULTY", "hard")

	// When it is loaded
	cfg, err := Load(path)

	// Then the environment wins
	require.NoError(t, err)
	assert.Equal(t, "hard", cfg.Game.Difficulty)
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	// Given an XDG config home without a tictactoe directory
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()

	// When loading without an explicit path
	cfg, err := Load("")

	// Then the built-in defaults apply
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, Game{Mode: "pvc", Difficulty: "medium", ThinkDelay: 400 * time.Millisecond}, cfg.Game)
	assert.Equal(t, "127.0.0.1:8080", cfg.HTTP.Addr)
	assert.False(t, cfg.Telemetry.Enabled)
	assert.Equal(t, filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "tictactoe", "config.yml"), DefaultPath())
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "unknown difficulty", body: "game:\n  difficulty: impossible\n"},
		{name: "unknown mode", body: "game:\n  mode: online\n"},
		{name: "unknown log level", body: "log-level: loud\n"},
		{name: "bad address", body: "http:\n  addr: not-an-address\n"},
		{name: "unknown exporter", body: "telemetry:\n  exporter: zipkin\n"},
		{name: "negative think delay", body: "game:\n  think-delay: -1s\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestMustLoad_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustLoad(writeConfig(t, "log-format: xml\n"))
	})
}
