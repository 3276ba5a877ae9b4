package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"

	"ctchen222/tictactoe/internal/validator"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	LogLevel  string    `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`
	LogFormat string    `yaml:"log-format" env:"TICTACTOE_LOG_FORMAT" env-default:"text" validate:"oneof=text json"`
	Game      Game      `yaml:"game"`
	HTTP      HTTP      `yaml:"http"`
	Telemetry Telemetry `yaml:"telemetry"`
}

type Game struct {
	Mode       string        `yaml:"mode" env:"TICTACTOE_GAME_MODE" env-default:"pvc" validate:"oneof=pvp pvc"`
	Difficulty string        `yaml:"difficulty" env:"TICTACTOE_GAME_DIFFICULTY" env-default:"medium" validate:"oneof=easy medium hard"`
	ThinkDelay time.Duration `yaml:"think-delay" env:"TICTACTOE_GAME_THINK_DELAY" env-default:"400ms" validate:"gte=0"`
}

type HTTP struct {
	Addr string `yaml:"addr" env:"TICTACTOE_HTTP_ADDR" env-default:"127.0.0.1:8080" validate:"hostname_port"`
}

type Telemetry struct {
	Enabled        bool   `yaml:"enabled" env:"TICTACTOE_TELEMETRY_ENABLED" env-default:"false"`
	Exporter       string `yaml:"exporter" env:"TICTACTOE_TELEMETRY_EXPORTER" env-default:"stdout" validate:"oneof=stdout otlp"`
	Endpoint       string `yaml:"endpoint" env:"TICTACTOE_TELEMETRY_ENDPOINT" env-default:"localhost:4317" validate:"required_if=Exporter otlp"`
	ServiceName    string `yaml:"service-name" env:"TICTACTOE_TELEMETRY_SERVICE_NAME" env-default:"tictactoe" validate:"required"`
	ServiceVersion string `yaml:"service-version" env-default:"v0.1.0"`
}

// DefaultPath is the config file looked up when no path is given.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "tictactoe", "config.yml")
}

// Load reads the YAML file at path with environment overrides. An empty path
// means DefaultPath, which may be absent; then only the environment and
// defaults apply. An explicit path must exist.
func Load(path string) (*Config, error) {
	config := &Config{}

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file %s: %w", path, err)
		}
	case errors.Is(statErr, fs.ErrNotExist) && !explicit:
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read config from environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to load config file: %w", statErr)
	}

	if err := validator.GetValidator().Struct(config); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return config, nil
}

// MustLoad - load all configurations, panicking on failure.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}
	return config
}
