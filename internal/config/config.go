// Package config loads process settings for the formstate command from the
// environment, optionally seeded by a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the defaults the CLI flags fall back to.
type Config struct {
	LogLevel    string `env:"LOG_LEVEL" envDefault:"warn"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text"`
	Output      string `env:"OUTPUT" envDefault:"json"`
	MaxAttempts int    `env:"MAX_ATTEMPTS" envDefault:"0"`
}

// Prefix namespaces every variable read by Load.
const Prefix = "FORMSTATE_"

// Load reads the optional dotenv files, then the environment. Missing
// dotenv files are ignored.
func Load(dotenv ...string) (Config, error) {
	if err := godotenv.Load(dotenv...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: load dotenv: %w", err)
	}
	return Parse()
}

// Parse reads the environment without touching dotenv files.
func Parse() (Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](env.Options{Prefix: Prefix})
	if err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}
	if cfg.MaxAttempts < 0 {
		return Config{}, fmt.Errorf("config: %sMAX_ATTEMPTS must not be negative", Prefix)
	}
	return cfg, nil
}
