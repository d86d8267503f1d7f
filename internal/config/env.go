package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// EnvPrefix is prepended to every settings variable
const EnvPrefix = "FICALC_"

// Settings are process-wide options read from the environment
type Settings struct {
	Format   string `env:"FORMAT" envDefault:"console"`
	Debug    bool   `env:"DEBUG"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	NoColor  bool   `env:"NO_COLOR"`
}

// LoadSettings reads Settings from the environment after loading the given .env
// files (".env" when none are named). Missing files are ignored; variables already
// set in the environment win over file values.
func LoadSettings(files ...string) (Settings, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Settings{}, fmt.Errorf("load env file: %w", err)
	}
	return ParseSettings()
}

// ParseSettings reads Settings from the current environment only
func ParseSettings() (Settings, error) {
	var s Settings
	if err := env.ParseWithOptions(&s, env.Options{Prefix: EnvPrefix}); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	return s, nil
}
