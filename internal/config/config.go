// Package config loads the backend configuration.
//
// Configuration comes from two places: environment variables (optionally
// via a .env file) for everything operational, and a settings file for
// the household data itself: the categories to bootstrap, their default
// base budgets and the preferred display order.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Settings is the content of the settings file.
type Settings struct {
	// Categories maps category names to their default base budget.
	// Every name listed here is created on first run.
	Categories map[string]decimal.Decimal `json:"categories"`

	// AdminPIN guards budget mutations. Can be overridden with the
	// ADMIN_PIN environment variable.
	AdminPIN string `json:"admin_pin"`

	// PreferredOrder lists category names in the order they should be
	// displayed. Names not listed sort alphabetically after them.
	PreferredOrder []string `json:"preferred_order"`
}

// Config is the runtime configuration of the backend.
type Config struct {
	Port     string
	DSN      string
	AdminPIN string
	Settings Settings
}

// Load reads the configuration from the environment and the settings
// file. A missing .env file is fine, a missing settings file leaves
// the household settings empty.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("could not load .env file: %w", err)
	}

	settings, err := loadSettings(getEnv("SETTINGS_PATH", "settings.json"))
	if err != nil {
		return Config{}, err
	}

	config := Config{
		Port:     getEnv("PORT", "8080"),
		DSN:      getEnv("DB_DSN", "data/money-tracker.db"),
		AdminPIN: getEnv("ADMIN_PIN", settings.AdminPIN),
		Settings: settings,
	}

	return config, nil
}

// loadSettings reads and parses the settings file.
func loadSettings(path string) (Settings, error) {
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn().Str("path", path).Msg("settings file does not exist, starting without household settings")
		return Settings{}, nil
	}

	if err != nil {
		return Settings{}, fmt.Errorf("could not read settings file: %w", err)
	}

	var settings Settings
	err = json.Unmarshal(content, &settings)
	if err != nil {
		return Settings{}, fmt.Errorf("could not parse settings file %s: %w", path, err)
	}

	return settings, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}
