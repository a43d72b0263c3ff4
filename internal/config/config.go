package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the client settings, read from the environment.
type Config struct {
	APIURL      string        `env:"TEAMTITANS_API_URL" envDefault:"http://localhost:5000"`
	StateDir    string        `env:"TEAMTITANS_STATE_DIR"`
	LogFile     string        `env:"TEAMTITANS_LOG_FILE"`
	LogLevel    string        `env:"TEAMTITANS_LOG_LEVEL" envDefault:"info"`
	HTTPTimeout time.Duration `env:"TEAMTITANS_HTTP_TIMEOUT" envDefault:"30s"`
	NoticeTTL   time.Duration `env:"TEAMTITANS_NOTICE_TTL" envDefault:"4s"`
}

// Load reads an optional .env file from the working directory, then parses
// the environment. Variables already set win over the file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config.Load: read .env: %w", err)
	}
	return Parse()
}

// Parse reads Config from the environment only and fills path defaults.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config.Parse: %w", err)
	}
	if cfg.StateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("config.Parse: get home dir: %w", err)
		}
		cfg.StateDir = filepath.Join(home, ".teamtitans")
	}
	if cfg.LogFile == "" {
		cfg.LogFile = filepath.Join(cfg.StateDir, "teamtitans.log")
	}
	if cfg.HTTPTimeout <= 0 {
		return nil, fmt.Errorf("config.Parse: TEAMTITANS_HTTP_TIMEOUT must be positive, got %s", cfg.HTTPTimeout)
	}
	return cfg, nil
}
