package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all runtime settings for the planner server.
type Config struct {
	ListenAddr     string        `env:"LISTEN_ADDR"`
	DataFile       string        `env:"DATA_FILE"`
	LogLevel       string        `env:"LOG_LEVEL"` // debug|info|warn|error
	SessionTTL     time.Duration `env:"SESSION_TTL"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
	BcryptCost     int           `env:"BCRYPT_COST"`
}

// fileConfig is the YAML shape; durations are strings like "24h".
type fileConfig struct {
	ListenAddr     string `yaml:"listen_addr"`
	DataFile       string `yaml:"data_file"`
	LogLevel       string `yaml:"log_level"`
	SessionTTL     string `yaml:"session_ttl"`
	RequestTimeout string `yaml:"request_timeout"`
	BcryptCost     int    `yaml:"bcrypt_cost"`
}

// Load builds the configuration in layers: defaults, then an optional
// YAML file, then environment variables (a local .env is loaded first if
// present). Environment always wins over the file.
func Load(yamlPath string) (*Config, error) {
	cfg := &Config{
		ListenAddr:     ":8080",
		DataFile:       "data/users.json",
		LogLevel:       "info",
		SessionTTL:     24 * time.Hour,
		RequestTimeout: 30 * time.Second,
	}

	if yamlPath != "" {
		if err := applyFile(cfg, yamlPath); err != nil {
			return nil, err
		}
	}

	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("load .env: %w", err)
		}
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	if fc.ListenAddr != "" {
		cfg.ListenAddr = fc.ListenAddr
	}
	if fc.DataFile != "" {
		cfg.DataFile = fc.DataFile
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
	if fc.SessionTTL != "" {
		ttl, err := time.ParseDuration(fc.SessionTTL)
		if err != nil {
			return fmt.Errorf("config %s: session_ttl: %w", path, err)
		}
		cfg.SessionTTL = ttl
	}
	if fc.RequestTimeout != "" {
		d, err := time.ParseDuration(fc.RequestTimeout)
		if err != nil {
			return fmt.Errorf("config %s: request_timeout: %w", path, err)
		}
		cfg.RequestTimeout = d
	}
	if fc.BcryptCost != 0 {
		cfg.BcryptCost = fc.BcryptCost
	}
	return nil
}
