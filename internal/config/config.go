// Package config resolves runtime settings from env files, an optional YAML
// file and the process environment, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"bookvault/internal/platform/bookstore"
	"bookvault/internal/store"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	APIBaseURL   string        `yaml:"api_base_url"`
	UserAgent    string        `yaml:"user_agent"`
	RPS          int           `yaml:"rps"`
	StoreBackend string        `yaml:"store"`
	SnapshotPath string        `yaml:"snapshot_path"`
	DatabaseDSN  string        `yaml:"db_dsn"`
	DBTimeout    time.Duration `yaml:"db_timeout"`
}

// Defaults returns the settings used when nothing else is configured.
func Defaults() Config {
	return Config{
		APIBaseURL:   bookstore.DefaultBaseURL,
		UserAgent:    "bookvault/1.0",
		RPS:          5,
		StoreBackend: store.BackendFile,
		DBTimeout:    5 * time.Second,
	}
}

// Load reads .env and .env.local, then BOOKVAULT_CONFIG if set, then the
// BOOKVAULT_* variables.
func Load() (Config, error) {
	loadEnvFiles()

	cfg := Defaults()
	if path := os.Getenv("BOOKVAULT_CONFIG"); path != "" {
		if err := mergeFile(&cfg, path); err != nil {
			return Config{}, err
		}
	}

	cfg.APIBaseURL = getEnv("BOOKVAULT_API_BASE", cfg.APIBaseURL)
	cfg.UserAgent = getEnv("BOOKVAULT_USER_AGENT", cfg.UserAgent)
	cfg.StoreBackend = getEnv("BOOKVAULT_STORE", cfg.StoreBackend)
	cfg.SnapshotPath = getEnv("BOOKVAULT_SNAPSHOT_PATH", cfg.SnapshotPath)
	cfg.DatabaseDSN = getEnv("BOOKVAULT_DB_DSN", cfg.DatabaseDSN)

	if v := os.Getenv("BOOKVAULT_RPS"); v != "" {
		rps, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("BOOKVAULT_RPS: %w", err)
		}
		cfg.RPS = rps
	}

	if cfg.SnapshotPath == "" {
		cfg.SnapshotPath = defaultSnapshotPath(cfg.StoreBackend)
	}
	return cfg, cfg.Validate()
}

// Validate reports settings that cannot work together.
func (c Config) Validate() error {
	if c.APIBaseURL == "" {
		return errors.New("api base url is required")
	}
	switch c.StoreBackend {
	case store.BackendFile, store.BackendSQLite:
		if c.SnapshotPath == "" {
			return fmt.Errorf("store %q needs a snapshot path", c.StoreBackend)
		}
	case store.BackendPostgres:
		if c.DatabaseDSN == "" {
			return errors.New("store \"postgres\" needs BOOKVAULT_DB_DSN")
		}
	default:
		return fmt.Errorf("unknown store %q", c.StoreBackend)
	}
	return nil
}

// StoreOptions converts the config into snapshot store options.
func (c Config) StoreOptions() store.Options {
	return store.Options{
		Backend: c.StoreBackend,
		Path:    c.SnapshotPath,
		DSN:     c.DatabaseDSN,
		Timeout: c.DBTimeout,
	}
}

func loadEnvFiles() {
	// Do not override environment provided by the runtime.
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

func mergeFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse yaml: %w", err)
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func defaultSnapshotPath(backend string) string {
	name := "books.json"
	if backend == store.BackendSQLite {
		name = "books.db"
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".bookvault", name)
	}
	return filepath.Join(home, ".bookvault", name)
}
