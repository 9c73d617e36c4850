package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"

	FileName = "pitwall.yaml"
)

type Config struct {
	DataDir string        `yaml:"-"`
	Storage StorageConfig `yaml:"storage"`
	User    UserConfig    `yaml:"user"`
	Team    TeamConfig    `yaml:"team"`
	Log     LogConfig     `yaml:"log"`
}

type StorageConfig struct {
	Backend    string `yaml:"backend"`
	SQLitePath string `yaml:"sqlite_path"`
	RedisURL   string `yaml:"redis_url"`
}

// UserConfig identifies the local user; teams are simulated, so this is the
// identity every role check runs against.
type UserConfig struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

type TeamConfig struct {
	InviteLatency time.Duration `yaml:"invite_latency"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

func New(dataDir string) (Config, error) {
	if strings.TrimSpace(dataDir) == "" {
		return Config{}, fmt.Errorf("data dir is required")
	}
	cfg := defaults(dataDir)

	raw, err := os.ReadFile(filepath.Join(dataDir, FileName))
	switch {
	case err == nil:
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("decode %s: %w", FileName, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return Config{}, fmt.Errorf("read %s: %w", FileName, err)
	}

	envFile := filepath.Join(dataDir, ".env")
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return Config{}, fmt.Errorf("load env file: %w", err)
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	cfg.DataDir = dataDir
	if cfg.Storage.SQLitePath == "" {
		cfg.Storage.SQLitePath = filepath.Join(dataDir, ".pitwall", "pitwall.db")
	} else if !filepath.IsAbs(cfg.Storage.SQLitePath) {
		cfg.Storage.SQLitePath = filepath.Join(dataDir, cfg.Storage.SQLitePath)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Storage.Backend {
	case BackendSQLite, BackendMemory:
	case BackendRedis:
		if c.Storage.RedisURL == "" {
			return fmt.Errorf("storage.redis_url is required for the redis backend")
		}
	default:
		return fmt.Errorf("unsupported storage backend %q", c.Storage.Backend)
	}
	if strings.TrimSpace(c.User.ID) == "" {
		return fmt.Errorf("user.id is required")
	}
	if c.Team.InviteLatency < 0 {
		return fmt.Errorf("team.invite_latency must not be negative")
	}
	return nil
}

func defaults(dataDir string) Config {
	return Config{
		DataDir: dataDir,
		Storage: StorageConfig{Backend: BackendSQLite},
		User:    UserConfig{ID: "user-local", Name: "You"},
		Team:    TeamConfig{InviteLatency: 800 * time.Millisecond},
		Log:     LogConfig{Level: "warn"},
	}
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("PITWALL_STORAGE_BACKEND"); v != "" {
		cfg.Storage.Backend = v
	}
	if v := os.Getenv("PITWALL_REDIS_URL"); v != "" {
		cfg.Storage.RedisURL = v
	}
	if v := os.Getenv("PITWALL_SQLITE_PATH"); v != "" {
		cfg.Storage.SQLitePath = v
	}
	if v := os.Getenv("PITWALL_USER_ID"); v != "" {
		cfg.User.ID = v
	}
	if v := os.Getenv("PITWALL_USER_NAME"); v != "" {
		cfg.User.Name = v
	}
	if v := os.Getenv("PITWALL_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("PITWALL_INVITE_LATENCY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse PITWALL_INVITE_LATENCY: %w", err)
		}
		cfg.Team.InviteLatency = d
	}
	return nil
}
