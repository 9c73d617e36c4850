package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"pitwall/internal/platform/config"
)

func TestNewDefaults(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.Storage.Backend != config.BackendSQLite {
		t.Fatalf("expected sqlite backend, got %s", cfg.Storage.Backend)
	}
	if cfg.Storage.SQLitePath != filepath.Join(dir, ".pitwall", "pitwall.db") {
		t.Fatalf("unexpected sqlite path %s", cfg.Storage.SQLitePath)
	}
	if cfg.Team.InviteLatency != 800*time.Millisecond {
		t.Fatalf("unexpected invite latency %s", cfg.Team.InviteLatency)
	}
}

func TestNewRequiresDataDir(t *testing.T) {
	t.Parallel()
	if _, err := config.New(" "); err == nil {
		t.Fatalf("empty data dir should fail")
	}
}

func TestNewReadsYAMLFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	raw := "storage:\n  backend: memory\n  sqlite_path: custom.db\nuser:\n  id: driver-7\n  name: Sam\nteam:\n  invite_latency: 10ms\n"
	if err := os.WriteFile(filepath.Join(dir, config.FileName), []byte(raw), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.Storage.Backend != config.BackendMemory || cfg.User.ID != "driver-7" || cfg.User.Name != "Sam" {
		t.Fatalf("yaml values not applied: %+v", cfg)
	}
	if cfg.Storage.SQLitePath != filepath.Join(dir, "custom.db") {
		t.Fatalf("relative sqlite path should resolve under data dir, got %s", cfg.Storage.SQLitePath)
	}
	if cfg.Team.InviteLatency != 10*time.Millisecond {
		t.Fatalf("expected 10ms latency, got %s", cfg.Team.InviteLatency)
	}
}

func TestNewRejectsInvalidBackend(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, config.FileName), []byte("storage:\n  backend: floppy\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := config.New(dir); err == nil {
		t.Fatalf("unknown backend should fail")
	}
	redisDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(redisDir, config.FileName), []byte("storage:\n  backend: redis\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := config.New(redisDir); err == nil {
		t.Fatalf("redis backend without url should fail")
	}
}

func TestNewEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PITWALL_STORAGE_BACKEND", "redis")
	t.Setenv("PITWALL_REDIS_URL", "redis://localhost:6379/2")
	t.Setenv("PITWALL_INVITE_LATENCY", "0s")
	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.Storage.Backend != config.BackendRedis || cfg.Storage.RedisURL != "redis://localhost:6379/2" {
		t.Fatalf("env overrides not applied: %+v", cfg.Storage)
	}
	if cfg.Team.InviteLatency != 0 {
		t.Fatalf("expected zero latency, got %s", cfg.Team.InviteLatency)
	}
}
