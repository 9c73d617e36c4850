package bootstrap

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"pitwall/internal/platform/config"
)

func memoryConfig(t *testing.T) config.Config {
	t.Helper()
	cfg, err := config.New(t.TempDir())
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	cfg.Storage.Backend = config.BackendMemory
	cfg.Team.InviteLatency = 0
	return cfg
}

func TestNewWiresModulesOnMemoryStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	app, err := New(ctx, memoryConfig(t), io.Discard)
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	defer app.Close()

	sessions, err := app.SessionCLI.List(ctx)
	if err != nil {
		t.Fatalf("list sessions: %v", err)
	}
	if len(sessions) != 1 || !sessions[0].IsDemo {
		t.Fatalf("expected only the demo session on a fresh store, got %+v", sessions)
	}

	meta, ok, err := app.SessionCLI.CreateAndLoad(ctx, "Monaco GP", "", "")
	if err != nil || !ok {
		t.Fatalf("create and load: ok=%v err=%v", ok, err)
	}
	if _, err := app.RecordsCLI.AddNote(ctx, "monaco", "Tunnel exit", "", "general"); err != nil {
		t.Fatalf("add note: %v", err)
	}
	if err := app.SessionCLI.Save(ctx); err != nil {
		t.Fatalf("save: %v", err)
	}
	active, ok, err := app.SessionCLI.Active(ctx)
	if err != nil || !ok || active.SessionID != meta.ID {
		t.Fatalf("active = %+v ok=%v err=%v", active, ok, err)
	}

	teams, err := app.TeamCLI.List(ctx)
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if len(teams) != 1 || teams[0].Members[0].ID != "user-local" {
		t.Fatalf("expected demo team owned by the configured user, got %+v", teams)
	}
}

func TestNewOnSQLitePersistsAcrossRestarts(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	cfg := memoryConfig(t)
	cfg.Storage.Backend = config.BackendSQLite
	cfg.Storage.SQLitePath = filepath.Join(cfg.DataDir, ".pitwall", "pitwall.db")

	first, err := New(ctx, cfg, io.Discard)
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	meta, _, err := first.SessionCLI.CreateAndLoad(ctx, "Spa", "", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	second, err := New(ctx, cfg, io.Discard)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer second.Close()
	active, ok, err := second.SessionCLI.Active(ctx)
	if err != nil || !ok || active.SessionID != meta.ID {
		t.Fatalf("active after restart = %+v ok=%v err=%v", active, ok, err)
	}
}

func TestOpenStoreRejectsUnknownBackend(t *testing.T) {
	t.Parallel()
	cfg := memoryConfig(t)
	cfg.Storage.Backend = "etcd"
	if _, err := OpenStore(cfg); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}
