package kv_test

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"pitwall/internal/platform/kv"
	"pitwall/internal/platform/logging"
)

func backends(t *testing.T) map[string]kv.Store {
	t.Helper()
	mem, err := kv.NewMemStore()
	if err != nil {
		t.Fatalf("new mem store: %v", err)
	}
	lite, err := kv.NewSQLiteStore(filepath.Join(t.TempDir(), ".pitwall", "kv.db"))
	if err != nil {
		t.Fatalf("new sqlite store: %v", err)
	}
	t.Cleanup(func() { _ = lite.Close() })
	out := map[string]kv.Store{"memdb": mem, "sqlite": lite}
	if url := os.Getenv("PITWALL_TEST_REDIS_URL"); url != "" {
		rs, err := kv.NewRedisStore(url)
		if err != nil {
			t.Fatalf("new redis store: %v", err)
		}
		t.Cleanup(func() { _ = rs.Close() })
		out["redis"] = rs
	}
	return out
}

func TestStoreContract(t *testing.T) {
	t.Parallel()
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			prefix := "@kvtest/" + name + "/"
			if _, ok, err := store.Get(ctx, prefix+"missing"); err != nil || ok {
				t.Fatalf("missing key should report absent, ok=%v err=%v", ok, err)
			}
			if err := store.Set(ctx, prefix+"b", "2"); err != nil {
				t.Fatalf("set b: %v", err)
			}
			if err := store.Set(ctx, prefix+"a", "1"); err != nil {
				t.Fatalf("set a: %v", err)
			}
			if err := store.Set(ctx, prefix+"a", "one"); err != nil {
				t.Fatalf("overwrite a: %v", err)
			}
			if err := store.Set(ctx, "@other/a", "x"); err != nil {
				t.Fatalf("set other: %v", err)
			}
			v, ok, err := store.Get(ctx, prefix+"a")
			if err != nil || !ok || v != "one" {
				t.Fatalf("expected overwritten value, got %q ok=%v err=%v", v, ok, err)
			}
			keys, err := store.Keys(ctx, prefix)
			if err != nil {
				t.Fatalf("keys: %v", err)
			}
			if want := []string{prefix + "a", prefix + "b"}; !reflect.DeepEqual(keys, want) {
				t.Fatalf("expected %v, got %v", want, keys)
			}
			if err := store.Remove(ctx, prefix+"a", prefix+"never-set"); err != nil {
				t.Fatalf("remove: %v", err)
			}
			if _, ok, _ := store.Get(ctx, prefix+"a"); ok {
				t.Fatalf("removed key must be gone immediately")
			}
			_ = store.Remove(ctx, prefix+"b", "@other/a")
		})
	}
}

func TestReadJSONSwallowsCorruptPayload(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store, err := kv.NewMemStore()
	if err != nil {
		t.Fatalf("new mem store: %v", err)
	}
	if err := store.Set(ctx, "bad", "{not json"); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, ok := kv.ReadJSON[[]string](ctx, store, logging.Discard(), "bad")
	if ok || got != nil {
		t.Fatalf("corrupt payload should read as absent, got %v", got)
	}
	if err := kv.WriteJSON(ctx, store, "good", []string{"a"}); err != nil {
		t.Fatalf("write json: %v", err)
	}
	got, ok = kv.ReadJSON[[]string](ctx, store, logging.Discard(), "good")
	if !ok || len(got) != 1 || got[0] != "a" {
		t.Fatalf("expected round trip, got %v ok=%v", got, ok)
	}
}

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "kv.db")
	first, err := kv.NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := first.Set(ctx, "k", "v"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	second, err := kv.NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() { _ = second.Close() }()
	if v, ok, err := second.Get(ctx, "k"); err != nil || !ok || v != "v" {
		t.Fatalf("expected persisted value, got %q ok=%v err=%v", v, ok, err)
	}
}
