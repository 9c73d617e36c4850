package out

import (
	"context"

	"pitwall/internal/modules/session/domain"
)

// DirectoryStore persists the ordered list of session metadata. Load reports
// whether the directory key has ever been written; a corrupt payload counts
// as written and empty, a backend failure is returned.
type DirectoryStore interface {
	Load(ctx context.Context) ([]domain.SessionMetadata, bool, error)
	Save(ctx context.Context, sessions []domain.SessionMetadata) error
}

type ActivePointerStore interface {
	Get(ctx context.Context) (string, bool)
	Set(ctx context.Context, id string) error
	Clear(ctx context.Context) error
}

// VaultStore holds one AppData snapshot per session id. Unreadable slots are
// reported as absent.
type VaultStore interface {
	Get(ctx context.Context, id string) (domain.AppData, bool)
	// Has is the strict form of Get: false for missing or corrupt slots,
	// an error when the backend cannot be read.
	Has(ctx context.Context, id string) (bool, error)
	Set(ctx context.Context, id string, data domain.AppData) error
	Remove(ctx context.Context, id string) error
	// IDs lists every plain session id that currently has a slot.
	IDs(ctx context.Context) ([]string, error)
}

type DemoVisibilityStore interface {
	Hidden(ctx context.Context) bool
	SetHidden(ctx context.Context, hidden bool) error
}

// SnapshotFile reads and writes export files.
type SnapshotFile interface {
	Write(ctx context.Context, path string, data domain.AppData) error
	Read(ctx context.Context, path string) (domain.AppData, error)
}
