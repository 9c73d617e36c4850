package out

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	hclog "github.com/hashicorp/go-hclog"

	"pitwall/internal/modules/session/domain"
	sessionout "pitwall/internal/modules/session/port/out"
	"pitwall/internal/platform/keys"
	"pitwall/internal/platform/kv"
	"pitwall/internal/platform/logging"
)

type KVDirectoryStore struct {
	store kv.Store
	log   hclog.Logger
}

func NewKVDirectoryStore(store kv.Store, log hclog.Logger) sessionout.DirectoryStore {
	return &KVDirectoryStore{store: store, log: logging.OrDiscard(log).Named("directory")}
}

// Load reports found=true whenever the key exists, even if its payload is
// corrupt and an empty list is returned. Backend failures are returned.
func (s *KVDirectoryStore) Load(ctx context.Context) ([]domain.SessionMetadata, bool, error) {
	raw, exists, err := s.store.Get(ctx, keys.Sessions)
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", keys.Sessions, err)
	}
	if !exists {
		return nil, false, nil
	}
	var list []domain.SessionMetadata
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		s.log.Warn("discarding corrupt session directory", "key", keys.Sessions, "error", err)
		return nil, true, nil
	}
	return list, true, nil
}

func (s *KVDirectoryStore) Save(ctx context.Context, sessions []domain.SessionMetadata) error {
	if sessions == nil {
		sessions = []domain.SessionMetadata{}
	}
	return kv.WriteJSON(ctx, s.store, keys.Sessions, sessions)
}

type KVActivePointer struct {
	store kv.Store
	log   hclog.Logger
}

func NewKVActivePointer(store kv.Store, log hclog.Logger) sessionout.ActivePointerStore {
	return &KVActivePointer{store: store, log: logging.OrDiscard(log).Named("active")}
}

func (p *KVActivePointer) Get(ctx context.Context) (string, bool) {
	id, ok, err := p.store.Get(ctx, keys.ActiveSessionID)
	if err != nil {
		p.log.Error("read failed", "key", keys.ActiveSessionID, "error", err)
		return "", false
	}
	if !ok || strings.TrimSpace(id) == "" {
		return "", false
	}
	return id, true
}

func (p *KVActivePointer) Set(ctx context.Context, id string) error {
	return p.store.Set(ctx, keys.ActiveSessionID, id)
}

func (p *KVActivePointer) Clear(ctx context.Context) error {
	return p.store.Remove(ctx, keys.ActiveSessionID)
}

// KVVault stores one snapshot per key. Team markers resolve to the team
// session key space so a flushed team session lands in its own slot.
type KVVault struct {
	store kv.Store
	log   hclog.Logger
}

func NewKVVault(store kv.Store, log hclog.Logger) sessionout.VaultStore {
	return &KVVault{store: store, log: logging.OrDiscard(log).Named("vault")}
}

func VaultKey(id string) string {
	if teamID, sessionID, ok := domain.ParseTeamMarker(id); ok {
		return keys.TeamSessionData + keys.TeamSlotID(teamID, sessionID)
	}
	return keys.SessionData + id
}

func (v *KVVault) Get(ctx context.Context, id string) (domain.AppData, bool) {
	return kv.ReadJSON[domain.AppData](ctx, v.store, v.log, VaultKey(id))
}

// Has reports whether id holds a readable snapshot. Unlike Get it returns
// backend failures instead of treating them as absence.
func (v *KVVault) Has(ctx context.Context, id string) (bool, error) {
	_, ok, err := kv.LookupJSON[domain.AppData](ctx, v.store, v.log, VaultKey(id))
	return ok, err
}

func (v *KVVault) Set(ctx context.Context, id string, data domain.AppData) error {
	return kv.WriteJSON(ctx, v.store, VaultKey(id), data)
}

func (v *KVVault) Remove(ctx context.Context, id string) error {
	return v.store.Remove(ctx, VaultKey(id))
}

func (v *KVVault) IDs(ctx context.Context) ([]string, error) {
	found, err := v.store.Keys(ctx, keys.SessionData)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(found))
	for _, key := range found {
		ids = append(ids, strings.TrimPrefix(key, keys.SessionData))
	}
	return ids, nil
}

type KVDemoVisibility struct {
	store kv.Store
	log   hclog.Logger
}

func NewKVDemoVisibility(store kv.Store, log hclog.Logger) sessionout.DemoVisibilityStore {
	return &KVDemoVisibility{store: store, log: logging.OrDiscard(log).Named("demo")}
}

func (d *KVDemoVisibility) Hidden(ctx context.Context) bool {
	id, ok, err := d.store.Get(ctx, keys.HiddenDemoSession)
	if err != nil {
		d.log.Error("read failed", "key", keys.HiddenDemoSession, "error", err)
		return false
	}
	return ok && id == domain.DemoSessionID
}

func (d *KVDemoVisibility) SetHidden(ctx context.Context, hidden bool) error {
	if hidden {
		return d.store.Set(ctx, keys.HiddenDemoSession, domain.DemoSessionID)
	}
	return d.store.Remove(ctx, keys.HiddenDemoSession)
}
