package out

import (
	"context"

	hclog "github.com/hashicorp/go-hclog"

	"pitwall/internal/modules/records/domain"
	recordsout "pitwall/internal/modules/records/port/out"
	"pitwall/internal/platform/keys"
	"pitwall/internal/platform/kv"
	"pitwall/internal/platform/logging"
)

type KVBufferStore struct {
	store kv.Store
	log   hclog.Logger
}

func NewKVBufferStore(store kv.Store, log hclog.Logger) recordsout.BufferStore {
	return &KVBufferStore{store: store, log: logging.OrDiscard(log).Named("records")}
}

func (s *KVBufferStore) LoadNotes(ctx context.Context, buf domain.Buffer) []domain.TrackNote {
	notes, _ := kv.ReadJSON[[]domain.TrackNote](ctx, s.store, s.log, buf.Key(keys.Notes))
	return notes
}

func (s *KVBufferStore) SaveNotes(ctx context.Context, buf domain.Buffer, notes []domain.TrackNote) error {
	return kv.WriteJSON(ctx, s.store, buf.Key(keys.Notes), notes)
}

func (s *KVBufferStore) LoadSetups(ctx context.Context, buf domain.Buffer) []domain.TrackSetup {
	setups, _ := kv.ReadJSON[[]domain.TrackSetup](ctx, s.store, s.log, buf.Key(keys.Setups))
	return setups
}

func (s *KVBufferStore) SaveSetups(ctx context.Context, buf domain.Buffer, setups []domain.TrackSetup) error {
	return kv.WriteJSON(ctx, s.store, buf.Key(keys.Setups), setups)
}

func (s *KVBufferStore) LoadWeekends(ctx context.Context, buf domain.Buffer) []domain.RaceWeekend {
	weekends, _ := kv.ReadJSON[[]domain.RaceWeekend](ctx, s.store, s.log, buf.Key(keys.RaceWeekends))
	return weekends
}

func (s *KVBufferStore) SaveWeekends(ctx context.Context, buf domain.Buffer, weekends []domain.RaceWeekend) error {
	return kv.WriteJSON(ctx, s.store, buf.Key(keys.RaceWeekends), weekends)
}

func (s *KVBufferStore) LoadSettings(ctx context.Context, buf domain.Buffer) (domain.UserSettings, bool) {
	return kv.ReadJSON[domain.UserSettings](ctx, s.store, s.log, buf.Key(keys.Settings))
}

func (s *KVBufferStore) SaveSettings(ctx context.Context, buf domain.Buffer, settings domain.UserSettings) error {
	return kv.WriteJSON(ctx, s.store, buf.Key(keys.Settings), settings)
}

func (s *KVBufferStore) LoadFavorites(ctx context.Context, buf domain.Buffer) []string {
	favorites, _ := kv.ReadJSON[[]string](ctx, s.store, s.log, buf.Key(keys.Favorites))
	return favorites
}

func (s *KVBufferStore) SaveFavorites(ctx context.Context, buf domain.Buffer, favorites []string) error {
	return kv.WriteJSON(ctx, s.store, buf.Key(keys.Favorites), favorites)
}

func (s *KVBufferStore) LoadUser(ctx context.Context, buf domain.Buffer) (domain.User, bool) {
	return kv.ReadJSON[domain.User](ctx, s.store, s.log, buf.Key(keys.User))
}

func (s *KVBufferStore) SaveUser(ctx context.Context, buf domain.Buffer, user domain.User) error {
	return kv.WriteJSON(ctx, s.store, buf.Key(keys.User), user)
}

func (s *KVBufferStore) Clear(ctx context.Context, buf domain.Buffer) error {
	names := make([]string, 0, len(keys.RecordNames))
	for _, name := range keys.RecordNames {
		names = append(names, buf.Key(name))
	}
	return s.store.Remove(ctx, names...)
}

// KVThemeStore keeps the theme under a fixed key outside any buffer.
type KVThemeStore struct {
	store kv.Store
	log   hclog.Logger
}

func NewKVThemeStore(store kv.Store, log hclog.Logger) recordsout.ThemeStore {
	return &KVThemeStore{store: store, log: logging.OrDiscard(log).Named("theme")}
}

func (s *KVThemeStore) LoadTheme(ctx context.Context) (domain.Theme, bool) {
	raw, ok, err := s.store.Get(ctx, keys.Theme)
	if err != nil {
		s.log.Error("read theme failed", "error", err)
		return "", false
	}
	return domain.Theme(raw), ok
}

func (s *KVThemeStore) SaveTheme(ctx context.Context, theme domain.Theme) error {
	return s.store.Set(ctx, keys.Theme, string(theme))
}
