package out

import (
	"context"

	"pitwall/internal/modules/records/domain"
)

// BufferStore persists the record collections of a buffer. Loads never fail:
// unreadable data is logged by the adapter and reported as absent.
type BufferStore interface {
	LoadNotes(ctx context.Context, buf domain.Buffer) []domain.TrackNote
	SaveNotes(ctx context.Context, buf domain.Buffer, notes []domain.TrackNote) error
	LoadSetups(ctx context.Context, buf domain.Buffer) []domain.TrackSetup
	SaveSetups(ctx context.Context, buf domain.Buffer, setups []domain.TrackSetup) error
	LoadWeekends(ctx context.Context, buf domain.Buffer) []domain.RaceWeekend
	SaveWeekends(ctx context.Context, buf domain.Buffer, weekends []domain.RaceWeekend) error
	LoadSettings(ctx context.Context, buf domain.Buffer) (domain.UserSettings, bool)
	SaveSettings(ctx context.Context, buf domain.Buffer, settings domain.UserSettings) error
	LoadFavorites(ctx context.Context, buf domain.Buffer) []string
	SaveFavorites(ctx context.Context, buf domain.Buffer, favorites []string) error
	LoadUser(ctx context.Context, buf domain.Buffer) (domain.User, bool)
	SaveUser(ctx context.Context, buf domain.Buffer, user domain.User) error
	// Clear removes every record key of buf.
	Clear(ctx context.Context, buf domain.Buffer) error
}

// ThemeStore holds the display theme, which is device-wide rather than per session.
type ThemeStore interface {
	LoadTheme(ctx context.Context) (domain.Theme, bool)
	SaveTheme(ctx context.Context, theme domain.Theme) error
}

type TrackCatalog interface {
	Lookup(trackID string) (domain.Track, bool)
	List() []domain.Track
}
