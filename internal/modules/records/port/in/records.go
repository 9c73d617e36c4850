package in

import (
	"context"

	"pitwall/internal/modules/records/dto"
)

type Usecase interface {
	ListNotes(ctx context.Context, buf dto.Buffer) ([]dto.NoteView, error)
	NotesForTrack(ctx context.Context, buf dto.Buffer, trackID string) ([]dto.NoteView, error)
	AddNote(ctx context.Context, buf dto.Buffer, input dto.NoteInput) (dto.TrackNote, error)
	UpdateNote(ctx context.Context, buf dto.Buffer, id string, patch dto.NotePatch) (dto.TrackNote, bool, error)
	DeleteNote(ctx context.Context, buf dto.Buffer, id string) (bool, error)

	ListSetups(ctx context.Context, buf dto.Buffer) ([]dto.SetupView, error)
	AddSetup(ctx context.Context, buf dto.Buffer, input dto.SetupInput) (dto.TrackSetup, error)
	UpdateSetup(ctx context.Context, buf dto.Buffer, id string, patch dto.SetupPatch) (dto.TrackSetup, bool, error)
	DeleteSetup(ctx context.Context, buf dto.Buffer, id string) (bool, error)

	ListWeekends(ctx context.Context, buf dto.Buffer) ([]dto.RaceWeekend, error)
	GetWeekend(ctx context.Context, buf dto.Buffer, id string) (dto.RaceWeekend, bool, error)
	CreateWeekend(ctx context.Context, buf dto.Buffer, input dto.WeekendInput) (dto.RaceWeekend, error)
	DeleteWeekend(ctx context.Context, buf dto.Buffer, id string) (bool, error)
	AddDay(ctx context.Context, buf dto.Buffer, weekendID string, input dto.DayInput) (dto.ItineraryDay, bool, error)
	RemoveDay(ctx context.Context, buf dto.Buffer, weekendID, dayID string) (bool, error)
	AddScheduleItem(ctx context.Context, buf dto.Buffer, weekendID, dayID string, input dto.ItemInput) (dto.ScheduleItem, bool, error)
	UpdateScheduleItem(ctx context.Context, buf dto.Buffer, weekendID, dayID, itemID string, patch dto.ItemPatch) (dto.ScheduleItem, bool, error)
	RemoveScheduleItem(ctx context.Context, buf dto.Buffer, weekendID, dayID, itemID string) (bool, error)

	GetSettings(ctx context.Context, buf dto.Buffer) (dto.UserSettings, error)
	UpdateSettings(ctx context.Context, buf dto.Buffer, patch dto.SettingsPatch) (dto.UserSettings, error)
	ListFavorites(ctx context.Context, buf dto.Buffer) ([]string, error)
	AddFavorite(ctx context.Context, buf dto.Buffer, trackID string) (bool, error)
	RemoveFavorite(ctx context.Context, buf dto.Buffer, trackID string) (bool, error)
	GetUser(ctx context.Context, buf dto.Buffer) (dto.User, bool, error)
	SetUser(ctx context.Context, buf dto.Buffer, user dto.User) error
	GetTheme(ctx context.Context) (dto.Theme, error)
	SetTheme(ctx context.Context, theme string) error
	ListTracks(ctx context.Context) ([]dto.Track, error)

	// Bulk operations used by session switching.
	Snapshot(ctx context.Context, buf dto.Buffer) (dto.Snapshot, error)
	Reset(ctx context.Context, buf dto.Buffer) error
	Hydrate(ctx context.Context, buf dto.Buffer, snapshot dto.Snapshot) error
}
