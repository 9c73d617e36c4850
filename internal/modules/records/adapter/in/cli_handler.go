package in

import (
	"context"

	"pitwall/internal/modules/records/dto"
	recordsin "pitwall/internal/modules/records/port/in"
)

// CLIHandler serves everyday CRUD against the working buffer.
type CLIHandler struct {
	usecase recordsin.Usecase
	buf     dto.Buffer
}

func NewCLIHandler(usecase recordsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase, buf: dto.WorkingBuffer}
}

func (h CLIHandler) ListNotes(ctx context.Context, trackID string) ([]dto.NoteView, error) {
	if trackID != "" {
		return h.usecase.NotesForTrack(ctx, h.buf, trackID)
	}
	return h.usecase.ListNotes(ctx, h.buf)
}

func (h CLIHandler) AddNote(ctx context.Context, trackID, title, content, noteType string) (dto.TrackNote, error) {
	return h.usecase.AddNote(ctx, h.buf, dto.NoteInput{TrackID: trackID, Title: title, Content: content, Type: noteType})
}

func (h CLIHandler) UpdateNote(ctx context.Context, id string, patch dto.NotePatch) (dto.TrackNote, bool, error) {
	return h.usecase.UpdateNote(ctx, h.buf, id, patch)
}

func (h CLIHandler) DeleteNote(ctx context.Context, id string) (bool, error) {
	return h.usecase.DeleteNote(ctx, h.buf, id)
}

func (h CLIHandler) ListSetups(ctx context.Context) ([]dto.SetupView, error) {
	return h.usecase.ListSetups(ctx, h.buf)
}

func (h CLIHandler) AddSetup(ctx context.Context, input dto.SetupInput) (dto.TrackSetup, error) {
	return h.usecase.AddSetup(ctx, h.buf, input)
}

func (h CLIHandler) UpdateSetup(ctx context.Context, id string, patch dto.SetupPatch) (dto.TrackSetup, bool, error) {
	return h.usecase.UpdateSetup(ctx, h.buf, id, patch)
}

func (h CLIHandler) DeleteSetup(ctx context.Context, id string) (bool, error) {
	return h.usecase.DeleteSetup(ctx, h.buf, id)
}

func (h CLIHandler) ListWeekends(ctx context.Context) ([]dto.RaceWeekend, error) {
	return h.usecase.ListWeekends(ctx, h.buf)
}

func (h CLIHandler) GetWeekend(ctx context.Context, id string) (dto.RaceWeekend, bool, error) {
	return h.usecase.GetWeekend(ctx, h.buf, id)
}

func (h CLIHandler) CreateWeekend(ctx context.Context, trackID, name, start, end string) (dto.RaceWeekend, error) {
	return h.usecase.CreateWeekend(ctx, h.buf, dto.WeekendInput{TrackID: trackID, Name: name, StartDate: start, EndDate: end})
}

func (h CLIHandler) DeleteWeekend(ctx context.Context, id string) (bool, error) {
	return h.usecase.DeleteWeekend(ctx, h.buf, id)
}

func (h CLIHandler) AddDay(ctx context.Context, weekendID, date, label string) (dto.ItineraryDay, bool, error) {
	return h.usecase.AddDay(ctx, h.buf, weekendID, dto.DayInput{Date: date, Label: label})
}

func (h CLIHandler) RemoveDay(ctx context.Context, weekendID, dayID string) (bool, error) {
	return h.usecase.RemoveDay(ctx, h.buf, weekendID, dayID)
}

func (h CLIHandler) AddItem(ctx context.Context, weekendID, dayID string, input dto.ItemInput) (dto.ScheduleItem, bool, error) {
	return h.usecase.AddScheduleItem(ctx, h.buf, weekendID, dayID, input)
}

func (h CLIHandler) UpdateItem(ctx context.Context, weekendID, dayID, itemID string, patch dto.ItemPatch) (dto.ScheduleItem, bool, error) {
	return h.usecase.UpdateScheduleItem(ctx, h.buf, weekendID, dayID, itemID, patch)
}

func (h CLIHandler) RemoveItem(ctx context.Context, weekendID, dayID, itemID string) (bool, error) {
	return h.usecase.RemoveScheduleItem(ctx, h.buf, weekendID, dayID, itemID)
}

func (h CLIHandler) Settings(ctx context.Context) (dto.UserSettings, error) {
	return h.usecase.GetSettings(ctx, h.buf)
}

func (h CLIHandler) UpdateSettings(ctx context.Context, patch dto.SettingsPatch) (dto.UserSettings, error) {
	return h.usecase.UpdateSettings(ctx, h.buf, patch)
}

func (h CLIHandler) Favorites(ctx context.Context) ([]string, error) {
	return h.usecase.ListFavorites(ctx, h.buf)
}

func (h CLIHandler) AddFavorite(ctx context.Context, trackID string) (bool, error) {
	return h.usecase.AddFavorite(ctx, h.buf, trackID)
}

func (h CLIHandler) RemoveFavorite(ctx context.Context, trackID string) (bool, error) {
	return h.usecase.RemoveFavorite(ctx, h.buf, trackID)
}

func (h CLIHandler) Theme(ctx context.Context) (dto.Theme, error) {
	return h.usecase.GetTheme(ctx)
}

func (h CLIHandler) SetTheme(ctx context.Context, theme string) error {
	return h.usecase.SetTheme(ctx, theme)
}

func (h CLIHandler) Tracks(ctx context.Context) ([]dto.Track, error) {
	return h.usecase.ListTracks(ctx)
}
