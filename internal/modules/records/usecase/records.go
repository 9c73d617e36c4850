package usecase

import (
	"context"

	"pitwall/internal/modules/records/domain"
	"pitwall/internal/modules/records/dto"
	recordsin "pitwall/internal/modules/records/port/in"
	recordsout "pitwall/internal/modules/records/port/out"
	"pitwall/internal/modules/records/service"
)

type Services struct {
	Notes       *service.NoteService
	Setups      *service.SetupService
	Itinerary   *service.ItineraryService
	Preferences *service.PreferenceService
	Buffers     *service.BufferService
}

type Interactor struct {
	svc    Services
	tracks recordsout.TrackCatalog
}

func NewInteractor(svc Services, tracks recordsout.TrackCatalog) recordsin.Usecase {
	return &Interactor{svc: svc, tracks: tracks}
}

func (i *Interactor) ListNotes(ctx context.Context, buf domain.Buffer) ([]dto.NoteView, error) {
	notes, err := i.svc.Notes.List(ctx, buf)
	if err != nil {
		return nil, err
	}
	return i.noteViews(notes), nil
}

func (i *Interactor) NotesForTrack(ctx context.Context, buf domain.Buffer, trackID string) ([]dto.NoteView, error) {
	notes, err := i.svc.Notes.ForTrack(ctx, buf, trackID)
	if err != nil {
		return nil, err
	}
	return i.noteViews(notes), nil
}

func (i *Interactor) AddNote(ctx context.Context, buf domain.Buffer, input dto.NoteInput) (domain.TrackNote, error) {
	return i.svc.Notes.Add(ctx, buf, input)
}

func (i *Interactor) UpdateNote(ctx context.Context, buf domain.Buffer, id string, patch dto.NotePatch) (domain.TrackNote, bool, error) {
	return i.svc.Notes.Update(ctx, buf, id, patch)
}

func (i *Interactor) DeleteNote(ctx context.Context, buf domain.Buffer, id string) (bool, error) {
	return i.svc.Notes.Delete(ctx, buf, id)
}

func (i *Interactor) ListSetups(ctx context.Context, buf domain.Buffer) ([]dto.SetupView, error) {
	setups, err := i.svc.Setups.List(ctx, buf)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SetupView, 0, len(setups))
	for _, setup := range setups {
		out = append(out, dto.SetupView{TrackSetup: setup, TrackName: i.trackName(setup.TrackID)})
	}
	return out, nil
}

func (i *Interactor) AddSetup(ctx context.Context, buf domain.Buffer, input dto.SetupInput) (domain.TrackSetup, error) {
	return i.svc.Setups.Add(ctx, buf, input)
}

func (i *Interactor) UpdateSetup(ctx context.Context, buf domain.Buffer, id string, patch dto.SetupPatch) (domain.TrackSetup, bool, error) {
	return i.svc.Setups.Update(ctx, buf, id, patch)
}

func (i *Interactor) DeleteSetup(ctx context.Context, buf domain.Buffer, id string) (bool, error) {
	return i.svc.Setups.Delete(ctx, buf, id)
}

func (i *Interactor) ListWeekends(ctx context.Context, buf domain.Buffer) ([]domain.RaceWeekend, error) {
	return i.svc.Itinerary.List(ctx, buf)
}

func (i *Interactor) GetWeekend(ctx context.Context, buf domain.Buffer, id string) (domain.RaceWeekend, bool, error) {
	return i.svc.Itinerary.Get(ctx, buf, id)
}

func (i *Interactor) CreateWeekend(ctx context.Context, buf domain.Buffer, input dto.WeekendInput) (domain.RaceWeekend, error) {
	return i.svc.Itinerary.Create(ctx, buf, input)
}

func (i *Interactor) DeleteWeekend(ctx context.Context, buf domain.Buffer, id string) (bool, error) {
	return i.svc.Itinerary.Delete(ctx, buf, id)
}

func (i *Interactor) AddDay(ctx context.Context, buf domain.Buffer, weekendID string, input dto.DayInput) (domain.ItineraryDay, bool, error) {
	return i.svc.Itinerary.AddDay(ctx, buf, weekendID, input)
}

func (i *Interactor) RemoveDay(ctx context.Context, buf domain.Buffer, weekendID, dayID string) (bool, error) {
	return i.svc.Itinerary.RemoveDay(ctx, buf, weekendID, dayID)
}

func (i *Interactor) AddScheduleItem(ctx context.Context, buf domain.Buffer, weekendID, dayID string, input dto.ItemInput) (domain.ScheduleItem, bool, error) {
	return i.svc.Itinerary.AddItem(ctx, buf, weekendID, dayID, input)
}

func (i *Interactor) UpdateScheduleItem(ctx context.Context, buf domain.Buffer, weekendID, dayID, itemID string, patch dto.ItemPatch) (domain.ScheduleItem, bool, error) {
	return i.svc.Itinerary.UpdateItem(ctx, buf, weekendID, dayID, itemID, patch)
}

func (i *Interactor) RemoveScheduleItem(ctx context.Context, buf domain.Buffer, weekendID, dayID, itemID string) (bool, error) {
	return i.svc.Itinerary.RemoveItem(ctx, buf, weekendID, dayID, itemID)
}

func (i *Interactor) GetSettings(ctx context.Context, buf domain.Buffer) (domain.UserSettings, error) {
	return i.svc.Preferences.Settings(ctx, buf)
}

func (i *Interactor) UpdateSettings(ctx context.Context, buf domain.Buffer, patch dto.SettingsPatch) (domain.UserSettings, error) {
	return i.svc.Preferences.UpdateSettings(ctx, buf, patch)
}

func (i *Interactor) ListFavorites(ctx context.Context, buf domain.Buffer) ([]string, error) {
	return i.svc.Preferences.Favorites(ctx, buf)
}

func (i *Interactor) AddFavorite(ctx context.Context, buf domain.Buffer, trackID string) (bool, error) {
	return i.svc.Preferences.AddFavorite(ctx, buf, trackID)
}

func (i *Interactor) RemoveFavorite(ctx context.Context, buf domain.Buffer, trackID string) (bool, error) {
	return i.svc.Preferences.RemoveFavorite(ctx, buf, trackID)
}

func (i *Interactor) GetUser(ctx context.Context, buf domain.Buffer) (domain.User, bool, error) {
	return i.svc.Preferences.User(ctx, buf)
}

func (i *Interactor) SetUser(ctx context.Context, buf domain.Buffer, user domain.User) error {
	return i.svc.Preferences.SetUser(ctx, buf, user)
}

func (i *Interactor) GetTheme(ctx context.Context) (domain.Theme, error) {
	return i.svc.Preferences.Theme(ctx), nil
}

func (i *Interactor) SetTheme(ctx context.Context, theme string) error {
	return i.svc.Preferences.SetTheme(ctx, domain.Theme(theme))
}

func (i *Interactor) ListTracks(_ context.Context) ([]domain.Track, error) {
	if i.tracks == nil {
		return []domain.Track{}, nil
	}
	return i.tracks.List(), nil
}

func (i *Interactor) Snapshot(ctx context.Context, buf domain.Buffer) (dto.Snapshot, error) {
	return i.svc.Buffers.Snapshot(ctx, buf)
}

func (i *Interactor) Reset(ctx context.Context, buf domain.Buffer) error {
	return i.svc.Buffers.Reset(ctx, buf)
}

func (i *Interactor) Hydrate(ctx context.Context, buf domain.Buffer, snapshot dto.Snapshot) error {
	return i.svc.Buffers.Hydrate(ctx, buf, snapshot)
}

func (i *Interactor) noteViews(notes []domain.TrackNote) []dto.NoteView {
	out := make([]dto.NoteView, 0, len(notes))
	for _, note := range notes {
		out = append(out, dto.NoteView{TrackNote: note, TrackName: i.trackName(note.TrackID)})
	}
	return out
}

// trackName tolerates dangling references; they render as domain.UnknownLabel.
func (i *Interactor) trackName(trackID string) string {
	if i.tracks == nil {
		return domain.UnknownLabel
	}
	track, ok := i.tracks.Lookup(trackID)
	if !ok {
		return domain.UnknownLabel
	}
	return track.Name
}
