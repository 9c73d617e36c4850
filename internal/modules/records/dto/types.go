package dto

import (
	"pitwall/internal/modules/records/domain"
	"pitwall/internal/platform/opt"
)

// Snapshot is the full content of one buffer. Absent fields are left at their
// reset state when a snapshot is hydrated.
type Snapshot struct {
	User         opt.Field[domain.User]          `json:"user,omitzero"`
	Notes        opt.Field[[]domain.TrackNote]   `json:"notes,omitzero"`
	Setups       opt.Field[[]domain.TrackSetup]  `json:"setups,omitzero"`
	RaceWeekends opt.Field[[]domain.RaceWeekend] `json:"raceWeekends,omitzero"`
	Settings     opt.Field[domain.UserSettings]  `json:"settings,omitzero"`
	Favorites    opt.Field[[]string]             `json:"favorites,omitzero"`
}

// HasUserRecords reports whether the snapshot holds anything worth keeping.
func (s Snapshot) HasUserRecords() bool {
	return len(s.Notes.OrElse(nil)) > 0 || len(s.Setups.OrElse(nil)) > 0 || len(s.Favorites.OrElse(nil)) > 0
}

// EmptySnapshot is what a brand new session starts with.
func EmptySnapshot() Snapshot {
	return Snapshot{
		Notes:        opt.Of([]domain.TrackNote{}),
		Setups:       opt.Of([]domain.TrackSetup{}),
		RaceWeekends: opt.Of([]domain.RaceWeekend{}),
		Settings:     opt.Of(domain.DefaultSettings()),
		Favorites:    opt.Of([]string{}),
	}
}

type NoteInput struct {
	TrackID string
	Title   string
	Content string
	Type    string
}

type NotePatch struct {
	TrackID *string
	Title   *string
	Content *string
	Type    *string
}

type SetupInput struct {
	TrackID       string
	Name          string
	CarModel      string
	Conditions    string
	TirePressures *domain.TirePressures
	Wing          *domain.WingSettings
	Suspension    string
	Notes         string
}

type SetupPatch struct {
	Name          *string
	CarModel      *string
	Conditions    *string
	TirePressures *domain.TirePressures
	Wing          *domain.WingSettings
	Suspension    *string
	Notes         *string
}

type WeekendInput struct {
	TrackID   string
	Name      string
	StartDate string
	EndDate   string
}

type DayInput struct {
	Date  string
	Label string
}

type ItemInput struct {
	Time     string
	Title    string
	Category string
	Notes    string
}

type ItemPatch struct {
	Time      *string
	Title     *string
	Category  *string
	Notes     *string
	Completed *bool
}

type SettingsPatch struct {
	TemperatureUnit *string
	WindSpeedUnit   *string
	DistanceUnit    *string
}

// NoteView is a note with its track reference resolved for display.
type NoteView struct {
	domain.TrackNote
	TrackName string
}

type SetupView struct {
	domain.TrackSetup
	TrackName string
}
