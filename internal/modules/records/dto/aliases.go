package dto

import "pitwall/internal/modules/records/domain"

// Record types cross the module boundary unchanged.
type (
	Buffer        = domain.Buffer
	TrackNote     = domain.TrackNote
	TrackSetup    = domain.TrackSetup
	TirePressures = domain.TirePressures
	WingSettings  = domain.WingSettings
	RaceWeekend   = domain.RaceWeekend
	ItineraryDay  = domain.ItineraryDay
	ScheduleItem  = domain.ScheduleItem
	UserSettings  = domain.UserSettings
	User          = domain.User
	Theme         = domain.Theme
	Track         = domain.Track
)

// WorkingBuffer is the live data set the app reads and writes.
var WorkingBuffer = domain.Working

const (
	MaxFavorites = domain.MaxFavorites
	UnknownLabel = domain.UnknownLabel
)
