package domain

import (
	"time"

	recordsdto "pitwall/internal/modules/records/dto"
	"pitwall/internal/platform/opt"
)

func DemoMetadata(now time.Time) SessionMetadata {
	return SessionMetadata{
		ID:             DemoSessionID,
		Name:           DemoSessionName,
		Description:    "Sample notes, setups and a race weekend to explore",
		Emoji:          DemoSessionEmoji,
		CreatedAt:      now,
		LastAccessedAt: now,
		IsDemo:         true,
	}
}

// DemoAppData seeds the demo session's vault slot the first time the demo
// entry is synthesized. Record ids are fixed so repeated seeding is stable.
func DemoAppData(now time.Time) AppData {
	notes := []recordsdto.TrackNote{
		{
			ID: "demo-note-1", TrackID: "monaco", Title: "Tunnel exit grip",
			Content: "Track stays damp in the tunnel long after the rest dries. Brake early into the chicane.",
			Type:    "condition", CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "demo-note-2", TrackID: "spa", Title: "Rain at Eau Rouge",
			Content: "Weather at La Source and Stavelot can differ by several minutes. Watch the radar before the out-lap.",
			Type:    "weather", CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "demo-note-3", TrackID: "silverstone", Title: "One-stop window",
			Content: "Crosswind on Hangar Straight drops top speed. Plan the stop around lap 22.",
			Type:    "strategy", CreatedAt: now, UpdatedAt: now,
		},
	}
	setups := []recordsdto.TrackSetup{
		{
			ID: "demo-setup-1", TrackID: "monaco", Name: "Street circuit high downforce",
			CarModel: "GT3", Conditions: "Dry, 24°C",
			TirePressures: &recordsdto.TirePressures{FrontLeft: 26.5, FrontRight: 26.5, RearLeft: 25.8, RearRight: 25.8},
			Wing:          &recordsdto.WingSettings{Front: 9, Rear: 11},
			Suspension:    "Soft front, medium rear",
			CreatedAt:     now, UpdatedAt: now,
		},
	}
	start := now.AddDate(0, 0, 7)
	day := func(offset int, label string, items ...recordsdto.ScheduleItem) recordsdto.ItineraryDay {
		date := start.AddDate(0, 0, offset).Format("2006-01-02")
		return recordsdto.ItineraryDay{ID: "demo-day-" + label, Date: date, Label: label, Items: items}
	}
	weekend := recordsdto.RaceWeekend{
		ID: "demo-weekend-1", TrackID: "spa", Name: "Spa 24h Test Weekend",
		StartDate: start.Format("2006-01-02"), EndDate: start.AddDate(0, 0, 2).Format("2006-01-02"),
		Days: []recordsdto.ItineraryDay{
			day(0, "Friday",
				recordsdto.ScheduleItem{ID: "demo-item-1", Time: "09:00", Title: "Travel to circuit", Category: "travel"},
				recordsdto.ScheduleItem{ID: "demo-item-2", Time: "14:00", Title: "Free practice", Category: "practice"},
			),
			day(1, "Saturday",
				recordsdto.ScheduleItem{ID: "demo-item-3", Time: "10:30", Title: "Qualifying", Category: "qualifying"},
			),
			day(2, "Sunday",
				recordsdto.ScheduleItem{ID: "demo-item-4", Time: "08:00", Title: "Drivers briefing", Category: "meeting"},
				recordsdto.ScheduleItem{ID: "demo-item-5", Time: "13:00", Title: "Race", Category: "race"},
			),
		},
		CreatedAt: now, UpdatedAt: now,
	}
	snap := recordsdto.EmptySnapshot()
	snap.Notes = opt.Of(notes)
	snap.Setups = opt.Of(setups)
	snap.RaceWeekends = opt.Of([]recordsdto.RaceWeekend{weekend})
	snap.Favorites = opt.Of([]string{"monaco", "spa", "silverstone"})
	return NewAppData(DemoSessionID, snap, now)
}
