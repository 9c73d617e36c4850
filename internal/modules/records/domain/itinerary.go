package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"

	MaxWeekendDays = 14
)

type ItemCategory string

const (
	CategoryPractice   ItemCategory = "practice"
	CategoryQualifying ItemCategory = "qualifying"
	CategoryRace       ItemCategory = "race"
	CategoryTravel     ItemCategory = "travel"
	CategoryMeeting    ItemCategory = "meeting"
	CategoryOther      ItemCategory = "other"
)

func (c ItemCategory) Validate() error {
	switch c {
	case CategoryPractice, CategoryQualifying, CategoryRace, CategoryTravel, CategoryMeeting, CategoryOther:
		return nil
	default:
		return fmt.Errorf("unsupported schedule category %q", string(c))
	}
}

type ScheduleItem struct {
	ID        string       `json:"id"`
	Time      string       `json:"time"`
	Title     string       `json:"title"`
	Category  ItemCategory `json:"category"`
	Notes     string       `json:"notes,omitempty"`
	Completed bool         `json:"completed"`
}

func (i ScheduleItem) Validate() error {
	if strings.TrimSpace(i.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if _, err := time.Parse(TimeLayout, i.Time); err != nil {
		return fmt.Errorf("time must be HH:MM: %q", i.Time)
	}
	return i.Category.Validate()
}

type ItineraryDay struct {
	ID    string         `json:"id"`
	Date  string         `json:"date"`
	Label string         `json:"label"`
	Items []ScheduleItem `json:"items"`
}

// SortItems keeps a day's schedule in chronological order.
func (d *ItineraryDay) SortItems() {
	sort.SliceStable(d.Items, func(a, b int) bool { return d.Items[a].Time < d.Items[b].Time })
}

func (d *ItineraryDay) ItemIndex(itemID string) int {
	for i := range d.Items {
		if d.Items[i].ID == itemID {
			return i
		}
	}
	return -1
}

type RaceWeekend struct {
	ID        string         `json:"id"`
	TrackID   string         `json:"trackId"`
	Name      string         `json:"name"`
	StartDate string         `json:"startDate"`
	EndDate   string         `json:"endDate"`
	Days      []ItineraryDay `json:"days"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

func (w *RaceWeekend) DayIndex(dayID string) int {
	for i := range w.Days {
		if w.Days[i].ID == dayID {
			return i
		}
	}
	return -1
}

func (w *RaceWeekend) SortDays() {
	sort.SliceStable(w.Days, func(a, b int) bool { return w.Days[a].Date < w.Days[b].Date })
}

// WeekendDates expands an inclusive date range into one date per day.
func WeekendDates(start, end string) ([]time.Time, error) {
	from, err := time.Parse(DateLayout, start)
	if err != nil {
		return nil, fmt.Errorf("start date must be YYYY-MM-DD: %q", start)
	}
	to, err := time.Parse(DateLayout, end)
	if err != nil {
		return nil, fmt.Errorf("end date must be YYYY-MM-DD: %q", end)
	}
	if to.Before(from) {
		return nil, fmt.Errorf("end date is before start date")
	}
	out := []time.Time{}
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		out = append(out, d)
		if len(out) > MaxWeekendDays {
			return nil, fmt.Errorf("weekend may span at most %d days", MaxWeekendDays)
		}
	}
	return out, nil
}
