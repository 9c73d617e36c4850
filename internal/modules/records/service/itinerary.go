package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pitwall/internal/modules/records/domain"
	"pitwall/internal/modules/records/dto"
	recordsout "pitwall/internal/modules/records/port/out"
	"pitwall/internal/platform/clock"
	"pitwall/internal/platform/id"
)

type ItineraryService struct {
	clock clock.Clock
	idGen id.Generator
	store recordsout.BufferStore
}

func NewItineraryService(clock clock.Clock, idGen id.Generator, store recordsout.BufferStore) *ItineraryService {
	return &ItineraryService{clock: clock, idGen: idGen, store: store}
}

func (s *ItineraryService) List(ctx context.Context, buf domain.Buffer) ([]domain.RaceWeekend, error) {
	if err := checkBuffer(buf); err != nil {
		return nil, err
	}
	return s.store.LoadWeekends(ctx, buf), nil
}

func (s *ItineraryService) Get(ctx context.Context, buf domain.Buffer, weekendID string) (domain.RaceWeekend, bool, error) {
	weekends, err := s.List(ctx, buf)
	if err != nil {
		return domain.RaceWeekend{}, false, err
	}
	for _, w := range weekends {
		if w.ID == weekendID {
			return w, true, nil
		}
	}
	return domain.RaceWeekend{}, false, nil
}

// Create lays out one itinerary day per calendar date in the weekend.
func (s *ItineraryService) Create(ctx context.Context, buf domain.Buffer, input dto.WeekendInput) (domain.RaceWeekend, error) {
	weekends, err := s.List(ctx, buf)
	if err != nil {
		return domain.RaceWeekend{}, err
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return domain.RaceWeekend{}, invalid(fmt.Errorf("name is required"))
	}
	dates, err := domain.WeekendDates(input.StartDate, input.EndDate)
	if err != nil {
		return domain.RaceWeekend{}, invalid(err)
	}
	now := s.clock.Now()
	weekend := domain.RaceWeekend{
		ID:        s.idGen.New(),
		TrackID:   strings.TrimSpace(input.TrackID),
		Name:      name,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Days:      make([]domain.ItineraryDay, 0, len(dates)),
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, date := range dates {
		weekend.Days = append(weekend.Days, domain.ItineraryDay{
			ID:    s.idGen.New(),
			Date:  date.Format(domain.DateLayout),
			Label: date.Weekday().String(),
			Items: []domain.ScheduleItem{},
		})
	}
	if err := s.store.SaveWeekends(ctx, buf, append(weekends, weekend)); err != nil {
		return domain.RaceWeekend{}, err
	}
	return weekend, nil
}

func (s *ItineraryService) Delete(ctx context.Context, buf domain.Buffer, weekendID string) (bool, error) {
	weekends, err := s.List(ctx, buf)
	if err != nil {
		return false, err
	}
	kept := make([]domain.RaceWeekend, 0, len(weekends))
	for _, w := range weekends {
		if w.ID != weekendID {
			kept = append(kept, w)
		}
	}
	if len(kept) == len(weekends) {
		return false, nil
	}
	if err := s.store.SaveWeekends(ctx, buf, kept); err != nil {
		return false, err
	}
	return true, nil
}

func (s *ItineraryService) AddDay(ctx context.Context, buf domain.Buffer, weekendID string, input dto.DayInput) (domain.ItineraryDay, bool, error) {
	var day domain.ItineraryDay
	found, err := s.mutate(ctx, buf, weekendID, func(w *domain.RaceWeekend) (bool, error) {
		date, err := time.Parse(domain.DateLayout, input.Date)
		if err != nil {
			return false, invalid(fmt.Errorf("date must be YYYY-MM-DD: %q", input.Date))
		}
		label := strings.TrimSpace(input.Label)
		if label == "" {
			label = date.Weekday().String()
		}
		day = domain.ItineraryDay{ID: s.idGen.New(), Date: input.Date, Label: label, Items: []domain.ScheduleItem{}}
		w.Days = append(w.Days, day)
		w.SortDays()
		return true, nil
	})
	return day, found, err
}

func (s *ItineraryService) RemoveDay(ctx context.Context, buf domain.Buffer, weekendID, dayID string) (bool, error) {
	return s.mutate(ctx, buf, weekendID, func(w *domain.RaceWeekend) (bool, error) {
		idx := w.DayIndex(dayID)
		if idx < 0 {
			return false, nil
		}
		w.Days = append(w.Days[:idx], w.Days[idx+1:]...)
		return true, nil
	})
}

func (s *ItineraryService) AddItem(ctx context.Context, buf domain.Buffer, weekendID, dayID string, input dto.ItemInput) (domain.ScheduleItem, bool, error) {
	var item domain.ScheduleItem
	found, err := s.mutate(ctx, buf, weekendID, func(w *domain.RaceWeekend) (bool, error) {
		idx := w.DayIndex(dayID)
		if idx < 0 {
			return false, nil
		}
		category := domain.ItemCategory(strings.TrimSpace(input.Category))
		if category == "" {
			category = domain.CategoryOther
		}
		item = domain.ScheduleItem{
			ID:       s.idGen.New(),
			Time:     strings.TrimSpace(input.Time),
			Title:    strings.TrimSpace(input.Title),
			Category: category,
			Notes:    input.Notes,
		}
		if err := item.Validate(); err != nil {
			return false, invalid(err)
		}
		w.Days[idx].Items = append(w.Days[idx].Items, item)
		w.Days[idx].SortItems()
		return true, nil
	})
	return item, found, err
}

func (s *ItineraryService) UpdateItem(ctx context.Context, buf domain.Buffer, weekendID, dayID, itemID string, patch dto.ItemPatch) (domain.ScheduleItem, bool, error) {
	var item domain.ScheduleItem
	found, err := s.mutate(ctx, buf, weekendID, func(w *domain.RaceWeekend) (bool, error) {
		dayIdx := w.DayIndex(dayID)
		if dayIdx < 0 {
			return false, nil
		}
		day := &w.Days[dayIdx]
		itemIdx := day.ItemIndex(itemID)
		if itemIdx < 0 {
			return false, nil
		}
		updated := day.Items[itemIdx]
		applyString(&updated.Time, patch.Time, true)
		applyString(&updated.Title, patch.Title, true)
		applyString(&updated.Notes, patch.Notes, false)
		if patch.Category != nil {
			updated.Category = domain.ItemCategory(strings.TrimSpace(*patch.Category))
		}
		if patch.Completed != nil {
			updated.Completed = *patch.Completed
		}
		if err := updated.Validate(); err != nil {
			return false, invalid(err)
		}
		day.Items[itemIdx] = updated
		day.SortItems()
		item = updated
		return true, nil
	})
	return item, found, err
}

func (s *ItineraryService) RemoveItem(ctx context.Context, buf domain.Buffer, weekendID, dayID, itemID string) (bool, error) {
	return s.mutate(ctx, buf, weekendID, func(w *domain.RaceWeekend) (bool, error) {
		dayIdx := w.DayIndex(dayID)
		if dayIdx < 0 {
			return false, nil
		}
		day := &w.Days[dayIdx]
		itemIdx := day.ItemIndex(itemID)
		if itemIdx < 0 {
			return false, nil
		}
		day.Items = append(day.Items[:itemIdx], day.Items[itemIdx+1:]...)
		return true, nil
	})
}

// mutate applies fn to one weekend and persists the collection when fn reports
// a change. A missing weekend is reported as not found, not as an error.
func (s *ItineraryService) mutate(ctx context.Context, buf domain.Buffer, weekendID string, fn func(*domain.RaceWeekend) (bool, error)) (bool, error) {
	weekends, err := s.List(ctx, buf)
	if err != nil {
		return false, err
	}
	for i := range weekends {
		if weekends[i].ID != weekendID {
			continue
		}
		changed, err := fn(&weekends[i])
		if err != nil || !changed {
			return false, err
		}
		weekends[i].UpdatedAt = s.clock.Now()
		if err := s.store.SaveWeekends(ctx, buf, weekends); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}
