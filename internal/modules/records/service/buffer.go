package service

import (
	"context"
	"fmt"

	"pitwall/internal/modules/records/domain"
	"pitwall/internal/modules/records/dto"
	recordsout "pitwall/internal/modules/records/port/out"
	"pitwall/internal/platform/opt"
)

// BufferService moves whole snapshots in and out of a buffer.
type BufferService struct {
	store recordsout.BufferStore
}

func NewBufferService(store recordsout.BufferStore) *BufferService {
	return &BufferService{store: store}
}

// Snapshot always carries the collections and settings; the user is included
// only when one has been stored.
func (s *BufferService) Snapshot(ctx context.Context, buf domain.Buffer) (dto.Snapshot, error) {
	if err := checkBuffer(buf); err != nil {
		return dto.Snapshot{}, err
	}
	settings, ok := s.store.LoadSettings(ctx, buf)
	if !ok {
		settings = domain.DefaultSettings()
	}
	snap := dto.Snapshot{
		Notes:        opt.Of(nonNil(s.store.LoadNotes(ctx, buf))),
		Setups:       opt.Of(nonNil(s.store.LoadSetups(ctx, buf))),
		RaceWeekends: opt.Of(nonNil(s.store.LoadWeekends(ctx, buf))),
		Settings:     opt.Of(settings),
		Favorites:    opt.Of(nonNil(s.store.LoadFavorites(ctx, buf))),
	}
	if user, ok := s.store.LoadUser(ctx, buf); ok {
		snap.User = opt.Of(user)
	}
	return snap, nil
}

func (s *BufferService) Reset(ctx context.Context, buf domain.Buffer) error {
	if err := checkBuffer(buf); err != nil {
		return err
	}
	if err := s.store.Clear(ctx, buf); err != nil {
		return fmt.Errorf("reset %s buffer: %w", buf.Name, err)
	}
	return nil
}

// Hydrate writes each field present in snap. Absent fields are not written,
// leaving whatever the buffer held (empty after a Reset).
func (s *BufferService) Hydrate(ctx context.Context, buf domain.Buffer, snap dto.Snapshot) error {
	if err := checkBuffer(buf); err != nil {
		return err
	}
	if user, ok := snap.User.Get(); ok {
		if err := s.store.SaveUser(ctx, buf, user); err != nil {
			return err
		}
	}
	if notes, ok := snap.Notes.Get(); ok {
		if err := s.store.SaveNotes(ctx, buf, nonNil(notes)); err != nil {
			return err
		}
	}
	if setups, ok := snap.Setups.Get(); ok {
		if err := s.store.SaveSetups(ctx, buf, nonNil(setups)); err != nil {
			return err
		}
	}
	if weekends, ok := snap.RaceWeekends.Get(); ok {
		if err := s.store.SaveWeekends(ctx, buf, nonNil(weekends)); err != nil {
			return err
		}
	}
	if settings, ok := snap.Settings.Get(); ok {
		if err := s.store.SaveSettings(ctx, buf, settings); err != nil {
			return err
		}
	}
	if favorites, ok := snap.Favorites.Get(); ok {
		if len(favorites) > domain.MaxFavorites {
			favorites = favorites[:domain.MaxFavorites]
		}
		if err := s.store.SaveFavorites(ctx, buf, nonNil(favorites)); err != nil {
			return err
		}
	}
	return nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
