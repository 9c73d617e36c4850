package service

import (
	"context"
	"fmt"
	"strings"

	"pitwall/internal/modules/records/domain"
	"pitwall/internal/modules/records/dto"
	recordsout "pitwall/internal/modules/records/port/out"
)

type PreferenceService struct {
	store  recordsout.BufferStore
	themes recordsout.ThemeStore
}

func NewPreferenceService(store recordsout.BufferStore, themes recordsout.ThemeStore) *PreferenceService {
	return &PreferenceService{store: store, themes: themes}
}

// Settings falls back to the metric defaults when the buffer holds none.
func (s *PreferenceService) Settings(ctx context.Context, buf domain.Buffer) (domain.UserSettings, error) {
	if err := checkBuffer(buf); err != nil {
		return domain.UserSettings{}, err
	}
	settings, ok := s.store.LoadSettings(ctx, buf)
	if !ok {
		return domain.DefaultSettings(), nil
	}
	return settings, nil
}

func (s *PreferenceService) UpdateSettings(ctx context.Context, buf domain.Buffer, patch dto.SettingsPatch) (domain.UserSettings, error) {
	settings, err := s.Settings(ctx, buf)
	if err != nil {
		return domain.UserSettings{}, err
	}
	if patch.TemperatureUnit != nil {
		settings.TemperatureUnit = domain.TemperatureUnit(strings.TrimSpace(*patch.TemperatureUnit))
	}
	if patch.WindSpeedUnit != nil {
		settings.WindSpeedUnit = domain.WindSpeedUnit(strings.TrimSpace(*patch.WindSpeedUnit))
	}
	if patch.DistanceUnit != nil {
		settings.DistanceUnit = domain.DistanceUnit(strings.TrimSpace(*patch.DistanceUnit))
	}
	if err := settings.Validate(); err != nil {
		return domain.UserSettings{}, invalid(err)
	}
	if err := s.store.SaveSettings(ctx, buf, settings); err != nil {
		return domain.UserSettings{}, err
	}
	return settings, nil
}

func (s *PreferenceService) Favorites(ctx context.Context, buf domain.Buffer) ([]string, error) {
	if err := checkBuffer(buf); err != nil {
		return nil, err
	}
	return s.store.LoadFavorites(ctx, buf), nil
}

// AddFavorite is a no-op once the list holds domain.MaxFavorites entries.
func (s *PreferenceService) AddFavorite(ctx context.Context, buf domain.Buffer, trackID string) (bool, error) {
	favorites, err := s.Favorites(ctx, buf)
	if err != nil {
		return false, err
	}
	next, added := domain.AddFavorite(favorites, trackID)
	if !added {
		return false, nil
	}
	if err := s.store.SaveFavorites(ctx, buf, next); err != nil {
		return false, err
	}
	return true, nil
}

func (s *PreferenceService) RemoveFavorite(ctx context.Context, buf domain.Buffer, trackID string) (bool, error) {
	favorites, err := s.Favorites(ctx, buf)
	if err != nil {
		return false, err
	}
	next, removed := domain.RemoveFavorite(favorites, trackID)
	if !removed {
		return false, nil
	}
	if err := s.store.SaveFavorites(ctx, buf, next); err != nil {
		return false, err
	}
	return true, nil
}

func (s *PreferenceService) User(ctx context.Context, buf domain.Buffer) (domain.User, bool, error) {
	if err := checkBuffer(buf); err != nil {
		return domain.User{}, false, err
	}
	user, ok := s.store.LoadUser(ctx, buf)
	return user, ok, nil
}

func (s *PreferenceService) SetUser(ctx context.Context, buf domain.Buffer, user domain.User) error {
	if err := checkBuffer(buf); err != nil {
		return err
	}
	user.Name = strings.TrimSpace(user.Name)
	if strings.TrimSpace(user.ID) == "" || user.Name == "" {
		return invalid(fmt.Errorf("user id and name are required"))
	}
	return s.store.SaveUser(ctx, buf, user)
}

func (s *PreferenceService) Theme(ctx context.Context) domain.Theme {
	theme, ok := s.themes.LoadTheme(ctx)
	if !ok || theme.Validate() != nil {
		return domain.ThemeSystem
	}
	return theme
}

func (s *PreferenceService) SetTheme(ctx context.Context, theme domain.Theme) error {
	if err := theme.Validate(); err != nil {
		return invalid(err)
	}
	return s.themes.SaveTheme(ctx, theme)
}
