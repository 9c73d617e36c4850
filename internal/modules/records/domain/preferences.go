package domain

import (
	"fmt"
	"slices"
	"strings"
)

const MaxFavorites = 5

type TemperatureUnit string
type WindSpeedUnit string
type DistanceUnit string

const (
	Celsius    TemperatureUnit = "celsius"
	Fahrenheit TemperatureUnit = "fahrenheit"

	KilometersPerHour WindSpeedUnit = "kmh"
	MilesPerHour      WindSpeedUnit = "mph"
	MetersPerSecond   WindSpeedUnit = "ms"

	Kilometers DistanceUnit = "km"
	Miles      DistanceUnit = "mi"
)

type UserSettings struct {
	TemperatureUnit TemperatureUnit `json:"temperatureUnit"`
	WindSpeedUnit   WindSpeedUnit   `json:"windSpeedUnit"`
	DistanceUnit    DistanceUnit    `json:"distanceUnit"`
}

func DefaultSettings() UserSettings {
	return UserSettings{
		TemperatureUnit: Celsius,
		WindSpeedUnit:   KilometersPerHour,
		DistanceUnit:    Kilometers,
	}
}

func (s UserSettings) Validate() error {
	switch s.TemperatureUnit {
	case Celsius, Fahrenheit:
	default:
		return fmt.Errorf("unsupported temperature unit %q", string(s.TemperatureUnit))
	}
	switch s.WindSpeedUnit {
	case KilometersPerHour, MilesPerHour, MetersPerSecond:
	default:
		return fmt.Errorf("unsupported wind speed unit %q", string(s.WindSpeedUnit))
	}
	switch s.DistanceUnit {
	case Kilometers, Miles:
	default:
		return fmt.Errorf("unsupported distance unit %q", string(s.DistanceUnit))
	}
	return nil
}

// AddFavorite returns the list with trackID appended. Duplicates and additions
// beyond MaxFavorites leave the list unchanged and report false.
func AddFavorite(favorites []string, trackID string) ([]string, bool) {
	trackID = strings.TrimSpace(trackID)
	if trackID == "" || slices.Contains(favorites, trackID) || len(favorites) >= MaxFavorites {
		return favorites, false
	}
	out := make([]string, 0, len(favorites)+1)
	out = append(out, favorites...)
	return append(out, trackID), true
}

func RemoveFavorite(favorites []string, trackID string) ([]string, bool) {
	idx := slices.Index(favorites, trackID)
	if idx < 0 {
		return favorites, false
	}
	return slices.Delete(slices.Clone(favorites), idx, idx+1), true
}

type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

func (t Theme) Validate() error {
	switch t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return nil
	default:
		return fmt.Errorf("unsupported theme %q", string(t))
	}
}

type Track struct {
	ID      string
	Name    string
	Country string
}

const UnknownLabel = "Unknown"
