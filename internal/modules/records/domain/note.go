package domain

import (
	"fmt"
	"strings"
	"time"
)

type NoteType string

const (
	NoteTypeGeneral   NoteType = "general"
	NoteTypeCondition NoteType = "condition"
	NoteTypeStrategy  NoteType = "strategy"
	NoteTypeSetup     NoteType = "setup"
	NoteTypeWeather   NoteType = "weather"
)

func (t NoteType) Validate() error {
	switch t {
	case NoteTypeGeneral, NoteTypeCondition, NoteTypeStrategy, NoteTypeSetup, NoteTypeWeather:
		return nil
	default:
		return fmt.Errorf("unsupported note type %q", string(t))
	}
}

type TrackNote struct {
	ID        string    `json:"id"`
	TrackID   string    `json:"trackId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Type      NoteType  `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (n TrackNote) Validate() error {
	if strings.TrimSpace(n.ID) == "" {
		return fmt.Errorf("id is required")
	}
	if strings.TrimSpace(n.Title) == "" {
		return fmt.Errorf("title is required")
	}
	return n.Type.Validate()
}
