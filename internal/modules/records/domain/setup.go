package domain

import (
	"fmt"
	"strings"
	"time"
)

type TirePressures struct {
	FrontLeft  float64 `json:"fl"`
	FrontRight float64 `json:"fr"`
	RearLeft   float64 `json:"rl"`
	RearRight  float64 `json:"rr"`
}

type WingSettings struct {
	Front float64 `json:"front"`
	Rear  float64 `json:"rear"`
}

type TrackSetup struct {
	ID            string         `json:"id"`
	TrackID       string         `json:"trackId"`
	Name          string         `json:"name"`
	CarModel      string         `json:"carModel,omitempty"`
	Conditions    string         `json:"conditions,omitempty"`
	TirePressures *TirePressures `json:"tirePressures,omitempty"`
	Wing          *WingSettings  `json:"wing,omitempty"`
	Suspension    string         `json:"suspension,omitempty"`
	Notes         string         `json:"notes,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

func (s TrackSetup) Validate() error {
	if strings.TrimSpace(s.ID) == "" {
		return fmt.Errorf("id is required")
	}
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if p := s.TirePressures; p != nil {
		for _, v := range []float64{p.FrontLeft, p.FrontRight, p.RearLeft, p.RearRight} {
			if v < 0 {
				return fmt.Errorf("tire pressure must not be negative")
			}
		}
	}
	return nil
}
