package domain

import (
	"fmt"
	"strings"
	"time"

	sessiondto "pitwall/internal/modules/session/dto"
)

type TeamMember struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Role      Role      `json:"role"`
	AvatarURL string    `json:"avatarUrl,omitempty"`
	JoinedAt  time.Time `json:"joinedAt"`
}

type TeamSession struct {
	sessiondto.SessionMetadata
	TrackID   string `json:"trackId,omitempty"`
	CreatedBy string `json:"createdBy"`
}

type Team struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Members     []TeamMember  `json:"members"`
	Sessions    []TeamSession `json:"sessions"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
	IsDemo      bool          `json:"isDemo,omitempty"`
}

// Identity is the person operating this device.
type Identity struct {
	ID   string
	Name string
}

func (t Team) Member(userID string) (TeamMember, bool) {
	if idx := t.MemberIndex(userID); idx >= 0 {
		return t.Members[idx], true
	}
	return TeamMember{}, false
}

func (t Team) MemberIndex(memberID string) int {
	for i, m := range t.Members {
		if m.ID == memberID {
			return i
		}
	}
	return -1
}

func (t Team) HasEmail(email string) bool {
	for _, m := range t.Members {
		if m.Email != "" && strings.EqualFold(m.Email, email) {
			return true
		}
	}
	return false
}

func (t Team) SessionIndex(sessionID string) int {
	for i, s := range t.Sessions {
		if s.ID == sessionID {
			return i
		}
	}
	return -1
}

func (t Team) AdminCount() int {
	n := 0
	for _, m := range t.Members {
		if m.Role == RoleAdmin {
			n++
		}
	}
	return n
}

func (t Team) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("team name is required")
	}
	for _, m := range t.Members {
		if err := m.Role.Validate(); err != nil {
			return fmt.Errorf("member %s: %w", m.ID, err)
		}
	}
	return nil
}

func FindTeam(teams []Team, id string) int {
	for i, t := range teams {
		if t.ID == id {
			return i
		}
	}
	return -1
}
