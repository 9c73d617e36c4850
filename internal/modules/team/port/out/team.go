package out

import (
	"context"

	sessiondto "pitwall/internal/modules/session/dto"
	"pitwall/internal/modules/team/domain"
)

// TeamStore persists every team as a single list.
type TeamStore interface {
	Load(ctx context.Context) []domain.Team
	Save(ctx context.Context, teams []domain.Team) error
}

type TeamVault interface {
	Get(ctx context.Context, teamID, sessionID string) (sessiondto.AppData, bool)
	Set(ctx context.Context, teamID, sessionID string, data sessiondto.AppData) error
	Remove(ctx context.Context, teamID, sessionID string) error
}

// InviteClient talks to the invitation service and returns the profile of
// the person who accepted.
type InviteClient interface {
	Invite(ctx context.Context, teamID, email string, role domain.Role) (domain.TeamMember, error)
}
