package in

import (
	"context"

	"pitwall/internal/modules/team/dto"
)

type Usecase interface {
	ListTeams(ctx context.Context) ([]dto.Team, error)
	GetTeam(ctx context.Context, teamID string) (dto.Team, bool, error)
	Access(ctx context.Context, teamID string) (dto.Access, error)
	CreateTeam(ctx context.Context, input dto.CreateTeamInput) (dto.Team, error)
	DeleteTeam(ctx context.Context, teamID string) (bool, error)

	InviteMember(ctx context.Context, teamID string, input dto.InviteInput) (dto.TeamMember, error)
	RemoveMember(ctx context.Context, teamID, memberID string) (bool, error)
	UpdateMemberRole(ctx context.Context, teamID, memberID, role string) (bool, error)

	CreateTeamSession(ctx context.Context, teamID string, input dto.TeamSessionInput) (dto.TeamSession, error)
	DeleteTeamSession(ctx context.Context, teamID, sessionID string) (bool, error)
	SaveTeamSession(ctx context.Context, teamID, sessionID string) error
	SwitchToTeamSession(ctx context.Context, teamID, sessionID string) (bool, error)
}
