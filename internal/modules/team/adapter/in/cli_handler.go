package in

import (
	"context"

	teamdto "pitwall/internal/modules/team/dto"
	teamin "pitwall/internal/modules/team/port/in"
)

type CLIHandler struct {
	usecase teamin.Usecase
}

func NewCLIHandler(usecase teamin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context) ([]teamdto.Team, error) {
	return h.usecase.ListTeams(ctx)
}

func (h CLIHandler) Show(ctx context.Context, teamID string) (teamdto.Team, teamdto.Access, error) {
	access, err := h.usecase.Access(ctx, teamID)
	if err != nil {
		return teamdto.Team{}, teamdto.Access{}, err
	}
	team, _, err := h.usecase.GetTeam(ctx, teamID)
	return team, access, err
}

func (h CLIHandler) Create(ctx context.Context, name, description string) (teamdto.Team, error) {
	return h.usecase.CreateTeam(ctx, teamdto.CreateTeamInput{Name: name, Description: description})
}

func (h CLIHandler) Delete(ctx context.Context, teamID string) (bool, error) {
	return h.usecase.DeleteTeam(ctx, teamID)
}

func (h CLIHandler) Invite(ctx context.Context, teamID, email, role string) (teamdto.TeamMember, error) {
	return h.usecase.InviteMember(ctx, teamID, teamdto.InviteInput{Email: email, Role: role})
}

func (h CLIHandler) RemoveMember(ctx context.Context, teamID, memberID string) (bool, error) {
	return h.usecase.RemoveMember(ctx, teamID, memberID)
}

func (h CLIHandler) SetRole(ctx context.Context, teamID, memberID, role string) (bool, error) {
	return h.usecase.UpdateMemberRole(ctx, teamID, memberID, role)
}

func (h CLIHandler) CreateSession(ctx context.Context, teamID string, input teamdto.TeamSessionInput) (teamdto.TeamSession, error) {
	return h.usecase.CreateTeamSession(ctx, teamID, input)
}

func (h CLIHandler) DeleteSession(ctx context.Context, teamID, sessionID string) (bool, error) {
	return h.usecase.DeleteTeamSession(ctx, teamID, sessionID)
}

func (h CLIHandler) SaveSession(ctx context.Context, teamID, sessionID string) error {
	return h.usecase.SaveTeamSession(ctx, teamID, sessionID)
}

func (h CLIHandler) Switch(ctx context.Context, teamID, sessionID string) (bool, error) {
	return h.usecase.SwitchToTeamSession(ctx, teamID, sessionID)
}
