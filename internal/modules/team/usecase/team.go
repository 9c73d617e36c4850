package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	hclog "github.com/hashicorp/go-hclog"

	recordsdto "pitwall/internal/modules/records/dto"
	recordsin "pitwall/internal/modules/records/port/in"
	sessionin "pitwall/internal/modules/session/port/in"
	"pitwall/internal/modules/team/domain"
	teamdto "pitwall/internal/modules/team/dto"
	teamin "pitwall/internal/modules/team/port/in"
	teamout "pitwall/internal/modules/team/port/out"
	"pitwall/internal/modules/team/service"
	apperrors "pitwall/internal/platform/errors"
	"pitwall/internal/platform/keys"
	"pitwall/internal/platform/logging"
	"pitwall/internal/platform/tx"
)

// Interactor evaluates the current user's capabilities once per call and
// rejects before touching storage. It shares tx with the session interactor so
// team and personal switches are serialized together.
type Interactor struct {
	teams    *service.TeamService
	invites  teamout.InviteClient
	sessions sessionin.Usecase
	records  recordsin.Usecase
	tx       tx.Manager
	log      hclog.Logger
}

func NewInteractor(
	teams *service.TeamService,
	invites teamout.InviteClient,
	sessions sessionin.Usecase,
	records recordsin.Usecase,
	txm tx.Manager,
	log hclog.Logger,
) teamin.Usecase {
	return &Interactor{
		teams:    teams,
		invites:  invites,
		sessions: sessions,
		records:  records,
		tx:       tx.OrNoop(txm),
		log:      logging.OrDiscard(log).Named("team"),
	}
}

func (i *Interactor) ListTeams(ctx context.Context) ([]teamdto.Team, error) {
	return i.teams.List(ctx)
}

func (i *Interactor) GetTeam(ctx context.Context, teamID string) (teamdto.Team, bool, error) {
	return i.teams.Get(ctx, teamID)
}

func (i *Interactor) Access(ctx context.Context, teamID string) (teamdto.Access, error) {
	team, ok, err := i.teams.Get(ctx, teamID)
	if err != nil {
		return teamdto.Access{}, err
	}
	if !ok {
		return teamdto.Access{}, fmt.Errorf("team %s: %w", teamID, apperrors.ErrNotFound)
	}
	return access(team, i.teams.Me().ID), nil
}

func (i *Interactor) CreateTeam(ctx context.Context, input teamdto.CreateTeamInput) (teamdto.Team, error) {
	team, err := i.teams.Create(ctx, input)
	if err != nil {
		return teamdto.Team{}, err
	}
	i.log.Info("team created", "team_id", team.ID, "name", team.Name)
	return team, nil
}

func (i *Interactor) DeleteTeam(ctx context.Context, teamID string) (bool, error) {
	return tx.Do(ctx, i.tx, func(ctx context.Context) (bool, error) {
		return i.deleteTeam(ctx, teamID)
	})
}

func (i *Interactor) deleteTeam(ctx context.Context, teamID string) (bool, error) {
	if teamID == domain.DemoTeamID {
		return false, apperrors.ErrDemoProtected
	}
	team, ok, err := i.teams.Get(ctx, teamID)
	if err != nil || !ok {
		return false, err
	}
	if !access(team, i.teams.Me().ID).Capabilities.ManageMembers {
		return false, apperrors.ErrPermissionDenied
	}
	deleted, err := i.teams.Delete(ctx, teamID)
	if err != nil || !deleted {
		return deleted, err
	}
	if err := i.dropActiveMarker(ctx, teamID, ""); err != nil {
		return false, err
	}
	i.log.Info("team deleted", "team_id", teamID)
	return true, nil
}

func (i *Interactor) InviteMember(ctx context.Context, teamID string, input teamdto.InviteInput) (teamdto.TeamMember, error) {
	email := strings.TrimSpace(input.Email)
	if !strings.Contains(email, "@") {
		return teamdto.TeamMember{}, fmt.Errorf("%w: a valid email is required", apperrors.ErrInvalidInput)
	}
	role := domain.RoleMember
	if input.Role != "" {
		parsed, err := domain.ParseRole(input.Role)
		if err != nil {
			return teamdto.TeamMember{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
		}
		role = parsed
	}
	team, err := i.mutableTeam(ctx, teamID)
	if err != nil {
		return teamdto.TeamMember{}, err
	}
	caps := access(team, i.teams.Me().ID).Capabilities
	if !caps.ManageMembers || (role == domain.RoleAdmin && !caps.GrantAdmin) {
		return teamdto.TeamMember{}, apperrors.ErrPermissionDenied
	}
	if team.HasEmail(email) {
		return teamdto.TeamMember{}, fmt.Errorf("%w: %s is already a member", apperrors.ErrInvalidInput, email)
	}
	member, err := i.invites.Invite(ctx, teamID, email, role)
	if err != nil {
		return teamdto.TeamMember{}, fmt.Errorf("invite %s: %w", email, err)
	}
	if err := i.teams.AddMember(ctx, teamID, member); err != nil {
		return teamdto.TeamMember{}, err
	}
	i.log.Info("member invited", "team_id", teamID, "member_id", member.ID, "role", string(member.Role))
	return member, nil
}

func (i *Interactor) RemoveMember(ctx context.Context, teamID, memberID string) (bool, error) {
	team, err := i.mutableTeam(ctx, teamID)
	if err != nil {
		return false, ignoreNotFound(err)
	}
	if !access(team, i.teams.Me().ID).Capabilities.ManageMembers {
		return false, apperrors.ErrPermissionDenied
	}
	return i.teams.RemoveMember(ctx, teamID, memberID)
}

func (i *Interactor) UpdateMemberRole(ctx context.Context, teamID, memberID, role string) (bool, error) {
	next, err := domain.ParseRole(role)
	if err != nil {
		return false, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	team, err := i.mutableTeam(ctx, teamID)
	if err != nil {
		return false, ignoreNotFound(err)
	}
	caps := access(team, i.teams.Me().ID).Capabilities
	if !caps.EditMemberRoles {
		return false, apperrors.ErrPermissionDenied
	}
	if target, ok := team.Member(memberID); ok && !caps.GrantAdmin && (target.Role == domain.RoleAdmin || next == domain.RoleAdmin) {
		return false, apperrors.ErrPermissionDenied
	}
	return i.teams.SetMemberRole(ctx, teamID, memberID, next)
}

func (i *Interactor) CreateTeamSession(ctx context.Context, teamID string, input teamdto.TeamSessionInput) (teamdto.TeamSession, error) {
	team, err := i.mutableTeam(ctx, teamID)
	if err != nil {
		return teamdto.TeamSession{}, err
	}
	if !access(team, i.teams.Me().ID).Capabilities.ManageSessions {
		return teamdto.TeamSession{}, apperrors.ErrPermissionDenied
	}
	return i.teams.AddSession(ctx, teamID, input)
}

func (i *Interactor) DeleteTeamSession(ctx context.Context, teamID, sessionID string) (bool, error) {
	return tx.Do(ctx, i.tx, func(ctx context.Context) (bool, error) {
		return i.deleteTeamSession(ctx, teamID, sessionID)
	})
}

func (i *Interactor) deleteTeamSession(ctx context.Context, teamID, sessionID string) (bool, error) {
	team, err := i.mutableTeam(ctx, teamID)
	if err != nil {
		return false, ignoreNotFound(err)
	}
	if !access(team, i.teams.Me().ID).Capabilities.ManageSessions {
		return false, apperrors.ErrPermissionDenied
	}
	deleted, err := i.teams.RemoveSession(ctx, teamID, sessionID)
	if err != nil || !deleted {
		return deleted, err
	}
	if err := i.dropActiveMarker(ctx, teamID, sessionID); err != nil {
		return false, err
	}
	return true, nil
}

// SaveTeamSession writes the working buffer into a team session slot.
func (i *Interactor) SaveTeamSession(ctx context.Context, teamID, sessionID string) error {
	return i.tx.Within(ctx, func(ctx context.Context) error {
		return i.saveTeamSession(ctx, teamID, sessionID)
	})
}

func (i *Interactor) saveTeamSession(ctx context.Context, teamID, sessionID string) error {
	team, err := i.memberTeam(ctx, teamID)
	if err != nil {
		return err
	}
	if team.SessionIndex(sessionID) < 0 {
		return fmt.Errorf("team session %s: %w", sessionID, apperrors.ErrNotFound)
	}
	snap, err := i.records.Snapshot(ctx, recordsdto.WorkingBuffer)
	if err != nil {
		return err
	}
	return i.teams.WriteSlot(ctx, teamID, sessionID, snap)
}

// SwitchToTeamSession loads a team session the same way a plain session is
// loaded, then leaves the team marker in the active pointer.
func (i *Interactor) SwitchToTeamSession(ctx context.Context, teamID, sessionID string) (bool, error) {
	return tx.Do(ctx, i.tx, func(ctx context.Context) (bool, error) {
		return i.switchToTeamSession(ctx, teamID, sessionID)
	})
}

func (i *Interactor) switchToTeamSession(ctx context.Context, teamID, sessionID string) (bool, error) {
	team, err := i.memberTeam(ctx, teamID)
	if err != nil {
		return false, ignoreNotFound(err)
	}
	if team.SessionIndex(sessionID) < 0 {
		return false, nil
	}
	if err := i.sessions.FlushActive(ctx, keys.TeamSlotID(teamID, sessionID)); err != nil {
		return false, err
	}
	data, ok := i.teams.Slot(ctx, teamID, sessionID)
	if !ok {
		i.log.Warn("no data for team session", "team_id", teamID, "session_id", sessionID)
		return false, nil
	}
	if err := i.records.Reset(ctx, recordsdto.WorkingBuffer); err != nil {
		return false, err
	}
	if err := i.records.Hydrate(ctx, recordsdto.WorkingBuffer, data.Snapshot); err != nil {
		return false, err
	}
	if err := i.teams.TouchSession(ctx, teamID, sessionID); err != nil {
		return false, err
	}
	if err := i.sessions.MarkTeamSessionActive(ctx, teamID, sessionID); err != nil {
		return false, err
	}
	i.log.Debug("team session loaded", "team_id", teamID, "session_id", sessionID)
	return true, nil
}

func (i *Interactor) memberTeam(ctx context.Context, teamID string) (domain.Team, error) {
	team, ok, err := i.teams.Get(ctx, teamID)
	if err != nil {
		return domain.Team{}, err
	}
	if !ok {
		return domain.Team{}, fmt.Errorf("team %s: %w", teamID, apperrors.ErrNotFound)
	}
	if _, member := team.Member(i.teams.Me().ID); !member {
		return domain.Team{}, apperrors.ErrPermissionDenied
	}
	return team, nil
}

func (i *Interactor) mutableTeam(ctx context.Context, teamID string) (domain.Team, error) {
	team, err := i.memberTeam(ctx, teamID)
	if err != nil {
		return domain.Team{}, err
	}
	if team.IsDemo {
		return domain.Team{}, apperrors.ErrDemoProtected
	}
	return team, nil
}

// dropActiveMarker clears the active pointer when it references a removed
// team, or one removed session of it when sessionID is set.
func (i *Interactor) dropActiveMarker(ctx context.Context, teamID, sessionID string) error {
	active, ok, err := i.sessions.ActiveSession(ctx)
	if err != nil || !ok || active.TeamID != teamID {
		return err
	}
	if sessionID != "" && active.TeamSessionID != sessionID {
		return nil
	}
	return i.sessions.ClearActiveSessionID(ctx)
}

func access(team domain.Team, userID string) teamdto.Access {
	member, ok := team.Member(userID)
	if !ok {
		return teamdto.Access{}
	}
	return teamdto.Access{Member: true, Role: member.Role, Capabilities: domain.Permissions(member.Role)}
}

func ignoreNotFound(err error) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil
	}
	return err
}
