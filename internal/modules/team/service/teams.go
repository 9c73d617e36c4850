package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	recordsdto "pitwall/internal/modules/records/dto"
	sessiondto "pitwall/internal/modules/session/dto"
	"pitwall/internal/modules/team/domain"
	"pitwall/internal/modules/team/dto"
	teamout "pitwall/internal/modules/team/port/out"
	"pitwall/internal/platform/clock"
	apperrors "pitwall/internal/platform/errors"
	"pitwall/internal/platform/id"
)

// TeamService keeps the team list and its session slots consistent. Callers
// check permissions; this layer only guards the demo team and the last admin.
type TeamService struct {
	clock clock.Clock
	idGen id.Generator
	store teamout.TeamStore
	vault teamout.TeamVault
	me    domain.Identity
}

func NewTeamService(clock clock.Clock, idGen id.Generator, store teamout.TeamStore, vault teamout.TeamVault, me domain.Identity) *TeamService {
	return &TeamService{clock: clock, idGen: idGen, store: store, vault: vault, me: me}
}

func (s *TeamService) Me() domain.Identity {
	return s.me
}

// List restores the demo team when it is missing and seeds any of its
// session slots that do not exist yet.
func (s *TeamService) List(ctx context.Context) ([]domain.Team, error) {
	teams := s.store.Load(ctx)
	if domain.FindTeam(teams, domain.DemoTeamID) >= 0 {
		return teams, nil
	}
	now := s.clock.Now()
	demo := domain.DemoTeam(now, s.me)
	teams = append([]domain.Team{demo}, teams...)
	if err := s.store.Save(ctx, teams); err != nil {
		return nil, fmt.Errorf("restore demo team: %w", err)
	}
	for _, session := range demo.Sessions {
		if _, ok := s.vault.Get(ctx, demo.ID, session.ID); ok {
			continue
		}
		if err := s.vault.Set(ctx, demo.ID, session.ID, domain.DemoTeamSessionData(now, session)); err != nil {
			return nil, fmt.Errorf("seed demo team session %s: %w", session.ID, err)
		}
	}
	return teams, nil
}

func (s *TeamService) Get(ctx context.Context, teamID string) (domain.Team, bool, error) {
	teams, err := s.List(ctx)
	if err != nil {
		return domain.Team{}, false, err
	}
	idx := domain.FindTeam(teams, teamID)
	if idx < 0 {
		return domain.Team{}, false, nil
	}
	return teams[idx], true, nil
}

func (s *TeamService) Create(ctx context.Context, input dto.CreateTeamInput) (domain.Team, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return domain.Team{}, fmt.Errorf("%w: team name is required", apperrors.ErrInvalidInput)
	}
	teams, err := s.List(ctx)
	if err != nil {
		return domain.Team{}, err
	}
	now := s.clock.Now()
	team := domain.Team{
		ID:          s.idGen.New(),
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		Members:     []domain.TeamMember{{ID: s.me.ID, Name: s.me.Name, Role: domain.RoleAdmin, JoinedAt: now}},
		Sessions:    []domain.TeamSession{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	teams = append(teams, team)
	if err := s.store.Save(ctx, teams); err != nil {
		return domain.Team{}, fmt.Errorf("save teams: %w", err)
	}
	return team, nil
}

// Delete removes the team and every one of its session slots.
func (s *TeamService) Delete(ctx context.Context, teamID string) (bool, error) {
	if teamID == domain.DemoTeamID {
		return false, apperrors.ErrDemoProtected
	}
	teams, err := s.List(ctx)
	if err != nil {
		return false, err
	}
	idx := domain.FindTeam(teams, teamID)
	if idx < 0 {
		return false, nil
	}
	removed := teams[idx]
	teams = slices.Delete(teams, idx, idx+1)
	if err := s.store.Save(ctx, teams); err != nil {
		return false, fmt.Errorf("save teams: %w", err)
	}
	for _, session := range removed.Sessions {
		if err := s.vault.Remove(ctx, teamID, session.ID); err != nil {
			return false, fmt.Errorf("remove team session data %s: %w", session.ID, err)
		}
	}
	return true, nil
}

func (s *TeamService) AddMember(ctx context.Context, teamID string, member domain.TeamMember) error {
	found, err := s.mutate(ctx, teamID, func(team *domain.Team) error {
		if team.MemberIndex(member.ID) >= 0 || (member.Email != "" && team.HasEmail(member.Email)) {
			return fmt.Errorf("%w: %s is already a member", apperrors.ErrInvalidInput, member.Email)
		}
		team.Members = append(team.Members, member)
		return nil
	})
	if err == nil && !found {
		return fmt.Errorf("team %s: %w", teamID, apperrors.ErrNotFound)
	}
	return err
}

func (s *TeamService) RemoveMember(ctx context.Context, teamID, memberID string) (bool, error) {
	return s.mutate(ctx, teamID, func(team *domain.Team) error {
		idx := team.MemberIndex(memberID)
		if idx < 0 {
			return errMissing
		}
		if team.Members[idx].Role == domain.RoleAdmin && team.AdminCount() == 1 {
			return apperrors.ErrLastAdmin
		}
		team.Members = slices.Delete(team.Members, idx, idx+1)
		return nil
	})
}

func (s *TeamService) SetMemberRole(ctx context.Context, teamID, memberID string, role domain.Role) (bool, error) {
	if err := role.Validate(); err != nil {
		return false, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	return s.mutate(ctx, teamID, func(team *domain.Team) error {
		idx := team.MemberIndex(memberID)
		if idx < 0 {
			return errMissing
		}
		current := team.Members[idx].Role
		if current == domain.RoleAdmin && role != domain.RoleAdmin && team.AdminCount() == 1 {
			return apperrors.ErrLastAdmin
		}
		team.Members[idx].Role = role
		return nil
	})
}

// AddSession registers a team session and seeds its slot with an empty
// snapshot.
func (s *TeamService) AddSession(ctx context.Context, teamID string, input dto.TeamSessionInput) (domain.TeamSession, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return domain.TeamSession{}, fmt.Errorf("%w: session name is required", apperrors.ErrInvalidInput)
	}
	now := s.clock.Now()
	session := domain.TeamSession{
		SessionMetadata: sessiondto.SessionMetadata{
			ID:             s.idGen.New(),
			Name:           name,
			Description:    strings.TrimSpace(input.Description),
			Emoji:          strings.TrimSpace(input.Emoji),
			CreatedAt:      now,
			LastAccessedAt: now,
		},
		TrackID:   strings.TrimSpace(input.TrackID),
		CreatedBy: s.me.ID,
	}
	found, err := s.mutate(ctx, teamID, func(team *domain.Team) error {
		team.Sessions = append(team.Sessions, session)
		return nil
	})
	if err != nil {
		return domain.TeamSession{}, err
	}
	if !found {
		return domain.TeamSession{}, fmt.Errorf("team %s: %w", teamID, apperrors.ErrNotFound)
	}
	data := sessiondto.AppData{Snapshot: recordsdto.EmptySnapshot(), SessionID: session.ID, ExportedAt: now, Version: sessiondto.SnapshotVersion}
	if err := s.vault.Set(ctx, teamID, session.ID, data); err != nil {
		return domain.TeamSession{}, fmt.Errorf("seed team session %s: %w", session.ID, err)
	}
	return session, nil
}

func (s *TeamService) RemoveSession(ctx context.Context, teamID, sessionID string) (bool, error) {
	found, err := s.mutate(ctx, teamID, func(team *domain.Team) error {
		idx := team.SessionIndex(sessionID)
		if idx < 0 {
			return errMissing
		}
		team.Sessions = slices.Delete(team.Sessions, idx, idx+1)
		return nil
	})
	if err != nil || !found {
		return found, err
	}
	if err := s.vault.Remove(ctx, teamID, sessionID); err != nil {
		return false, fmt.Errorf("remove team session data %s: %w", sessionID, err)
	}
	return true, nil
}

// TouchSession stamps lastAccessedAt. Demo team sessions are left as seeded.
func (s *TeamService) TouchSession(ctx context.Context, teamID, sessionID string) error {
	if teamID == domain.DemoTeamID {
		return nil
	}
	_, err := s.mutate(ctx, teamID, func(team *domain.Team) error {
		idx := team.SessionIndex(sessionID)
		if idx < 0 {
			return errMissing
		}
		team.Sessions[idx].LastAccessedAt = s.clock.Now()
		return nil
	})
	return err
}

func (s *TeamService) Slot(ctx context.Context, teamID, sessionID string) (sessiondto.AppData, bool) {
	return s.vault.Get(ctx, teamID, sessionID)
}

func (s *TeamService) WriteSlot(ctx context.Context, teamID, sessionID string, snap recordsdto.Snapshot) error {
	data := sessiondto.AppData{Snapshot: snap, SessionID: sessionID, ExportedAt: s.clock.Now(), Version: sessiondto.SnapshotVersion}
	if err := s.vault.Set(ctx, teamID, sessionID, data); err != nil {
		return fmt.Errorf("save team session %s: %w", sessionID, err)
	}
	return nil
}

var errMissing = errors.New("missing")

// mutate applies fn to one team and persists the list. It reports false when
// the team, or the entry fn looks for, does not exist.
func (s *TeamService) mutate(ctx context.Context, teamID string, fn func(*domain.Team) error) (bool, error) {
	teams, err := s.List(ctx)
	if err != nil {
		return false, err
	}
	idx := domain.FindTeam(teams, teamID)
	if idx < 0 {
		return false, nil
	}
	team := &teams[idx]
	if team.IsDemo {
		return false, apperrors.ErrDemoProtected
	}
	if err := fn(team); err != nil {
		if errors.Is(err, errMissing) {
			return false, nil
		}
		return false, err
	}
	team.UpdatedAt = s.clock.Now()
	if err := s.store.Save(ctx, teams); err != nil {
		return false, fmt.Errorf("save teams: %w", err)
	}
	return true, nil
}
