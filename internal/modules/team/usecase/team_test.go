package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	recordsout "pitwall/internal/modules/records/adapter/out"
	recordsdto "pitwall/internal/modules/records/dto"
	recordsin "pitwall/internal/modules/records/port/in"
	recordsservice "pitwall/internal/modules/records/service"
	recordsusecase "pitwall/internal/modules/records/usecase"
	sessionout "pitwall/internal/modules/session/adapter/out"
	sessiondto "pitwall/internal/modules/session/dto"
	sessionin "pitwall/internal/modules/session/port/in"
	sessionservice "pitwall/internal/modules/session/service"
	sessionusecase "pitwall/internal/modules/session/usecase"
	teamout "pitwall/internal/modules/team/adapter/out"
	"pitwall/internal/modules/team/domain"
	teamdto "pitwall/internal/modules/team/dto"
	teamin "pitwall/internal/modules/team/port/in"
	"pitwall/internal/modules/team/service"
	"pitwall/internal/modules/team/usecase"
	apperrors "pitwall/internal/platform/errors"
	"pitwall/internal/platform/keys"
	"pitwall/internal/platform/kv"
	"pitwall/internal/platform/tx"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.now = f.now.Add(time.Second)
	return f.now
}

type seqID struct{ n int }

func (s *seqID) New() string {
	s.n++
	return fmt.Sprintf("id-%03d", s.n)
}

var me = domain.Identity{ID: "user-local", Name: "You"}

type harness struct {
	teams    teamin.Usecase
	sessions sessionin.Usecase
	records  recordsin.Usecase
	store    kv.Store
}

func newHarness(t *testing.T) harness {
	t.Helper()
	store, err := kv.NewMemStore()
	if err != nil {
		t.Fatalf("new mem store: %v", err)
	}
	clk := &fakeClock{now: time.Date(2026, 5, 20, 9, 0, 0, 0, time.UTC)}
	ids := &seqID{}
	buffers := recordsout.NewKVBufferStore(store, nil)
	records := recordsusecase.NewInteractor(recordsusecase.Services{
		Notes:       recordsservice.NewNoteService(clk, ids, buffers),
		Setups:      recordsservice.NewSetupService(clk, ids, buffers),
		Itinerary:   recordsservice.NewItineraryService(clk, ids, buffers),
		Preferences: recordsservice.NewPreferenceService(buffers, recordsout.NewKVThemeStore(store, nil)),
		Buffers:     recordsservice.NewBufferService(buffers),
	}, recordsout.NewStaticTrackCatalog())
	txm := tx.NewSerial()
	vault := sessionout.NewKVVault(store, nil)
	dir := sessionservice.NewDirectoryService(clk, ids,
		sessionout.NewKVDirectoryStore(store, nil),
		sessionout.NewKVActivePointer(store, nil),
		vault,
		sessionout.NewKVDemoVisibility(store, nil),
	)
	sessions := sessionusecase.NewInteractor(dir, vault, sessionout.NewJSONSnapshotFile(), records, clk, txm, nil)
	teamSvc := service.NewTeamService(clk, ids, teamout.NewKVTeamStore(store, nil), teamout.NewKVTeamVault(store, nil), me)
	teams := usecase.NewInteractor(teamSvc, teamout.NewMockInviteClient(clk, ids, 0), sessions, records, txm, nil)
	return harness{teams: teams, sessions: sessions, records: records, store: store}
}

var working = recordsdto.WorkingBuffer

func titles(t *testing.T, h harness) []string {
	t.Helper()
	notes, err := h.records.ListNotes(context.Background(), working)
	if err != nil {
		t.Fatalf("list notes: %v", err)
	}
	out := make([]string, 0, len(notes))
	for _, n := range notes {
		out = append(out, n.Title)
	}
	return out
}

func TestDemoTeamIsSelfHealingAndImmutable(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	h := newHarness(t)

	teams, err := h.teams.ListTeams(ctx)
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if len(teams) != 1 || teams[0].ID != teamdto.DemoTeamID || !teams[0].IsDemo {
		t.Fatalf("expected demo team, got %+v", teams)
	}
	if ok, err := h.teams.DeleteTeam(ctx, teamdto.DemoTeamID); ok || !errors.Is(err, apperrors.ErrDemoProtected) {
		t.Fatalf("demo team delete: ok=%v err=%v", ok, err)
	}
	if _, err := h.teams.InviteMember(ctx, teamdto.DemoTeamID, teamdto.InviteInput{Email: "new@x.io"}); !errors.Is(err, apperrors.ErrDemoProtected) {
		t.Fatalf("demo invite should be rejected, got %v", err)
	}
	if _, err := h.teams.CreateTeamSession(ctx, teamdto.DemoTeamID, teamdto.TeamSessionInput{Name: "x"}); !errors.Is(err, apperrors.ErrDemoProtected) {
		t.Fatalf("demo session create should be rejected, got %v", err)
	}

	if err := h.store.Remove(ctx, keys.Teams); err != nil {
		t.Fatalf("drop teams: %v", err)
	}
	teams, err = h.teams.ListTeams(ctx)
	if err != nil || len(teams) != 1 || teams[0].ID != teamdto.DemoTeamID {
		t.Fatalf("demo team not restored: %+v %v", teams, err)
	}
}

func TestTeamMembershipRules(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	h := newHarness(t)

	team, err := h.teams.CreateTeam(ctx, teamdto.CreateTeamInput{Name: "Apex Racing"})
	if err != nil {
		t.Fatalf("create team: %v", err)
	}
	if len(team.Members) != 1 || team.Members[0].ID != me.ID || team.Members[0].Role != domain.RoleAdmin {
		t.Fatalf("creator should be sole admin: %+v", team.Members)
	}

	chief, err := h.teams.InviteMember(ctx, team.ID, teamdto.InviteInput{Email: "chief@apex.io", Role: "crew_chief"})
	if err != nil {
		t.Fatalf("invite chief: %v", err)
	}
	if _, err := h.teams.InviteMember(ctx, team.ID, teamdto.InviteInput{Email: "CHIEF@apex.io"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("duplicate email should be rejected, got %v", err)
	}
	if _, err := h.teams.InviteMember(ctx, team.ID, teamdto.InviteInput{Email: "not-an-email"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("bad email should be rejected, got %v", err)
	}
	if _, err := h.teams.InviteMember(ctx, team.ID, teamdto.InviteInput{Email: "x@apex.io", Role: "owner"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("bad role should be rejected, got %v", err)
	}

	if ok, err := h.teams.RemoveMember(ctx, team.ID, me.ID); ok || !errors.Is(err, apperrors.ErrLastAdmin) {
		t.Fatalf("removing last admin: ok=%v err=%v", ok, err)
	}
	if ok, err := h.teams.UpdateMemberRole(ctx, team.ID, me.ID, "driver"); ok || !errors.Is(err, apperrors.ErrLastAdmin) {
		t.Fatalf("demoting last admin: ok=%v err=%v", ok, err)
	}
	if ok, err := h.teams.UpdateMemberRole(ctx, team.ID, chief.ID, "admin"); !ok || err != nil {
		t.Fatalf("promote chief: ok=%v err=%v", ok, err)
	}
	if ok, err := h.teams.UpdateMemberRole(ctx, team.ID, me.ID, "driver"); !ok || err != nil {
		t.Fatalf("demote self with another admin present: ok=%v err=%v", ok, err)
	}

	access, err := h.teams.Access(ctx, team.ID)
	if err != nil || access.Role != domain.RoleDriver || access.Capabilities.ManageSessions {
		t.Fatalf("driver access wrong: %+v %v", access, err)
	}
	if _, err := h.teams.CreateTeamSession(ctx, team.ID, teamdto.TeamSessionInput{Name: "Quali"}); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("driver must not create sessions, got %v", err)
	}
	if ok, err := h.teams.RemoveMember(ctx, team.ID, chief.ID); ok || !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("driver must not remove members: ok=%v err=%v", ok, err)
	}
	if ok, err := h.teams.DeleteTeam(ctx, team.ID); ok || !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("driver must not delete team: ok=%v err=%v", ok, err)
	}
	if ok, err := h.teams.RemoveMember(ctx, "missing-team", chief.ID); ok || err != nil {
		t.Fatalf("missing team is a not-found: ok=%v err=%v", ok, err)
	}
}

func TestCrewChiefCannotGrantAdmin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	h := newHarness(t)

	team, err := h.teams.CreateTeam(ctx, teamdto.CreateTeamInput{Name: "Apex Racing"})
	if err != nil {
		t.Fatalf("create team: %v", err)
	}
	chief, err := h.teams.InviteMember(ctx, team.ID, teamdto.InviteInput{Email: "chief@apex.io", Role: "admin"})
	if err != nil {
		t.Fatalf("invite second admin: %v", err)
	}
	driver, err := h.teams.InviteMember(ctx, team.ID, teamdto.InviteInput{Email: "driver@apex.io", Role: "driver"})
	if err != nil {
		t.Fatalf("invite driver: %v", err)
	}
	if ok, err := h.teams.UpdateMemberRole(ctx, team.ID, me.ID, "crew_chief"); !ok || err != nil {
		t.Fatalf("step down to crew chief: ok=%v err=%v", ok, err)
	}
	if ok, err := h.teams.UpdateMemberRole(ctx, team.ID, driver.ID, "admin"); ok || !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("crew chief granting admin: ok=%v err=%v", ok, err)
	}
	if ok, err := h.teams.UpdateMemberRole(ctx, team.ID, chief.ID, "member"); ok || !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("crew chief revoking admin: ok=%v err=%v", ok, err)
	}
	if ok, err := h.teams.UpdateMemberRole(ctx, team.ID, driver.ID, "member"); !ok || err != nil {
		t.Fatalf("crew chief editing driver: ok=%v err=%v", ok, err)
	}
}

func TestSwitchToTeamSessionIsolatesData(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	h := newHarness(t)

	personal, err := h.sessions.CreateSession(ctx, sessiondto.CreateInput{Name: "Personal"})
	if err != nil {
		t.Fatalf("create personal: %v", err)
	}
	if ok, err := h.sessions.LoadSession(ctx, personal.ID); err != nil || !ok {
		t.Fatalf("load personal: ok=%v err=%v", ok, err)
	}
	if _, err := h.records.AddNote(ctx, working, recordsdto.NoteInput{TrackID: "monza", Title: "personal note"}); err != nil {
		t.Fatalf("add personal note: %v", err)
	}

	team, err := h.teams.CreateTeam(ctx, teamdto.CreateTeamInput{Name: "Apex Racing"})
	if err != nil {
		t.Fatalf("create team: %v", err)
	}
	race, err := h.teams.CreateTeamSession(ctx, team.ID, teamdto.TeamSessionInput{Name: "Race 1", TrackID: "monza"})
	if err != nil {
		t.Fatalf("create team session: %v", err)
	}
	if race.CreatedBy != me.ID {
		t.Fatalf("unexpected creator %q", race.CreatedBy)
	}

	if ok, err := h.teams.SwitchToTeamSession(ctx, team.ID, race.ID); err != nil || !ok {
		t.Fatalf("switch to team session: ok=%v err=%v", ok, err)
	}
	if got := titles(t, h); len(got) != 0 {
		t.Fatalf("team session should start empty, got %v", got)
	}
	active, ok, _ := h.sessions.ActiveSession(ctx)
	if !ok || active.TeamID != team.ID || active.TeamSessionID != race.ID || active.SessionID != team.ID+"_"+race.ID {
		t.Fatalf("unexpected active marker: %+v", active)
	}
	if _, err := h.records.AddNote(ctx, working, recordsdto.NoteInput{TrackID: "monza", Title: "team note"}); err != nil {
		t.Fatalf("add team note: %v", err)
	}

	if ok, err := h.sessions.LoadSession(ctx, personal.ID); err != nil || !ok {
		t.Fatalf("back to personal: ok=%v err=%v", ok, err)
	}
	if got := titles(t, h); len(got) != 1 || got[0] != "personal note" {
		t.Fatalf("personal data not restored: %v", got)
	}
	if ok, err := h.teams.SwitchToTeamSession(ctx, team.ID, race.ID); err != nil || !ok {
		t.Fatalf("back to team: ok=%v err=%v", ok, err)
	}
	if got := titles(t, h); len(got) != 1 || got[0] != "team note" {
		t.Fatalf("team data not restored from its slot: %v", got)
	}

	plain, err := h.store.Keys(ctx, keys.SessionData)
	if err != nil {
		t.Fatalf("scan plain vault: %v", err)
	}
	for _, key := range plain {
		if key == keys.SessionData+team.ID+"_"+race.ID {
			t.Fatalf("team session leaked into plain vault")
		}
	}

	if ok, err := h.teams.DeleteTeamSession(ctx, team.ID, race.ID); err != nil || !ok {
		t.Fatalf("delete team session: ok=%v err=%v", ok, err)
	}
	if _, found, _ := h.sessions.GetActiveSessionID(ctx); found {
		t.Fatalf("deleting the active team session should clear the pointer")
	}
	if ok, err := h.teams.SwitchToTeamSession(ctx, team.ID, race.ID); err != nil || ok {
		t.Fatalf("deleted team session must not load: ok=%v err=%v", ok, err)
	}
}

func TestDemoTeamSessionsLoadSeedData(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	h := newHarness(t)

	ok, err := h.teams.SwitchToTeamSession(ctx, teamdto.DemoTeamID, "demo-team-session-1")
	if err != nil || !ok {
		t.Fatalf("switch to demo team session: ok=%v err=%v", ok, err)
	}
	if got := titles(t, h); len(got) != 1 || got[0] != "Qualifying Prep briefing" {
		t.Fatalf("unexpected demo team notes: %v", got)
	}
	if ok, err := h.teams.SwitchToTeamSession(ctx, teamdto.DemoTeamID, "no-such-session"); err != nil || ok {
		t.Fatalf("unknown team session: ok=%v err=%v", ok, err)
	}
}

func TestSaveTeamSessionWritesSlot(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	h := newHarness(t)

	team, err := h.teams.CreateTeam(ctx, teamdto.CreateTeamInput{Name: "Apex Racing"})
	if err != nil {
		t.Fatalf("create team: %v", err)
	}
	race, err := h.teams.CreateTeamSession(ctx, team.ID, teamdto.TeamSessionInput{Name: "Race 1"})
	if err != nil {
		t.Fatalf("create team session: %v", err)
	}
	if _, err := h.records.AddFavorite(ctx, working, "suzuka"); err != nil {
		t.Fatalf("add favorite: %v", err)
	}
	if err := h.teams.SaveTeamSession(ctx, team.ID, race.ID); err != nil {
		t.Fatalf("save team session: %v", err)
	}
	data, ok := teamout.NewKVTeamVault(h.store, nil).Get(ctx, team.ID, race.ID)
	favs, _ := data.Favorites.Get()
	if !ok || len(favs) != 1 || favs[0] != "suzuka" || data.SessionID != race.ID {
		t.Fatalf("team slot not written: %+v", data)
	}
	if err := h.teams.SaveTeamSession(ctx, team.ID, "missing"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("missing team session should be not found, got %v", err)
	}

	if ok, err := h.teams.DeleteTeam(ctx, team.ID); err != nil || !ok {
		t.Fatalf("delete team: ok=%v err=%v", ok, err)
	}
	if _, found := teamout.NewKVTeamVault(h.store, nil).Get(ctx, team.ID, race.ID); found {
		t.Fatalf("team slots should be removed with the team")
	}
}
