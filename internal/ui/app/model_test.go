package app

import (
	"context"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	sessiondto "pitwall/internal/modules/session/dto"
	apperrors "pitwall/internal/platform/errors"
	"pitwall/internal/ui/components"
	sessionsview "pitwall/internal/ui/views/sessions"
)

// Embedded interfaces satisfy the ports; calling anything not overridden
// panics, which flags an unexpected call.
type fakeSessions struct {
	sessionPort
	created  []string
	saved    int
	exported string
}

func (f *fakeSessions) CreateAndLoad(_ context.Context, name, _, _ string) (sessiondto.SessionMetadata, bool, error) {
	f.created = append(f.created, name)
	return sessiondto.SessionMetadata{ID: "s1", Name: name}, true, nil
}

func (f *fakeSessions) Save(context.Context) error {
	f.saved++
	return nil
}

func (f *fakeSessions) Export(_ context.Context, path string) (string, sessiondto.AppData, error) {
	if path == "" {
		path = "pitwall-monaco-gp-20260524-120000.json"
	}
	f.exported = path
	return path, sessiondto.AppData{}, nil
}

func (f *fakeSessions) SetDemoHidden(context.Context, bool) error {
	return fmt.Errorf("hide: %w", apperrors.ErrDemoProtected)
}

type fakeTeams struct {
	teamPort
	saved []string
}

func (f *fakeTeams) SaveSession(_ context.Context, teamID, sessionID string) error {
	f.saved = append(f.saved, teamID+"/"+sessionID)
	return nil
}

type fakeRecords struct{ recordsPort }

func newTestModel() (Model, *fakeSessions, *fakeTeams) {
	s, tm := &fakeSessions{}, &fakeTeams{}
	return NewModel(s, &fakeRecords{}, tm), s, tm
}

func runPalette(t *testing.T, m Model, line string) (Model, tea.Msg) {
	t.Helper()
	next, cmd := m.Update(components.PaletteSubmitMsg{Input: line})
	if cmd == nil {
		return next.(Model), nil
	}
	return next.(Model), cmd()
}

func TestPaletteCreatesSession(t *testing.T) {
	t.Parallel()
	m, s, _ := newTestModel()
	_, msg := runPalette(t, m, "session:new Monaco GP")
	done, ok := msg.(actionDoneMsg)
	if !ok || done.err != nil || done.status != "created Monaco GP" {
		t.Fatalf("unexpected result: %#v", msg)
	}
	if len(s.created) != 1 || s.created[0] != "Monaco GP" {
		t.Fatalf("created = %v", s.created)
	}
}

func TestPaletteUsageAndUnknown(t *testing.T) {
	t.Parallel()
	m, _, _ := newTestModel()
	next, msg := runPalette(t, m, "session:rename Spa")
	if msg != nil || !strings.HasPrefix(next.status, "usage: session:rename") {
		t.Fatalf("rename without active session: status=%q msg=%#v", next.status, msg)
	}
	next, _ = runPalette(t, m, "pit:stop")
	if next.status != "unknown command: pit:stop" {
		t.Fatalf("status = %q", next.status)
	}
}

func TestPaletteExportWithoutPath(t *testing.T) {
	t.Parallel()
	m, s, _ := newTestModel()
	_, msg := runPalette(t, m, "session:export")
	done := msg.(actionDoneMsg)
	if done.err != nil || !strings.HasSuffix(done.status, s.exported) || s.exported == "" {
		t.Fatalf("status = %q exported = %q", done.status, s.exported)
	}
}

func TestSaveRoutesTeamSessions(t *testing.T) {
	t.Parallel()
	m, s, tm := newTestModel()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	cmd()
	if s.saved != 1 || len(tm.saved) != 0 {
		t.Fatalf("personal save: sessions=%d teams=%v", s.saved, tm.saved)
	}

	next, _ := m.Update(activeLoadedMsg{
		active: sessiondto.ActiveOutput{SessionID: "team:t1:x1", TeamID: "t1", TeamSessionID: "x1"},
		ok:     true,
	})
	_, cmd = next.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	cmd()
	if len(tm.saved) != 1 || tm.saved[0] != "t1/x1" {
		t.Fatalf("team save = %v", tm.saved)
	}
}

func TestActionErrorsAreDescribed(t *testing.T) {
	t.Parallel()
	m, _, _ := newTestModel()
	_, msg := runPalette(t, m, "session:hide-demo")
	next, _ := m.Update(msg)
	if got := next.(Model).status; got != "hide-demo: the demo cannot be changed" {
		t.Fatalf("status = %q", got)
	}
}

func TestEnterOnActiveSessionDoesNotReload(t *testing.T) {
	t.Parallel()
	m, _, _ := newTestModel()
	var next tea.Model = m
	next, _ = next.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	next, _ = next.Update(sessionsview.LoadedMsg{Sessions: []sessiondto.SessionView{
		{SessionMetadata: sessiondto.SessionMetadata{ID: "s1", Name: "Monaco GP"}, Active: true},
	}})
	next, _ = next.Update(activeLoadedMsg{active: sessiondto.ActiveOutput{SessionID: "s1"}, ok: true})

	// fakeSessions has no Load, so a reload command would panic when run.
	next, cmd := next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Fatalf("enter on the active session should not issue a load")
	}
	if got := next.(Model).status; !strings.Contains(got, "already loaded") {
		t.Fatalf("status = %q", got)
	}
}
