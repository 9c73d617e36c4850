package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	recordsdto "pitwall/internal/modules/records/dto"
	sessiondto "pitwall/internal/modules/session/dto"
	teamdto "pitwall/internal/modules/team/dto"
	apperrors "pitwall/internal/platform/errors"
	"pitwall/internal/ui/components"
	"pitwall/internal/ui/theme"
	dataview "pitwall/internal/ui/views/data"
	sessionsview "pitwall/internal/ui/views/sessions"
	teamsview "pitwall/internal/ui/views/teams"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface that this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type sessionPort interface {
	List(ctx context.Context) ([]sessiondto.SessionView, error)
	CreateAndLoad(ctx context.Context, name, description, emoji string) (sessiondto.SessionMetadata, bool, error)
	Load(ctx context.Context, id string) (bool, error)
	Save(ctx context.Context) error
	Delete(ctx context.Context, id string) (bool, error)
	Update(ctx context.Context, id string, patch sessiondto.MetadataPatch) (bool, error)
	Active(ctx context.Context) (sessiondto.ActiveOutput, bool, error)
	Export(ctx context.Context, path string) (string, sessiondto.AppData, error)
	Import(ctx context.Context, path string) (sessiondto.SessionMetadata, error)
	SetDemoHidden(ctx context.Context, hidden bool) error
}

type recordsPort interface {
	dataview.RecordsPort
	AddNote(ctx context.Context, trackID, title, content, noteType string) (recordsdto.TrackNote, error)
	AddFavorite(ctx context.Context, trackID string) (bool, error)
	RemoveFavorite(ctx context.Context, trackID string) (bool, error)
	SetTheme(ctx context.Context, theme string) error
}

type teamPort interface {
	List(ctx context.Context) ([]teamdto.Team, error)
	Switch(ctx context.Context, teamID, sessionID string) (bool, error)
	SaveSession(ctx context.Context, teamID, sessionID string) error
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabSessions tabID = iota
	tabData
	tabTeams
	tabCount
)

var tabLabels = [tabCount]string{
	"Sessions", "Data", "Teams",
}

// ─── async messages ───────────────────────────────────────────────────────────

type activeLoadedMsg struct {
	active sessiondto.ActiveOutput
	ok     bool
	err    error
}

// actionDoneMsg closes out any palette or key action that changed stored
// state; every view reloads after it.
type actionDoneMsg struct {
	status string
	err    error
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
	Enter   key.Binding
	Delete  key.Binding
	Refresh key.Binding
	Save    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "load session")),
		Delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete session")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Save:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save session")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Enter, k.Delete},
		{k.Refresh, k.Save},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the active session
// indicator, the help overlay and the command palette.
type Model struct {
	session sessionPort
	records recordsPort
	team    teamPort

	sessionsView sessionsview.Model
	dataView     dataview.Model
	teamsView    teamsview.Model

	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	active    sessiondto.ActiveOutput
	hasActive bool
	status    string
	width     int
	height    int
}

// ─── constructor ─────────────────────────────────────────────────────────────

func NewModel(session sessionPort, records recordsPort, team teamPort) Model {
	return Model{
		session:      session,
		records:      records,
		team:         team,
		sessionsView: sessionsview.New(session),
		dataView:     dataview.New(records),
		teamsView:    teamsview.New(team),
		activeTab:    tabSessions,
		keys:         defaultKeys(),
		help:         help.New(),
		palette:      components.NewPalette(),
		status:       "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.sessionsView.Init(),
		m.dataView.Init(),
		m.teamsView.Init(),
		m.loadActiveCmd(),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The palette intercepts all input while open.
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		cmd := m.propagateSize()
		return m, cmd

	case activeLoadedMsg:
		m.hasActive = msg.err == nil && msg.ok
		m.active = msg.active
		if msg.err != nil {
			m.status = "active session check: " + msg.err.Error()
		}
		return m, nil

	case actionDoneMsg:
		if msg.err != nil {
			m.status = msg.status + ": " + describe(msg.err)
		} else {
			m.status = msg.status
		}
		return m, m.reloadAll()

	// Loaded messages go to their owning view regardless of the active tab.
	case sessionsview.LoadedMsg:
		var cmd tea.Cmd
		m.sessionsView, cmd = m.sessionsView.Update(msg)
		return m, cmd
	case dataview.LoadedMsg:
		var cmd tea.Cmd
		m.dataView, cmd = m.dataView.Update(msg)
		return m, cmd
	case teamsview.LoadedMsg:
		var cmd tea.Cmd
		m.teamsView, cmd = m.teamsView.Update(msg)
		return m, cmd

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		// Yield to sub-view when its search filter is active.
		if m.subViewFiltering() {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
			return m, nil
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
			return m, nil
		case "?":
			m.showHelp = !m.showHelp
			return m, nil
		case ":":
			return m, m.palette.Open()
		case "ctrl+s":
			return m, m.saveCmd()
		case "r":
			return m, m.reloadAll()
		case "enter":
			switch m.activeTab {
			case tabSessions:
				if s, ok := m.sessionsView.Selected(); ok {
					// Reloading the active session would drop unsaved edits.
					if m.hasActive && m.active.TeamID == "" && m.active.SessionID == s.ID {
						m.status = s.Name + " is already loaded (ctrl+s saves)"
						return m, nil
					}
					return m, m.loadSessionCmd(s.ID, s.Name)
				}
			case tabTeams:
				if teamID, sessionID, ok := m.teamsView.Selected(); ok {
					return m, m.switchTeamCmd(teamID, sessionID)
				}
			}
		case "d":
			if m.activeTab == tabSessions {
				if s, ok := m.sessionsView.Selected(); ok {
					return m, m.deleteSessionCmd(s.ID, s.Name)
				}
			}
		}
	}

	// Propagate the message to the active tab's sub-view.
	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabSessions:
		m.sessionsView, tabCmd = m.sessionsView.Update(msg)
	case tabData:
		m.dataView, tabCmd = m.dataView.Update(msg)
	case tabTeams:
		m.teamsView, tabCmd = m.teamsView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	tabBarH := lipgloss.Height(tabBar)
	statusBarH := lipgloss.Height(statusBar)

	contentH := m.height - tabBarH - statusBarH
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabSessions:
		return m.sessionsView.View()
	case tabData:
		return m.dataView.View()
	case tabTeams:
		return m.teamsView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "pitwall  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	if m.hasActive {
		label := m.active.SessionID
		if m.active.TeamID != "" {
			label = m.active.TeamID + " / " + m.active.TeamSessionID
		}
		left = theme.Hot.Render("● "+label) + "  " + left
	}
	right := theme.Muted.Render("?:help  tab:switch  :::palette  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)
	rest := func(n int) string {
		return strings.TrimSpace(strings.Join(parts[n:], " "))
	}

	switch parts[0] {
	case "session:new":
		if len(parts) < 2 {
			m.status = "usage: session:new <name>"
			return m, nil
		}
		name := rest(1)
		return m, m.action("created "+name, func(ctx context.Context) error {
			_, _, err := m.session.CreateAndLoad(ctx, name, "", "")
			return err
		})

	case "session:save":
		return m, m.saveCmd()

	case "session:rename":
		if len(parts) < 2 || !m.hasActive || m.active.TeamID != "" {
			m.status = "usage: session:rename <name> (personal session must be loaded)"
			return m, nil
		}
		name, id := rest(1), m.active.SessionID
		return m, m.action("renamed to "+name, func(ctx context.Context) error {
			_, err := m.session.Update(ctx, id, sessiondto.MetadataPatch{Name: &name})
			return err
		})

	case "session:export":
		path := rest(1)
		return m, func() tea.Msg {
			written, _, err := m.session.Export(context.Background(), path)
			return actionDoneMsg{status: "exported to " + written, err: err}
		}

	case "session:import":
		if len(parts) < 2 {
			m.status = "usage: session:import <path>"
			return m, nil
		}
		path := rest(1)
		return m, m.action("imported "+path, func(ctx context.Context) error {
			_, err := m.session.Import(ctx, path)
			return err
		})

	case "session:hide-demo", "session:show-demo":
		hidden := parts[0] == "session:hide-demo"
		return m, m.action(strings.TrimPrefix(parts[0], "session:"), func(ctx context.Context) error {
			return m.session.SetDemoHidden(ctx, hidden)
		})

	case "note:add":
		if len(parts) < 4 {
			m.status = "usage: note:add <track> <type> <title>"
			return m, nil
		}
		track, noteType, title := parts[1], parts[2], rest(3)
		return m, m.action("note added", func(ctx context.Context) error {
			_, err := m.records.AddNote(ctx, track, title, "", noteType)
			return err
		})

	case "fav:add", "fav:remove":
		if len(parts) < 2 {
			m.status = "usage: " + parts[0] + " <track>"
			return m, nil
		}
		track, add := parts[1], parts[0] == "fav:add"
		return m, m.action(parts[0]+" "+track, func(ctx context.Context) error {
			var changed bool
			var err error
			if add {
				changed, err = m.records.AddFavorite(ctx, track)
			} else {
				changed, err = m.records.RemoveFavorite(ctx, track)
			}
			if err == nil && !changed {
				return fmt.Errorf("favorites unchanged")
			}
			return err
		})

	case "theme:set":
		if len(parts) < 2 {
			m.status = "usage: theme:set <light|dark|system>"
			return m, nil
		}
		mode := parts[1]
		return m, m.action("theme "+mode+" (applies on restart)", func(ctx context.Context) error {
			return m.records.SetTheme(ctx, mode)
		})

	case "team:switch":
		if len(parts) < 3 {
			m.status = "usage: team:switch <team> <session>"
			return m, nil
		}
		return m, m.switchTeamCmd(parts[1], parts[2])

	case "team:save":
		if !m.hasActive || m.active.TeamID == "" {
			m.status = "no team session loaded"
			return m, nil
		}
		teamID, sessionID := m.active.TeamID, m.active.TeamSessionID
		return m, m.action("team session saved", func(ctx context.Context) error {
			return m.team.SaveSession(ctx, teamID, sessionID)
		})

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

// subViewFiltering reports whether the active tab's list filter is open,
// in which case global key bindings must yield to allow free typing.
func (m Model) subViewFiltering() bool {
	switch m.activeTab {
	case tabSessions:
		return m.sessionsView.Filtering()
	case tabTeams:
		return m.teamsView.Filtering()
	}
	return false
}

func (m *Model) propagateSize() tea.Cmd {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	cmds := make([]tea.Cmd, 3)
	m.sessionsView, cmds[0] = m.sessionsView.Update(sz)
	m.dataView, cmds[1] = m.dataView.Update(sz)
	m.teamsView, cmds[2] = m.teamsView.Update(sz)
	return tea.Batch(cmds...)
}

func (m Model) reloadAll() tea.Cmd {
	return tea.Batch(
		m.sessionsView.Reload(),
		m.dataView.Reload(),
		m.teamsView.Reload(),
		m.loadActiveCmd(),
	)
}

func describe(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrDemoProtected):
		return "the demo cannot be changed"
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return "your role does not allow this"
	case errors.Is(err, apperrors.ErrNoActiveSession):
		return "no session loaded"
	}
	return err.Error()
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) action(status string, fn func(ctx context.Context) error) tea.Cmd {
	return func() tea.Msg {
		return actionDoneMsg{status: status, err: fn(context.Background())}
	}
}

func (m Model) loadActiveCmd() tea.Cmd {
	return func() tea.Msg {
		active, ok, err := m.session.Active(context.Background())
		return activeLoadedMsg{active: active, ok: ok, err: err}
	}
}

func (m Model) saveCmd() tea.Cmd {
	return m.action("saved", func(ctx context.Context) error {
		if m.hasActive && m.active.TeamID != "" {
			return m.team.SaveSession(ctx, m.active.TeamID, m.active.TeamSessionID)
		}
		return m.session.Save(ctx)
	})
}

func (m Model) loadSessionCmd(id, name string) tea.Cmd {
	return m.action("loaded "+name, func(ctx context.Context) error {
		ok, err := m.session.Load(ctx, id)
		if err == nil && !ok {
			return fmt.Errorf("session data is missing")
		}
		return err
	})
}

func (m Model) deleteSessionCmd(id, name string) tea.Cmd {
	return m.action("deleted "+name, func(ctx context.Context) error {
		_, err := m.session.Delete(ctx, id)
		return err
	})
}

func (m Model) switchTeamCmd(teamID, sessionID string) tea.Cmd {
	return m.action("switched to "+teamID+" / "+sessionID, func(ctx context.Context) error {
		ok, err := m.team.Switch(ctx, teamID, sessionID)
		if err == nil && !ok {
			return fmt.Errorf("team session not found")
		}
		return err
	})
}
