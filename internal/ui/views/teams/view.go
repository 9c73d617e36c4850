package teams

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	teamdto "pitwall/internal/modules/team/dto"
	"pitwall/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type TeamPort interface {
	List(ctx context.Context) ([]teamdto.Team, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Teams []teamdto.Team
	Err   error
}

// ─── list item ───────────────────────────────────────────────────────────────

// sessionItem is one team session; teams without sessions are not listed.
type sessionItem struct {
	team    teamdto.Team
	session teamdto.TeamSession
}

func (i sessionItem) Title() string {
	return i.team.Name + " / " + i.session.Name
}

func (i sessionItem) Description() string {
	track := i.session.TrackID
	if track == "" {
		track = "no track"
	}
	return fmt.Sprintf("%s · %d members", track, len(i.team.Members))
}

func (i sessionItem) FilterValue() string { return i.team.Name + " " + i.session.Name }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port   TeamPort
	list   list.Model
	width  int
	height int
}

func New(port TeamPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Team sessions"
	l.Styles.Title = theme.Title
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)
	return Model{port: port, list: l}
}

func (m Model) Init() tea.Cmd {
	return m.Reload()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height)
	case LoadedMsg:
		if msg.Err != nil {
			m.list.Title = "Team sessions: " + msg.Err.Error()
			return m, nil
		}
		m.list.Title = "Team sessions"
		var items []list.Item
		for _, team := range msg.Teams {
			for _, s := range team.Sessions {
				items = append(items, sessionItem{team: team, session: s})
			}
		}
		cmds = append(cmds, m.list.SetItems(items))
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	footer := theme.Muted.Render("enter: switch to team session  r: refresh")
	return lipgloss.JoinVertical(lipgloss.Left, m.list.View(), footer)
}

func (m Model) Reload() tea.Cmd {
	return func() tea.Msg {
		teams, err := m.port.List(context.Background())
		return LoadedMsg{Teams: teams, Err: err}
	}
}

// Selected returns the team and session ids under the cursor.
func (m Model) Selected() (string, string, bool) {
	if item, ok := m.list.SelectedItem().(sessionItem); ok {
		return item.team.ID, item.session.ID, true
	}
	return "", "", false
}

func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}
