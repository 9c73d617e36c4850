package data

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	recordsdto "pitwall/internal/modules/records/dto"
	"pitwall/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type RecordsPort interface {
	ListNotes(ctx context.Context, trackID string) ([]recordsdto.NoteView, error)
	ListSetups(ctx context.Context) ([]recordsdto.SetupView, error)
	ListWeekends(ctx context.Context) ([]recordsdto.RaceWeekend, error)
	Favorites(ctx context.Context) ([]string, error)
	Settings(ctx context.Context) (recordsdto.UserSettings, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Notes     []recordsdto.NoteView
	Setups    []recordsdto.SetupView
	Weekends  []recordsdto.RaceWeekend
	Favorites []string
	Settings  recordsdto.UserSettings
	Err       error
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model shows whatever the working buffer currently holds.
type Model struct {
	port   RecordsPort
	body   viewport.Model
	loaded LoadedMsg
	width  int
	height int
}

func New(port RecordsPort) Model {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)
	return Model{port: port, body: vp}
}

func (m Model) Init() tea.Cmd {
	return m.Reload()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.body.Width = msg.Width - 2
		m.body.Height = msg.Height - 2
		m.body.SetContent(m.render())
	case LoadedMsg:
		m.loaded = msg
		m.body.SetContent(m.render())
	}
	var cmd tea.Cmd
	m.body, cmd = m.body.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.body.View()
}

func (m Model) Reload() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		out := LoadedMsg{}
		var err error
		if out.Notes, err = m.port.ListNotes(ctx, ""); err != nil {
			return LoadedMsg{Err: err}
		}
		if out.Setups, err = m.port.ListSetups(ctx); err != nil {
			return LoadedMsg{Err: err}
		}
		if out.Weekends, err = m.port.ListWeekends(ctx); err != nil {
			return LoadedMsg{Err: err}
		}
		if out.Favorites, err = m.port.Favorites(ctx); err != nil {
			return LoadedMsg{Err: err}
		}
		if out.Settings, err = m.port.Settings(ctx); err != nil {
			return LoadedMsg{Err: err}
		}
		return out
	}
}

func (m Model) render() string {
	d := m.loaded
	if d.Err != nil {
		return theme.Hot.Render("could not read data: " + d.Err.Error())
	}
	var sb strings.Builder
	section := func(title string, n int) {
		sb.WriteString(theme.Title.Render(fmt.Sprintf("%s (%d)", title, n)) + "\n")
	}

	section("Notes", len(d.Notes))
	for _, n := range d.Notes {
		sb.WriteString(fmt.Sprintf("  [%s] %s %s\n", n.Type, n.Title, theme.Muted.Render("· "+n.TrackName)))
	}
	sb.WriteString("\n")

	section("Setups", len(d.Setups))
	for _, s := range d.Setups {
		sb.WriteString(fmt.Sprintf("  %s %s\n", s.Name, theme.Muted.Render("· "+s.TrackName)))
	}
	sb.WriteString("\n")

	section("Race weekends", len(d.Weekends))
	for _, w := range d.Weekends {
		sb.WriteString(fmt.Sprintf("  %s %s\n", w.Name, theme.Muted.Render(w.StartDate+" → "+w.EndDate)))
		for _, day := range w.Days {
			done := 0
			for _, item := range day.Items {
				if item.Completed {
					done++
				}
			}
			sb.WriteString(theme.Muted.Render(fmt.Sprintf("    %s %s  %d/%d done\n", day.Label, day.Date, done, len(day.Items))))
		}
	}
	sb.WriteString("\n")

	section("Favorites", len(d.Favorites))
	if len(d.Favorites) > 0 {
		sb.WriteString("  " + strings.Join(d.Favorites, ", ") + "\n")
	}
	sb.WriteString("\n")

	sb.WriteString(theme.Title.Render("Units") + "\n")
	sb.WriteString(fmt.Sprintf("  %s · %s · %s\n", d.Settings.TemperatureUnit, d.Settings.WindSpeedUnit, d.Settings.DistanceUnit))
	return sb.String()
}
