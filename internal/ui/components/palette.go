package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pitwall/internal/ui/theme"
)

// PaletteSubmitMsg carries the confirmed command line.
type PaletteSubmitMsg struct{ Input string }

type PaletteCancelMsg struct{}

const maxHints = 6

// Keep in sync with executePalette in app/model.go.
var commands = []string{
	"session:new <name>",
	"session:save",
	"session:rename <name>",
	"session:export [path]",
	"session:import <path>",
	"session:hide-demo",
	"session:show-demo",
	"note:add <track> <type> <title>",
	"fav:add <track>",
	"fav:remove <track>",
	"theme:set <light|dark|system>",
	"team:switch <team> <session>",
	"team:save",
}

// Palette is the ':' command line. Tab completes the command word from the
// first matching hint.
type Palette struct {
	input   textinput.Model
	visible bool
	width   int
}

func NewPalette() Palette {
	ti := textinput.New()
	ti.Prompt = ": "
	ti.Placeholder = "session:new Monaco GP"
	ti.CharLimit = 256
	return Palette{input: ti}
}

func (p Palette) Visible() bool { return p.visible }

func (p *Palette) Open() tea.Cmd {
	p.visible = true
	p.input.SetValue("")
	return p.input.Focus()
}

func (p *Palette) SetWidth(w int) { p.width = w }

// Matches returns the command hints whose verb starts with the typed verb.
// Once arguments follow, only the exact verb matches.
func Matches(input string) []string {
	typed := strings.ToLower(strings.TrimLeft(input, " "))
	verb, _, hasArgs := strings.Cut(typed, " ")
	out := make([]string, 0, maxHints)
	for _, c := range commands {
		cverb, _, _ := strings.Cut(c, " ")
		if hasArgs && cverb != verb {
			continue
		}
		if !hasArgs && !strings.HasPrefix(cverb, verb) {
			continue
		}
		out = append(out, c)
		if len(out) == maxHints {
			break
		}
	}
	return out
}

func (p *Palette) close() {
	p.visible = false
	p.input.Blur()
}

func (p Palette) Update(msg tea.Msg) (Palette, tea.Cmd) {
	if !p.visible {
		return p, nil
	}
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "esc":
			p.close()
			return p, func() tea.Msg { return PaletteCancelMsg{} }
		case "enter":
			line := strings.TrimSpace(p.input.Value())
			p.close()
			return p, func() tea.Msg { return PaletteSubmitMsg{Input: line} }
		case "tab":
			if m := Matches(p.input.Value()); len(m) > 0 && !strings.Contains(p.input.Value(), " ") {
				verb, _, takesArgs := strings.Cut(m[0], " ")
				if takesArgs {
					verb += " "
				}
				p.input.SetValue(verb)
				p.input.CursorEnd()
			}
			return p, nil
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p Palette) View() string {
	if !p.visible {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Command") + "\n")
	sb.WriteString(p.input.View() + "\n")
	if hints := Matches(p.input.Value()); len(hints) > 0 {
		sb.WriteString("\n")
		for i, h := range hints {
			if i == 0 {
				sb.WriteString(theme.Hot.Render("> "+h) + "\n")
				continue
			}
			sb.WriteString(theme.Muted.Render("  "+h) + "\n")
		}
	}

	w := p.width
	if w < 20 {
		w = 64
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Peach).
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(0, 1).
		Width(w - 2).
		Render(sb.String())
}
