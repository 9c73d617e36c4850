package theme

import "github.com/charmbracelet/lipgloss"

var (
	Base     lipgloss.Color
	Mantle   lipgloss.Color
	Surface0 lipgloss.Color
	Surface1 lipgloss.Color
	Text     lipgloss.Color
	Subtext0 lipgloss.Color
	Lavender lipgloss.Color
	Sapphire lipgloss.Color
	Green    lipgloss.Color
	Peach    lipgloss.Color

	App        lipgloss.Style
	Pane       lipgloss.Style
	PaneActive lipgloss.Style
	Title      lipgloss.Style
	Muted      lipgloss.Style
	Hot        lipgloss.Style
)

func init() { Use("dark") }

// Use switches between the Mocha (dark) and Latte (light) palettes. It must run
// before views are constructed since they copy styles at build time. "system"
// follows the terminal background.
func Use(mode string) {
	dark := true
	switch mode {
	case "light":
		dark = false
	case "system":
		dark = lipgloss.HasDarkBackground()
	}

	if dark {
		Base = lipgloss.Color("#1e1e2e")
		Mantle = lipgloss.Color("#181825")
		Surface0 = lipgloss.Color("#313244")
		Surface1 = lipgloss.Color("#45475a")
		Text = lipgloss.Color("#cdd6f4")
		Subtext0 = lipgloss.Color("#a6adc8")
		Lavender = lipgloss.Color("#b4befe")
		Sapphire = lipgloss.Color("#74c7ec")
		Green = lipgloss.Color("#a6e3a1")
		Peach = lipgloss.Color("#fab387")
	} else {
		Base = lipgloss.Color("#eff1f5")
		Mantle = lipgloss.Color("#e6e9ef")
		Surface0 = lipgloss.Color("#ccd0da")
		Surface1 = lipgloss.Color("#bcc0cc")
		Text = lipgloss.Color("#4c4f69")
		Subtext0 = lipgloss.Color("#6c6f85")
		Lavender = lipgloss.Color("#7287fd")
		Sapphire = lipgloss.Color("#209fb5")
		Green = lipgloss.Color("#40a02b")
		Peach = lipgloss.Color("#fe640b")
	}

	App = lipgloss.NewStyle().
		Background(Base).
		Foreground(Text).
		Padding(1, 2)

	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface1).
		Background(Mantle).
		Foreground(Text).
		Padding(1)

	PaneActive = Pane.BorderForeground(Lavender)

	Title = lipgloss.NewStyle().Foreground(Sapphire).Bold(true)
	Muted = lipgloss.NewStyle().Foreground(Subtext0)
	Hot = lipgloss.NewStyle().Foreground(Peach).Bold(true)
}
