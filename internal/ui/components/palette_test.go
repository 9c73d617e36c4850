package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestMatchesByVerb(t *testing.T) {
	t.Parallel()
	cases := []struct {
		input string
		first string
		count int
	}{
		{"", "session:new <name>", maxHints},
		{"fav", "fav:add <track>", 2},
		{"session:ex", "session:export [path]", 1},
		{"team:switch a b", "team:switch <team> <session>", 1},
		{"session:new Monaco", "session:new <name>", 1},
		{"bogus", "", 0},
	}
	for _, tc := range cases {
		got := Matches(tc.input)
		if len(got) != tc.count {
			t.Fatalf("Matches(%q) = %v, want %d hints", tc.input, got, tc.count)
		}
		if tc.count > 0 && got[0] != tc.first {
			t.Fatalf("Matches(%q)[0] = %q, want %q", tc.input, got[0], tc.first)
		}
	}
}

func TestTabCompletesVerbAndEnterSubmits(t *testing.T) {
	t.Parallel()
	p := NewPalette()
	p.Open()
	for _, r := range "theme" {
		p, _ = p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyTab})
	if got := p.input.Value(); got != "theme:set " {
		t.Fatalf("tab completion = %q", got)
	}
	for _, r := range "light" {
		p, _ = p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	p, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if p.Visible() || cmd == nil {
		t.Fatalf("enter should close the palette and emit a command")
	}
	msg, ok := cmd().(PaletteSubmitMsg)
	if !ok || msg.Input != "theme:set light" {
		t.Fatalf("unexpected submit: %#v", msg)
	}
}

func TestEscCancels(t *testing.T) {
	t.Parallel()
	p := NewPalette()
	p.Open()
	p, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if p.Visible() {
		t.Fatalf("palette still visible after esc")
	}
	if _, ok := cmd().(PaletteCancelMsg); !ok {
		t.Fatalf("expected PaletteCancelMsg")
	}
}
