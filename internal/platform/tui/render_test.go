package tui

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/alien-invasion/internal/core"
)

func TestPaletteRenderPlainOutput(t *testing.T) {
	// A renderer on a non-terminal writer has no color profile, so styling
	// must leave the cell runes untouched.
	p := NewPalette(lipgloss.NewRenderer(&bytes.Buffer{}))

	s := core.NewScreen(12, 3)
	s.DrawTextColor(0, 0, "Score: 40", core.ColorBrightWhite)
	s.SetColor(3, 1, '▓', core.ColorGreen)
	s.SetColor(4, 1, '▓', core.ColorGreen)
	s.SetColor(11, 2, '◀', core.ColorBrightCyan)

	if got, want := p.Render(s), s.String(); got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestPaletteUnknownColorFallsBack(t *testing.T) {
	p := NewPalette(lipgloss.NewRenderer(&bytes.Buffer{}))

	s := core.NewScreen(3, 1)
	s.SetColor(1, 0, '#', core.Color(200))

	if got := p.Render(s); got != " # " {
		t.Errorf("Render = %q, want %q", got, " # ")
	}
}
