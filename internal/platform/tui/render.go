package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/paperplane/internal/core"
)

// palette gives each semantic cell color a terminal style.
var palette = map[core.Color]lipgloss.Style{
	core.ColorDefault:        lipgloss.NewStyle(),
	core.ColorBackdrop:       lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	core.ColorWall:           lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
	core.ColorPlatform:       lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
	core.ColorPlatformCorner: lipgloss.NewStyle().Foreground(lipgloss.Color("172")),
	core.ColorPlayer:         lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorHUD:            lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("236")),
	core.ColorAlert:          lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
	core.ColorExplosion:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
}

func styleFor(c core.Color) lipgloss.Style {
	if st, ok := palette[c]; ok {
		return st
	}
	return palette[core.ColorDefault]
}

// RenderScreen turns the cell buffer into styled terminal text.
// Each run of equally colored cells in a row is styled once.
func RenderScreen(s *core.Screen) string {
	var out strings.Builder
	out.Grow(s.Width()*s.Height()*2 + s.Height())

	var span strings.Builder
	for y := range s.Height() {
		if y > 0 {
			out.WriteByte('\n')
		}
		current := s.GetCell(0, y).Color
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != current {
				out.WriteString(styleFor(current).Render(span.String()))
				span.Reset()
				current = cell.Color
			}
			span.WriteRune(cell.Rune)
		}
		out.WriteString(styleFor(current).Render(span.String()))
		span.Reset()
	}
	return out.String()
}
