package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// styleCache maps cell styles to lipgloss styles. Brick colors come from
// configuration, so the set is built on demand.
type styleCache map[core.Style]lipgloss.Style

func (c styleCache) get(st core.Style) lipgloss.Style {
	if s, ok := c[st]; ok {
		return s
	}
	s := lipgloss.NewStyle().Bold(st.Bold)
	if st.Fg != (core.Color{}) {
		s = s.Foreground(lipgloss.Color(st.Fg.Hex()))
	}
	c[st] = s
	return s
}

// renderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same style share one lipgloss render.
func renderScreen(s *core.Screen, styles styleCache) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			st := core.Style{Fg: cell.Fg, Bold: cell.Bold}

			run.Reset()
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Fg != st.Fg || cell.Bold != st.Bold {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styles.get(st).Render(run.String()))
		}
	}
	return sb.String()
}
