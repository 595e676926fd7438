package help

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/ksdme/shades/internal/tui/colors"
)

// Renders the key bindings as a footer, skipping the ones without help.
// Bindings flow onto another line once width is used up, a width of zero
// keeps everything on one line.
func View(bindings []key.Binding, width int, renderer *lipgloss.Renderer, palette colors.ColorPalette) string {
	keyStyle := renderer.
		NewStyle().
		Foreground(palette.Text).
		PaddingRight(1)

	descStyle := renderer.
		NewStyle().
		Foreground(palette.Muted).
		PaddingRight(3)

	lines := []string{}
	line := []string{}
	used := 0
	for _, binding := range bindings {
		if !binding.Enabled() {
			continue
		}

		help := binding.Help()
		if len(help.Desc) == 0 || len(help.Key) == 0 {
			continue
		}

		item := lipgloss.JoinHorizontal(
			lipgloss.Left,
			keyStyle.Render(help.Key),
			descStyle.Render(help.Desc),
		)

		size := lipgloss.Width(item)
		if width > 0 && used > 0 && used+size > width {
			lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Left, line...))
			line, used = nil, 0
		}

		line = append(line, item)
		used += size
	}

	if len(line) > 0 {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Left, line...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
