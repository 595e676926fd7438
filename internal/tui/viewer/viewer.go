package viewer

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ksdme/shades/internal/grid"
	"github.com/ksdme/shades/internal/palette"
	"github.com/ksdme/shades/internal/tui/colors"
	"github.com/ksdme/shades/internal/tui/components/help"
	"github.com/ksdme/shades/internal/utils"
	"github.com/muesli/reflow/wordwrap"
)

const (
	MinSteps     = 2
	MaxSteps     = 16
	DefaultSteps = 5
)

// Browses a palette as a grid. The selected shade is described below the
// grid along with the shaded sequence of its entry.
type Model struct {
	title   string
	palette *palette.Palette

	column int
	row    int
	steps  int

	width  int
	height int

	renderer *lipgloss.Renderer
	colors   colors.ColorPalette
	keymap   KeyMap

	// Sent when the user asks to go back, nil quits instead.
	back tea.Cmd

	quitting bool
}

func NewModel(
	title string,
	p *palette.Palette,
	renderer *lipgloss.Renderer,
	colors colors.ColorPalette,
	back tea.Cmd,
) Model {
	keymap := DefaultKeyMap()
	keymap.Back.SetEnabled(back != nil)

	return Model{
		title:   title,
		palette: p,
		steps:   DefaultSteps,

		renderer: renderer,
		colors:   colors,
		keymap:   keymap,

		back: back,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keymap.Back):
			return m, m.back

		case key.Matches(msg, m.keymap.Left):
			m.column = max(m.column-1, 0)

		case key.Matches(msg, m.keymap.Right):
			m.column = min(m.column+1, m.palette.Size()-1)

		case key.Matches(msg, m.keymap.Up):
			m.row = max(m.row-1, 0)

		case key.Matches(msg, m.keymap.Down):
			m.row = min(m.row+1, len(grid.Rows)-1)

		case key.Matches(msg, m.keymap.More):
			m.steps = min(m.steps+1, MaxSteps)

		case key.Matches(msg, m.keymap.Fewer):
			m.steps = max(m.steps-1, MinSteps)
		}
		return m, nil

	case tea.QuitMsg:
		m.quitting = true
		return m, nil
	}

	return m, nil
}

// The cell under the cursor.
func (m Model) Selected() grid.Cell {
	return grid.Cells(m.palette)[m.column][m.row]
}

func (m Model) Steps() int {
	return m.steps
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	xp, yp := 4, 1
	width := m.width - 2*xp

	title := m.renderer.
		NewStyle().
		PaddingBottom(1).
		Foreground(m.colors.Muted).
		Render(m.title)

	body := grid.Render(m.palette, m.renderer, grid.Options{
		ShowHex:  true,
		Selected: &grid.Position{Column: m.column, Row: m.row},
	})

	help := help.View(
		[]key.Binding{
			m.keymap.Up,
			m.keymap.Right,
			m.keymap.More,
			m.keymap.Fewer,
			m.keymap.Back,
			m.keymap.Quit,
		},
		width,
		m.renderer,
		m.colors,
	)

	contents := lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		body,
		m.details(width),
		m.sequence(),
		m.renderer.
			NewStyle().
			PaddingTop(1).
			Render(help),
	)

	if m.width <= 0 || m.height <= 0 {
		return contents
	}

	return utils.Box(m.renderer, m.width, m.height, true, true).
		Padding(yp, xp).
		Render(contents)
}

// Describes the selected cell.
func (m Model) details(width int) string {
	cell := m.Selected()

	text := cell.Label()
	if rgb, err := m.palette.ToRGB(cell.Hex); err == nil {
		text = fmt.Sprintf("%s  rgb%s", text, rgb)
	}
	if width > 0 {
		text = wordwrap.String(text, width)
	}

	return m.renderer.
		NewStyle().
		PaddingTop(1).
		Foreground(m.colors.Accent).
		Render(text)
}

// Renders the shaded sequence of the selected entry.
func (m Model) sequence() string {
	hexes, err := m.palette.ShadedSequence(m.column, m.steps)
	if err != nil {
		return m.renderer.
			NewStyle().
			Foreground(m.colors.Muted).
			Render(err.Error())
	}

	strip, err := grid.Strip(m.renderer, hexes, m.palette.Style(), grid.DefaultSwatchWidth)
	if err != nil {
		return m.renderer.
			NewStyle().
			Foreground(m.colors.Muted).
			Render(err.Error())
	}

	label := m.renderer.
		NewStyle().
		PaddingTop(1).
		Foreground(m.colors.Muted).
		Render(fmt.Sprintf("%d steps from dark to light", m.steps))

	return lipgloss.JoinVertical(lipgloss.Left, label, strip)
}

type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	More  key.Binding
	Fewer key.Binding
	Back  key.Binding
	Quit  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑↓", "shade"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("←→", "color"),
		),
		More: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "more steps"),
		),
		Fewer: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "fewer steps"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
	}
}
