package menu

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ksdme/shades/internal/palette"
	"github.com/ksdme/shades/internal/tui/colors"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newModel() Model {
	renderer := lipgloss.NewRenderer(io.Discard)
	renderer.SetColorProfile(termenv.Ascii)
	renderer.SetHasDarkBackground(true)

	m := NewModel(palette.Bare, renderer, colors.DefaultColorDarkPalette())
	model, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return model.(Model)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	model, cmd := m.Update(msg)
	menu, ok := model.(Model)
	require.True(t, ok)
	return menu, cmd
}

func TestListsTables(t *testing.T) {
	view := newModel().View()
	assert.Contains(t, view, "earth")
	assert.Contains(t, view, "ocean")
	assert.Contains(t, view, "5 colors: charcoal")
	assert.Contains(t, view, "enter select")
}

func TestOpenAndGoBack(t *testing.T) {
	m := newModel()

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.Viewing())
	require.NotNil(t, cmd)
	assert.Contains(t, m.View(), "charcoal - 100: 080e11")

	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.True(t, m.Viewing())

	m, _ = update(t, m, cmd())
	assert.False(t, m.Viewing())
}

func TestQuit(t *testing.T) {
	m, cmd := update(t, newModel(), tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, m.View())
}

// Counts the resizes it is handed.
type sized struct {
	resizes *int
}

func (s sized) Init() tea.Cmd { return nil }

func (s sized) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.WindowSizeMsg); ok {
		*s.resizes++
	}
	return s, nil
}

func (s sized) View() string { return "" }

func TestResizeReachesViewerOnce(t *testing.T) {
	resizes := 0
	m := newModel()
	m.model = sized{resizes: &resizes}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Equal(t, 1, resizes)
	assert.Equal(t, 92, m.list.Width())
}
