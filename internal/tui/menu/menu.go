package menu

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ksdme/shades/internal/config"
	"github.com/ksdme/shades/internal/palette"
	"github.com/ksdme/shades/internal/tui/colors"
	"github.com/ksdme/shades/internal/tui/components/help"
	"github.com/ksdme/shades/internal/tui/viewer"
)

type BackToMenuMsg struct{}

// Represents a menu to select between the built-in tables.
type Model struct {
	style palette.HexStyle
	list  list.Model

	model tea.Model // The viewer of the selected table.
	err   error

	width  int
	height int

	keymap   KeyMap
	theme    colors.ColorPalette
	renderer *lipgloss.Renderer

	quitting bool
}

func NewModel(
	style palette.HexStyle,
	renderer *lipgloss.Renderer,
	theme colors.ColorPalette,
) Model {
	// Make the list take colors from our palette.
	delegate := list.NewDefaultDelegate()
	delegate.Styles.DimmedTitle = delegate.Styles.DimmedTitle.
		Foreground(theme.Muted)
	delegate.Styles.DimmedDesc = delegate.Styles.DimmedDesc.
		Foreground(theme.Muted)
	delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.
		Foreground(theme.Text)
	delegate.Styles.NormalDesc = delegate.Styles.NormalDesc.
		Foreground(theme.Muted)
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(theme.Accent).
		Foreground(theme.Accent)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(theme.Accent).
		Foreground(theme.Muted)

	items := []list.Item{}
	for _, name := range tables() {
		entries, err := palette.Table(name)
		if err != nil {
			continue
		}

		names := []string{}
		for _, entry := range entries {
			names = append(names, entry.Name)
		}
		items = append(items, item{name: name, entries: names})
	}
	list := list.New(items, delegate, 0, 0)

	// Make the list look minimal.
	list.SetShowTitle(false)
	list.SetShowStatusBar(false)
	list.SetShowFilter(false)
	list.SetShowPagination(false)
	list.SetShowHelp(false)

	return Model{
		style: style,

		list:   list,
		keymap: DefaultKeyMap(),

		renderer: renderer,
		theme:    theme,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			if m.model == nil {
				m.quitting = true
				return m, tea.Quit
			}

		case key.Matches(msg, m.keymap.Select):
			if m.model == nil {
				item, ok := m.list.SelectedItem().(item)
				if !ok {
					return m, nil
				}

				p, err := palette.Load(item.name, m.style)
				if err != nil {
					slog.Error("could not load table", "table", item.name, "err", err)
					m.err = err
					return m, nil
				}
				m.err = nil

				m.model = viewer.NewModel(
					item.name,
					p,
					m.renderer,
					colors.FromPalette(p, m.renderer.HasDarkBackground()),
					func() tea.Msg {
						return BackToMenuMsg{}
					},
				)

				return m, tea.Batch(
					m.model.Init(),
					func() tea.Msg {
						return tea.WindowSizeMsg{
							Width:  m.width,
							Height: m.height,
						}
					},
				)
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		m.list.SetSize(msg.Width-8, msg.Height-7)

	case BackToMenuMsg:
		m.model = nil
		return m, nil
	}

	if m.model == nil {
		m.list, cmd = m.list.Update(msg)
	} else {
		m.model, cmd = m.model.Update(msg)
	}
	return m, cmd
}

// Reports whether a table is currently open.
func (m Model) Viewing() bool {
	return m.model != nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.model != nil {
		return m.model.View()
	}

	// Render the menu.
	width := m.list.Width()

	title := m.renderer.
		NewStyle().
		Width(width).
		AlignHorizontal(lipgloss.Center).
		Foreground(m.theme.Muted).
		PaddingBottom(2).
		Render(config.Core.Signature)

	help := help.View(
		[]key.Binding{m.keymap.Select, m.keymap.Quit},
		width,
		m.renderer,
		m.theme,
	)

	footer := help
	if m.err != nil {
		footer = lipgloss.JoinVertical(
			lipgloss.Left,
			m.renderer.
				NewStyle().
				Foreground(m.theme.Accent).
				Render(m.err.Error()),
			help,
		)
	}

	contents := lipgloss.JoinVertical(
		lipgloss.Top,
		title,
		m.list.View(),
		lipgloss.
			NewStyle().
			PaddingTop(1).
			Render(footer),
	)

	return lipgloss.
		NewStyle().
		Padding(1, 4).
		Render(contents)
}

type KeyMap struct {
	Select key.Binding
	Quit   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// The configured table comes first.
func tables() []string {
	names := []string{}
	for _, name := range palette.TableNames() {
		if name == config.Core.Table {
			names = append([]string{name}, names...)
		} else {
			names = append(names, name)
		}
	}
	return names
}

type item struct {
	name    string
	entries []string
}

func (i item) Title() string {
	return i.name
}

func (i item) Description() string {
	return fmt.Sprintf("%d colors: %s", len(i.entries), strings.Join(i.entries, ", "))
}

func (i item) FilterValue() string {
	return i.name
}
