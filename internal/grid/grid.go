// Package grid lays a palette out as a grid of swatches, one column per
// entry and one row per shade, and renders it for a terminal.
package grid

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/ksdme/shades/internal/palette"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
)

// Rows from the top: the numeric levels darkest first, then the default.
var Rows = append(append([]palette.Level{}, palette.Levels...), palette.LevelDefault)

const DefaultSwatchWidth = 9

// A single shade in the grid.
type Cell struct {
	Column int
	Row    int

	Name  string
	Level palette.Level
	Hex   string
}

// The hover text of the cell.
func (c Cell) Label() string {
	return fmt.Sprintf("%s - %s: %s", c.Name, c.Level, c.Hex)
}

type Position struct {
	Column int
	Row    int
}

type Options struct {
	SwatchWidth int
	ShowHex     bool

	// Highlighted cell, if any.
	Selected *Position
}

// Returns the layout of the palette in column-major order.
func Cells(p *palette.Palette) [][]Cell {
	columns := make([][]Cell, 0, p.Size())
	for column, entry := range p.Entries() {
		cells := make([]Cell, 0, len(Rows))
		for row, level := range Rows {
			cells = append(cells, Cell{
				Column: column,
				Row:    row,
				Name:   entry.Name,
				Level:  level,
				Hex:    entry.Shades[level],
			})
		}
		columns = append(columns, cells)
	}
	return columns
}

// Renders the palette as a grid of swatches with the entry names on top and
// the levels on the left. The default shade of every entry is outlined.
func Render(p *palette.Palette, renderer *lipgloss.Renderer, options Options) string {
	width := options.SwatchWidth
	if width <= 0 {
		width = DefaultSwatchWidth
	}

	columns := Cells(p)
	labelWidth := len(palette.LevelDefault.String()) + 1
	labelStyle := renderer.
		NewStyle().
		Width(labelWidth).
		AlignHorizontal(lipgloss.Left)

	headers := []string{labelStyle.Render("")}
	for _, cells := range columns {
		headers = append(headers, renderer.
			NewStyle().
			Width(width+2).
			AlignHorizontal(lipgloss.Center).
			Render(runewidth.Truncate(cells[0].Name, width+2, "…")))
	}
	lines := []string{lipgloss.JoinHorizontal(lipgloss.Top, headers...)}

	for row, level := range Rows {
		blocks := []string{labelStyle.Render(level.String())}
		for _, cells := range columns {
			cell := cells[row]
			selected := options.Selected != nil &&
				options.Selected.Column == cell.Column &&
				options.Selected.Row == cell.Row

			blocks = append(blocks, swatch(renderer, cell, p.Style(), width, options.ShowHex, selected))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Center, blocks...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Renders a single row of swatches, typically a shaded sequence.
func Strip(renderer *lipgloss.Renderer, hexes []string, style palette.HexStyle, width int) (string, error) {
	if width <= 0 {
		width = DefaultSwatchWidth
	}

	blocks := []string{}
	for _, hex := range hexes {
		background, foreground, err := colors(hex, style)
		if err != nil {
			return "", err
		}

		blocks = append(blocks, renderer.
			NewStyle().
			Width(width).
			AlignHorizontal(lipgloss.Center).
			Background(background).
			Foreground(foreground).
			Render(hex))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...), nil
}

func swatch(renderer *lipgloss.Renderer, cell Cell, style palette.HexStyle, width int, showHex bool, selected bool) string {
	// Shades come from a validated palette.
	background, foreground, _ := colors(cell.Hex, style)

	text := ""
	if showHex {
		text = cell.Hex
	}
	if selected {
		if text == "" {
			text = "●"
		} else {
			text = "›" + text + "‹"
		}
	}

	block := renderer.
		NewStyle().
		Width(width).
		AlignHorizontal(lipgloss.Center).
		Background(background).
		Foreground(foreground).
		Bold(selected)

	if cell.Level == palette.LevelDefault {
		block = block.
			Border(lipgloss.NormalBorder()).
			BorderForeground(foreground)
	} else {
		block = block.Margin(0, 1)
	}

	return block.Render(text)
}

// Returns the swatch color and a readable text color on top of it.
func colors(hex string, style palette.HexStyle) (lipgloss.Color, lipgloss.Color, error) {
	c, err := palette.ParseHex(hex, style)
	if err != nil {
		return "", "", err
	}

	l, _, _ := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Lab()

	foreground := lipgloss.Color("#ffffff")
	if l > 0.6 {
		foreground = lipgloss.Color("#000000")
	}

	return lipgloss.Color("#" + c.Hex()), foreground, nil
}
