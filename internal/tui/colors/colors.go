package colors

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/ksdme/shades/internal/palette"
)

type ColorPalette struct {
	Accent lipgloss.Color
	Muted  lipgloss.Color
	Text   lipgloss.Color
}

func DefaultColorDarkPalette() ColorPalette {
	return ColorPalette{
		Accent: lipgloss.Color("9"),
		Muted:  lipgloss.Color("8"),
		Text:   lipgloss.Color("15"),
	}
}

func DefaultLightColorPalette() ColorPalette {
	return ColorPalette{
		Accent: lipgloss.Color("9"),
		Muted:  lipgloss.Color("8"),
		Text:   lipgloss.Color("0"),
	}
}

// Themes the interface after the palette being shown. The accent comes
// from the first entry, a light shade on dark backgrounds and a dark one
// otherwise.
func FromPalette(p *palette.Palette, dark bool) ColorPalette {
	base := DefaultLightColorPalette()
	level := palette.Level300
	if dark {
		base = DefaultColorDarkPalette()
		level = palette.Level700
	}

	hex, err := p.Shade(0, level)
	if err != nil {
		return base
	}
	c, err := p.ToRGB(hex)
	if err != nil {
		return base
	}

	base.Accent = lipgloss.Color("#" + c.Hex())
	return base
}

// Themes the interface after a built-in table, falling back to the
// defaults when the table cannot be loaded.
func ForTable(table string, style palette.HexStyle, dark bool) ColorPalette {
	p, err := palette.Load(table, style)
	if err != nil {
		if dark {
			return DefaultColorDarkPalette()
		}
		return DefaultLightColorPalette()
	}
	return FromPalette(p, dark)
}
