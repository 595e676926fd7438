// Package commands implements the non-interactive interface, one
// subcommand per palette lookup.
package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ksdme/shades/internal/config"
	"github.com/ksdme/shades/internal/grid"
	"github.com/ksdme/shades/internal/palette"
	"github.com/pkg/errors"
)

const (
	ExitOK     = 0
	ExitLookup = 1
	ExitConfig = 2
)

type EntryArgs struct {
	Entry string `arg:"positional,required" help:"position or name of the color"`
}

type Args struct {
	Table    string `arg:"-t,--table" help:"built-in table to use" placeholder:"NAME"`
	Prefixed bool   `arg:"--prefixed" help:"write and expect hex values with a leading #"`

	Size   *struct{} `arg:"subcommand:size" help:"print the number of colors"`
	List   *struct{} `arg:"subcommand:list" help:"print every color with all of its shades"`
	Tables *struct{} `arg:"subcommand:tables" help:"print the names of the built-in tables"`

	Get   *EntryArgs `arg:"subcommand:get" help:"print the default shade of a color"`
	Dark  *EntryArgs `arg:"subcommand:dark" help:"print the darkest shade of a color"`
	Light *EntryArgs `arg:"subcommand:light" help:"print the lightest shade of a color"`

	Shade *struct {
		Entry string `arg:"positional,required" help:"position or name of the color"`
		Level string `arg:"positional,required" help:"one of 100, 200, ... 900"`
	} `arg:"subcommand:shade" help:"print a shade of a color"`

	Sequence *struct {
		Entry string `arg:"positional,required" help:"position or name of the color"`
		Steps int    `arg:"positional,required" help:"number of colors, at least 2"`
	} `arg:"subcommand:sequence" help:"print colors blended from the darkest to the lightest shade"`

	RGB *struct {
		Hex string `arg:"positional,required" help:"6 digit hex color"`
	} `arg:"subcommand:rgb" help:"convert a hex color to its RGB channels"`

	Grid *struct {
		Width int  `arg:"-w,--width" help:"width of a swatch" default:"9"`
		Hex   bool `arg:"--hex" help:"print hex values on the swatches"`
	} `arg:"subcommand:grid" help:"draw the palette as a grid of swatches"`
}

// Arguments prefilled from the configuration, parsing overrides them.
func Defaults() Args {
	return Args{
		Table:    config.Core.Table,
		Prefixed: config.Core.HexPrefix,
	}
}

// The hex convention the arguments ask for.
func (args Args) Style() palette.HexStyle {
	if args.Prefixed {
		return palette.Prefixed
	}
	return palette.Bare
}

// The name of the requested subcommand.
func Name(args Args) string {
	switch {
	case args.Size != nil:
		return "size"
	case args.Tables != nil:
		return "tables"
	case args.Get != nil:
		return "get"
	case args.Dark != nil:
		return "dark"
	case args.Light != nil:
		return "light"
	case args.Shade != nil:
		return "shade"
	case args.Sequence != nil:
		return "sequence"
	case args.RGB != nil:
		return "rgb"
	case args.Grid != nil:
		return "grid"
	default:
		return "list"
	}
}

// Runs the requested subcommand against the selected table, writing the
// result to w. It returns the code the invocation should exit with.
func Run(w io.Writer, args Args, renderer *lipgloss.Renderer) (int, error) {
	if args.Tables != nil {
		for _, name := range palette.TableNames() {
			fmt.Fprintln(w, name)
		}
		return ExitOK, nil
	}

	table := args.Table
	if table == "" {
		table = palette.DefaultTable
	}

	p, err := palette.Load(table, args.Style())
	if err != nil {
		return ExitConfig, errors.Wrap(err, "could not load the palette")
	}

	switch {
	case args.Size != nil:
		fmt.Fprintln(w, p.Size())

	case args.Get != nil:
		return lookup(w, p, args.Get.Entry, p.Get)

	case args.Dark != nil:
		return lookup(w, p, args.Dark.Entry, p.DarkShade)

	case args.Light != nil:
		return lookup(w, p, args.Light.Entry, p.LightShade)

	case args.Shade != nil:
		level, err := palette.ParseLevel(args.Shade.Level)
		if err != nil {
			return ExitLookup, errors.Wrap(err, "could not read the level")
		}

		return lookup(w, p, args.Shade.Entry, func(index int) (string, error) {
			if level == palette.LevelDefault {
				return p.Get(index)
			}
			return p.Shade(index, level)
		})

	case args.Sequence != nil:
		index, err := resolve(p, args.Sequence.Entry)
		if err != nil {
			return ExitLookup, errors.Wrap(err, "could not find the color")
		}

		sequence, err := p.ShadedSequence(index, args.Sequence.Steps)
		if err != nil {
			return ExitLookup, errors.Wrap(err, "could not blend the shades")
		}
		fmt.Fprintln(w, strings.Join(sequence, "\n"))

	case args.RGB != nil:
		c, err := p.ToRGB(args.RGB.Hex)
		if err != nil {
			return ExitLookup, errors.Wrap(err, "could not convert the color")
		}
		fmt.Fprintln(w, c.R, c.G, c.B)

	case args.Grid != nil:
		fmt.Fprintln(w, grid.Render(p, renderer, grid.Options{
			SwatchWidth: args.Grid.Width,
			ShowHex:     args.Grid.Hex,
		}))

	default:
		list(w, p)
	}

	return ExitOK, nil
}

func lookup(w io.Writer, p *palette.Palette, entry string, get func(int) (string, error)) (int, error) {
	index, err := resolve(p, entry)
	if err != nil {
		return ExitLookup, errors.Wrap(err, "could not find the color")
	}

	value, err := get(index)
	if err != nil {
		return ExitLookup, errors.Wrap(err, "could not find the color")
	}

	fmt.Fprintln(w, value)
	return ExitOK, nil
}

// Colors can be addressed by position or by name.
func resolve(p *palette.Palette, entry string) (int, error) {
	if index, err := strconv.Atoi(entry); err == nil {
		if _, err := p.Name(index); err != nil {
			return 0, err
		}
		return index, nil
	}
	return p.Index(entry)
}

func list(w io.Writer, p *palette.Palette) {
	width := 0
	for _, entry := range p.Entries() {
		width = max(width, len(entry.Name))
	}

	for _, entry := range p.Entries() {
		values := []string{}
		for _, level := range palette.Keys {
			values = append(values, entry.Shades[level])
		}
		fmt.Fprintf(w, "%-*s %s\n", width, entry.Name, strings.Join(values, " "))
	}
}
