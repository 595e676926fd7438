// Package palette holds a fixed, ordered table of named colors along
// with their shades and exposes read-only lookups over it.
package palette

import (
	"github.com/pkg/errors"
)

var (
	ErrOutOfRange    = errors.New("out of range")
	ErrParse         = errors.New("malformed hex color")
	ErrConfiguration = errors.New("invalid palette")
)

// A named color and its shades.
type Entry struct {
	Name   string
	Shades map[Level]string
}

// An immutable, ordered collection of entries. The position of an entry
// is its index for every lookup. It is safe for concurrent use.
type Palette struct {
	entries []Entry
	index   map[string]int
	style   HexStyle
}

// Builds a palette from a literal table. The table is validated eagerly,
// every entry needs a unique name and all of the shade keys.
func New(entries []Entry, style HexStyle) (*Palette, error) {
	if len(entries) == 0 {
		return nil, errors.Wrap(ErrConfiguration, "no entries")
	}

	p := &Palette{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
		style:   style,
	}

	for position, entry := range entries {
		if entry.Name == "" {
			return nil, errors.Wrapf(ErrConfiguration, "entry %d has no name", position)
		}
		if _, ok := p.index[entry.Name]; ok {
			return nil, errors.Wrapf(ErrConfiguration, "duplicate entry %q", entry.Name)
		}

		shades := make(map[Level]string, len(Keys))
		for level, hex := range entry.Shades {
			if !level.valid() {
				return nil, errors.Wrapf(ErrConfiguration, "entry %q has unknown level %d", entry.Name, level)
			}

			digits, err := normalize(hex)
			if err != nil {
				return nil, errors.Wrapf(ErrConfiguration, "entry %q level %s: %v", entry.Name, level, err)
			}
			shades[level] = digits
		}

		for _, level := range Keys {
			if _, ok := shades[level]; !ok {
				return nil, errors.Wrapf(ErrConfiguration, "entry %q is missing level %s", entry.Name, level)
			}
		}

		p.index[entry.Name] = position
		p.entries = append(p.entries, Entry{Name: entry.Name, Shades: shades})
	}

	return p, nil
}

// Loads one of the built-in tables.
func Load(table string, style HexStyle) (*Palette, error) {
	entries, err := Table(table)
	if err != nil {
		return nil, err
	}
	return New(entries, style)
}

func (p *Palette) Size() int {
	return len(p.entries)
}

func (p *Palette) Style() HexStyle {
	return p.style
}

func (p *Palette) Name(index int) (string, error) {
	entry, err := p.at(index)
	if err != nil {
		return "", err
	}
	return entry.Name, nil
}

// Returns the position of the named entry.
func (p *Palette) Index(name string) (int, error) {
	if index, ok := p.index[name]; ok {
		return index, nil
	}
	return 0, errors.Wrapf(ErrOutOfRange, "no entry named %q", name)
}

// Returns the default shade of the entry.
func (p *Palette) Get(index int) (string, error) {
	return p.lookup(index, LevelDefault)
}

func (p *Palette) DarkShade(index int) (string, error) {
	return p.lookup(index, DarkestLevel)
}

func (p *Palette) LightShade(index int) (string, error) {
	return p.lookup(index, LightestLevel)
}

// Returns one of the nine numeric shades of the entry. Use Get for the
// default shade.
func (p *Palette) Shade(index int, level Level) (string, error) {
	if !level.Numeric() {
		return "", errors.Wrapf(ErrOutOfRange, "unknown shade level %s", level)
	}
	return p.lookup(index, level)
}

// Returns n colors blended linearly from the dark shade to the light shade
// of the entry, both ends included. n must be at least 2.
func (p *Palette) ShadedSequence(index int, n int) ([]string, error) {
	entry, err := p.at(index)
	if err != nil {
		return nil, err
	}
	if n < 2 {
		return nil, errors.Wrapf(ErrOutOfRange, "sequence length %d is below 2", n)
	}

	// The table was validated, these always parse.
	dark, _ := parseDigits("", entry.Shades[DarkestLevel])
	light, _ := parseDigits("", entry.Shades[LightestLevel])

	sequence := make([]string, n)
	for step := 0; step < n; step++ {
		color := RGB{
			R: lerp(dark.R, light.R, step, n-1),
			G: lerp(dark.G, light.G, step, n-1),
			B: lerp(dark.B, light.B, step, n-1),
		}
		sequence[step] = FormatHex(color, p.style)
	}

	return sequence, nil
}

// Parses a hex color written in the palette's style.
func (p *Palette) ToRGB(hex string) (RGB, error) {
	return ParseHex(hex, p.style)
}

// Returns a copy of the entry with its shades formatted in the palette's style.
func (p *Palette) Entry(index int) (Entry, error) {
	entry, err := p.at(index)
	if err != nil {
		return Entry{}, err
	}

	shades := make(map[Level]string, len(entry.Shades))
	for level, digits := range entry.Shades {
		shades[level] = format(digits, p.style)
	}
	return Entry{Name: entry.Name, Shades: shades}, nil
}

// Returns copies of all the entries in order.
func (p *Palette) Entries() []Entry {
	entries := make([]Entry, 0, len(p.entries))
	for index := range p.entries {
		entry, _ := p.Entry(index)
		entries = append(entries, entry)
	}
	return entries
}

func (p *Palette) lookup(index int, level Level) (string, error) {
	entry, err := p.at(index)
	if err != nil {
		return "", err
	}
	return format(entry.Shades[level], p.style), nil
}

func (p *Palette) at(index int) (*Entry, error) {
	if index < 0 || index >= len(p.entries) {
		return nil, errors.Wrapf(ErrOutOfRange, "index %d not in [0, %d)", index, len(p.entries))
	}
	return &p.entries[index], nil
}

// Blends from towards to by step/steps in integers, rounding halves away
// from zero. The numerator is never negative for step in [0, steps].
func lerp(from, to uint8, step, steps int) uint8 {
	num := int(from)*steps + (int(to)-int(from))*step
	value := (2*num + steps) / (2 * steps)
	return uint8(max(0, min(255, value)))
}
