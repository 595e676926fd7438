package palette

import (
	"fmt"
	"regexp"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bareHex = regexp.MustCompile(`^[0-9a-f]{6}$`)

func mustLoad(t *testing.T, table string, style HexStyle) *Palette {
	t.Helper()
	p, err := Load(table, style)
	require.NoError(t, err)
	return p
}

func entryWith(name string, mutate func(map[Level]string)) Entry {
	shades := shades("#102030", "010203", "111111", "222222", "333333", "444444", "555555", "666666", "777777", "fefdfc")
	if mutate != nil {
		mutate(shades)
	}
	return Entry{Name: name, Shades: shades}
}

func TestNewValidatesEagerly(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
	}{
		{"empty table", nil},
		{"unnamed entry", []Entry{entryWith("", nil)}},
		{"duplicate names", []Entry{entryWith("a", nil), entryWith("a", nil)}},
		{"missing default", []Entry{entryWith("a", func(s map[Level]string) { delete(s, LevelDefault) })}},
		{"missing numeric level", []Entry{entryWith("a", func(s map[Level]string) { delete(s, Level500) })}},
		{"unknown level", []Entry{entryWith("a", func(s map[Level]string) { s[Level(150)] = "000000" })}},
		{"short hex", []Entry{entryWith("a", func(s map[Level]string) { s[Level300] = "#12345" })}},
		{"non hex digits", []Entry{entryWith("a", func(s map[Level]string) { s[Level300] = "zz0000" })}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.entries, Bare)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrConfiguration), "got %v", err)
		})
	}
}

func TestNewNormalizesHex(t *testing.T) {
	p, err := New([]Entry{entryWith("a", func(s map[Level]string) { s[LevelDefault] = "#ABCDEF" })}, Bare)
	require.NoError(t, err)

	value, err := p.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "abcdef", value)
}

func TestNewCopiesInput(t *testing.T) {
	entries := []Entry{entryWith("a", nil)}
	p, err := New(entries, Bare)
	require.NoError(t, err)

	entries[0].Shades[LevelDefault] = "000000"
	entries[0].Name = "b"

	value, _ := p.Get(0)
	assert.Equal(t, "102030", value)
	name, _ := p.Name(0)
	assert.Equal(t, "a", name)
}

func TestAccessors(t *testing.T) {
	p := mustLoad(t, DefaultTable, Bare)
	require.Equal(t, 5, p.Size())

	value, err := p.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "264653", value)

	dark, err := p.DarkShade(0)
	require.NoError(t, err)
	assert.Equal(t, "080e11", dark)

	light, err := p.LightShade(0)
	require.NoError(t, err)
	assert.Equal(t, "cadee7", light)

	shade, err := p.Shade(2, Level700)
	require.NoError(t, err)
	assert.Equal(t, "f1dca4", shade)

	name, err := p.Name(4)
	require.NoError(t, err)
	assert.Equal(t, "burnt_sienna", name)

	index, err := p.Index("sandy_brown")
	require.NoError(t, err)
	assert.Equal(t, 3, index)
}

func TestPrefixedStyle(t *testing.T) {
	p := mustLoad(t, DefaultTable, Prefixed)

	value, err := p.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "#2a9d8f", value)

	sequence, err := p.ShadedSequence(0, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"#080e11", "#cadee7"}, sequence)

	c, err := p.ToRGB("#264653")
	require.NoError(t, err)
	assert.Equal(t, RGB{38, 70, 83}, c)

	_, err = p.ToRGB("264653")
	assert.True(t, errors.Is(err, ErrParse))
}

func TestOutOfRange(t *testing.T) {
	p := mustLoad(t, DefaultTable, Bare)

	lookups := map[string]func(int) error{
		"Get":        func(i int) error { _, err := p.Get(i); return err },
		"DarkShade":  func(i int) error { _, err := p.DarkShade(i); return err },
		"LightShade": func(i int) error { _, err := p.LightShade(i); return err },
		"Shade":      func(i int) error { _, err := p.Shade(i, Level500); return err },
		"Sequence":   func(i int) error { _, err := p.ShadedSequence(i, 3); return err },
		"Name":       func(i int) error { _, err := p.Name(i); return err },
		"Entry":      func(i int) error { _, err := p.Entry(i); return err },
	}

	for name, lookup := range lookups {
		for _, index := range []int{-1, p.Size(), p.Size() + 10} {
			t.Run(fmt.Sprintf("%s(%d)", name, index), func(t *testing.T) {
				err := lookup(index)
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrOutOfRange), "got %v", err)
			})
		}
	}

	_, err := p.Index("magenta")
	assert.True(t, errors.Is(err, ErrOutOfRange))
}

func TestShadeRejectsUnknownLevels(t *testing.T) {
	p := mustLoad(t, DefaultTable, Bare)

	for _, level := range []Level{LevelDefault, 50, 150, 1000, -100} {
		_, err := p.Shade(0, level)
		assert.True(t, errors.Is(err, ErrOutOfRange), "level %d", level)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		text    string
		want    Level
		wantErr bool
	}{
		{"DEFAULT", LevelDefault, false},
		{"default", LevelDefault, false},
		{"100", Level100, false},
		{" 900 ", Level900, false},
		{"450", 0, true},
		{"1000", 0, true},
		{"0", 0, true},
		{"dark", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			level, err := ParseLevel(tt.text)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrOutOfRange))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, level)
		})
	}

	assert.Equal(t, "DEFAULT", LevelDefault.String())
	assert.Equal(t, "300", Level300.String())
}

func TestToRGB(t *testing.T) {
	p := mustLoad(t, DefaultTable, Bare)

	c, err := p.ToRGB("264653")
	require.NoError(t, err)
	assert.Equal(t, RGB{38, 70, 83}, c)

	c, err = p.ToRGB("FFfF00")
	require.NoError(t, err)
	assert.Equal(t, RGB{255, 255, 0}, c)

	for _, bad := range []string{"", "26465", "2646533", "#264653", "26465g", "+12345", "-12345", " 26465"} {
		_, err := p.ToRGB(bad)
		assert.True(t, errors.Is(err, ErrParse), "input %q", bad)
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, table := range TableNames() {
		p := mustLoad(t, table, Bare)
		for _, entry := range p.Entries() {
			for _, level := range Keys {
				hex := entry.Shades[level]
				c, err := p.ToRGB(hex)
				require.NoError(t, err)
				assert.Equal(t, hex, c.Hex(), "%s %s", entry.Name, level)
				assert.Equal(t, "#"+hex, FormatHex(c, Prefixed))
			}
		}
	}
}

func TestShadedSequence(t *testing.T) {
	p := mustLoad(t, DefaultTable, Bare)

	tests := []struct {
		n    int
		want []string
	}{
		{2, []string{"080e11", "cadee7"}},
		{3, []string{"080e11", "69767c", "cadee7"}},
		{4, []string{"080e11", "495358", "8999a0", "cadee7"}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.n), func(t *testing.T) {
			sequence, err := p.ShadedSequence(0, tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.want, sequence)
		})
	}
}

// Halfway channels round up, e.g. 0x1c in dark_cyan where 0x1b.8 sits exactly
// between two values.
func TestShadedSequenceRoundsHalves(t *testing.T) {
	p := mustLoad(t, "ocean", Bare)

	tests := []struct {
		name string
		n    int
		step int
		want string
	}{
		{"dark_cyan", 23, 3, "1c3b3c"},
		{"auburn", 27, 15, "997879"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index, err := p.Index(tt.name)
			require.NoError(t, err)

			sequence, err := p.ShadedSequence(index, tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.want, sequence[tt.step])
		})
	}
}

func TestLerpMatchesExactRounding(t *testing.T) {
	for _, steps := range []int{1, 2, 21, 22, 63} {
		for from := 0; from < 256; from += 5 {
			for to := 0; to < 256; to += 7 {
				for step := 0; step <= steps; step++ {
					// The exact value is num/steps. The result must be the
					// nearest integer, halves going up.
					num := from*steps + (to-from)*step
					got := int(lerp(uint8(from), uint8(to), step, steps))
					assert.True(t,
						2*num-steps < 2*got*steps && 2*got*steps <= 2*num+steps,
						"from=%d to=%d step=%d/%d got=%d", from, to, step, steps, got)
				}
			}
		}
	}
	assert.Equal(t, uint8(8), lerp(0, 11, 15, 22))
}

func TestShadedSequenceRejectsShortLengths(t *testing.T) {
	p := mustLoad(t, DefaultTable, Bare)

	for _, n := range []int{1, 0, -3} {
		_, err := p.ShadedSequence(0, n)
		assert.True(t, errors.Is(err, ErrOutOfRange), "n=%d", n)
	}
}

func TestShadedSequenceProperties(t *testing.T) {
	for _, table := range TableNames() {
		p := mustLoad(t, table, Bare)

		for index := 0; index < p.Size(); index++ {
			dark, _ := p.DarkShade(index)
			light, _ := p.LightShade(index)

			for _, n := range []int{2, 5, 11, 32} {
				sequence, err := p.ShadedSequence(index, n)
				require.NoError(t, err)
				require.Len(t, sequence, n)
				assert.Equal(t, dark, sequence[0])
				assert.Equal(t, light, sequence[n-1])

				previous, _ := p.ToRGB(sequence[0])
				for _, hex := range sequence[1:] {
					require.Regexp(t, bareHex, hex)
					current, _ := p.ToRGB(hex)
					assertStep(t, previous.R, current.R, dark, light, 0)
					assertStep(t, previous.G, current.G, dark, light, 1)
					assertStep(t, previous.B, current.B, dark, light, 2)
					previous = current
				}
			}
		}
	}
}

// Each channel moves in the direction of the light shade and never back.
func assertStep(t *testing.T, previous, current uint8, dark, light string, channel int) {
	t.Helper()
	from, _ := ParseHex(dark, Bare)
	to, _ := ParseHex(light, Bare)
	ends := [][2]uint8{{from.R, to.R}, {from.G, to.G}, {from.B, to.B}}[channel]

	switch {
	case ends[0] < ends[1]:
		assert.GreaterOrEqual(t, current, previous)
	case ends[0] > ends[1]:
		assert.LessOrEqual(t, current, previous)
	default:
		assert.Equal(t, previous, current)
	}
}

func TestEntriesAreCopies(t *testing.T) {
	p := mustLoad(t, DefaultTable, Bare)

	entries := p.Entries()
	require.Len(t, entries, p.Size())
	entries[0].Shades[LevelDefault] = "000000"

	value, _ := p.Get(0)
	assert.Equal(t, "264653", value)
}
