package palette

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// The hex convention of a palette.
type HexStyle int

const (
	// 264653
	Bare HexStyle = iota
	// #264653
	Prefixed
)

func (s HexStyle) String() string {
	if s == Prefixed {
		return "prefixed"
	}
	return "bare"
}

// An 8-bit RGB triple.
type RGB struct {
	R, G, B uint8
}

// Lowercase, zero-padded and without a prefix.
func (c RGB) Hex() string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

func (c RGB) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.R, c.G, c.B)
}

// Parses a 6 digit hex color written in the given style. Bare values must
// not carry a #, prefixed values must.
func ParseHex(hex string, style HexStyle) (RGB, error) {
	digits := hex
	switch style {
	case Prefixed:
		if !strings.HasPrefix(digits, "#") {
			return RGB{}, errors.Wrapf(ErrParse, "%q is missing the # prefix", hex)
		}
		digits = digits[1:]

	default:
		if strings.HasPrefix(digits, "#") {
			return RGB{}, errors.Wrapf(ErrParse, "%q has an unexpected # prefix", hex)
		}
	}

	return parseDigits(hex, digits)
}

// Formats the color in the given style.
func FormatHex(c RGB, style HexStyle) string {
	return format(c.Hex(), style)
}

func format(digits string, style HexStyle) string {
	if style == Prefixed {
		return "#" + digits
	}
	return digits
}

// Accepts either style, used when reading literal tables.
func normalize(hex string) (string, error) {
	c, err := parseDigits(hex, strings.TrimPrefix(hex, "#"))
	if err != nil {
		return "", err
	}
	return c.Hex(), nil
}

func parseDigits(original string, digits string) (RGB, error) {
	if len(digits) != 6 {
		return RGB{}, errors.Wrapf(ErrParse, "%q is not 6 hex digits", original)
	}

	value, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return RGB{}, errors.Wrapf(ErrParse, "%q has non-hex characters", original)
	}

	return RGB{
		R: uint8(value >> 16),
		G: uint8(value >> 8),
		B: uint8(value),
	}, nil
}
