package palette

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// A shade key of an entry. The default key is the zero value, the rest are
// the nine numeric levels from the darkest (100) to the lightest (900).
type Level int

const (
	LevelDefault Level = 0
	Level100     Level = 100
	Level200     Level = 200
	Level300     Level = 300
	Level400     Level = 400
	Level500     Level = 500
	Level600     Level = 600
	Level700     Level = 700
	Level800     Level = 800
	Level900     Level = 900
)

// The numeric levels in order, darkest first.
var Levels = []Level{
	Level100, Level200, Level300, Level400, Level500,
	Level600, Level700, Level800, Level900,
}

// Every key an entry needs to define.
var Keys = append([]Level{LevelDefault}, Levels...)

const (
	DarkestLevel  = Level100
	LightestLevel = Level900
)

func (l Level) String() string {
	if l == LevelDefault {
		return "DEFAULT"
	}
	return strconv.Itoa(int(l))
}

// Reports whether the level is one of the nine numeric levels.
func (l Level) Numeric() bool {
	return l >= Level100 && l <= Level900 && l%100 == 0
}

func (l Level) valid() bool {
	return l == LevelDefault || l.Numeric()
}

// Parses either "DEFAULT" or one of the numeric levels.
func ParseLevel(text string) (Level, error) {
	text = strings.TrimSpace(text)
	if strings.EqualFold(text, "default") {
		return LevelDefault, nil
	}

	value, err := strconv.Atoi(text)
	if err != nil || !Level(value).Numeric() {
		return 0, errors.Wrapf(ErrOutOfRange, "unknown shade level %q", text)
	}
	return Level(value), nil
}
