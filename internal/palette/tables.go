package palette

import (
	"github.com/pkg/errors"
)

const DefaultTable = "earth"

var tables = []struct {
	name    string
	entries []Entry
}{
	{"earth", earth},
	{"ocean", ocean},
}

// Names of the built-in tables, in order.
func TableNames() []string {
	names := make([]string, 0, len(tables))
	for _, table := range tables {
		names = append(names, table.name)
	}
	return names
}

// Returns a copy of the entries of a built-in table.
func Table(name string) ([]Entry, error) {
	for _, table := range tables {
		if table.name != name {
			continue
		}

		entries := make([]Entry, 0, len(table.entries))
		for _, entry := range table.entries {
			shades := make(map[Level]string, len(entry.Shades))
			for level, hex := range entry.Shades {
				shades[level] = hex
			}
			entries = append(entries, Entry{Name: entry.Name, Shades: shades})
		}
		return entries, nil
	}

	return nil, errors.Wrapf(ErrConfiguration, "unknown table %q", name)
}

// Builds a shade map from the default shade followed by the numeric levels,
// darkest first. Missing levels are left out and caught by New.
func shades(def string, levels ...string) map[Level]string {
	shades := map[Level]string{LevelDefault: def}
	for i, hex := range levels {
		if i < len(Levels) {
			shades[Levels[i]] = hex
		}
	}
	return shades
}

var earth = []Entry{
	{Name: "charcoal", Shades: shades("#264653", "#080e11", "#0f1c22", "#172b32", "#1f3943", "#264653", "#3f7489", "#609db6", "#95bece", "#cadee7")},
	{Name: "persian_green", Shades: shades("#2a9d8f", "#081f1d", "#113f39", "#195e56", "#217e73", "#2a9d8f", "#3acbba", "#6cd8cb", "#9de5dc", "#cef2ee")},
	{Name: "saffron", Shades: shades("#e9c46a", "#3b2c09", "#755912", "#b0851a", "#e0ad2e", "#e9c46a", "#edd086", "#f1dca4", "#f6e7c3", "#faf3e1")},
	{Name: "sandy_brown", Shades: shades("#f4a261", "#401f04", "#803e09", "#c05e0d", "#f07e22", "#f4a261", "#f6b681", "#f8c8a1", "#fbdac0", "#fdede0")},
	{Name: "burnt_sienna", Shades: shades("#e76f51", "#371107", "#6e220f", "#a43316", "#db441e", "#e76f51", "#ec8b73", "#f1a896", "#f5c5b9", "#fae2dc")},
}

var ocean = []Entry{
	{Name: "rich_black", Shades: shades("#001219", "#000405", "#00070a", "#000b0f", "#000f14", "#001219", "#00587a", "#009ddb", "#3dc8ff", "#9ee4ff")},
	{Name: "midnight_green", Shades: shades("#005f73", "#001417", "#00272f", "#003b46", "#004e5e", "#005f73", "#00a3c4", "#13d8ff", "#62e5ff", "#b0f2ff")},
	{Name: "dark_cyan", Shades: shades("#0a9396", "#021d1e", "#043b3b", "#065859", "#087577", "#0a9396", "#0ed3d7", "#39eff2", "#7bf4f7", "#bdfafb")},
	{Name: "tiffany_blue", Shades: shades("#94d2bd", "#153229", "#2a6551", "#3f977a", "#61bd9e", "#94d2bd", "#a9dbca", "#bee4d7", "#d4ede5", "#e9f6f2")},
	{Name: "vanilla", Shades: shades("#e9d8a6", "#403410", "#7f6720", "#bf9b30", "#d9bc66", "#e9d8a6", "#ede0b7", "#f2e7c9", "#f6efdb", "#fbf7ed")},
	{Name: "gamboge", Shades: shades("#ee9b00", "#301f00", "#603e00", "#905d00", "#c07d00", "#ee9b00", "#ffb327", "#ffc65d", "#ffd993", "#ffecc9")},
	{Name: "alloy_orange", Shades: shades("#ca6702", "#281400", "#512901", "#793d01", "#a25202", "#ca6702", "#fd850d", "#fda349", "#fec286", "#fee0c2")},
	{Name: "rust", Shades: shades("#bb3e03", "#250c01", "#4a1801", "#702402", "#953102", "#bb3e03", "#f95104", "#fc7c41", "#fda880", "#fed3c0")},
	{Name: "rufous", Shades: shades("#ae2012", "#230604", "#460d07", "#69130b", "#8c190f", "#ae2012", "#e72b1a", "#ed6053", "#f3958d", "#f9cac6")},
	{Name: "auburn", Shades: shades("#9b2226", "#1f0708", "#3e0e0f", "#5d1417", "#7c1b1e", "#9b2226", "#cf2e33", "#dc6165", "#e89698", "#f3cacc")},
}
