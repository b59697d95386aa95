package acrylic

import (
	"slices"
	"strings"

	"golang.org/x/image/colornames"
)

// NoName is returned by RGBToName when no table entry has exactly that RGB.
const NoName = "-"

var (
	// nameList holds every table key in sorted order.
	nameList []string

	// nameByRGB maps each RGB triple to the alphabetically first name
	// carrying it (aqua wins over cyan, gray over grey).
	nameByRGB map[RGB]string
)

func init() {
	nameList = make([]string, 0, len(colornames.Map))
	for name := range colornames.Map {
		nameList = append(nameList, name)
	}
	slices.Sort(nameList)

	nameByRGB = make(map[RGB]string, len(nameList))
	for _, name := range nameList {
		c := colornames.Map[name]
		key := RGB{R: int(c.R), G: int(c.G), B: int(c.B)}
		if _, exists := nameByRGB[key]; !exists {
			nameByRGB[key] = name
		}
	}
}

// Names returns every color name in the table, sorted.
func Names() []string {
	return slices.Clone(nameList)
}

// NormalizeName trims, lowercases and strips all whitespace, so that
// " Light Sea Green " becomes "lightseagreen".
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "")
}

func lookupName(name string) (RGB, bool) {
	c, ok := colornames.Map[name]
	if !ok {
		return RGB{}, false
	}
	return RGB{R: int(c.R), G: int(c.G), B: int(c.B)}, true
}
