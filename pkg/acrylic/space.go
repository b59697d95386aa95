package acrylic

import (
	"fmt"
	"strings"
)

// Space identifies one of the supported colorspaces.
type Space int

const (
	// SpaceRGB is red, green, blue as integers in [0, 255]. It is the canonical hub.
	SpaceRGB Space = iota

	// SpaceHSL is hue [0, 360], saturation and lightness [0, 100].
	SpaceHSL

	// SpaceHSV is hue [0, 360], saturation and value [0, 100].
	SpaceHSV

	// SpaceRYB is red, yellow, blue on the painter's wheel, integers in [0, 255].
	SpaceRYB

	// SpaceHex is a "#RRGGBB" string.
	SpaceHex

	// SpaceName is a CSS color name.
	SpaceName

	spaceCount
)

var spaceIDs = [spaceCount]string{
	SpaceRGB:  "rgb",
	SpaceHSL:  "hsl",
	SpaceHSV:  "hsv",
	SpaceRYB:  "ryb",
	SpaceHex:  "hex",
	SpaceName: "name",
}

// Spaces returns every supported colorspace in declaration order.
func Spaces() []Space {
	spaces := make([]Space, 0, spaceCount)
	for s := SpaceRGB; s < spaceCount; s++ {
		spaces = append(spaces, s)
	}
	return spaces
}

// String returns the lowercase identifier of the space, e.g. "hsl".
func (s Space) String() string {
	if !s.valid() {
		return fmt.Sprintf("Space(%d)", int(s))
	}
	return spaceIDs[s]
}

func (s Space) valid() bool {
	return s >= SpaceRGB && s < spaceCount
}

// ParseSpace maps an identifier such as "rgb" or "HSV" to its Space.
func ParseSpace(id string) (Space, error) {
	norm := strings.ToLower(strings.TrimSpace(id))
	for s, name := range spaceIDs {
		if name == norm {
			return Space(s), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownColorspace, id)
}
