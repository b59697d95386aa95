package filter

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dyluth/acrylic/pkg/acrylic"
)

// Criteria defines filtering criteria for named colors.
// All filters are ANDed together - a color must match ALL criteria to pass.
type Criteria struct {
	Contains string    // Substring of the normalized name, empty = no filter
	NameGlob string    // Glob pattern for the name, empty = no filter
	Hue      *HueRange // HSL hue window, nil = no filter
}

// HueRange is an inclusive window on the hue wheel. A window with From > To
// wraps through 0, so 330:30 selects reds.
type HueRange struct {
	From float64
	To   float64
}

// ParseHueRange reads "lo:hi" in degrees.
func ParseHueRange(s string) (*HueRange, error) {
	lo, hi, ok := strings.Cut(s, ":")
	if !ok {
		return nil, fmt.Errorf("invalid hue range %q (expected lo:hi)", s)
	}
	from, err := strconv.ParseFloat(strings.TrimSpace(lo), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid hue range %q: %w", s, err)
	}
	to, err := strconv.ParseFloat(strings.TrimSpace(hi), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid hue range %q: %w", s, err)
	}
	for _, h := range []float64{from, to} {
		if h < 0 || h > 360 {
			return nil, fmt.Errorf("invalid hue range %q: %g is outside 0-360", s, h)
		}
	}
	return &HueRange{From: from, To: to}, nil
}

// Contains reports whether hue h falls inside the window.
func (r HueRange) Contains(h float64) bool {
	if r.From <= r.To {
		return h >= r.From && h <= r.To
	}
	return h >= r.From || h <= r.To
}

// Validate checks the glob pattern.
func (c *Criteria) Validate() error {
	if c.NameGlob != "" {
		if _, err := filepath.Match(c.NameGlob, ""); err != nil {
			return fmt.Errorf("invalid name pattern %q: %w", c.NameGlob, err)
		}
	}
	return nil
}

// Matches returns true if the named color matches all filter criteria.
// Empty criteria values are treated as "match all" for that criterion.
func (c *Criteria) Matches(name string, col *acrylic.Color) bool {
	if c.Contains != "" && !strings.Contains(name, acrylic.NormalizeName(c.Contains)) {
		return false
	}

	if c.NameGlob != "" {
		matched, err := filepath.Match(strings.ToLower(c.NameGlob), name)
		if err != nil || !matched {
			return false
		}
	}

	// Grays have no hue and never match a hue window.
	if c.Hue != nil {
		hsl := col.HSL()
		if hsl.S == 0 || !c.Hue.Contains(hsl.H) {
			return false
		}
	}

	return true
}

// HasFilters returns true if any filters are active.
func (c *Criteria) HasFilters() bool {
	return c.Contains != "" || c.NameGlob != "" || c.Hue != nil
}
