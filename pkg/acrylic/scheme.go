package acrylic

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
)

// SchemeKind selects a color harmony.
type SchemeKind int

// Scheme kinds, named after the harmony they produce.
const (
	Analogous SchemeKind = iota + 1
	Complementary
	Triadic
	Tetradic
	Monochromatic
	Shades
	SplitComplementary
	AccentedAnalogous
	Rectangle
	NearComplementary
	ComplementaryTriadic
	ModifiedTriadic
)

// Aliases.
const (
	Triangle               = Triadic
	Square                 = Tetradic
	AnalogousComplementary = AccentedAnalogous
)

var schemeNames = map[SchemeKind]string{
	Analogous:            "analogous",
	Complementary:        "complementary",
	Triadic:              "triadic",
	Tetradic:             "tetradic",
	Monochromatic:        "monochromatic",
	Shades:               "shades",
	SplitComplementary:   "split-complementary",
	AccentedAnalogous:    "accented-analogous",
	Rectangle:            "rectangle",
	NearComplementary:    "near-complementary",
	ComplementaryTriadic: "complementary-triadic",
	ModifiedTriadic:      "modified-triadic",
}

var schemeAliases = map[string]SchemeKind{
	"triangle":                Triadic,
	"square":                  Tetradic,
	"analogous-complementary": AccentedAnalogous,
}

func (k SchemeKind) String() string {
	if name, ok := schemeNames[k]; ok {
		return name
	}
	return fmt.Sprintf("SchemeKind(%d)", int(k))
}

// SchemeKinds returns every scheme kind in declaration order.
func SchemeKinds() []SchemeKind {
	kinds := make([]SchemeKind, 0, len(schemeNames))
	for k := Analogous; k <= ModifiedTriadic; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// ParseSchemeKind maps a name such as "split-complementary" (or
// "split_complementary", "SplitComplementary") to its kind.
func ParseSchemeKind(name string) (SchemeKind, error) {
	norm := strings.ToLower(strings.TrimSpace(name))
	norm = strings.NewReplacer("_", "-", " ", "-").Replace(norm)
	if k, ok := schemeAliases[norm]; ok {
		return k, nil
	}
	flat := strings.ReplaceAll(norm, "-", "")
	for k, n := range schemeNames {
		if n == norm || strings.ReplaceAll(n, "-", "") == flat {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownScheme, name)
}

// hueDeltas are offsets on the hue wheel, as fractions of a full turn.
var hueDeltas = map[SchemeKind][]float64{
	Analogous:            {1.0 / 24, -1.0 / 24, 1.0 / 12, -1.0 / 12},
	Complementary:        {1.0 / 2},
	Triadic:              {1.0 / 3, -1.0 / 3},
	Tetradic:             {1.0 / 4, -1.0 / 4, 1.0 / 2},
	SplitComplementary:   {1.0/2 - 1.0/12, 1.0/2 + 1.0/12},
	AccentedAnalogous:    {1.0 / 12, -1.0 / 12, 1.0 / 2},
	Rectangle:            {1.0 / 2, 1.0/2 - 1.0/8, 1.0 / 8},
	NearComplementary:    {1.0/2 - 1.0/12},
	ComplementaryTriadic: {1.0 / 2, 1.0 / 4},
	ModifiedTriadic:      {1.0 / 12, 1.0 / 6},
}

type schemeConfig struct {
	inRGB bool
	fuzzy float64
	rng   *rand.Rand
}

// SchemeOption customizes Scheme.
type SchemeOption func(*schemeConfig)

// InRGB computes hue offsets on the RGB wheel instead of the RYB wheel.
func InRGB() SchemeOption {
	return func(c *schemeConfig) { c.inRGB = true }
}

// Fuzzy adds a random offset in [-deg, +deg] to each generated hue. Random
// picks a suggested amount, usually between 18 and 72 degrees.
func Fuzzy(deg float64) SchemeOption {
	return func(c *schemeConfig) { c.fuzzy = deg }
}

// WithRand draws every random value of the scheme from rng.
func WithRand(rng *rand.Rand) SchemeOption {
	return func(c *schemeConfig) { c.rng = rng }
}

// Scheme returns the colors harmonizing with c under kind. The base color
// itself is not included.
func (c *Color) Scheme(kind SchemeKind, opts ...SchemeOption) ([]*Color, error) {
	cfg := schemeConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	v := NewValidator(cfg.rng)

	hueCh := registry[SpaceHSL].Channels[0]
	turn := hueCh.Max

	fuzzy := cfg.fuzzy
	if fuzzy == Random {
		fuzzy = 0
		if intN(cfg.rng, 6) != 0 {
			fuzzy = turn/20 + float64Of(cfg.rng)*(turn/5-turn/20)
		}
	} else if err := inBounds(fuzzy, Channel{Name: "fuzzy", Min: hueCh.Min, Max: hueCh.Max}); err != nil {
		return nil, err
	}

	switch kind {
	case Monochromatic:
		return c.monochromatic(v)
	case Shades:
		return c.shades(v)
	}

	deltas, ok := hueDeltas[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownScheme, kind)
	}

	hsv := c.HSV()
	colors := make([]*Color, 0, len(deltas))
	for _, d := range deltas {
		jitter := -fuzzy + float64Of(cfg.rng)*2*fuzzy
		h := math.Mod(c.HSL().H+d*turn+jitter, turn)
		if h < 0 {
			h += turn
		}
		next, err := NewWith(v, WithHSV([]any{h, hsv.S, hsv.V}))
		if err != nil {
			return nil, err
		}
		if !cfg.inRGB {
			next = next.InRYB()
		}
		colors = append(colors, next)
	}
	return colors, nil
}

// valueRange is the span of HSV value used by monochromatic and shades.
func valueRange() Range {
	ch := registry[SpaceHSV].Channels[2]
	return Between(ch.Max/5, ch.Max)
}

func (c *Color) monochromatic(v *Validator) ([]*Color, error) {
	step := registry[SpaceHSV].Channels[1].Max * 30 / 100
	s := c.HSV().S
	sats := []float64{s, s + step, s, s + step}
	if s > step {
		sats = []float64{s, s - step, s, s - step}
	}
	colors := make([]*Color, 0, len(sats))
	for _, sat := range sats {
		next, err := NewWith(v, WithHSV([]any{c.HSL().H, sat, valueRange()}))
		if err != nil {
			return nil, err
		}
		colors = append(colors, next)
	}
	return colors, nil
}

func (c *Color) shades(v *Validator) ([]*Color, error) {
	colors := make([]*Color, 0, 4)
	for range 4 {
		next, err := NewWith(v, WithHSV([]any{c.HSL().H, c.HSV().S, valueRange()}))
		if err != nil {
			return nil, err
		}
		colors = append(colors, next)
	}
	return colors, nil
}
