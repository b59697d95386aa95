package acrylic

import (
	"encoding/json"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestString_UsesConstructionSpace(t *testing.T) {
	tests := []struct {
		color *Color
		want  string
	}{
		{MustNew(WithRGB([]int{62, 244, 255})), "rgb(62, 244, 255)"},
		{MustNew(WithHSL([]any{183, 76, 100})), "hsl(183, 76, 100)"},
		{MustNew(WithHSV([]any{183.42, 75.69, 100})), "hsv(183.42, 75.69, 100)"},
		{MustNew(WithRYB([]int{0, 94, 193})), "ryb(0, 94, 193)"},
		{MustNew(WithHex("3ef4ff")), "hex(#3EF4FF)"},
		{MustNew(WithName("Aqua Marine")), "name(aquamarine)"},
		{MustNew(), "rgb(0, 0, 0)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.color.String())
	}
}

func TestFormat_AnySpace(t *testing.T) {
	c := MustNew(WithName("aquamarine"))
	assert.Equal(t, "rgb(127, 255, 212)", c.Format(SpaceRGB))
	assert.Equal(t, "hsl(159.84, 100, 74.9)", c.Format(SpaceHSL))
	assert.Equal(t, "hex(#7FFFD4)", c.Format(SpaceHex))
	assert.Equal(t, "ryb(0, 77, 128)", c.Format(SpaceRYB))
	assert.Equal(t, "name(aquamarine)", c.Format(SpaceName))
	assert.Equal(t, "Space(9)()", c.Format(Space(9)))

	assert.Equal(t, "name(-)", MustNew(WithRGB([]int{1, 2, 3})).Format(SpaceName))
}

func TestParse_RoundTrip(t *testing.T) {
	v := NewValidator(rand.New(rand.NewPCG(3, 4)))
	for _, space := range Spaces() {
		for range 25 {
			c, err := NewWith(v, Input{id: space.String(), space: space, value: Random})
			require.NoError(t, err)

			parsed, err := Parse(c.String())
			require.NoError(t, err, c.String())
			assert.True(t, c.Equal(parsed), "%s reparsed as %s", c, parsed)
			assert.Equal(t, c.String(), parsed.String())
			assert.Equal(t, c.Space(), parsed.Space())
		}
	}
}

func TestParse_Forms(t *testing.T) {
	tests := map[string]RGB{
		"rgb(62, 244, 255)":   {62, 244, 255},
		" RGB ( 62,244,255 )": {62, 244, 255},
		"hsl(160, 100, 75)":   {128, 255, 212},
		"hex(#80ffd4)":        {128, 255, 212},
		"#80FFD4":             {128, 255, 212},
		"0x80ffd4ff":          {128, 255, 212},
		"name(aquamarine)":    {127, 255, 212},
		"Aqua Marine":         {127, 255, 212},
	}
	for in, want := range tests {
		c, err := Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, c.RGB(), in)
	}
}

func TestParse_RandomTokens(t *testing.T) {
	v := NewValidator(rand.New(rand.NewPCG(5, 6)))
	for range 100 {
		c, err := ParseWith(v, "rgb(10:20, random, -1:50)")
		require.NoError(t, err)
		rgb := c.RGB()
		assert.True(t, rgb.R >= 10 && rgb.R <= 20, rgb.R)
		assert.True(t, rgb.B >= 0 && rgb.B <= 50, rgb.B)

		c, err = ParseWith(v, "hsv(random)")
		require.NoError(t, err)
		assert.Equal(t, SpaceHSV, c.Space())

		c, err = ParseWith(v, "random")
		require.NoError(t, err)
		assert.Equal(t, SpaceRGB, c.Space())
	}
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse("cmyk(1, 2, 3, 4)")
	assert.ErrorIs(t, err, ErrUnknownColorspace)

	_, err = Parse("rgb(1, 2)")
	assert.ErrorIs(t, err, ErrShape)

	_, err = Parse("rgb(1.5, 2, 3)")
	assert.ErrorIs(t, err, ErrDatatype)

	_, err = Parse("rgb(1, 2, 300)")
	assert.ErrorIs(t, err, ErrRange)

	_, err = Parse("hex(#12)")
	assert.ErrorIs(t, err, ErrInvalidHex)

	_, err = Parse("definitely not a color")
	assert.ErrorIs(t, err, ErrInvalidName)
}

type swatch struct {
	Label string `json:"label" yaml:"label"`
	Color *Color `json:"color" yaml:"color"`
}

func TestMarshalJSON(t *testing.T) {
	in := swatch{Label: "sea", Color: MustNew(WithHSL([]any{160, 100, 75}))}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"label":"sea","color":"hsl(160, 100, 75)"}`, string(data))

	var out swatch
	require.NoError(t, json.Unmarshal(data, &out))
	assert.True(t, in.Color.Equal(out.Color))
	assert.Equal(t, SpaceHSL, out.Color.Space())
}

func TestMarshalYAML(t *testing.T) {
	in := swatch{Label: "sea", Color: MustNew(WithName("seagreen"))}
	data, err := yaml.Marshal(in)
	require.NoError(t, err)
	assert.Equal(t, "label: sea\ncolor: name(seagreen)\n", string(data))

	var out swatch
	require.NoError(t, yaml.Unmarshal(data, &out))
	assert.Equal(t, "seagreen", out.Color.Name())

	err = yaml.Unmarshal([]byte("color: [1, 2, 3]\n"), &out)
	assert.Error(t, err)
}

func TestUnmarshal_ConstructedColorIsImmutable(t *testing.T) {
	c := MustNew(WithRGB([]int{128, 255, 212}))

	err := c.UnmarshalText([]byte("rgb(1, 2, 3)"))
	assert.ErrorIs(t, err, ErrImmutable)

	err = json.Unmarshal([]byte(`"rgb(1, 2, 3)"`), c)
	assert.ErrorIs(t, err, ErrImmutable)

	var node yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(`"rgb(1, 2, 3)"`), &node))
	assert.ErrorIs(t, c.UnmarshalYAML(node.Content[0]), ErrImmutable)

	assert.Equal(t, RGB{128, 255, 212}, c.RGB())
}

func TestUnmarshal_ZeroColorDropsCachedBlack(t *testing.T) {
	var c Color
	assert.Equal(t, RGB{}, c.RGB())
	require.NoError(t, c.UnmarshalText([]byte("#FF0000")))
	assert.Equal(t, RGB{255, 0, 0}, c.RGB())
	assert.Equal(t, "red", c.Name())
	assert.Equal(t, "hex(#FF0000)", c.String())
}
