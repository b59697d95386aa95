package acrylic

import (
	"encoding/json"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded() *Validator {
	return NewValidator(rand.New(rand.NewPCG(1, 2)))
}

func TestValidate_ExactValues(t *testing.T) {
	v := seeded()

	rgb, err := v.ValidateRGB([]int{12, 23, 34})
	require.NoError(t, err)
	assert.Equal(t, RGB{12, 23, 34}, rgb)

	rgb, err = v.ValidateRGB([]any{"12", json.Number("23"), uint8(34)})
	require.NoError(t, err)
	assert.Equal(t, RGB{12, 23, 34}, rgb)

	rgb, err = v.ValidateRGB([3]float64{12, 23, 34})
	require.NoError(t, err)
	assert.Equal(t, RGB{12, 23, 34}, rgb)

	hsl, err := v.ValidateHSL([]any{160, 99.999, "75.126"})
	require.NoError(t, err)
	assert.Equal(t, HSL{160, 100, 75.13}, hsl)

	hsv, err := v.ValidateHSV(HSV{360, 0, 100})
	require.NoError(t, err)
	assert.Equal(t, HSV{360, 0, 100}, hsv)

	ryb, err := v.ValidateRYB(RGB{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, RYB{1, 2, 3}, ryb)
}

func TestValidate_ErrorKinds(t *testing.T) {
	v := seeded()

	tests := []struct {
		name  string
		raw   any
		space Space
		want  error
	}{
		{"too few channels", []int{1, 2}, SpaceRGB, ErrShape},
		{"too many channels", []int{1, 2, 3, 4}, SpaceHSL, ErrShape},
		{"range with one endpoint", []any{[]int{10}, 0, 0}, SpaceRGB, ErrShape},
		{"range with three endpoints", []any{[]int{12, 23, 34}, 0, 0}, SpaceRGB, ErrShape},
		{"not a sequence", 42, SpaceRGB, ErrDatatype},
		{"string for numeric space", "12,23,34", SpaceRGB, ErrDatatype},
		{"fraction for integer space", []any{12.5, 0, 0}, SpaceRGB, ErrDatatype},
		{"fraction string for integer space", []any{"12.5", 0, 0}, SpaceRYB, ErrDatatype},
		{"word for numeric channel", []any{"abcd", 0, 0}, SpaceHSV, ErrDatatype},
		{"map channel", []any{map[string]int{}, 0, 0}, SpaceRGB, ErrDatatype},
		{"negative channel", []int{-2, 0, 0}, SpaceRGB, ErrRange},
		{"channel above max", []int{0, 256, 0}, SpaceRGB, ErrRange},
		{"hue above max", []any{360.01, 0, 0}, SpaceHSL, ErrRange},
		{"range endpoint above max", []any{Between(10, 300), 0, 0}, SpaceRGB, ErrRange},
		{"bad hex", "#12345", SpaceHex, ErrInvalidHex},
		{"hex with bad digit", "#12345G", SpaceHex, ErrInvalidHex},
		{"hex of wrong type", []int{1}, SpaceHex, ErrDatatype},
		{"unknown name", "notacolor", SpaceName, ErrInvalidName},
		{"unknown space", []int{0, 0, 0}, Space(99), ErrUnknownColorspace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.Validate(tt.raw, tt.space)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidate_RangeBounds(t *testing.T) {
	v := seeded()
	for range 200 {
		rgb, err := v.ValidateRGB([]any{Between(10, 100), 0, 0})
		require.NoError(t, err)
		assert.True(t, rgb.R >= 10 && rgb.R <= 100, rgb.R)

		rgb, err = v.ValidateRGB([]any{[]int{100, 10}, 0, 0})
		require.NoError(t, err)
		assert.True(t, rgb.R >= 10 && rgb.R <= 100, rgb.R)

		rgb, err = v.ValidateRGB([]any{[]any{"12", 100.0}, 0, 0})
		require.NoError(t, err)
		assert.True(t, rgb.R >= 12 && rgb.R <= 100, rgb.R)

		hsl, err := v.ValidateHSL([]any{Between(350.5, 10.25), 0, 0})
		require.NoError(t, err)
		assert.True(t, hsl.H >= 10.25 && hsl.H <= 350.5, hsl.H)
		assert.Equal(t, roundTo(hsl.H, Precision), hsl.H)
	}
}

func TestValidate_ReversedRangeMatchesOrdered(t *testing.T) {
	a := NewValidator(rand.New(rand.NewPCG(7, 7)))
	b := NewValidator(rand.New(rand.NewPCG(7, 7)))
	for range 50 {
		x, err := a.ValidateRGB([]any{Between(200, 20), 0, 0})
		require.NoError(t, err)
		y, err := b.ValidateRGB([]any{Between(20, 200), 0, 0})
		require.NoError(t, err)
		assert.Equal(t, y, x)
	}
}

func TestValidate_RandomSentinel(t *testing.T) {
	v := seeded()
	for range 200 {
		rgb, err := v.ValidateRGB(Random)
		require.NoError(t, err)
		for _, ch := range []int{rgb.R, rgb.G, rgb.B} {
			assert.True(t, ch >= 0 && ch <= 255, ch)
		}

		rgb, err = v.ValidateRGB([]any{Random, 0, 0})
		require.NoError(t, err)
		assert.True(t, rgb.R >= 0 && rgb.R <= 255, rgb.R)
		assert.Equal(t, 0, rgb.G)

		rgb, err = v.ValidateRGB([]any{Between(Random, 100), 0, 0})
		require.NoError(t, err)
		assert.True(t, rgb.R >= 0 && rgb.R <= 100, rgb.R)

		rgb, err = v.ValidateRGB([]any{Between(100, Random), 0, 0})
		require.NoError(t, err)
		assert.True(t, rgb.R >= 100 && rgb.R <= 255, rgb.R)

		rgb, err = v.ValidateRGB([]any{Between(Random, Random), 0, 0})
		require.NoError(t, err)
		assert.True(t, rgb.R >= 0 && rgb.R <= 255, rgb.R)

		hsv, err := v.ValidateHSV([]any{Random, Between(-1.0, 40), 3})
		require.NoError(t, err)
		assert.True(t, hsv.H >= 0 && hsv.H <= 360, hsv.H)
		assert.True(t, hsv.S >= 0 && hsv.S <= 40, hsv.S)
		assert.Equal(t, 3.0, hsv.V)
	}
}

func TestValidate_RandomCoversWholeRange(t *testing.T) {
	v := seeded()
	seen := map[int]bool{}
	for range 2000 {
		rgb, err := v.ValidateRGB([]any{Between(0, 3), 0, 0})
		require.NoError(t, err)
		seen[rgb.R] = true
	}
	assert.Equal(t, map[int]bool{0: true, 1: true, 2: true, 3: true}, seen)
}

func TestValidate_Hex(t *testing.T) {
	v := seeded()
	tests := map[string]string{
		"#3DF5F5":   "#3DF5F5",
		"3df5f5":    "#3DF5F5",
		"0x3df5f5":  "#3DF5F5",
		"0X3DF5F5":  "#3DF5F5",
		"#0x3df5f5": "#3DF5F5",
		"#3DF5F5AA": "#3DF5F5",
		"3df5f5ff":  "#3DF5F5",
		"#3f5":      "#33FF55",
		"0xabc":     "#AABBCC",
		" #ABCDEF ": "#ABCDEF",
		"#a1B2c3D4": "#A1B2C3",
	}
	for in, want := range tests {
		got, err := v.Validate(in, SpaceHex)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	got, err := v.Validate(123, SpaceHex)
	require.NoError(t, err)
	assert.Equal(t, "#112233", got)

	for range 50 {
		got, err := v.Validate(Random, SpaceHex)
		require.NoError(t, err)
		s := got.(string)
		assert.Regexp(t, `^#[0-9A-F]{6}$`, s)
	}
}

func TestValidate_Name(t *testing.T) {
	v := seeded()
	for _, in := range []string{"aquamarine", " AquaMarine ", "aqua marine", "Aqua\tMarine"} {
		got, err := v.Validate(in, SpaceName)
		require.NoError(t, err, in)
		assert.Equal(t, "aquamarine", got)
	}

	names := Names()
	for range 50 {
		got, err := v.Validate(Random, SpaceName)
		require.NoError(t, err)
		assert.Contains(t, names, got)
	}
}

func TestSentinelNeverCollidesWithBounds(t *testing.T) {
	for _, space := range Spaces() {
		schema, err := Lookup(space)
		require.NoError(t, err)
		for _, ch := range schema.Channels {
			assert.GreaterOrEqual(t, ch.Min, 0.0, "%s %s", space, ch.Name)
			assert.LessOrEqual(t, ch.Min, ch.Max, "%s %s", space, ch.Name)
		}
	}
}
