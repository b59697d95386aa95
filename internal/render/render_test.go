package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dyluth/acrylic/pkg/acrylic"
	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func noColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func aquamarine() Record {
	return NewRecord("", acrylic.MustNew(acrylic.WithName("aquamarine")))
}

func TestNewRecord(t *testing.T) {
	r := aquamarine()
	want := Record{
		Input: "name(aquamarine)",
		Space: "name",
		RGB:   [3]int{127, 255, 212},
		HSL:   [3]float64{159.84, 100, 74.9},
		HSV:   [3]float64{159.84, 50.2, 100},
		RYB:   [3]int{0, 77, 128},
		Hex:   "#7FFFD4",
		Name:  "aquamarine",
	}
	if diff := cmp.Diff(want, r); diff != "" {
		t.Errorf("NewRecord mismatch (-want +got):\n%s", diff)
	}

	r = NewRecord("#ff0000", acrylic.MustNew(acrylic.WithHex("#ff0000")))
	assert.Equal(t, "#ff0000", r.Input)
	assert.Equal(t, "red", r.Name)
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"default", "json", "YAML"} {
		_, err := ParseFormat(name)
		assert.NoError(t, err, name)
	}
	_, err := ParseFormat("xml")
	assert.ErrorContains(t, err, "unknown output format: xml")
}

func TestTable(t *testing.T) {
	noColor(t)

	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer
		assert.Equal(t, 0, Table(&buf, nil))
		assert.Equal(t, "No colors\n", buf.String())
	})

	t.Run("rows", func(t *testing.T) {
		var buf bytes.Buffer
		records := []Record{aquamarine(), NewRecord("", acrylic.MustNew())}
		assert.Equal(t, 2, Table(&buf, records))

		lines := strings.Split(buf.String(), "\n")
		require.GreaterOrEqual(t, len(lines), 6)
		assert.True(t, strings.HasPrefix(lines[0], "   INPUT"))
		assert.Contains(t, lines[2], "name(aquamarine)")
		assert.Contains(t, lines[2], "127, 255, 212")
		assert.Contains(t, lines[2], "159.84, 100, 74.9")
		assert.Contains(t, lines[2], "#7FFFD4")
		assert.True(t, strings.HasSuffix(lines[2], "aquamarine"))
		assert.Contains(t, lines[3], "rgb(0, 0, 0)")
		assert.True(t, strings.HasSuffix(lines[3], "black"))
		assert.Equal(t, "2 colors", lines[5])

		// Columns line up with the header.
		assert.Equal(t, strings.Index(lines[0], "HEX"), strings.Index(lines[2], "#7FFFD4"))
		assert.Equal(t, strings.Index(lines[0], "HEX"), strings.Index(lines[3], "#000000"))
	})
}

func TestFormatInput(t *testing.T) {
	assert.Equal(t, "-", formatInput("  "))
	assert.Equal(t, "short", formatInput("short"))
	assert.Equal(t, strings.Repeat("a", 20), formatInput(strings.Repeat("a", 20)))
	assert.Equal(t, strings.Repeat("a", 17)+"...", formatInput(strings.Repeat("a", 21)))

	wide := formatInput(strings.Repeat("色", 15))
	assert.LessOrEqual(t, runewidth.StringWidth(wide), 20)
	assert.True(t, strings.HasSuffix(wide, "..."))
}

func TestTable_WideInputKeepsColumns(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer
	records := []Record{
		NewRecord("赤", acrylic.MustNew(acrylic.WithName("red"))),
		NewRecord("red", acrylic.MustNew(acrylic.WithName("red"))),
	}
	Table(&buf, records)
	lines := strings.Split(buf.String(), "\n")
	col := func(line string) int {
		return runewidth.StringWidth(line[:strings.Index(line, "#FF0000")])
	}
	assert.Equal(t, col(lines[2]), col(lines[3]))
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, []Record{aquamarine()}))
	assert.JSONEq(t, `[{
		"input": "name(aquamarine)",
		"space": "name",
		"rgb": [127, 255, 212],
		"hsl": [159.84, 100, 74.9],
		"hsv": [159.84, 50.2, 100],
		"ryb": [0, 77, 128],
		"hex": "#7FFFD4",
		"name": "aquamarine"
	}]`, buf.String())

	buf.Reset()
	require.NoError(t, JSON(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, YAML(&buf, []Record{aquamarine()}))
	assert.Contains(t, buf.String(), "rgb: [127, 255, 212]")
	assert.Contains(t, buf.String(), "hex: '#7FFFD4'")

	var back []Record
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, []Record{aquamarine()}, back)
}

func TestWrite(t *testing.T) {
	noColor(t)
	records := Records([]*acrylic.Color{acrylic.MustNew(acrylic.WithHex("#FF0000"))})

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, OutputFormatDefault, records))
	assert.Contains(t, buf.String(), "hex(#FF0000)")

	buf.Reset()
	require.NoError(t, Write(&buf, OutputFormatJSON, records))
	assert.Contains(t, buf.String(), `"name": "red"`)

	buf.Reset()
	require.NoError(t, Write(&buf, OutputFormatYAML, records))
	assert.Contains(t, buf.String(), "name: red")

	assert.Error(t, Write(&buf, OutputFormat("xml"), records))
}
