// Package render writes colors as a human-readable table or as JSON/YAML
// records for scripting.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dyluth/acrylic/pkg/acrylic"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"
)

// OutputFormat selects how colors are written.
type OutputFormat string

const (
	OutputFormatDefault OutputFormat = "default"
	OutputFormatJSON    OutputFormat = "json"
	OutputFormatYAML    OutputFormat = "yaml"
)

// ParseFormat validates a format name.
func ParseFormat(name string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(name)); f {
	case OutputFormatDefault, OutputFormatJSON, OutputFormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format: %s", name)
}

// Record is every representation of one color.
type Record struct {
	Input string     `json:"input" yaml:"input"`
	Space string     `json:"space" yaml:"space"`
	RGB   [3]int     `json:"rgb" yaml:"rgb,flow"`
	HSL   [3]float64 `json:"hsl" yaml:"hsl,flow"`
	HSV   [3]float64 `json:"hsv" yaml:"hsv,flow"`
	RYB   [3]int     `json:"ryb" yaml:"ryb,flow"`
	Hex   string     `json:"hex" yaml:"hex"`
	Name  string     `json:"name" yaml:"name"`
}

// NewRecord resolves every representation of c. input is what the user
// typed; when empty the color's own text form is used.
func NewRecord(input string, c *acrylic.Color) Record {
	if input == "" {
		input = c.String()
	}
	rgb, hsl, hsv, ryb := c.RGB(), c.HSL(), c.HSV(), c.RYB()
	return Record{
		Input: input,
		Space: c.Space().String(),
		RGB:   [3]int{rgb.R, rgb.G, rgb.B},
		HSL:   [3]float64{hsl.H, hsl.S, hsl.L},
		HSV:   [3]float64{hsv.H, hsv.S, hsv.V},
		RYB:   [3]int{ryb.R, ryb.Y, ryb.B},
		Hex:   c.Hex(),
		Name:  c.Name(),
	}
}

// Records builds one record per color, using the color's text form as input.
func Records(colors []*acrylic.Color) []Record {
	records := make([]Record, len(colors))
	for i, c := range colors {
		records[i] = NewRecord("", c)
	}
	return records
}

// Write dispatches to the writer for format.
func Write(w io.Writer, format OutputFormat, records []Record) error {
	switch format {
	case OutputFormatDefault:
		Table(w, records)
		return nil
	case OutputFormatJSON:
		return JSON(w, records)
	case OutputFormatYAML:
		return YAML(w, records)
	}
	return fmt.Errorf("unknown output format: %s", format)
}

// inputWidth is the display width of the INPUT column.
const inputWidth = 20

// The INPUT column is padded by display width, not by bytes.
const rowFormat = "%s %s %-13s %-21s %-21s %-13s %-7s %s\n"

// Table writes records as a padded table led by a true-color swatch.
// Returns the number of records written.
func Table(w io.Writer, records []Record) int {
	if len(records) == 0 {
		fmt.Fprintln(w, "No colors")
		return 0
	}

	fmt.Fprintf(w, rowFormat, "  ", runewidth.FillRight("INPUT", inputWidth), "RGB", "HSL", "HSV", "RYB", "HEX", "NAME")
	fmt.Fprintf(w, rowFormat, "  ",
		strings.Repeat("-", inputWidth), strings.Repeat("-", 13), strings.Repeat("-", 21),
		strings.Repeat("-", 21), strings.Repeat("-", 13), strings.Repeat("-", 7), "----")

	for _, r := range records {
		fmt.Fprintf(w, rowFormat,
			color.BgRGB(r.RGB[0], r.RGB[1], r.RGB[2]).Sprint("  "),
			runewidth.FillRight(formatInput(r.Input), inputWidth),
			formatInts(r.RGB),
			formatReals(r.HSL),
			formatReals(r.HSV),
			formatInts(r.RYB),
			r.Hex,
			r.Name,
		)
	}

	noun := "color"
	if len(records) != 1 {
		noun = "colors"
	}
	fmt.Fprintf(w, "\n%d %s\n", len(records), noun)

	return len(records)
}

// JSON writes records as a pretty-printed JSON array.
func JSON(w io.Writer, records []Record) error {
	if records == nil {
		records = []Record{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal colors to JSON: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write JSON output: %w", err)
	}
	fmt.Fprintln(w)
	return nil
}

// YAML writes records as a YAML sequence.
func YAML(w io.Writer, records []Record) error {
	if records == nil {
		records = []Record{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("failed to write YAML output: %w", err)
	}
	return enc.Close()
}

// formatInput truncates long inputs to the column's display width.
func formatInput(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return "-"
	}
	return runewidth.Truncate(input, inputWidth, "...")
}

func formatInts(v [3]int) string {
	return fmt.Sprintf("%d, %d, %d", v[0], v[1], v[2])
}

func formatReals(v [3]float64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.FormatFloat(x, 'f', -1, 64)
	}
	return strings.Join(parts, ", ")
}
