package commands

import (
	"fmt"
	"log"

	"github.com/dyluth/acrylic/internal/printer"
	"github.com/dyluth/acrylic/internal/render"
	"github.com/dyluth/acrylic/pkg/acrylic"
	"github.com/spf13/cobra"
)

var (
	convertTo           string
	convertOutputFormat string
)

var convertCmd = &cobra.Command{
	Use:   "convert COLOR...",
	Short: "Show a color in every colorspace",
	Long: `Parse each COLOR and show it as RGB, HSL, HSV, RYB, hex and name.

A COLOR is space(values), a bare hex code, or a color name. Channels may be
"random" or a "lo:hi" range, in which case a value is drawn for them.

Output Formats:
  default - Table with a swatch and every representation
  json    - JSON array of records
  yaml    - YAML sequence of records

With --to, only the representation in that space is printed, one per line.

Examples:
  # Every representation of a hex code
  acrylic convert "#3EF4FF"

  # HSL to hex
  acrylic convert "hsl(160, 100, 75)" --to hex

  # Several colors as JSON
  acrylic convert aquamarine "rgb(12, 23, 34)" -o json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&convertTo, "to", "", "Print only this space: rgb, hsl, hsv, ryb, hex or name")
	convertCmd.Flags().StringVarP(&convertOutputFormat, "output", "o", "", "Output format: default, json or yaml (ignored with --to)")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	var target acrylic.Space
	if convertTo != "" {
		space, err := acrylic.ParseSpace(convertTo)
		if err != nil {
			return printer.Error(
				"unknown colorspace",
				fmt.Sprintf("Cannot convert to %q.", convertTo),
				[]string{"Supported spaces: " + spaceList()},
			)
		}
		target = space
	}

	records := make([]render.Record, 0, len(args))
	colors := make([]*acrylic.Color, 0, len(args))
	for _, arg := range args {
		c, err := acrylic.Parse(arg)
		if err != nil {
			return colorError(arg, err)
		}
		log.Printf("[INFO] Parsed %q as %s", arg, c)
		colors = append(colors, c)
		records = append(records, render.NewRecord(arg, c))
	}

	if convertTo != "" {
		for _, c := range colors {
			fmt.Fprintln(cmd.OutOrStdout(), c.Format(target))
		}
		return nil
	}

	format, err := outputFormat(convertOutputFormat)
	if err != nil {
		return err
	}
	return render.Write(cmd.OutOrStdout(), format, records)
}
