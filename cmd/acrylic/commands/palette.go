package commands

import (
	"fmt"

	"github.com/dyluth/acrylic/internal/printer"
	"github.com/dyluth/acrylic/internal/render"
	"github.com/spf13/cobra"
)

var paletteOutputFormat string

var paletteCmd = &cobra.Command{
	Use:   "palette [NAME]",
	Short: "Show palettes defined in the config file",
	Long: `Without NAME, list the palettes defined under "palettes" in the
config file. With NAME, show every color of that palette.

Example acrylic.yml:
  version: "1.0"
  palettes:
    sea:
      - "#7FFFD4"
      - hsl(180, 50, 40)
      - lightseagreen`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPalette,
}

func init() {
	paletteCmd.Flags().StringVarP(&paletteOutputFormat, "output", "o", "", "Output format: default, json or yaml")

	rootCmd.AddCommand(paletteCmd)
}

func runPalette(cmd *cobra.Command, args []string) error {
	names := cfg.PaletteNames()

	if len(args) == 0 {
		if len(names) == 0 {
			printer.Warning("no palettes defined\n")
			return nil
		}
		for _, name := range names {
			colors, _ := cfg.Palette(name)
			noun := "color"
			if len(colors) != 1 {
				noun = "colors"
			}
			printer.Info("%s (%d %s)\n", name, len(colors), noun)
		}
		return nil
	}

	colors, ok := cfg.Palette(args[0])
	if !ok {
		suggestion := "Define it under \"palettes\" in the config file"
		if len(names) > 0 {
			suggestion = fmt.Sprintf("Known palettes: %v", names)
		}
		return printer.Error(
			"unknown palette",
			fmt.Sprintf("No palette called %q.", args[0]),
			[]string{suggestion},
		)
	}

	format, err := outputFormat(paletteOutputFormat)
	if err != nil {
		return err
	}

	entries := cfg.Palettes[args[0]]
	records := make([]render.Record, len(colors))
	for i, c := range colors {
		records[i] = render.NewRecord(entries[i], c)
	}
	return render.Write(cmd.OutOrStdout(), format, records)
}
