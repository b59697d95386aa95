package commands

import (
	"github.com/dyluth/acrylic/internal/filter"
	"github.com/dyluth/acrylic/internal/printer"
	"github.com/dyluth/acrylic/internal/render"
	"github.com/dyluth/acrylic/pkg/acrylic"
	"github.com/spf13/cobra"
)

var (
	namesFilter       string
	namesGlob         string
	namesHue          string
	namesOutputFormat string
)

var namesCmd = &cobra.Command{
	Use:   "names",
	Short: "List the known color names",
	Long: `List the CSS color names acrylic understands, with every
representation of each.

Filters (ANDed together):
  --filter - Names containing this text, ignoring case and spaces
  --glob   - Names matching a glob pattern ("light*", "*blue")
  --hue    - HSL hue window in degrees, "lo:hi"; "330:30" wraps through red

Examples:
  # Every shade of sea green
  acrylic names --filter "sea green"

  # Light colors in the blue range
  acrylic names --glob "light*" --hue 180:260`,
	Args: cobra.NoArgs,
	RunE: runNames,
}

func init() {
	namesCmd.Flags().StringVarP(&namesFilter, "filter", "f", "", "Only names containing this text")
	namesCmd.Flags().StringVar(&namesGlob, "glob", "", "Only names matching this glob pattern")
	namesCmd.Flags().StringVar(&namesHue, "hue", "", "Only colors with a hue in this range, e.g. 180:260")
	namesCmd.Flags().StringVarP(&namesOutputFormat, "output", "o", "", "Output format: default, json or yaml")

	rootCmd.AddCommand(namesCmd)
}

func runNames(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(namesOutputFormat)
	if err != nil {
		return err
	}

	criteria := filter.Criteria{Contains: namesFilter, NameGlob: namesGlob}
	if namesHue != "" {
		hue, err := filter.ParseHueRange(namesHue)
		if err != nil {
			return printer.Error("invalid hue range", err.Error(), []string{"Use degrees between 0 and 360, e.g. --hue 180:260"})
		}
		criteria.Hue = hue
	}
	if err := criteria.Validate(); err != nil {
		return printer.Error("invalid name pattern", err.Error(), []string{"Use a glob such as \"light*\""})
	}

	var records []render.Record
	for _, name := range acrylic.Names() {
		c := acrylic.MustNew(acrylic.WithName(name))
		if !criteria.Matches(name, c) {
			continue
		}
		records = append(records, render.NewRecord(name, c))
	}

	if len(records) == 0 {
		if criteria.HasFilters() {
			printer.Warning("no color names match the filters\n")
		} else {
			printer.Warning("no color names available\n")
		}
		return nil
	}
	return render.Write(cmd.OutOrStdout(), format, records)
}
