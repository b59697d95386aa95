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
	schemeKind         string
	schemeInRGB        bool
	schemeFuzzy        float64
	schemeSeed         uint64
	schemeOutputFormat string
)

var schemeCmd = &cobra.Command{
	Use:   "scheme COLOR",
	Short: "Build a color scheme around a color",
	Long: `Build a color scheme around COLOR. The first row is COLOR itself,
followed by the colors of the scheme.

Hues are rotated on the painter's (RYB) wheel unless --in-rgb is given.

Kinds:
  analogous, complementary, triadic (triangle), tetradic (square),
  monochromatic, shades, split-complementary,
  accented-analogous (analogous-complementary), rectangle,
  near-complementary, complementary-triadic, modified-triadic

Examples:
  # Complementary color on the painter's wheel
  acrylic scheme red

  # Triadic scheme on the RGB wheel
  acrylic scheme "#3EF4FF" --kind triadic --in-rgb

  # Analogous colors with up to 10 degrees of hue jitter
  acrylic scheme "hsl(200, 60, 50)" --kind analogous --fuzzy 10 --seed 7`,
	Args: cobra.ExactArgs(1),
	RunE: runScheme,
}

func init() {
	schemeCmd.Flags().StringVarP(&schemeKind, "kind", "k", "", "Scheme kind (default from config, else complementary)")
	schemeCmd.Flags().BoolVar(&schemeInRGB, "in-rgb", false, "Rotate hues on the RGB wheel")
	schemeCmd.Flags().Float64Var(&schemeFuzzy, "fuzzy", 0, "Random hue jitter in degrees, -1 picks an amount")
	schemeCmd.Flags().Uint64Var(&schemeSeed, "seed", 0, "Seed for reproducible output")
	schemeCmd.Flags().StringVarP(&schemeOutputFormat, "output", "o", "", "Output format: default, json or yaml")

	rootCmd.AddCommand(schemeCmd)
}

func runScheme(cmd *cobra.Command, args []string) error {
	kindName := schemeKind
	if kindName == "" {
		kindName = cfg.Scheme.Kind
	}
	kind, err := acrylic.ParseSchemeKind(kindName)
	if err != nil {
		return printer.Error(
			"unknown scheme",
			fmt.Sprintf("No scheme called %q.", kindName),
			[]string{"See the list of kinds:\n  acrylic scheme --help"},
		)
	}

	format, err := outputFormat(schemeOutputFormat)
	if err != nil {
		return err
	}

	rng := seededRand(cmd, schemeSeed)
	base, err := acrylic.ParseWith(acrylic.NewValidator(rng), args[0])
	if err != nil {
		return colorError(args[0], err)
	}

	fuzzy := 0.0
	if cfg.Scheme.Fuzzy != nil {
		fuzzy = *cfg.Scheme.Fuzzy
	}
	if cmd.Flags().Changed("fuzzy") {
		fuzzy = schemeFuzzy
	}

	opts := []acrylic.SchemeOption{acrylic.Fuzzy(fuzzy), acrylic.WithRand(rng)}
	if schemeInRGB || cfg.Scheme.InRGB {
		opts = append(opts, acrylic.InRGB())
	}

	colors, err := base.Scheme(kind, opts...)
	if err != nil {
		return printer.ErrorWithContext(
			"failed to build scheme",
			err.Error(),
			map[string]string{"Color": base.String(), "Kind": kind.String()},
			[]string{"Use --fuzzy between 0 and 360, or -1 for a random amount"},
		)
	}
	log.Printf("[INFO] Built %s scheme of %d colors around %s", kind, len(colors), base)

	records := append([]render.Record{render.NewRecord(args[0], base)}, render.Records(colors)...)
	return render.Write(cmd.OutOrStdout(), format, records)
}
