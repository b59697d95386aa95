package commands

import (
	"fmt"
	"log"
	"strings"

	"github.com/dyluth/acrylic/internal/printer"
	"github.com/dyluth/acrylic/internal/render"
	"github.com/dyluth/acrylic/pkg/acrylic"
	"github.com/spf13/cobra"
)

var (
	randomSpace        string
	randomCount        int
	randomSeed         uint64
	randomOutputFormat string
)

var randomCmd = &cobra.Command{
	Use:   "random [CHANNEL...]",
	Short: "Draw random colors",
	Long: `Draw random colors in a colorspace.

Without CHANNEL arguments every channel is random. Otherwise give one token
per channel: a number, "random" (or ?), or a "lo:hi" range whose endpoints
may themselves be random. To pass -1 put the channels after "--".

Examples:
  # Five random RGB colors
  acrylic random -n 5

  # Reddish colors: red 200-255, green and blue low
  acrylic random 200:255 0:40 0:40

  # Pastels in HSL, reproducibly
  acrylic random --space hsl random 60:90 75:90 --seed 42`,
	RunE: runRandom,
}

func init() {
	randomCmd.Flags().StringVar(&randomSpace, "space", "rgb", "Colorspace to draw in")
	randomCmd.Flags().IntVarP(&randomCount, "count", "n", 1, "Number of colors")
	randomCmd.Flags().Uint64Var(&randomSeed, "seed", 0, "Seed for reproducible output")
	randomCmd.Flags().StringVarP(&randomOutputFormat, "output", "o", "", "Output format: default, json or yaml")

	rootCmd.AddCommand(randomCmd)
}

func runRandom(cmd *cobra.Command, args []string) error {
	if randomCount < 1 {
		return printer.Error(
			"invalid count",
			fmt.Sprintf("Cannot draw %d colors.", randomCount),
			[]string{"Use --count 1 or more"},
		)
	}

	space, err := acrylic.ParseSpace(randomSpace)
	if err != nil {
		return colorError(randomSpace, err)
	}

	format, err := outputFormat(randomOutputFormat)
	if err != nil {
		return err
	}

	body := "random"
	if len(args) > 0 {
		body = strings.Join(args, ", ")
	}
	text := fmt.Sprintf("%s(%s)", space, body)

	v := acrylic.NewValidator(seededRand(cmd, randomSeed))
	colors := make([]*acrylic.Color, 0, randomCount)
	for range randomCount {
		c, err := acrylic.ParseWith(v, text)
		if err != nil {
			return colorError(text, err)
		}
		colors = append(colors, c)
	}
	log.Printf("[INFO] Drew %d colors from %s", len(colors), text)

	return render.Write(cmd.OutOrStdout(), format, render.Records(colors))
}
