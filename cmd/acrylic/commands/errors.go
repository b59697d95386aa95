package commands

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/dyluth/acrylic/internal/printer"
	"github.com/dyluth/acrylic/internal/render"
	"github.com/dyluth/acrylic/pkg/acrylic"
	"github.com/spf13/cobra"
)

// colorError prints a titled error for a color that failed to parse or
// validate, with a hint chosen by the kind of failure.
func colorError(input string, err error) error {
	var hint string
	switch {
	case errors.Is(err, acrylic.ErrUnknownColorspace):
		hint = "Supported spaces: " + spaceList()
	case errors.Is(err, acrylic.ErrShape):
		hint = "Give exactly three channels, e.g. rgb(62, 244, 255)"
	case errors.Is(err, acrylic.ErrDatatype):
		hint = "RGB and RYB channels are whole numbers; HSL and HSV accept decimals"
	case errors.Is(err, acrylic.ErrRange):
		hint = "RGB and RYB channels are 0-255, hue is 0-360, the other HSL/HSV channels are 0-100"
	case errors.Is(err, acrylic.ErrInvalidHex):
		hint = "Use #RGB, #RRGGBB or #RRGGBBAA (a 0x prefix is also accepted)"
	case errors.Is(err, acrylic.ErrInvalidName):
		hint = "List known names:\n  acrylic names"
	default:
		hint = "See the examples:\n  acrylic --help"
	}
	return printer.ErrorWithContext(
		"invalid color",
		err.Error(),
		map[string]string{"Input": input},
		[]string{hint},
	)
}

func spaceList() string {
	ids := make([]string, 0, len(acrylic.Spaces()))
	for _, s := range acrylic.Spaces() {
		ids = append(ids, s.String())
	}
	return strings.Join(ids, ", ")
}

// outputFormat resolves the -o flag, falling back to the configured format.
func outputFormat(flag string) (render.OutputFormat, error) {
	name := flag
	if name == "" {
		name = cfg.Output
	}
	format, err := render.ParseFormat(name)
	if err != nil {
		return "", printer.Error(
			"invalid output format",
			fmt.Sprintf("Unknown format: %s", name),
			[]string{"Valid formats: default, json, yaml"},
		)
	}
	return format, nil
}

// seededRand returns a deterministic source when --seed was given and nil
// otherwise, which makes the library use the global source.
func seededRand(cmd *cobra.Command, seed uint64) *rand.Rand {
	if !cmd.Flags().Changed("seed") {
		return nil
	}
	return rand.New(rand.NewPCG(seed, seed))
}
