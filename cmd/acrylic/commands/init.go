package commands

import (
	"strings"

	"github.com/dyluth/acrylic/internal/printer"
	"github.com/dyluth/acrylic/internal/scaffold"
	"github.com/spf13/cobra"
)

var forceInit bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter acrylic.yml",
	Long: `Write a starter acrylic.yml in the working directory with the
default output settings, scheme defaults and two example palettes.

Use --force to replace an existing acrylic.yml.`,
	Args:        cobra.NoArgs,
	RunE:        runInit,
	Annotations: map[string]string{skipConfig: "true"},
}

func init() {
	initCmd.Flags().BoolVar(&forceInit, "force", false, "Replace an existing acrylic.yml")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	path, err := scaffold.Initialize(".", forceInit)
	if err != nil {
		if strings.Contains(err.Error(), "already initialized") {
			return printer.Error(
				"already initialized",
				err.Error(),
				[]string{"Edit the existing file, or reinitialize:\n  acrylic init --force"},
			)
		}
		return printer.Error("initialization failed", err.Error(), nil)
	}

	printer.Success("Created %s\n", path)
	printer.Info("\nNext steps:\n")
	printer.Info("  1. Add palettes under \"palettes\"\n")
	printer.Info("  2. Show one with 'acrylic palette sea'\n")
	return nil
}
