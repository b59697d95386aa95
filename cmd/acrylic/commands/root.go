package commands

import (
	"fmt"
	"io"
	"log"

	"github.com/dyluth/acrylic/internal/config"
	"github.com/dyluth/acrylic/internal/printer"
	"github.com/spf13/cobra"
)

var (
	version string
	commit  string
	date    string

	configPath string
	verbose    bool
	noColor    bool

	// cfg is loaded before any subcommand runs.
	cfg *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "acrylic",
	Short: "acrylic - convert, randomize and harmonize colors",
	Long: `acrylic converts colors between RGB, HSL, HSV, RYB, hex codes and CSS
color names, draws random colors within channel ranges, and builds color
schemes on the painter's (RYB) or the RGB color wheel.

Colors are written as space(values), e.g. "rgb(62, 244, 255)",
"hsl(160, 100, 75)" or "hex(#3EF4FF)", or as a bare hex code or name.
Any channel may be "random" or a range such as "10:200".

Defaults are read from acrylic.yml (or acrylic.toml) in the working
directory when present.`,
	Version:           version,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
	// Enable strict flag parsing - unknown flags will cause an error
	FParseErrWhitelist: cobra.FParseErrWhitelist{},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	// We print formatted colored errors directly in the printer package
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	return rootCmd.Execute()
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: ./"+config.DefaultFile+" if present)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log progress to stderr")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output and swatches")
}

// setup wires output streams, logging, configuration and color mode.
func setup(cmd *cobra.Command, args []string) error {
	printer.SetOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())

	if verbose {
		log.SetOutput(cmd.ErrOrStderr())
	} else {
		log.SetOutput(io.Discard)
	}

	loaded, err := loadConfig(cmd)
	if err != nil {
		path := configPath
		if path == "" {
			path = config.DefaultPath()
		}
		return printer.ErrorWithContext(
			"failed to load configuration",
			err.Error(),
			map[string]string{"Config": path},
			[]string{"Fix the file, or remove it to use the built-in defaults"},
		)
	}
	cfg = loaded

	mode := cfg.Color
	if noColor {
		mode = "never"
	}
	if err := printer.SetMode(mode); err != nil {
		return printer.Error("invalid color mode", err.Error(), []string{"Valid modes: auto, always, never"})
	}

	log.Printf("[INFO] Configuration loaded (output=%s, color=%s, palettes=%d)", cfg.Output, mode, len(cfg.PaletteNames()))
	return nil
}

// skipConfig marks commands that must run even when the config file is broken.
const skipConfig = "skip-config"

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if cmd.Annotations[skipConfig] == "true" {
		return config.Default(), nil
	}
	return config.LoadOrDefault(configPath)
}
