package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/osse101/craftlab/internal/bootstrap"
	"github.com/osse101/craftlab/internal/config"
	"github.com/osse101/craftlab/internal/logger"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{FormatText, FormatJSON}

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose     bool
	Format      string
	CatalogPath string
	Strict      bool
	Delay       time.Duration

	// LoadConfig is swapped in tests; defaults to config.Load
	LoadConfig func() (*config.Config, error)

	cfg *config.Config
	app *bootstrap.App
}

// NewRootCommand creates the root command for the craftlab CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{LoadConfig: config.Load})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "craftlab",
		Short: "craftlab - recipe matching and crafting engine",
		Long: `Stage ingredients, match them against a recipe catalog and craft the result.

The catalog comes from CATALOG_PATH (JSON or YAML) or the built-in recipe set.
Every command runs against an in-memory recipe store that lives for one invocation.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output and debug logging")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", FormatText, "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.CatalogPath, "catalog", "", "recipe catalog file (overrides CATALOG_PATH)")
	cmd.PersistentFlags().BoolVar(&opts.Strict, "strict", false, "reject ambiguous catalogs (overrides CATALOG_STRICT)")
	cmd.PersistentFlags().DurationVar(&opts.Delay, "delay", 0, "crafting delay (overrides CRAFT_DELAY_MS)")

	cmd.AddCommand(NewRecipesCommand(opts))
	cmd.AddCommand(NewCraftCommand(opts))
	cmd.AddCommand(NewStatsCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))

	return cmd
}

// Config loads configuration once, applies flag overrides and sets up logging
func (o *RootOptions) Config(cmd *cobra.Command) (*config.Config, error) {
	if o.cfg != nil {
		return o.cfg, nil
	}

	cfg, err := o.LoadConfig()
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "invalid configuration", err)
	}

	flags := cmd.Flags()
	if flags.Changed("catalog") {
		cfg.CatalogPath = o.CatalogPath
	}
	if flags.Changed("strict") {
		cfg.CatalogStrict = o.Strict
	}
	if flags.Changed("delay") {
		if o.Delay < 0 {
			return nil, NewExitError(ExitCommandError, "delay must not be negative")
		}
		cfg.CraftDelayMS = int(o.Delay / time.Millisecond)
	}
	if o.Verbose {
		cfg.LogLevel = logger.LogLevelDebug
	}

	bootstrap.SetupLogger(cfg, cmd.ErrOrStderr())
	o.cfg = cfg
	return cfg, nil
}

// App wires the engine once per invocation
func (o *RootOptions) App(cmd *cobra.Command) (*bootstrap.App, error) {
	if o.app != nil {
		return o.app, nil
	}

	cfg, err := o.Config(cmd)
	if err != nil {
		return nil, err
	}

	app, err := bootstrap.New(cmd.Context(), cfg)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to start", err)
	}
	o.app = app
	return app, nil
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Verbose,
	}
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
