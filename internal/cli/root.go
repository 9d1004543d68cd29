package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/lattice/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	ConfigPath string

	// Resolved in PersistentPreRunE; nil means defaults.
	Config *config.Config
	Logger *zap.Logger

	// errOut serializes stderr between the logger, the progress bar and verbose output.
	errOut zapcore.WriteSyncer
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{config.FormatText, config.FormatJSON}

// NewRootCommand creates the root command for the lll CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "lll",
		Short: "lll - lattice basis reduction",
		Long: `Reduce lattice bases with the Lenstra-Lenstra-Lovász algorithm.

Bases are read as text ("rows cols" header, then rows), JSON or YAML,
optionally zstd-compressed; "-" reads text from stdin.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output (debug logging on stderr)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", config.FormatText, "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to a YAML config file")

	// Add subcommands
	cmd.AddCommand(NewReduceCommand(opts))
	cmd.AddCommand(NewVerifyCommand(opts))
	cmd.AddCommand(NewProfileCommand(opts))
	cmd.AddCommand(NewConfigCommand(opts))

	return cmd
}

// resolve loads the config file, reconciles it with the flags and builds the logger.
// An explicit --format wins over output.format from the file.
func (o *RootOptions) resolve(cmd *cobra.Command) error {
	cfg := config.Default()
	if o.ConfigPath != "" {
		loaded, err := config.Load(o.ConfigPath)
		if err != nil {
			_ = o.formatter(cmd).Error(ErrCodeConfig, err.Error(), nil)
			return WrapExitError(ExitCommandError, ErrCodeConfig, err)
		}
		cfg = loaded
	}
	if !cmd.Flags().Changed("format") {
		o.Format = cfg.Output.Format
	}
	if !isValidFormat(o.Format) {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", o.Format, ValidFormats))
	}
	o.Config = &cfg
	o.errOut = zapcore.Lock(zapcore.AddSync(cmd.ErrOrStderr()))
	o.Logger = config.NewLogger(cfg, o.errOut, o.Verbose)

	return nil
}

// settings returns the resolved config, or the defaults when resolve has not run.
func (o *RootOptions) settings() config.Config {
	if o.Config == nil {
		return config.Default()
	}

	return *o.Config
}

// logger returns the resolved logger or a no-op one.
func (o *RootOptions) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}

	return o.Logger
}

// formatter builds the output formatter for cmd.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	var errWriter io.Writer = cmd.ErrOrStderr() // Verbose logs go to stderr to avoid corrupting JSON
	if o.errOut != nil {
		errWriter = o.errOut
	}
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: errWriter,
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
