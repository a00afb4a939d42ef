// Package cli provides the command-line interface for tabx.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/bjaus/tabx/internal/cli/commands"
	"github.com/bjaus/tabx/internal/config"
	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "0.1.0"

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "tabx",
		Short: "Turn aligned text and nested documents into delimited rows",
		Long: `tabx converts text tables into delimiter-separated rows.

  unjustify  infers the columns of a pretty-printed table from the text itself
  unnest     flattens a JSON or YAML document into one row per leaf combination
  justify    prints delimited rows as an aligned table (the reverse of unjustify)`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(config.Options{
				File:    cfgFile,
				Command: cmd.Name(),
				Flags:   cmd.Flags(),
			})
			if err != nil {
				return err
			}
			if err := cfg.Validate(cmd.Name()); err != nil {
				return err
			}

			logger, err := NewLogger(cmd.ErrOrStderr(), cfg)
			if err != nil {
				return err
			}
			if cfg.FileUsed != "" {
				logger.Debug("using config file", "path", cfg.FileUsed)
			}

			ctx := config.WithConfig(cmd.Context(), cfg)
			ctx = config.WithLogger(ctx, logger)
			cmd.SetContext(ctx)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./tabx.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Debug logging on stderr")
	rootCmd.PersistentFlags().String("log-level", config.DefaultLogLevel, "Log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().String("log-format", config.DefaultLogFormat, "Log format (text|json)")

	rootCmd.AddCommand(commands.NewUnjustifyCommand())
	rootCmd.AddCommand(commands.NewUnnestCommand())
	rootCmd.AddCommand(commands.NewJustifyCommand())
	rootCmd.AddCommand(commands.NewVersionCommand(Version))

	return rootCmd
}

// Execute runs tabx against the process's arguments and standard streams
// and returns the exit status.
func Execute() int {
	return Run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

// Run executes the root command with the given arguments and streams.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitCode(err)
	}
	return ExitOK
}
