package commands

import (
	"fmt"

	"github.com/bjaus/tabx"
	"github.com/bjaus/tabx/internal/config"
	"github.com/spf13/cobra"
)

// NewJustifyCommand creates the justify command.
func NewJustifyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "justify [file]",
		Short: "Print delimited rows as an aligned table",
		Long: `Read delimiter-separated rows and print them left-justified.

Without a border, columns are separated by two spaces, so
"tabx unjustify -w double" reads the table back. An ascii border is read
back with "tabx unjustify -b -w double".`,
		Args: cobra.MaximumNArgs(1),
		RunE: runJustify,
	}

	f := cmd.Flags()
	f.StringP("input-delimiter", "D", config.DefaultInputDelimiter, "Between input columns")
	f.String("border", config.DefaultBorder, "Border style (none|ascii|rounded)")
	f.Bool("header", false, "Draw a rule under the first row")
	f.Bool("display-width", false, "Pad by terminal cell width instead of character count")

	_ = cmd.RegisterFlagCompletionFunc("border", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"none", "ascii", "rounded"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runJustify(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := config.FromContext(ctx)
	logger := config.GetLogger(ctx)

	delim, err := cfg.InputDelimiter()
	if err != nil {
		return err
	}
	opts, err := cfg.JustifyOptions()
	if err != nil {
		return err
	}

	in, path, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer in.Close()

	rows, err := tabx.ReadDelimited(in, delim)
	if err != nil {
		return fmt.Errorf("failed to read rows: %w", err)
	}
	logger.Debug("read rows", "source", sourceName(path), "rows", len(rows), "border", opts.Border)

	return tabx.Justify(cmd.OutOrStdout(), rows, opts)
}
