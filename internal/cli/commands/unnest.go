package commands

import (
	"github.com/bjaus/tabx"
	"github.com/bjaus/tabx/internal/config"
	"github.com/spf13/cobra"
)

// NewUnnestCommand creates the unnest command.
func NewUnnestCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unnest [file]",
		Short: "Flatten a JSON or YAML document into delimited rows",
		Long: `Flatten a nested document into a table.

Nested keys become column names joined by the attribute separator. Arrays
add rows; sibling keys of an object are combined with every row of each
other. A header line is always written, followed by one line per row.

Examples:
  curl -s api/items | tabx unnest
  tabx unnest --from yaml -O ';' deploy.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: runUnnest,
	}

	f := cmd.Flags()
	f.String("attribute-separator", config.DefaultSeparator, "In column names, between nested keys")
	f.String("missing", "", "Output for values a row does not have")
	f.String("from", "", "Input format (json|yaml); guessed from the file name when empty")
	addOutputFlags(f)

	_ = cmd.RegisterFlagCompletionFunc("from", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{tabx.JSON.String(), tabx.YAML.String()}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runUnnest(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := config.FromContext(ctx)
	logger := config.GetLogger(ctx)

	delims, err := cfg.Delimiters()
	if err != nil {
		return err
	}

	in, path, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer in.Close()

	format, err := cfg.InputFormat(path)
	if err != nil {
		return err
	}
	v, err := tabx.Decode(in, format)
	if err != nil {
		return err
	}

	t := tabx.Flattener{Separator: cfg.Unnest.Separator}.Flatten(v)
	logger.Debug("flattened", "source", sourceName(path), "format", format, "columns", len(t.Columns), "rows", len(t.Rows))

	return tabx.WriteFlattened(cmd.OutOrStdout(), delims, t, cfg.Unnest.Missing)
}
