package commands

import (
	"github.com/bjaus/tabx"
	"github.com/bjaus/tabx/internal/config"
	"github.com/spf13/cobra"
)

// NewUnjustifyCommand creates the unjustify command.
func NewUnjustifyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unjustify [file]",
		Short: "Split an aligned text table into delimited columns",
		Long: `Read a pretty-printed table and infer its columns from the text.

A character position separates columns when it holds a delimiter on every
line long enough to reach it. Each column is trimmed and written joined by
the output delimiter.

Examples:
  ps aux | tabx unjustify -w double
  kubectl get pods | tabx unjustify -c NAME,STATUS
  tabx unjustify -b table.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: runUnjustify,
	}

	f := cmd.Flags()
	f.StringP("delimiters", "d", "", "Additional column delimiter characters")
	f.StringP("whitespace", "w", config.DefaultWhitespace, "Whitespace handling (any|double|ignore)")
	f.BoolP("border", "b", false, "Treat box-drawing characters + - | │ as delimiters")
	f.Bool("header-only", false, "Infer columns from the first line only")
	f.StringSliceP("columns", "c", nil, "Output only these columns, named by the first line, in this order")
	f.BoolP("ignore-case", "i", false, "Match --columns case-insensitively")
	addOutputFlags(f)

	_ = cmd.RegisterFlagCompletionFunc("whitespace", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		var modes []string
		for _, m := range tabx.WhitespaceModes() {
			modes = append(modes, m.String())
		}
		return modes, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runUnjustify(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := config.FromContext(ctx)
	logger := config.GetLogger(ctx)

	delims, err := cfg.Delimiters()
	if err != nil {
		return err
	}
	opts, err := cfg.ExtractOptions()
	if err != nil {
		return err
	}

	in, path, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer in.Close()

	lines, err := tabx.ReadLines(in)
	if err != nil {
		return err
	}
	logger.Debug("read input", "source", sourceName(path), "lines", len(lines))

	ex, err := tabx.Extract(lines, opts)
	if err != nil {
		return err
	}
	logger.Debug("inferred columns", "ranges", ex.Inferred, "whitespace", opts.Whitespace, "header_only", opts.HeaderOnly)
	if len(ex.Missing) > 0 {
		logger.Warn("requested columns not found in header", "columns", ex.Missing)
	}

	return tabx.WriteRows(cmd.OutOrStdout(), delims, ex.Rows())
}
