// Package commands implements the tabx subcommands.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

// openInput opens the file named by args, or standard input when there is
// no argument or it is "-". It returns the reader and a name for logs.
func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, string, error) {
	if len(args) == 0 || args[0] == "-" {
		in := cmd.InOrStdin()
		if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "tabx: reading from terminal, end input with Ctrl-D")
		}
		return io.NopCloser(in), "", nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, "", fmt.Errorf("failed to open input: %w", err)
	}
	return f, args[0], nil
}

// sourceName names the input in log records.
func sourceName(path string) string {
	if path == "" {
		return "stdin"
	}
	return path
}

// addOutputFlags registers the delimiter flags shared by commands that
// write delimited rows.
func addOutputFlags(f *pflag.FlagSet) {
	f.StringP("output-delimiter", "O", "", `Between output columns (default ",")`)
	f.Bool("us", false, "Use ASCII unit separator (0x1F) between output columns")
	f.StringP("line-delimiter", "L", "", `After each output line (default "\n")`)
	f.BoolP("null", "z", false, "End output lines with NUL")
	f.Bool("rs", false, "End output lines with ASCII record separator (0x1E)")
}
