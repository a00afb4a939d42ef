// Command tabx converts aligned text and nested documents into delimited
// rows.
package main

import (
	"os"

	"github.com/bjaus/tabx/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
