package cli

import (
	"errors"

	"github.com/bjaus/tabx"
)

// Exit statuses.
const (
	ExitOK      = 0
	ExitError   = 1 // bad configuration, malformed input, I/O failure
	ExitNoInput = 2 // nothing to infer a column layout from
)

// ExitCode maps an error returned by a command to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, tabx.ErrNoInput):
		return ExitNoInput
	default:
		return ExitError
	}
}
