package tabx

import (
	"fmt"
	"strings"
)

// Output delimiters.
const (
	DefaultFieldDelimiter = ","
	DefaultLineDelimiter  = "\n"
	UnitSeparator         = "\x1f"
	RecordSeparator       = "\x1e"
	NullDelimiter         = "\x00"
)

// Delimiters holds the strings written between fields and after each line.
type Delimiters struct {
	Field string
	Line  string
}

// DefaultDelimiters returns comma and newline.
func DefaultDelimiters() Delimiters {
	return Delimiters{Field: DefaultFieldDelimiter, Line: DefaultLineDelimiter}
}

// DelimiterOptions are the user-facing ways of choosing delimiters. At most
// one field option and at most one line option may be active.
type DelimiterOptions struct {
	// Field is an explicit field delimiter; nil when not given.
	Field *string
	// UnitSeparator selects ASCII 0x1F between fields.
	UnitSeparator bool
	// Line is an explicit line delimiter; nil when not given.
	Line *string
	// Null selects NUL after each line.
	Null bool
	// RecordSeparator selects ASCII 0x1E after each line.
	RecordSeparator bool
}

// Resolve picks the delimiters, falling back to [DefaultDelimiters]. It
// returns [ErrConflictingDelimiters] when more than one option for the same
// delimiter is active.
func (o DelimiterOptions) Resolve() (Delimiters, error) {
	d := DefaultDelimiters()

	var field []string
	if o.Field != nil {
		field = append(field, "explicit field delimiter")
		d.Field = *o.Field
	}
	if o.UnitSeparator {
		field = append(field, "unit separator")
		d.Field = UnitSeparator
	}
	if len(field) > 1 {
		return Delimiters{}, fmt.Errorf("%w: %s", ErrConflictingDelimiters, strings.Join(field, " and "))
	}

	var line []string
	if o.Line != nil {
		line = append(line, "explicit line delimiter")
		d.Line = *o.Line
	}
	if o.Null {
		line = append(line, "null")
		d.Line = NullDelimiter
	}
	if o.RecordSeparator {
		line = append(line, "record separator")
		d.Line = RecordSeparator
	}
	if len(line) > 1 {
		return Delimiters{}, fmt.Errorf("%w: %s", ErrConflictingDelimiters, strings.Join(line, " and "))
	}
	return d, nil
}
