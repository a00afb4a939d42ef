// Package tabx turns text into delimiter-separated tables.
//
// It has two independent engines. Both work on fully buffered input and
// are pure functions of it.
//
// # Column extraction
//
// [Extract] infers the columns of a pretty-printed, character-aligned table
// from the text itself. Each line is classified character by character
// (see [Classifier]) and folded into a [Mask]: a position stays a boundary
// only while every line long enough to reach it has a delimiter there.
// Maximal runs of non-boundary positions become [Range] values, and every
// line is cut along them with [SplitRow]:
//
//	lines, _ := tabx.ReadLines(os.Stdin)
//	ex, err := tabx.Extract(lines, tabx.ExtractOptions{Whitespace: tabx.WhitespaceDouble})
//	if err != nil { ... }
//	tabx.WriteRows(os.Stdout, tabx.DefaultDelimiters(), ex.Rows())
//
// Whitespace handling is chosen with [WhitespaceMode]. Extra delimiter
// characters and box-drawing borders ([BorderRunes]) can be added. Columns
// can be picked and reordered by the names in the first line with
// [ExtractOptions].Columns.
//
// # Tree flattening
//
// [Flattener] converts a tree of objects, arrays and scalars ([Value]) into
// rows. Nested keys are joined into column names, arrays add rows and
// sibling keys of an object are cross-joined:
//
//	v, err := tabx.DecodeJSON(strings.NewReader(`{"a":["x","y"],"b":"z"}`))
//	t := tabx.Flatten(v)
//	// t.Columns: a b
//	// rows:      x,z  y,z
//
// Column order is the order in which the walk first meets each path.
// [DecodeJSON] and [DecodeYAML] keep document key order, so the output is
// deterministic.
//
// # Output
//
// [WriteRows] and [WriteTable] join fields with the delimiters chosen by
// [DelimiterOptions]. [Justify] goes the other way and prints rows as an
// aligned table that [Extract] can read back.
//
// # Errors
//
//   - [ErrNoInput]: nothing to infer a layout from
//   - [ErrConflictingDelimiters]: more than one delimiter option was set
//   - [ErrMalformedTree]: tree input could not be parsed
//
// Short lines, unknown column names and missing values are never errors.
package tabx
