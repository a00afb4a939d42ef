package tabx

import (
	"fmt"
	"iter"

	"golang.org/x/text/cases"
)

// ExtractOptions configures column inference.
type ExtractOptions struct {
	// Delimiters lists extra characters that always separate columns.
	Delimiters string
	// Whitespace selects how whitespace is classified. Empty means
	// [WhitespaceAny].
	Whitespace WhitespaceMode
	// Border adds [BorderRunes] to the delimiter set.
	Border bool
	// HeaderOnly infers the layout from the first line alone. The other
	// lines are assumed to share it and are not checked.
	HeaderOnly bool
	// Columns, when non-empty, selects and orders output columns by the
	// names found in the first line.
	Columns []string
	// IgnoreCase makes Columns match header names case-insensitively.
	IgnoreCase bool
}

// Extraction is the result of inferring a layout over a set of lines.
type Extraction struct {
	// Inferred holds every column range found in the boundary mask.
	Inferred []Range
	// Ranges holds the ranges used for splitting, after column selection.
	Ranges []Range
	// Missing lists requested column names with no matching header.
	Missing []string

	lines []string
}

// Extract infers column boundaries from lines and prepares them for
// splitting. It returns [ErrNoInput] when lines is empty, since there is no
// layout to infer.
func Extract(lines []string, opts ExtractOptions) (*Extraction, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: no lines to infer columns from", ErrNoInput)
	}
	mode := opts.Whitespace
	if mode == "" {
		mode = WhitespaceAny
	}
	c := NewClassifier(opts.Delimiters, mode, opts.Border)

	sample := lines
	if opts.HeaderOnly {
		sample = lines[:1]
	}
	inferred := BuildMask(c, sample).Ranges()

	e := &Extraction{Inferred: inferred, Ranges: inferred, lines: lines}
	if len(opts.Columns) > 0 {
		e.Ranges, e.Missing = SelectColumns(inferred, lines[0], opts.Columns, opts.IgnoreCase)
	}
	return e, nil
}

// Rows yields the split fields of every line, header included.
func (e *Extraction) Rows() iter.Seq[[]string] {
	return func(yield func([]string) bool) {
		for _, line := range e.lines {
			if !yield(SplitRow(e.Ranges, line)) {
				return
			}
		}
	}
}

// SelectColumns splits header with ranges and returns the ranges of the
// requested names, in the requested order. Names with no matching header are
// returned in missing and left out of selected. When a header name repeats,
// the leftmost column wins.
func SelectColumns(ranges []Range, header string, names []string, ignoreCase bool) (selected []Range, missing []string) {
	key := func(s string) string { return s }
	if ignoreCase {
		fold := cases.Fold()
		key = func(s string) string { return fold.String(s) }
	}

	byName := make(map[string]Range, len(ranges))
	for i, name := range SplitRow(ranges, header) {
		k := key(name)
		if _, seen := byName[k]; !seen {
			byName[k] = ranges[i]
		}
	}

	for _, name := range names {
		r, ok := byName[key(name)]
		if !ok {
			missing = append(missing, name)
			continue
		}
		selected = append(selected, r)
	}
	return selected, missing
}
