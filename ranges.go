package tabx

import (
	"fmt"
	"strings"
)

// Range is a half-open interval [Start, End) of character positions that
// makes up one column.
type Range struct {
	Start int
	End   int
}

// String renders the range as "(start,end)".
func (r Range) String() string { return fmt.Sprintf("(%d,%d)", r.Start, r.End) }

// Ranges scans the mask for maximal runs of non-delimiter positions. A run
// that reaches the end of the mask is closed at the mask length.
func (m Mask) Ranges() []Range {
	var out []Range
	start := -1
	for i, delim := range m {
		switch {
		case start < 0 && !delim:
			start = i
		case start >= 0 && delim:
			out = append(out, Range{Start: start, End: i})
			start = -1
		}
	}
	if start >= 0 {
		out = append(out, Range{Start: start, End: len(m)})
	}
	return out
}

// SplitRow cuts line into one trimmed field per range. Ranges that run past
// the end of a short line are clamped, so they yield truncated or empty
// fields rather than failing.
func SplitRow(ranges []Range, line string) []string {
	return splitRunes(ranges, []rune(line))
}

func splitRunes(ranges []Range, line []rune) []string {
	fields := make([]string, len(ranges))
	for i, r := range ranges {
		start, end := clamp(r.Start, len(line)), clamp(r.End, len(line))
		if start >= end {
			continue
		}
		fields[i] = strings.TrimSpace(string(line[start:end]))
	}
	return fields
}

func clamp(n, limit int) int {
	if n < 0 {
		return 0
	}
	if n > limit {
		return limit
	}
	return n
}
