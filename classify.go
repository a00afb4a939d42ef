package tabx

import "unicode"

// NoRune stands in for a missing neighbour at either end of a line.
const NoRune rune = -1

// BorderRunes are the box-drawing characters treated as delimiters in
// border mode.
var BorderRunes = []rune{'+', '-', '|', '│'}

// Classifier decides which characters of a line separate columns.
// The zero value treats any whitespace as a delimiter and nothing else.
type Classifier struct {
	extra map[rune]struct{}
	mode  WhitespaceMode
}

// NewClassifier returns a Classifier for the given extra delimiter
// characters and whitespace policy. With border set, [BorderRunes] are added
// to the extra set.
func NewClassifier(extra string, mode WhitespaceMode, border bool) Classifier {
	set := make(map[rune]struct{}, len(extra)+len(BorderRunes))
	for _, r := range extra {
		set[r] = struct{}{}
	}
	if border {
		for _, r := range BorderRunes {
			set[r] = struct{}{}
		}
	}
	return Classifier{extra: set, mode: mode}
}

// IsDelimiter reports whether r counts as a delimiter given its neighbours
// on the same line. Pass [NoRune] for a neighbour past either end.
func (c Classifier) IsDelimiter(before, r, after rune) bool {
	if _, ok := c.extra[r]; ok {
		return true
	}
	if !unicode.IsSpace(r) {
		return false
	}
	switch c.mode {
	case WhitespaceIgnore:
		return false
	case WhitespaceDouble:
		return isSpace(before) || isSpace(after)
	default:
		return true
	}
}

// classifyAt classifies line[i].
func (c Classifier) classifyAt(line []rune, i int) bool {
	before, after := NoRune, NoRune
	if i > 0 {
		before = line[i-1]
	}
	if i+1 < len(line) {
		after = line[i+1]
	}
	return c.IsDelimiter(before, line[i], after)
}

func isSpace(r rune) bool {
	return r != NoRune && unicode.IsSpace(r)
}
