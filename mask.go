package tabx

// Mask records, per character position, whether that position held a
// delimiter in every line long enough to reach it.
//
// Positions only ever go from true to false. A line longer than the mask
// appends its own classification for the new positions, since no earlier
// line constrained them.
type Mask []bool

// Update folds one line into the mask and returns the result. The receiver's
// backing array may be reused.
func (m Mask) Update(c Classifier, line []rune) Mask {
	for i := range line {
		delim := c.classifyAt(line, i)
		if i < len(m) {
			m[i] = m[i] && delim
			continue
		}
		m = append(m, delim)
	}
	return m
}

// BuildMask folds every line into a fresh mask, in order.
func BuildMask(c Classifier, lines []string) Mask {
	var m Mask
	for _, line := range lines {
		m = m.Update(c, []rune(line))
	}
	return m
}
