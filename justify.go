package tabx

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

var borderSets = map[BorderStyle]borderChars{
	BorderRounded: {
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		horizontal: "─", vertical: "│",
		topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
		cross: "┼",
	},
	BorderASCII: {
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		horizontal: "-", vertical: "|",
		topTee: "+", bottomTee: "+", leftTee: "+", rightTee: "+",
		cross: "+",
	},
}

// JustifyOptions controls [Justify].
type JustifyOptions struct {
	Border BorderStyle
	// Header draws a rule under the first row.
	Header bool
	// DisplayWidth pads by terminal cell width instead of by character
	// count. Wide characters then line up on screen, but the output no longer
	// round-trips through [Extract], which counts characters.
	DisplayWidth bool
}

// ReadDelimited parses delimiter-separated rows. Quoting follows CSV rules
// and rows may have different lengths.
func ReadDelimited(r io.Reader, delim rune) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.Comma = delim
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	return cr.ReadAll()
}

// Justify writes rows as an aligned, left-justified table. It is the
// inverse of [Extract]: plain output separates columns with two spaces, so
// [WhitespaceDouble] recovers the cells, and [BorderASCII] output is
// recovered in border mode with [WhitespaceDouble]. Cells containing two
// or more adjacent spaces do not survive either way.
func Justify(w io.Writer, rows [][]string, opts JustifyOptions) error {
	if len(rows) == 0 {
		return nil
	}
	width := utf8.RuneCountInString
	if opts.DisplayWidth {
		width = runewidth.StringWidth
	}
	widths := computeWidths(rows, width)

	bw := bufio.NewWriter(w)
	var err error
	if opts.Border == BorderNone {
		err = renderPlain(bw, rows, widths, width, opts.Header)
	} else {
		bc, ok := borderSets[opts.Border]
		if !ok {
			return fmt.Errorf("%w: %v", ErrUnsupportedBorderStyle, opts.Border)
		}
		err = renderBordered(bw, rows, widths, width, opts.Header, bc)
	}
	if err != nil {
		return err
	}
	return bw.Flush()
}

func computeWidths(rows [][]string, width func(string) int) []int {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if n := width(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}
	return widths
}

func renderPlain(w io.Writer, rows [][]string, widths []int, width func(string) int, header bool) error {
	for i, row := range rows {
		parts := make([]string, len(widths))
		for j, cw := range widths {
			parts[j] = pad(cellAt(row, j), cw, width)
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " ")); err != nil {
			return err
		}
		if header && i == 0 {
			sep := make([]string, len(widths))
			for j, cw := range widths {
				sep[j] = strings.Repeat("-", cw)
			}
			if _, err := fmt.Fprintln(w, strings.Join(sep, "  ")); err != nil {
				return err
			}
		}
	}
	return nil
}

func renderBordered(w io.Writer, rows [][]string, widths []int, width func(string) int, header bool, bc borderChars) error {
	if err := drawHLine(w, widths, bc.topLeft, bc.horizontal, bc.topTee, bc.topRight); err != nil {
		return err
	}
	for i, row := range rows {
		var sb strings.Builder
		sb.WriteString(bc.vertical)
		for j, cw := range widths {
			sb.WriteString(" ")
			sb.WriteString(pad(cellAt(row, j), cw, width))
			sb.WriteString(" ")
			sb.WriteString(bc.vertical)
		}
		if _, err := fmt.Fprintln(w, sb.String()); err != nil {
			return err
		}
		if header && i == 0 && len(rows) > 1 {
			if err := drawHLine(w, widths, bc.leftTee, bc.horizontal, bc.cross, bc.rightTee); err != nil {
				return err
			}
		}
	}
	return drawHLine(w, widths, bc.bottomLeft, bc.horizontal, bc.bottomTee, bc.bottomRight)
}

func drawHLine(w io.Writer, widths []int, left, fill, mid, right string) error {
	var sb strings.Builder
	sb.WriteString(left)
	for i, cw := range widths {
		sb.WriteString(strings.Repeat(fill, cw+2))
		if i < len(widths)-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func cellAt(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func pad(s string, cw int, width func(string) int) string {
	n := cw - width(s)
	if n <= 0 {
		return s
	}
	return s + strings.Repeat(" ", n)
}
