package tabx

import (
	"bufio"
	"io"
	"iter"
	"strings"
)

// WriteRows joins each row's fields with d.Field and follows every row with
// d.Line. Fields are written verbatim, without quoting.
func WriteRows(w io.Writer, d Delimiters, rows iter.Seq[[]string]) error {
	bw := bufio.NewWriter(w)
	for row := range rows {
		if err := writeRow(bw, d, row); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteTable writes header followed by rows. The header line is written
// even when rows is empty.
func WriteTable(w io.Writer, d Delimiters, header []string, rows iter.Seq[[]string]) error {
	return WriteRows(w, d, func(yield func([]string) bool) {
		if !yield(header) {
			return
		}
		for row := range rows {
			if !yield(row) {
				return
			}
		}
	})
}

// WriteFlattened writes a flattened table with its column names as header.
func WriteFlattened(w io.Writer, d Delimiters, t *Table, missing string) error {
	return WriteTable(w, d, t.Columns, t.Records(missing))
}

func writeRow(w *bufio.Writer, d Delimiters, row []string) error {
	if _, err := w.WriteString(strings.Join(row, d.Field)); err != nil {
		return err
	}
	_, err := w.WriteString(d.Line)
	return err
}
