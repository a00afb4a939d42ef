package tabx

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// ReadLines reads r to the end and splits it into lines. Line endings
// ("\n" or "\r\n") are removed; a final line without one is kept. Empty input
// yields no lines.
func ReadLines(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)
	var lines []string
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			lines = append(lines, line)
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
