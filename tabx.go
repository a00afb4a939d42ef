package tabx

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrNoInput                   = errors.New("no input")
	ErrConflictingDelimiters     = errors.New("conflicting delimiter options")
	ErrMalformedTree             = errors.New("malformed tree input")
	ErrUnsupportedWhitespaceMode = errors.New("unsupported whitespace mode")
	ErrUnsupportedInputFormat    = errors.New("unsupported input format")
	ErrUnsupportedBorderStyle    = errors.New("unsupported border style")
)

// WhitespaceMode controls whether whitespace separates columns.
type WhitespaceMode string

const (
	// WhitespaceAny treats every whitespace character as a delimiter.
	WhitespaceAny WhitespaceMode = "any"
	// WhitespaceDouble treats whitespace as a delimiter only when a
	// horizontally adjacent character is also whitespace, so single
	// embedded spaces stay part of the cell.
	WhitespaceDouble WhitespaceMode = "double"
	// WhitespaceIgnore never treats whitespace as a delimiter.
	WhitespaceIgnore WhitespaceMode = "ignore"
)

var whitespaceModes = []WhitespaceMode{WhitespaceAny, WhitespaceDouble, WhitespaceIgnore}

// String returns the mode name.
func (m WhitespaceMode) String() string { return string(m) }

// WhitespaceModes returns all supported whitespace modes.
func WhitespaceModes() []WhitespaceMode {
	out := make([]WhitespaceMode, len(whitespaceModes))
	copy(out, whitespaceModes)
	return out
}

// ParseWhitespaceMode parses a mode name. The empty string selects
// [WhitespaceAny].
func ParseWhitespaceMode(s string) (WhitespaceMode, error) {
	if s == "" {
		return WhitespaceAny, nil
	}
	for _, m := range whitespaceModes {
		if string(m) == strings.ToLower(s) {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedWhitespaceMode, s)
}

// InputFormat names a serialized tree format accepted by the flattener.
type InputFormat string

const (
	JSON InputFormat = "json"
	YAML InputFormat = "yaml"
)

// String returns the format name.
func (f InputFormat) String() string { return string(f) }

// ParseInputFormat parses a format name. "yml" is accepted as [YAML].
func ParseInputFormat(s string) (InputFormat, error) {
	switch strings.ToLower(s) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedInputFormat, s)
	}
}

// InputFormatForPath guesses a format from a file name extension.
// Anything that is not .yaml or .yml is treated as JSON.
func InputFormatForPath(path string) InputFormat {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml") {
		return YAML
	}
	return JSON
}

// BorderStyle controls the border drawn by [Justify].
type BorderStyle int

const (
	BorderNone    BorderStyle = iota // Two-space gaps, no borders
	BorderASCII                      // +-+|
	BorderRounded                    // ╭─╮╰╯│┬┴├┤┼
)

var borderNames = map[string]BorderStyle{
	"none":    BorderNone,
	"ascii":   BorderASCII,
	"rounded": BorderRounded,
}

// String returns the style name.
func (b BorderStyle) String() string {
	for name, style := range borderNames {
		if style == b {
			return name
		}
	}
	return fmt.Sprintf("BorderStyle(%d)", int(b))
}

// ParseBorderStyle parses a border style name. The empty string selects
// [BorderNone].
func ParseBorderStyle(s string) (BorderStyle, error) {
	if s == "" {
		return BorderNone, nil
	}
	if b, ok := borderNames[strings.ToLower(s)]; ok {
		return b, nil
	}
	return BorderNone, fmt.Errorf("%w: %q", ErrUnsupportedBorderStyle, s)
}
