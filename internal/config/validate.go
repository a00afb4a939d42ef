package config

import (
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/bjaus/tabx"
)

// Validate checks the log section and the sections command reads, so that
// bad settings are reported before any input is read. Settings for other
// commands are not checked. An empty command checks every section.
func (c *Config) Validate(command string) error {
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}

	all := command == ""
	if all || command == "unjustify" || command == "unnest" {
		if _, err := c.Delimiters(); err != nil {
			return err
		}
	}
	if all || command == "unjustify" {
		if _, err := c.ExtractOptions(); err != nil {
			return err
		}
	}
	if (all || command == "unnest") && c.Unnest.From != "" {
		if _, err := tabx.ParseInputFormat(c.Unnest.From); err != nil {
			return err
		}
	}
	if all || command == "justify" {
		if _, err := c.JustifyOptions(); err != nil {
			return err
		}
		if _, err := c.InputDelimiter(); err != nil {
			return err
		}
	}
	return nil
}

// LogLevel parses log.level.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}

// Delimiters resolves the output section.
func (c *Config) Delimiters() (tabx.Delimiters, error) {
	return tabx.DelimiterOptions{
		Field:           c.Output.Delimiter,
		UnitSeparator:   c.Output.UnitSeparator,
		Line:            c.Output.LineDelimiter,
		Null:            c.Output.Null,
		RecordSeparator: c.Output.RecordSeparator,
	}.Resolve()
}

// ExtractOptions converts the unjustify section.
func (c *Config) ExtractOptions() (tabx.ExtractOptions, error) {
	mode, err := tabx.ParseWhitespaceMode(c.Unjustify.Whitespace)
	if err != nil {
		return tabx.ExtractOptions{}, err
	}
	var columns []string
	for _, col := range c.Unjustify.Columns {
		if col = strings.TrimSpace(col); col != "" {
			columns = append(columns, col)
		}
	}
	return tabx.ExtractOptions{
		Delimiters: c.Unjustify.Delimiters,
		Whitespace: mode,
		Border:     c.Unjustify.Border,
		HeaderOnly: c.Unjustify.HeaderOnly,
		Columns:    columns,
		IgnoreCase: c.Unjustify.IgnoreCase,
	}, nil
}

// InputFormat returns the unnest input format, guessing from path when
// unnest.from is empty.
func (c *Config) InputFormat(path string) (tabx.InputFormat, error) {
	if c.Unnest.From == "" {
		return tabx.InputFormatForPath(path), nil
	}
	return tabx.ParseInputFormat(c.Unnest.From)
}

// JustifyOptions converts the justify section.
func (c *Config) JustifyOptions() (tabx.JustifyOptions, error) {
	border, err := tabx.ParseBorderStyle(c.Justify.Border)
	if err != nil {
		return tabx.JustifyOptions{}, err
	}
	return tabx.JustifyOptions{
		Border:       border,
		Header:       c.Justify.Header,
		DisplayWidth: c.Justify.DisplayWidth,
	}, nil
}

// InputDelimiter returns justify.input_delimiter, which must be a single
// character.
func (c *Config) InputDelimiter() (rune, error) {
	d := c.Justify.InputDelimiter
	if utf8.RuneCountInString(d) != 1 {
		return 0, fmt.Errorf("justify.input_delimiter must be a single character, got %q", d)
	}
	r, _ := utf8.DecodeRuneInString(d)
	return r, nil
}
