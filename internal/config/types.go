// Package config loads tabx settings from defaults, a YAML file, TABX_
// environment variables and command-line flags.
package config

// Config holds all settings. Every command reads the sections it needs.
type Config struct {
	Log       Log       `koanf:"log"`
	Output    Output    `koanf:"output"`
	Unjustify Unjustify `koanf:"unjustify"`
	Unnest    Unnest    `koanf:"unnest"`
	Justify   Justify   `koanf:"justify"`

	// FileUsed is the config file that was read, if any.
	FileUsed string `koanf:"-"`
}

// Log configures the slog handler on stderr.
type Log struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Output selects delimiters. Explicit delimiters are pointers so that
// "not given" and "given as empty" stay distinct.
type Output struct {
	Delimiter       *string `koanf:"delimiter"`
	UnitSeparator   bool    `koanf:"unit_separator"`
	LineDelimiter   *string `koanf:"line_delimiter"`
	Null            bool    `koanf:"null"`
	RecordSeparator bool    `koanf:"record_separator"`
}

// Unjustify configures column extraction.
type Unjustify struct {
	Delimiters string   `koanf:"delimiters"`
	Whitespace string   `koanf:"whitespace"`
	Border     bool     `koanf:"border"`
	HeaderOnly bool     `koanf:"header_only"`
	Columns    []string `koanf:"columns"`
	IgnoreCase bool     `koanf:"ignore_case"`
}

// Unnest configures tree flattening.
type Unnest struct {
	Separator string `koanf:"separator"`
	Missing   string `koanf:"missing"`
	// From is the input format; empty means guess from the file name.
	From string `koanf:"from"`
}

// Justify configures table rendering.
type Justify struct {
	InputDelimiter string `koanf:"input_delimiter"`
	Border         string `koanf:"border"`
	Header         bool   `koanf:"header"`
	DisplayWidth   bool   `koanf:"display_width"`
}

// Default values.
const (
	DefaultLogLevel       = "warn"
	DefaultLogFormat      = "text"
	DefaultWhitespace     = "any"
	DefaultSeparator      = "."
	DefaultInputDelimiter = ","
	DefaultBorder         = "none"
	EnvPrefix             = "TABX_"
)

// ConfigFileNames are searched, in order, when no file is given.
var ConfigFileNames = []string{"tabx.yaml", "tabx.yml"}
