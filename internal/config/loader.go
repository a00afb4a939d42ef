package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// sharedFlagKeys maps flag names to config keys for flags that mean the
// same thing on every command.
var sharedFlagKeys = map[string]string{
	"log-level":        "log.level",
	"log-format":       "log.format",
	"output-delimiter": "output.delimiter",
	"us":               "output.unit_separator",
	"line-delimiter":   "output.line_delimiter",
	"null":             "output.null",
	"rs":               "output.record_separator",
}

// commandFlagKeys maps flag names to config keys per command.
var commandFlagKeys = map[string]map[string]string{
	"unjustify": {
		"delimiters":  "unjustify.delimiters",
		"whitespace":  "unjustify.whitespace",
		"border":      "unjustify.border",
		"header-only": "unjustify.header_only",
		"columns":     "unjustify.columns",
		"ignore-case": "unjustify.ignore_case",
	},
	"unnest": {
		"attribute-separator": "unnest.separator",
		"missing":             "unnest.missing",
		"from":                "unnest.from",
	},
	"justify": {
		"input-delimiter": "justify.input_delimiter",
		"border":          "justify.border",
		"header":          "justify.header",
		"display-width":   "justify.display_width",
	},
}

// Options tells Load where to look.
type Options struct {
	// File is an explicit config file. When empty, ConfigFileNames are
	// looked up in Dir.
	File string
	// Dir is the directory searched for a config file. Defaults to ".".
	Dir string
	// Command selects the per-command flag mapping.
	Command string
	// Flags are the parsed flags of the running command; only flags the
	// user changed are applied.
	Flags *pflag.FlagSet
	// Environ replaces os.Environ when non-nil.
	Environ []string
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"log.level":               DefaultLogLevel,
		"log.format":              DefaultLogFormat,
		"output.unit_separator":   false,
		"output.null":             false,
		"output.record_separator": false,
		"unjustify.delimiters":    "",
		"unjustify.whitespace":    DefaultWhitespace,
		"unjustify.border":        false,
		"unjustify.header_only":   false,
		"unjustify.columns":       []string{},
		"unjustify.ignore_case":   false,
		"unnest.separator":        DefaultSeparator,
		"unnest.missing":          "",
		"unnest.from":             "",
		"justify.input_delimiter": DefaultInputDelimiter,
		"justify.border":          DefaultBorder,
		"justify.header":          false,
		"justify.display_width":   false,
	}
}

// Load builds a Config. Precedence, highest first: flags, environment,
// config file, defaults.
func Load(opts Options) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	path := findConfigFile(opts.File, opts.Dir)
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	if err := loadEnv(k, opts.Environ); err != nil {
		return nil, err
	}

	if opts.Flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(opts.Flags, ".", k, flagMapper(opts.Command, opts.Flags)), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.FileUsed = path
	return &cfg, nil
}

// Defaults returns a Config holding only the built-in defaults.
func Defaults() *Config {
	k := koanf.New(".")
	var cfg Config
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return &cfg
	}
	_ = k.Unmarshal("", &cfg)
	return &cfg
}

// findConfigFile returns the explicit path, or the first of
// ConfigFileNames present in dir, or "".
func findConfigFile(explicit, dir string) string {
	if explicit != "" {
		return explicit
	}
	if dir == "" {
		dir = "."
	}
	for _, name := range ConfigFileNames {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// envKey turns TABX_OUTPUT_LINE_DELIMITER into output.line_delimiter: the
// first underscore after the prefix separates section and field.
func envKey(name string) string {
	key := strings.ToLower(strings.TrimPrefix(name, EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}

func envValue(key, value string) (string, interface{}) {
	key = envKey(key)
	if key == "unjustify.columns" {
		if value == "" {
			return key, []string{}
		}
		return key, strings.Split(value, ",")
	}
	return key, value
}

func loadEnv(k *koanf.Koanf, environ []string) error {
	if environ == nil {
		if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envValue), nil); err != nil {
			return fmt.Errorf("failed to load env vars: %w", err)
		}
		return nil
	}

	vars := map[string]interface{}{}
	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, EnvPrefix) {
			continue
		}
		key, v := envValue(name, value)
		vars[key] = v
	}
	if err := k.Load(confmap.Provider(vars, "."), nil); err != nil {
		return fmt.Errorf("failed to load env vars: %w", err)
	}
	return nil
}

func flagMapper(command string, flags *pflag.FlagSet) func(*pflag.Flag) (string, interface{}) {
	return func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		if f.Name == "verbose" {
			if on, _ := flags.GetBool("verbose"); on {
				return "log.level", "debug"
			}
			return "", nil
		}
		if key, ok := commandFlagKeys[command][f.Name]; ok {
			return key, posflag.FlagVal(flags, f)
		}
		if key, ok := sharedFlagKeys[f.Name]; ok {
			return key, posflag.FlagVal(flags, f)
		}
		return "", nil
	}
}
