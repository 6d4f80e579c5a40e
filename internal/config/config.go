// Package config loads the CLI's TOML configuration file, the same format
// and library (github.com/BurntSushi/toml) the teacher uses for its own
// world-file headers (internal/tqw/tqw.go's ScanFileInfo).
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds everything cmd/lr1 needs that isn't passed per-invocation on
// the command line: defaults for the grammar name and the cache file
// location, whether tracing is on by default, and the REPL prompt color.
type Config struct {
	// Grammar is the default compiled-in grammar name (a key into
	// lr1.Grammars, e.g. "parens"), used when -g/--grammar is not given on
	// the command line.
	Grammar string `toml:"grammar"`

	// Cache is the default path to a compiled-table cache file.
	Cache string `toml:"cache"`

	// Trace turns on move-by-move tracing by default.
	Trace bool `toml:"trace"`

	// PromptColor is a cosmetic REPL setting: one of "red", "green",
	// "yellow", "blue", "magenta", or "cyan" to render the "lr1> " prompt
	// in that color. Empty, or any other value, means "no color".
	PromptColor string `toml:"prompt_color"`
}

// Default returns the zero-configuration Config: no default grammar or
// cache path, tracing off, no prompt color.
func Default() Config {
	return Config{}
}

// Load reads and parses the TOML file at path. A missing file is not an
// error; it returns Default() instead, since the CLI works fine from flags
// alone.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, err
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
