// Package config loads the optional TOML configuration controlling
// the recreator's spacing policy and the trace command defaults.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Recreate holds the spacing options applied while recreating source
// text from a translated line.
type Recreate struct {
	SpaceAfterCommands       bool `toml:"space_after_commands"`
	SpaceAfterPrintComma     bool `toml:"space_after_print_comma"`
	SpaceAfterPrintSemicolon bool `toml:"space_after_print_semicolon"`
	SpaceAfterInputComma     bool `toml:"space_after_input_comma"`
	SpaceBeforeColon         bool `toml:"space_before_colon"`
	SpaceAfterColon          bool `toml:"space_after_colon"`
	SpaceBeforeRemOperator   bool `toml:"space_before_rem_operator"`
}

// Trace holds defaults for the trace commands.
type Trace struct {
	ShowPositions bool `toml:"show_positions"`
}

// Config is the full configuration file.
type Config struct {
	Recreate Recreate `toml:"recreate"`
	Trace    Trace    `toml:"trace"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Recreate: Recreate{
			SpaceAfterCommands:       true,
			SpaceAfterPrintComma:     true,
			SpaceAfterPrintSemicolon: true,
			SpaceAfterInputComma:     true,
			SpaceAfterColon:          true,
			SpaceBeforeRemOperator:   true,
		},
	}
}

// Load reads a TOML configuration file over the defaults. Unknown
// keys are rejected so typos do not silently fall back.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("unknown config key %q in %s",
			undecoded[0].String(), path)
	}
	return cfg, nil
}
