package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if !cfg.Recreate.SpaceAfterCommands {
		t.Error("SpaceAfterCommands default must be on")
	}
	if cfg.Recreate.SpaceBeforeColon {
		t.Error("SpaceBeforeColon default must be off")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gobasic.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[recreate]
space_after_print_semicolon = false
space_before_colon = true

[trace]
show_positions = true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Recreate.SpaceAfterPrintSemicolon {
		t.Error("space_after_print_semicolon not applied")
	}
	if !cfg.Recreate.SpaceBeforeColon {
		t.Error("space_before_colon not applied")
	}
	if !cfg.Recreate.SpaceAfterCommands {
		t.Error("unset keys must keep their defaults")
	}
	if !cfg.Trace.ShowPositions {
		t.Error("show_positions not applied")
	}
}

func TestLoadUnknownKey(t *testing.T) {
	path := writeConfig(t, "[recreate]\nspaces = 2\n")
	if _, err := Load(path); err == nil {
		t.Error("unknown keys must be rejected")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("missing file must report an error")
	}
}
