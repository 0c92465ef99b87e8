package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func initWith(t *testing.T, content string) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	if content == "" {
		if err := Init(""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return
	}

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil { //nolint:gosec // test file
		t.Fatal(err)
	}
	if err := Init(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGet_defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	initWith(t, "")

	cfg, err := Get()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Cargo != "cargo" {
		t.Errorf("cargo = %q, want %q", cfg.Cargo, "cargo")
	}
	if len(cfg.Exclude) != 0 || len(cfg.Include) != 0 {
		t.Errorf("exclude/include = %v/%v, want empty", cfg.Exclude, cfg.Include)
	}
}

func TestGet_fromFile(t *testing.T) {
	initWith(t, `
cargo: cross
exclude:
  - winapi
  - libc
include:
  - serde_json
`)

	cfg, err := Get()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Cargo != "cross" {
		t.Errorf("cargo = %q, want %q", cfg.Cargo, "cross")
	}
	if len(cfg.Exclude) != 2 {
		t.Errorf("exclude = %v, want 2 entries", cfg.Exclude)
	}
	if len(cfg.Include) != 1 || cfg.Include[0] != "serde_json" {
		t.Errorf("include = %v, want [serde_json]", cfg.Include)
	}
}

func TestInit_malformedFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(":\n  - ["), 0644); err != nil { //nolint:gosec // test file
		t.Fatal(err)
	}
	if err := Init(path); err == nil {
		t.Fatal("expected error for malformed config file")
	}
}
