// Package testutil provides test fixtures: throwaway cargo projects and a
// fake cargo binary that records the arguments it was invoked with.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteProject creates a temp directory containing the given Cargo.toml and
// Cargo.lock contents and returns its path. An empty lockTOML skips writing
// the lock file.
func WriteProject(t *testing.T, manifestTOML, lockTOML string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "Cargo.toml"), []byte(manifestTOML), 0644); err != nil { //nolint:gosec // test file
		t.Fatal(err)
	}
	if lockTOML != "" {
		if err := os.WriteFile(filepath.Join(dir, "Cargo.lock"), []byte(lockTOML), 0644); err != nil { //nolint:gosec // test file
			t.Fatal(err)
		}
	}
	return dir
}

// FakeCargo installs a stub cargo executable on PATH for the duration of
// the test and returns the file its argv lines are recorded into. The stub
// always exits zero.
func FakeCargo(t *testing.T) string {
	return FakeCargoExit(t, 0)
}

// FakeCargoExit is FakeCargo with a chosen exit code, for testing that the
// child's exit status is surfaced.
func FakeCargoExit(t *testing.T, code int) string {
	t.Helper()
	dir := t.TempDir()
	argsFile := filepath.Join(dir, "args")

	script := fmt.Sprintf(`#!/bin/sh
printf '%%s\n' "$@" > %q
case "$1" in
pkgid) echo "path+file:///fake/mycrate#0.1.0" ;;
--version) echo "cargo 1.80.0" ;;
esac
exit %d
`, argsFile, code)
	if err := os.WriteFile(filepath.Join(dir, "cargo"), []byte(script), 0755); err != nil { //nolint:gosec // test executable
		t.Fatal(err)
	}

	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
	return argsFile
}

// RecordedArgs reads back the argv lines captured by FakeCargo.
func RecordedArgs(t *testing.T, argsFile string) []string {
	t.Helper()
	data, err := os.ReadFile(argsFile) //nolint:gosec // test file
	if err != nil {
		t.Fatalf("reading recorded args: %v", err)
	}
	var args []string
	for _, line := range strings.Split(string(data), "\n") {
		if line != "" {
			args = append(args, line)
		}
	}
	return args
}
