package lock

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Load reads a Cargo.lock file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is the project lock file path
	if err != nil {
		return nil, fmt.Errorf("reading Cargo.lock (did you run `cargo build`?): %w", err)
	}
	return Parse(data)
}

// Parse parses Cargo.lock content.
func Parse(data []byte) (*File, error) {
	var lf File
	if err := toml.Unmarshal(data, &lf); err != nil {
		return nil, fmt.Errorf("parsing Cargo.lock: %w", err)
	}
	for i, p := range lf.Packages {
		if p.Name == "" || p.Version == "" {
			return nil, fmt.Errorf("Cargo.lock: package entry %d is missing name or version", i)
		}
	}
	return &lf, nil
}
