package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Bunogi/cargo-makedocs/internal/lock"
	"github.com/Bunogi/cargo-makedocs/internal/manifest"
)

// Context holds the resolved paths and loaded dependency files for a crate.
type Context struct {
	Root         string
	ManifestPath string
	LockPath     string
	Manifest     *manifest.Manifest
	Lock         *lock.File
}

// Load locates and parses Cargo.toml and Cargo.lock. With an empty
// manifestPath the crate root is discovered by walking upward from the
// working directory, mirroring how cargo itself finds the manifest.
func Load(manifestPath string) (*Context, error) {
	var root string
	if manifestPath != "" {
		abs, err := filepath.Abs(manifestPath)
		if err != nil {
			return nil, fmt.Errorf("resolving manifest path: %w", err)
		}
		manifestPath = abs
		root = filepath.Dir(abs)
	} else {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolving working directory: %w", err)
		}
		root, err = FindRoot(wd)
		if err != nil {
			return nil, err
		}
		manifestPath = filepath.Join(root, "Cargo.toml")
	}

	m, err := manifest.Load(manifestPath)
	if err != nil {
		return nil, err
	}

	lockPath := filepath.Join(root, "Cargo.lock")
	lf, err := lock.Load(lockPath)
	if err != nil {
		return nil, err
	}

	return &Context{
		Root:         root,
		ManifestPath: manifestPath,
		LockPath:     lockPath,
		Manifest:     m,
		Lock:         lf,
	}, nil
}

// FindRoot walks from start upward and returns the first directory
// containing a Cargo.toml.
func FindRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", start, err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "Cargo.toml")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("cannot find Cargo.toml in %s or any parent directory", start)
		}
		dir = parent
	}
}
