package manifest

import (
	"fmt"
	"os"
	"sort"

	"github.com/BurntSushi/toml"
)

// rawManifest mirrors the Cargo.toml tables we read. Dependency values are
// either a plain requirement string or an inline table, so they are decoded
// as `any` and interpreted afterwards.
type rawManifest struct {
	Package *struct {
		Name string `toml:"name"`
	} `toml:"package"`
	Workspace         *struct{}      `toml:"workspace"`
	Dependencies      map[string]any `toml:"dependencies"`
	DevDependencies   map[string]any `toml:"dev-dependencies"`
	BuildDependencies map[string]any `toml:"build-dependencies"`
}

// Load reads and parses a Cargo.toml file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is the project manifest path
	if err != nil {
		return nil, fmt.Errorf("reading Cargo.toml: %w", err)
	}
	return Parse(data)
}

// Parse parses Cargo.toml content.
func Parse(data []byte) (*Manifest, error) {
	var raw rawManifest
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing Cargo.toml: %w", err)
	}
	if raw.Package == nil && raw.Workspace == nil {
		return nil, fmt.Errorf("Cargo.toml: missing [package] section")
	}

	m := &Manifest{}
	if raw.Package != nil {
		m.CrateName = raw.Package.Name
	}

	for _, tbl := range []struct {
		entries map[string]any
		kind    Kind
	}{
		{raw.Dependencies, KindNormal},
		{raw.DevDependencies, KindDev},
		{raw.BuildDependencies, KindBuild},
	} {
		deps, err := parseDepTable(tbl.entries, tbl.kind)
		if err != nil {
			return nil, err
		}
		m.Dependencies = append(m.Dependencies, deps...)
	}

	// TOML tables decode in hash order; sort for deterministic output.
	sort.Slice(m.Dependencies, func(i, j int) bool {
		a, b := m.Dependencies[i], m.Dependencies[j]
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.Kind < b.Kind
	})

	return m, nil
}

func parseDepTable(entries map[string]any, kind Kind) ([]Dependency, error) {
	var deps []Dependency
	for name, value := range entries {
		d, err := parseDep(name, value, kind)
		if err != nil {
			return nil, err
		}
		deps = append(deps, d)
	}
	return deps, nil
}

// parseDep interprets a single dependency value. A plain string is a version
// requirement; a table carries the requirement under `version` plus optional
// `package` (rename), `path`, `git` and `workspace` keys. Path, git and
// workspace dependencies without an explicit version match any locked version.
func parseDep(name string, value any, kind Kind) (Dependency, error) {
	switch v := value.(type) {
	case string:
		return Dependency{Name: name, Req: v, Kind: kind}, nil
	case map[string]any:
		d := Dependency{Name: name, Kind: kind}
		if pkg, ok := v["package"].(string); ok {
			d.Package = pkg
		}
		if req, ok := v["version"].(string); ok {
			d.Req = req
			return d, nil
		}
		if hasAny(v, "path", "git", "workspace") {
			d.Req = "*"
			return d, nil
		}
		return Dependency{}, fmt.Errorf("Cargo.toml: dependency %q has no version, path or git source", name)
	default:
		return Dependency{}, fmt.Errorf("Cargo.toml: invalid value for dependency %q", name)
	}
}

func hasAny(m map[string]any, keys ...string) bool {
	for _, k := range keys {
		if _, ok := m[k]; ok {
			return true
		}
	}
	return false
}
