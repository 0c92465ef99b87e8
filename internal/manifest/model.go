package manifest

// Kind classifies a dependency table in Cargo.toml.
type Kind string

const (
	KindNormal Kind = "normal"
	KindDev    Kind = "dev"
	KindBuild  Kind = "build"
)

// Dependency represents a single entry from one of the manifest's
// dependency tables.
type Dependency struct {
	// Name is the table key, i.e. the name the crate is referred to by
	// in this project. It differs from the published name when the
	// dependency is renamed with `package = "..."`.
	Name string
	// Package is the true published crate name for renamed dependencies,
	// empty otherwise.
	Package string
	// Req is the version requirement string. Path, git and workspace
	// dependencies without an explicit version carry "*".
	Req  string
	Kind Kind
}

// TrueName returns the published crate name: the rename target when one
// is present, the table key otherwise. rustdoc indexes crates by the
// published name, never by the local alias.
func (d Dependency) TrueName() string {
	if d.Package != "" {
		return d.Package
	}
	return d.Name
}

// Manifest represents the parts of Cargo.toml this tool cares about.
type Manifest struct {
	CrateName    string
	Dependencies []Dependency
}

// Deps returns the dependencies of the given kinds, sorted by name.
func (m *Manifest) Deps(kinds ...Kind) []Dependency {
	want := make(map[Kind]bool, len(kinds))
	for _, k := range kinds {
		want[k] = true
	}
	var out []Dependency
	for _, d := range m.Dependencies {
		if want[d.Kind] {
			out = append(out, d)
		}
	}
	return out
}
