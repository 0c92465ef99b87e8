package lock

// File represents Cargo.lock.
type File struct {
	Packages []Package `toml:"package"`
}

// Package records one resolved package. The same name can appear several
// times when the graph contains multiple major versions of a crate.
type Package struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
	Source  string `toml:"source,omitempty"`
}

// ByName returns every locked package with the given name.
func (f *File) ByName(name string) []Package {
	var out []Package
	for _, p := range f.Packages {
		if p.Name == name {
			out = append(out, p)
		}
	}
	return out
}

// Has reports whether any locked package has the given name.
func (f *File) Has(name string) bool {
	return len(f.ByName(name)) > 0
}
