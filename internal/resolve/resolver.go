package resolve

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/Masterminds/semver/v3"

	"github.com/Bunogi/cargo-makedocs/internal/lock"
	"github.com/Bunogi/cargo-makedocs/internal/manifest"
)

// Crate is a resolved documentation target. Version is empty for crates
// force-included by the user, which are never checked against the lock file.
type Crate struct {
	Name    string `json:"name" yaml:"name"`
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
}

// Selector returns the cargo package selector for the crate, version
// qualified when a locked version is known. Qualification matters when the
// graph contains several versions of the same crate.
func (c Crate) Selector() string {
	if c.Version == "" {
		return c.Name
	}
	return c.Name + "@" + c.Version
}

// Miss records a declared dependency that could not be matched against the
// lock file. Misses are reported as warnings, not errors: the crate is
// simply left out of the documentation set.
type Miss struct {
	Name string
	Req  string
}

func (m Miss) String() string {
	return fmt.Sprintf("%s (requirement %q)", m.Name, m.Req)
}

// Resolve matches each declared dependency against the lock file and returns
// the version-pinned crates, newest compatible version first in case of
// duplicates. Renamed dependencies resolve under their true package name.
// Dependencies declared more than once (for example under both normal and
// build tables) collapse into a single crate.
func Resolve(deps []manifest.Dependency, lf *lock.File) ([]Crate, []Miss, error) {
	var (
		crates []Crate
		misses []Miss
		seen   = make(map[string]bool, len(deps))
	)

	for _, d := range deps {
		name := d.TrueName()
		if seen[name] {
			continue
		}
		seen[name] = true

		constraint, err := parseReq(d.Req)
		if err != nil {
			return nil, nil, fmt.Errorf("Cargo.toml: dependency %q: invalid version requirement %q: %w", d.Name, d.Req, err)
		}

		best := bestMatch(lf.ByName(name), constraint)
		if best == nil {
			misses = append(misses, Miss{Name: name, Req: d.Req})
			continue
		}
		crates = append(crates, Crate{Name: name, Version: best.Original()})
	}

	return crates, misses, nil
}

// bestMatch returns the newest locked version satisfying the constraint,
// or nil when none does.
func bestMatch(candidates []lock.Package, constraint *semver.Constraints) *semver.Version {
	var best *semver.Version
	for _, p := range candidates {
		v, err := semver.NewVersion(p.Version)
		if err != nil {
			// Lock files are machine generated; an unparsable version
			// cannot satisfy any requirement.
			continue
		}
		if !constraint.Check(v) {
			continue
		}
		if best == nil || v.GreaterThan(best) {
			best = v
		}
	}
	return best
}

// parseReq converts a cargo version requirement into a semver constraint.
// Cargo treats a bare version like "1.2" as a caret requirement, so bare
// clauses are prefixed with "^" before parsing. Comma-separated clauses
// combine as AND, matching cargo's multi-requirement syntax.
func parseReq(req string) (*semver.Constraints, error) {
	req = strings.TrimSpace(req)
	if req == "" || req == "*" {
		return semver.NewConstraint("*")
	}

	clauses := strings.Split(req, ",")
	for i, c := range clauses {
		c = strings.TrimSpace(c)
		if c != "" && unicode.IsDigit(rune(c[0])) {
			c = "^" + c
		}
		clauses[i] = c
	}
	return semver.NewConstraint(strings.Join(clauses, ", "))
}
