package resolve

import (
	"testing"

	"github.com/Bunogi/cargo-makedocs/internal/lock"
	"github.com/Bunogi/cargo-makedocs/internal/manifest"
)

func lockFile(t *testing.T, packages ...lock.Package) *lock.File {
	t.Helper()
	return &lock.File{Packages: packages}
}

func TestResolve_pinsLockedVersion(t *testing.T) {
	deps := []manifest.Dependency{
		{Name: "serde", Req: "1.0", Kind: manifest.KindNormal},
	}
	lf := lockFile(t, lock.Package{Name: "serde", Version: "1.0.219"})

	crates, misses, err := Resolve(deps, lf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(misses) != 0 {
		t.Errorf("misses = %v, want none", misses)
	}
	if len(crates) != 1 || crates[0].Name != "serde" || crates[0].Version != "1.0.219" {
		t.Errorf("crates = %+v, want serde@1.0.219", crates)
	}
}

func TestResolve_newestCompatibleWins(t *testing.T) {
	deps := []manifest.Dependency{
		{Name: "rand", Req: "0.8", Kind: manifest.KindNormal},
	}
	lf := lockFile(t,
		lock.Package{Name: "rand", Version: "0.8.5"},
		lock.Package{Name: "rand", Version: "0.8.3"},
		lock.Package{Name: "rand", Version: "0.9.1"},
	)

	crates, _, err := Resolve(deps, lf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Caret semantics keep 0.9.x out; the newest 0.8.x is chosen.
	if len(crates) != 1 || crates[0].Version != "0.8.5" {
		t.Errorf("crates = %+v, want rand@0.8.5", crates)
	}
}

func TestResolve_renamedDependencyUsesTrueName(t *testing.T) {
	deps := []manifest.Dependency{
		{Name: "nice-name", Package: "uglycrate", Req: "0.4", Kind: manifest.KindNormal},
	}
	lf := lockFile(t, lock.Package{Name: "uglycrate", Version: "0.4.2"})

	crates, misses, err := Resolve(deps, lf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(misses) != 0 {
		t.Errorf("misses = %v, want none", misses)
	}
	if len(crates) != 1 || crates[0].Name != "uglycrate" {
		t.Errorf("crates = %+v, want uglycrate (true name, not alias)", crates)
	}
}

func TestResolve_missingLockEntryIsDropped(t *testing.T) {
	deps := []manifest.Dependency{
		{Name: "serde", Req: "1.0", Kind: manifest.KindNormal},
		{Name: "ghost", Req: "2.1", Kind: manifest.KindNormal},
	}
	lf := lockFile(t, lock.Package{Name: "serde", Version: "1.0.219"})

	crates, misses, err := Resolve(deps, lf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(crates) != 1 || crates[0].Name != "serde" {
		t.Errorf("crates = %+v, want just serde", crates)
	}
	if len(misses) != 1 || misses[0].Name != "ghost" {
		t.Errorf("misses = %v, want just ghost", misses)
	}
}

func TestResolve_incompatibleLockedVersionIsAMiss(t *testing.T) {
	deps := []manifest.Dependency{
		{Name: "serde", Req: "2.0", Kind: manifest.KindNormal},
	}
	lf := lockFile(t, lock.Package{Name: "serde", Version: "1.0.219"})

	crates, misses, _ := Resolve(deps, lf)
	if len(crates) != 0 {
		t.Errorf("crates = %+v, want none", crates)
	}
	if len(misses) != 1 {
		t.Errorf("misses = %v, want one", misses)
	}
}

func TestResolve_duplicateDeclarationsCollapse(t *testing.T) {
	deps := []manifest.Dependency{
		{Name: "cc", Req: "1.0", Kind: manifest.KindNormal},
		{Name: "cc", Req: "1.0", Kind: manifest.KindBuild},
	}
	lf := lockFile(t, lock.Package{Name: "cc", Version: "1.0.99"})

	crates, _, err := Resolve(deps, lf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(crates) != 1 {
		t.Errorf("crates = %+v, want a single cc entry", crates)
	}
}

func TestResolve_wildcardMatchesAnything(t *testing.T) {
	deps := []manifest.Dependency{
		{Name: "local", Req: "*", Kind: manifest.KindNormal},
	}
	lf := lockFile(t, lock.Package{Name: "local", Version: "0.0.1"})

	crates, misses, err := Resolve(deps, lf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(misses) != 0 || len(crates) != 1 {
		t.Errorf("crates = %+v misses = %v, want one crate no misses", crates, misses)
	}
}

func TestResolve_multiClauseRequirement(t *testing.T) {
	deps := []manifest.Dependency{
		{Name: "log", Req: ">=0.4, <0.5", Kind: manifest.KindNormal},
	}
	lf := lockFile(t, lock.Package{Name: "log", Version: "0.4.27"})

	crates, misses, err := Resolve(deps, lf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(misses) != 0 || len(crates) != 1 {
		t.Errorf("crates = %+v misses = %v, want one crate no misses", crates, misses)
	}
}

func TestResolve_invalidRequirement(t *testing.T) {
	deps := []manifest.Dependency{
		{Name: "bad", Req: "not-a-version", Kind: manifest.KindNormal},
	}
	if _, _, err := Resolve(deps, lockFile(t)); err == nil {
		t.Fatal("expected error for unparsable requirement")
	}
}

func TestSelector(t *testing.T) {
	if got := (Crate{Name: "serde", Version: "1.0.219"}).Selector(); got != "serde@1.0.219" {
		t.Errorf("selector = %q, want serde@1.0.219", got)
	}
	if got := (Crate{Name: "forced"}).Selector(); got != "forced" {
		t.Errorf("selector = %q, want bare name", got)
	}
}
