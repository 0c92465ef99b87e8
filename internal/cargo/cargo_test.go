package cargo

import (
	"errors"
	"os/exec"
	"reflect"
	"testing"

	"github.com/Bunogi/cargo-makedocs/internal/testutil"
)

func TestDocArgs_minimal(t *testing.T) {
	got := DocArgs(DocOpts{Selectors: []string{"serde@1.0.219"}})
	want := []string{"doc", "--no-deps", "-p", "serde@1.0.219"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("args = %v, want %v", got, want)
	}
}

func TestDocArgs_allOptions(t *testing.T) {
	got := DocArgs(DocOpts{
		Selectors:            []string{"a@1.0.0", "b"},
		Open:                 true,
		DocumentPrivateItems: true,
	})
	want := []string{"doc", "--no-deps", "-p", "a@1.0.0", "-p", "b", "--document-private-items", "--open"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("args = %v, want %v", got, want)
	}
}

func TestDoc_invokesCargo(t *testing.T) {
	argsFile := testutil.FakeCargo(t)

	err := Doc(t.TempDir(), DocOpts{Selectors: []string{"serde@1.0.219"}, Open: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := testutil.RecordedArgs(t, argsFile)
	want := []string{"doc", "--no-deps", "-p", "serde@1.0.219", "--open"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("recorded args = %v, want %v", got, want)
	}
}

func TestDoc_childExitCodeSurfaces(t *testing.T) {
	testutil.FakeCargoExit(t, 101)

	err := Doc(t.TempDir(), DocOpts{Selectors: []string{"serde"}})
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error = %v, want *exec.ExitError", err)
	}
	if exitErr.ExitCode() != 101 {
		t.Errorf("exit code = %d, want 101", exitErr.ExitCode())
	}
}

func TestDoc_missingBinaryIsLaunchError(t *testing.T) {
	old := Binary
	Binary = "definitely-not-cargo-xyz"
	defer func() { Binary = old }()

	err := Doc(t.TempDir(), DocOpts{})
	var launchErr *LaunchError
	if !errors.As(err, &launchErr) {
		t.Fatalf("error = %v, want *LaunchError", err)
	}
}
