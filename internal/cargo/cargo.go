package cargo

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Binary is the cargo executable to invoke. Overridable through user
// configuration, e.g. to pin a toolchain wrapper.
var Binary = "cargo"

// DocOpts configures a cargo doc invocation.
type DocOpts struct {
	// Selectors are the -p package selectors, one per documentation target.
	Selectors []string
	// Open asks cargo to open the generated docs in a browser.
	Open bool
	// DocumentPrivateItems forwards --document-private-items.
	DocumentPrivateItems bool
}

// DocArgs builds the argument list for cargo doc. Kept separate from Doc so
// the constructed invocation is testable without running anything.
func DocArgs(opts DocOpts) []string {
	args := []string{"doc", "--no-deps"}
	for _, sel := range opts.Selectors {
		args = append(args, "-p", sel)
	}
	if opts.DocumentPrivateItems {
		args = append(args, "--document-private-items")
	}
	if opts.Open {
		args = append(args, "--open")
	}
	return args
}

// Doc runs cargo doc in dir with the given options, streaming the child's
// output. The returned error is a *LaunchError when the process could not
// be started and the child's *exec.ExitError when it ran and failed.
func Doc(dir string, opts DocOpts) error {
	return run(dir, DocArgs(opts)...)
}

// Pkgid returns the package ID specification of the crate in dir, used to
// select the root crate itself for documentation.
func Pkgid(dir string) (string, error) {
	out, err := output(dir, "pkgid")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// Version returns the cargo version string.
func Version() (string, error) {
	out, err := output(".", "--version")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// IsInstalled returns true if cargo is available on the system PATH.
func IsInstalled() bool {
	_, err := exec.LookPath(Binary)
	return err == nil
}

// LaunchError indicates the cargo process could not be started at all,
// as opposed to running and exiting non-zero.
type LaunchError struct {
	Err error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("launching %s: %v", Binary, e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }

// run executes a cargo command in the given directory with output
// passed through.
func run(dir string, args ...string) error {
	cmd := exec.Command(Binary, args...) //nolint:gosec // args are built from parsed dependency names
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return wrapLaunch(cmd.Run())
}

// output executes a cargo command and returns its stdout.
func output(dir string, args ...string) (string, error) {
	cmd := exec.Command(Binary, args...) //nolint:gosec // args are fixed cargo subcommands
	cmd.Dir = dir
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			return "", &LaunchError{Err: err}
		}
		return "", fmt.Errorf("%s %s: %w", Binary, strings.Join(args, " "), err)
	}
	return stdout.String(), nil
}

// wrapLaunch converts process start failures into *LaunchError and leaves
// exit errors untouched so callers can mirror the child's exit code.
func wrapLaunch(err error) error {
	if err == nil {
		return nil
	}
	var execErr *exec.Error
	if errors.As(err, &execErr) {
		return &LaunchError{Err: err}
	}
	return err
}
