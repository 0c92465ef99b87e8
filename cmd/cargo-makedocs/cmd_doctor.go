package main

import (
	"fmt"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/Bunogi/cargo-makedocs/internal/cargo"
	"github.com/Bunogi/cargo-makedocs/internal/manifest"
	"github.com/Bunogi/cargo-makedocs/internal/project"
	"github.com/Bunogi/cargo-makedocs/internal/resolve"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose environment for common issues",
		RunE:  runDoctor,
	}
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	ok := true
	out := cmd.OutOrStdout()

	// Check cargo.
	fmt.Fprint(out, "Checking cargo... ")
	cargoPath, err := exec.LookPath(cargo.Binary)
	if err != nil {
		fmt.Fprintln(out, "NOT FOUND")
		fmt.Fprintln(out, "  cargo is required. Install it from https://rustup.rs/")
		ok = false
	} else {
		fmt.Fprintf(out, "found at %s\n", cargoPath)

		fmt.Fprint(out, "Checking cargo version... ")
		if ver, verr := cargo.Version(); verr != nil {
			fmt.Fprintln(out, "ERROR")
			ok = false
		} else {
			fmt.Fprintln(out, ver)
		}
	}

	// Check the project, if there is one here.
	manifestPath, _ := cmd.Flags().GetString("manifest-path")
	ctx, loadErr := project.Load(manifestPath)
	if loadErr != nil {
		fmt.Fprintf(out, "Project check failed: %v\n", loadErr)
		ok = false
	} else {
		fmt.Fprintf(out, "Project: %s (%d direct dependencies, %d locked packages)\n",
			ctx.Manifest.CrateName, len(ctx.Manifest.Dependencies), len(ctx.Lock.Packages))
		if !checkResolution(cmd, ctx) {
			ok = false
		}
	}

	if ok {
		fmt.Fprintln(out, "\nAll checks passed.")
		return nil
	}
	fmt.Fprintln(out, "\nSome checks failed. See above for details.")
	return fmt.Errorf("doctor checks failed")
}

// checkResolution verifies every declared dependency has a matching lock
// entry.
func checkResolution(cmd *cobra.Command, ctx *project.Context) bool {
	out := cmd.OutOrStdout()

	deps := ctx.Manifest.Deps(manifest.KindNormal, manifest.KindDev, manifest.KindBuild)
	_, misses, err := resolve.Resolve(deps, ctx.Lock)
	if err != nil {
		fmt.Fprintf(out, "  Resolution check failed: %v\n", err)
		return false
	}
	for _, m := range misses {
		fmt.Fprintf(out, "  Warning: %s has no matching Cargo.lock entry\n", m)
	}
	if len(misses) > 0 {
		fmt.Fprintln(out, "  Run `cargo build` to refresh Cargo.lock.")
		return false
	}
	fmt.Fprintf(out, "  All %d dependencies resolve against Cargo.lock.\n", len(deps))
	return true
}
