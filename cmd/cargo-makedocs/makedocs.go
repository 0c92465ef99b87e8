package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Bunogi/cargo-makedocs/internal/cargo"
	"github.com/Bunogi/cargo-makedocs/internal/config"
	"github.com/Bunogi/cargo-makedocs/internal/manifest"
	"github.com/Bunogi/cargo-makedocs/internal/project"
	"github.com/Bunogi/cargo-makedocs/internal/resolve"
	"github.com/Bunogi/cargo-makedocs/internal/ui"
)

func runMakedocs(cmd *cobra.Command, _ []string) error {
	open, _ := cmd.Flags().GetBool("open")
	rootCrate, _ := cmd.Flags().GetBool("root")
	privateItems, _ := cmd.Flags().GetBool("document-private-items")
	pick, _ := cmd.Flags().GetBool("pick")
	manifestPath, _ := cmd.Flags().GetString("manifest-path")

	if privateItems && !rootCrate {
		return fmt.Errorf("--document-private-items requires --root")
	}

	ctx, err := project.Load(manifestPath)
	if err != nil {
		return err
	}

	crates, err := resolveTargets(cmd, ctx)
	if err != nil {
		return err
	}

	if len(crates) == 0 && !rootCrate {
		return fmt.Errorf("found no crates to document")
	}

	if pick {
		crates, err = pickCrates(crates)
		if err != nil {
			return err
		}
		if len(crates) == 0 && !rootCrate {
			return fmt.Errorf("found no crates to document")
		}
	}

	selectors := resolve.Selectors(crates)
	if rootCrate {
		pkgid, err := cargo.Pkgid(ctx.Root)
		if err != nil {
			return fmt.Errorf("resolving root crate: %w", err)
		}
		selectors = append(selectors, pkgid)
	}

	opts := cargo.DocOpts{
		Selectors:            selectors,
		Open:                 open,
		DocumentPrivateItems: privateItems,
	}
	logger.Debug("invoking cargo doc", "selectors", len(selectors), "open", open)

	if err := cargo.Doc(ctx.Root, opts); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &exitError{code: exitErr.ExitCode()}
		}
		return err
	}
	return nil
}

// resolveTargets loads the flag and config include/exclude lists, resolves
// the selected dependency kinds against the lock file and composes the
// final target set.
func resolveTargets(cmd *cobra.Command, ctx *project.Context) ([]resolve.Crate, error) {
	exclude, _ := cmd.Flags().GetStringArray("exclude")
	include, _ := cmd.Flags().GetStringArray("include")
	noBuildtime, _ := cmd.Flags().GetBool("no-buildtime")
	dev, _ := cmd.Flags().GetBool("dev")

	cfg, err := config.Get()
	if err != nil {
		return nil, err
	}
	exclude = append(exclude, cfg.Exclude...)
	include = append(include, cfg.Include...)

	kinds := []manifest.Kind{manifest.KindNormal}
	if !noBuildtime {
		kinds = append(kinds, manifest.KindBuild)
	}
	if dev {
		kinds = append(kinds, manifest.KindDev)
	}

	crates, misses, err := resolve.Resolve(ctx.Manifest.Deps(kinds...), ctx.Lock)
	if err != nil {
		return nil, err
	}
	for _, m := range misses {
		logger.Warnf("%s not found in Cargo.lock (did you run `cargo build`?); skipping", m)
	}

	return resolve.Compose(crates, exclude, include), nil
}

// pickCrates runs the interactive picker over the target set. Without a
// terminal the set is used as-is.
func pickCrates(crates []resolve.Crate) ([]resolve.Crate, error) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		logger.Warn("--pick requires a terminal; documenting the full set")
		return crates, nil
	}

	byName := make(map[string]resolve.Crate, len(crates))
	names := make([]string, len(crates))
	for i, c := range crates {
		byName[c.Name] = c
		names[i] = c.Name
	}

	kept, err := ui.Pick("Select crates to document", names)
	if err != nil {
		return nil, err
	}

	out := make([]resolve.Crate, len(kept))
	for i, name := range kept {
		out[i] = byName[name]
	}
	return out, nil
}
