package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Bunogi/cargo-makedocs/internal/project"
	"github.com/Bunogi/cargo-makedocs/internal/ui"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the resolved documentation set without invoking cargo",
		RunE:  runList,
	}
	cmd.Flags().String("format", "table", "Output format: table, json or yaml")
	return cmd
}

func runList(cmd *cobra.Command, _ []string) error {
	format, _ := cmd.Flags().GetString("format")
	manifestPath, _ := cmd.Flags().GetString("manifest-path")

	ctx, err := project.Load(manifestPath)
	if err != nil {
		return err
	}

	crates, err := resolveTargets(cmd, ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(crates)
	case "yaml":
		data, err := yaml.Marshal(crates)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	case "table":
		tbl := ui.NewTable(out, "CRATE", "VERSION")
		for _, c := range crates {
			version := c.Version
			if version == "" {
				version = "(not locked)"
			}
			tbl.Row(c.Name, version)
		}
		return tbl.Flush()
	default:
		return fmt.Errorf("unknown format: %q (must be table, json or yaml)", format)
	}
}
