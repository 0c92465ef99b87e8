package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Bunogi/cargo-makedocs/internal/cargo"
	"github.com/Bunogi/cargo-makedocs/internal/config"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
})

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cargo-makedocs",
		Short: "cargo doc wrapper that documents only direct dependencies",
		Long: `cargo-makedocs builds documentation for exactly the crates your project
depends on directly, by scanning Cargo.toml and Cargo.lock. Crates can be
excluded from or added to the set with -e and -i.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				logger.SetLevel(log.DebugLevel)
			}
			cfgFile, _ := cmd.Flags().GetString("config")
			if err := config.Init(cfgFile); err != nil {
				return err
			}
			cfg, err := config.Get()
			if err != nil {
				return err
			}
			cargo.Binary = cfg.Cargo
			return nil
		},
		RunE: runMakedocs,
	}

	cmd.PersistentFlags().String("config", "", "Config file (default is $HOME/.cargo-makedocs.yaml)")
	cmd.PersistentFlags().String("manifest-path", "", "Path to Cargo.toml (default: search parent directories)")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringArrayP("exclude", "e", nil, "Do not build documentation for a crate (repeatable)")
	cmd.PersistentFlags().StringArrayP("include", "i", nil, "Build documentation for a crate (repeatable)")
	cmd.PersistentFlags().BoolP("no-buildtime", "n", false, "Ignore build-dependencies")
	cmd.PersistentFlags().Bool("dev", false, "Also document dev-dependencies")

	cmd.Flags().BoolP("open", "o", false, "Open the built documentation in a browser")
	cmd.Flags().BoolP("root", "r", false, "Also build documentation for the root crate")
	cmd.Flags().BoolP("document-private-items", "d", false, "Pass --document-private-items (requires --root)")
	cmd.Flags().Bool("pick", false, "Interactively pick crates from the resolved set")

	cmd.AddCommand(
		newListCmd(),
		newDoctorCmd(),
	)

	return cmd
}
