package main

import (
	"errors"
	"fmt"
	"os"
)

// Set via -ldflags at build time.
var version = "dev"

func main() {
	args := os.Args[1:]
	// When run as `cargo makedocs`, cargo injects the subcommand name as
	// the first argument. Strip it so both invocation styles work.
	if len(args) > 0 && args[0] == "makedocs" {
		args = args[1:]
	}

	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		var xe *exitError
		if errors.As(err, &xe) {
			// The child already reported its own failure.
			os.Exit(xe.code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
