// Package main is the entry point for the trigger-release CLI.
package main

import (
	"fmt"
	"os"

	"github.com/rust-osdev/trigger-release/internal/cmd"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cmd.ExitCodeFromError(err))
	}
}
