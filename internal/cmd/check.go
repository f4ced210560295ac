package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rust-osdev/trigger-release/internal/output"
	"github.com/rust-osdev/trigger-release/internal/registry"
	"github.com/rust-osdev/trigger-release/internal/trigger"
)

// NewCheckCmd creates the check command.
func NewCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report whether the declared version is published",
		Long: `Check publication status without creating anything.

Reads the declared version from Cargo.toml, queries the registry, and
reports whether that version is already published. Exits 0 either way;
mismatched registry payloads and unreachable registries are errors.

Examples:
  trigger-release check
  trigger-release check --manifest crates/Cargo.toml`,
		Args: cobra.NoArgs,
		RunE: runCheck,
	}
}

func runCheck(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	cfg := GetConfig()

	t := &trigger.Trigger{
		Manifest: cfg.Manifest,
		Crate:    cfg.Crate,
		Registry: registry.NewClient(cfg.Registry),
	}

	var check *trigger.CheckResult
	err := output.RunWithSpinner(ctx, func() error {
		var checkErr error
		check, checkErr = t.Check(ctx)
		return checkErr
	}, output.WithTitle("Checking "+cfg.Registry+"..."))
	if err != nil {
		return err
	}

	if check.Published {
		output.Println(output.FormatOutcomeLine(cfg.Crate, check.Version, output.OutcomePublished))
	} else {
		output.Println(output.StyleNoun.Render(cfg.Crate+"@"+check.Version) + "  not published")
	}

	return nil
}
