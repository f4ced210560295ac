package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rust-osdev/trigger-release/internal/forge"
	"github.com/rust-osdev/trigger-release/internal/gitutil"
	"github.com/rust-osdev/trigger-release/internal/output"
	"github.com/rust-osdev/trigger-release/internal/registry"
	"github.com/rust-osdev/trigger-release/internal/trigger"
)

var runDryRun bool

// NewRunCmd creates the run command.
func NewRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Tag and release the declared version if unpublished",
		Long: `Run the release trigger workflow.

Reads the declared version from Cargo.toml and queries the registry.
If the version is already published, nothing happens and the command
exits 0. Otherwise the current commit is tagged as v<version> and a
release is created; the tag and release are created together or not
at all.

Examples:
  # Standard CI invocation from the repository root
  trigger-release run

  # See what would happen without creating anything
  trigger-release run --dry-run`,
		Args: cobra.NoArgs,
		RunE: runTrigger,
	}

	cmd.Flags().BoolVar(&runDryRun, "dry-run", false,
		"Resolve everything but create no tag or release")

	return cmd
}

func runTrigger(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	cfg := GetConfig()

	forgeClient, err := forge.NewClient(cfg.Repo)
	if err != nil {
		return err
	}

	t := &trigger.Trigger{
		Manifest:  cfg.Manifest,
		Crate:     cfg.Crate,
		Changelog: cfg.Changelog,
		DryRun:    runDryRun,
		Registry:  registry.NewClient(cfg.Registry),
		Commits:   gitutil.New(),
		Forge:     forgeClient,
	}

	// The registry lookup is the only slow step worth a spinner; the
	// creation calls log their own progress.
	var check *trigger.CheckResult
	err = output.RunWithSpinner(ctx, func() error {
		var checkErr error
		check, checkErr = t.Check(ctx)
		return checkErr
	}, output.WithTitle("Checking "+cfg.Registry+"..."))
	if err != nil {
		return err
	}

	if check.Published {
		output.Info("version already exists on the registry",
			"crate", cfg.Crate,
			"version", check.Version,
		)
		output.Println(output.FormatOutcomeLine(cfg.Crate, check.Version, output.OutcomePublished))
		return nil
	}

	output.Info("version not published; creating a new release",
		"crate", cfg.Crate,
		"version", check.Version,
	)

	result, err := t.Release(ctx, check.Version)
	if err != nil {
		return err
	}

	if result.DryRun {
		output.Println(output.FormatOutcomeLine(cfg.Crate, result.Version, output.OutcomeSkipped))
		return nil
	}

	output.Println(output.FormatCheckmark("tagged " + result.Commit[:min(12, len(result.Commit))] + " as " + result.TagName))
	output.Println(output.FormatOutcomeLine(cfg.Crate, result.Version, output.OutcomeReleased))

	return nil
}
