package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rust-osdev/trigger-release/internal/config"
	oerrors "github.com/rust-osdev/trigger-release/internal/errors"
	"github.com/rust-osdev/trigger-release/internal/output"
)

var initForce bool

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter configuration file",
		Long: `Write a starter configuration file with all defaults populated.

The file is written to .trigger-release.yaml in the current directory
(or the path given by --config / TRIGGER_CONFIG). Every field can also
be supplied via flags or TRIGGER_* environment variables, so the file
is optional.

Examples:
  # Create .trigger-release.yaml with defaults
  trigger-release init

  # Overwrite an existing file
  trigger-release init --force`,
		Args: cobra.NoArgs,
		RunE: runInit,
	}

	cmd.Flags().BoolVarP(&initForce, "force", "f", false,
		"Overwrite existing configuration")

	return cmd
}

func runInit(_ *cobra.Command, _ []string) error {
	path := configFlag
	if path == "" {
		path = config.GetConfigFile()
	}

	if _, err := os.Stat(path); err == nil && !initForce {
		return oerrors.NewConfigError(
			"configuration already exists",
			path,
			"Use --force to overwrite the existing configuration.",
		)
	}

	cfg := config.DefaultConfig()
	cfg.Log.Timestamps = output.BoolPtr(true)

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return oerrors.NewConfigError(
			fmt.Sprintf("could not write config: %v", err),
			path,
			"",
		)
	}

	output.Println("Configuration written to " + path)

	return nil
}
