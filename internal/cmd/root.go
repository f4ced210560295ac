package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rust-osdev/trigger-release/internal/config"
	"github.com/rust-osdev/trigger-release/internal/output"
	"github.com/rust-osdev/trigger-release/internal/version"
)

var (
	// Global flags
	configFlag     string
	manifestFlag   string
	crateFlag      string
	registryFlag   string
	repoFlag       string
	changelogFlag  string
	verboseFlag    bool
	timestampsFlag bool

	// Resolved configuration (loaded during PersistentPreRunE)
	resolvedConfig *config.Config
)

// NewRootCmd creates the root command for the trigger-release CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "trigger-release",
		Short: "Tag and release the workspace crate version if unpublished",
		Long: `trigger-release checks whether the workspace crate version declared in
Cargo.toml is already published on crates.io. If it is not, the current
commit is tagged as v<version> and a GitHub release is created through
the authenticated gh CLI.

The tool is idempotent: re-running it for an already published version
is a no-op that exits 0.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
	}

	// Add global flags
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: TRIGGER_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&manifestFlag, "manifest", "", "Path to Cargo.toml (env: TRIGGER_MANIFEST)")
	rootCmd.PersistentFlags().StringVar(&crateFlag, "crate", "", "Crate name on the registry (env: TRIGGER_CRATE)")
	rootCmd.PersistentFlags().StringVar(&registryFlag, "registry", "", "Registry base URL (env: TRIGGER_REGISTRY)")
	rootCmd.PersistentFlags().StringVar(&repoFlag, "repo", "", "GitHub repository as owner/name (env: TRIGGER_REPO)")
	rootCmd.PersistentFlags().StringVar(&changelogFlag, "changelog", "", "Changelog URL for the release body (env: TRIGGER_CHANGELOG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")

	// Add subcommands
	rootCmd.AddCommand(NewRunCmd())
	rootCmd.AddCommand(NewCheckCmd())
	rootCmd.AddCommand(NewInitCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals loads configuration and sets up logging.
// Precedence: flag > env > config file > default.
func initializeGlobals(cmd *cobra.Command) error {
	loaded, err := config.NewLoader().Load(configFlag)
	if err != nil {
		return err
	}

	// Flags override whatever the loader resolved.
	if manifestFlag != "" {
		loaded.Manifest = manifestFlag
	}
	if crateFlag != "" {
		loaded.Crate = crateFlag
	}
	if registryFlag != "" {
		loaded.Registry = registryFlag
	}
	if repoFlag != "" {
		loaded.Repo = repoFlag
	}
	if changelogFlag != "" {
		loaded.Changelog = changelogFlag
	}

	resolvedConfig = loaded.WithDefaults()

	// Build LogConfig with precedence: flag > config > default(true)
	logCfg := output.LogConfig{
		Verbose: verboseFlag,
	}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	} else if resolvedConfig.Log.Timestamps != nil {
		logCfg.Timestamps = resolvedConfig.Log.Timestamps
	}

	output.SetupLogging(logCfg)

	info := version.Get()
	output.Debug("trigger-release started",
		"version", info.Version,
		"crate", resolvedConfig.Crate,
		"registry", resolvedConfig.Registry,
		"repo", resolvedConfig.Repo,
		"manifest", resolvedConfig.Manifest,
	)

	return nil
}

// GetConfig returns the resolved configuration.
func GetConfig() *config.Config {
	if resolvedConfig != nil {
		return resolvedConfig
	}
	return config.DefaultConfig()
}
