// Package config provides configuration loading and management.
package config

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// Config represents the trigger-release configuration.
type Config struct {
	// Manifest is the path to the Cargo manifest.
	// Env: TRIGGER_MANIFEST, Default: Cargo.toml
	Manifest string `mapstructure:"manifest" yaml:"manifest,omitempty"`

	// Crate is the crate name expected on the registry.
	// Env: TRIGGER_CRATE, Default: bootloader
	Crate string `mapstructure:"crate" yaml:"crate,omitempty"`

	// Registry is the package registry base URL.
	// Env: TRIGGER_REGISTRY, Default: https://crates.io
	Registry string `mapstructure:"registry" yaml:"registry,omitempty"`

	// Repo is the "owner/name" GitHub repository to tag and release on.
	// Env: TRIGGER_REPO, Default: rust-osdev/bootloader
	Repo string `mapstructure:"repo" yaml:"repo,omitempty"`

	// Changelog is the URL linked from the release body.
	// Env: TRIGGER_CHANGELOG, Default: the repo's Changelog.md on main
	Changelog string `mapstructure:"changelog" yaml:"changelog,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" yaml:"log,omitempty"`
}

// Default configuration values.
const (
	DefaultManifest = "Cargo.toml"
	DefaultCrate    = "bootloader"
	DefaultRegistry = "https://crates.io"
	DefaultRepo     = "rust-osdev/bootloader"
)

// DefaultChangelog returns the changelog URL for a "owner/name" repo.
func DefaultChangelog(repo string) string {
	return "https://github.com/" + repo + "/blob/main/Changelog.md"
}

// WithDefaults returns a copy of the config with defaults applied to
// unset fields.
func (c *Config) WithDefaults() *Config {
	out := *c

	if out.Manifest == "" {
		out.Manifest = DefaultManifest
	}
	if out.Crate == "" {
		out.Crate = DefaultCrate
	}
	if out.Registry == "" {
		out.Registry = DefaultRegistry
	}
	if out.Repo == "" {
		out.Repo = DefaultRepo
	}
	if out.Changelog == "" {
		out.Changelog = DefaultChangelog(out.Repo)
	}

	return &out
}

// DefaultConfig returns a Config with all default values populated.
// Used by `trigger-release init` to generate the initial config file.
func DefaultConfig() *Config {
	return (&Config{}).WithDefaults()
}
