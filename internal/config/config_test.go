package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithDefaults(t *testing.T) {
	t.Run("empty config gets all defaults", func(t *testing.T) {
		cfg := (&Config{}).WithDefaults()

		assert.Equal(t, "Cargo.toml", cfg.Manifest)
		assert.Equal(t, "bootloader", cfg.Crate)
		assert.Equal(t, "https://crates.io", cfg.Registry)
		assert.Equal(t, "rust-osdev/bootloader", cfg.Repo)
		assert.Equal(t, "https://github.com/rust-osdev/bootloader/blob/main/Changelog.md", cfg.Changelog)
	})

	t.Run("set fields are preserved", func(t *testing.T) {
		cfg := (&Config{
			Crate: "bootloader-api",
			Repo:  "rust-osdev/bootloader",
		}).WithDefaults()

		assert.Equal(t, "bootloader-api", cfg.Crate)
		assert.Equal(t, "Cargo.toml", cfg.Manifest)
	})

	t.Run("changelog follows custom repo", func(t *testing.T) {
		cfg := (&Config{Repo: "myorg/mycrate"}).WithDefaults()

		assert.Equal(t, "https://github.com/myorg/mycrate/blob/main/Changelog.md", cfg.Changelog)
	})

	t.Run("explicit changelog wins", func(t *testing.T) {
		cfg := (&Config{Changelog: "https://example.invalid/notes"}).WithDefaults()

		assert.Equal(t, "https://example.invalid/notes", cfg.Changelog)
	})

	t.Run("does not mutate receiver", func(t *testing.T) {
		orig := &Config{}
		_ = orig.WithDefaults()

		assert.Empty(t, orig.Manifest)
	})
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, DefaultCrate, cfg.Crate)
	assert.Equal(t, DefaultRegistry, cfg.Registry)
}
