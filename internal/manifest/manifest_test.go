package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/rust-osdev/trigger-release/internal/errors"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Cargo.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestVersion(t *testing.T) {
	t.Run("workspace manifest", func(t *testing.T) {
		path := writeManifest(t, `
[workspace]
members = ["api", "common"]

[workspace.package]
version = "0.11.9"
edition = "2021"
`)

		v, err := Version(path)
		require.NoError(t, err)
		assert.Equal(t, "0.11.9", v)
	})

	t.Run("plain package manifest", func(t *testing.T) {
		path := writeManifest(t, `
[package]
name = "bootloader"
version = "0.12.0"
`)

		v, err := Version(path)
		require.NoError(t, err)
		assert.Equal(t, "0.12.0", v)
	})

	t.Run("workspace version wins over package version", func(t *testing.T) {
		path := writeManifest(t, `
[package]
name = "bootloader"
version = "9.9.9"

[workspace.package]
version = "0.11.9"
`)

		v, err := Version(path)
		require.NoError(t, err)
		assert.Equal(t, "0.11.9", v)
	})

	t.Run("member crate inheriting workspace version", func(t *testing.T) {
		// `version.workspace = true` is a table; it must not be
		// mistaken for a declared version.
		path := writeManifest(t, `
[package]
name = "bootloader-api"
version.workspace = true
`)

		_, err := Version(path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, oerrors.ErrConfig))
	})

	t.Run("missing version field", func(t *testing.T) {
		path := writeManifest(t, `
[package]
name = "bootloader"
`)

		_, err := Version(path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, oerrors.ErrConfig))
		assert.Contains(t, err.Error(), "no version field found")
	})

	t.Run("unreadable manifest", func(t *testing.T) {
		_, err := Version(filepath.Join(t.TempDir(), "nope.toml"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, oerrors.ErrConfig))
	})

	t.Run("malformed toml", func(t *testing.T) {
		path := writeManifest(t, `[workspace.package`)

		_, err := Version(path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, oerrors.ErrConfig))
	})
}
