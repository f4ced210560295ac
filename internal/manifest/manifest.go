// Package manifest reads the declared version from a Cargo manifest.
package manifest

import (
	"fmt"

	"github.com/BurntSushi/toml"

	oerrors "github.com/rust-osdev/trigger-release/internal/errors"
)

// cargoManifest captures the subset of Cargo.toml we care about. The
// package version is kept as a primitive because member crates declare
// `version.workspace = true`, which is a table, not a string.
type cargoManifest struct {
	Workspace struct {
		Package struct {
			Version string `toml:"version"`
		} `toml:"package"`
	} `toml:"workspace"`
	Package struct {
		Version toml.Primitive `toml:"version"`
	} `toml:"package"`
}

// Version returns the declared release version from the manifest at path.
// It prefers `workspace.package.version` and falls back to
// `package.version` for non-workspace manifests.
func Version(path string) (string, error) {
	var m cargoManifest

	md, err := toml.DecodeFile(path, &m)
	if err != nil {
		return "", oerrors.NewConfigError(
			fmt.Sprintf("could not read manifest: %v", err),
			path,
			"Run from the repository root, or point --manifest at the Cargo.toml.",
		)
	}

	if v := m.Workspace.Package.Version; v != "" {
		return v, nil
	}

	var v string
	if err := md.PrimitiveDecode(m.Package.Version, &v); err == nil && v != "" {
		return v, nil
	}

	return "", oerrors.NewConfigError(
		"no version field found",
		path,
		"Declare version under [workspace.package] or [package].",
	)
}
