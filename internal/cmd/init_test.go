package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rust-osdev/trigger-release/internal/config"
	oerrors "github.com/rust-osdev/trigger-release/internal/errors"
)

func execInit(t *testing.T, args ...string) error {
	t.Helper()
	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"init"}, args...))
	return cmd.Execute()
}

func TestInitCmd_WritesDefaults(t *testing.T) {
	t.Cleanup(resetFlags)
	resetFlags()
	initForce = false

	path := filepath.Join(t.TempDir(), "trigger.yaml")

	require.NoError(t, execInit(t, "--config", path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var cfg config.Config
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	assert.Equal(t, config.DefaultManifest, cfg.Manifest)
	assert.Equal(t, config.DefaultCrate, cfg.Crate)
	assert.Equal(t, config.DefaultRegistry, cfg.Registry)
	assert.Equal(t, config.DefaultRepo, cfg.Repo)
	require.NotNil(t, cfg.Log.Timestamps)
	assert.True(t, *cfg.Log.Timestamps)
}

func TestInitCmd_RefusesToOverwrite(t *testing.T) {
	t.Cleanup(resetFlags)
	resetFlags()
	initForce = false

	path := filepath.Join(t.TempDir(), "trigger.yaml")
	require.NoError(t, os.WriteFile(path, []byte("crate: custom\n"), 0o644))

	err := execInit(t, "--config", path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrConfig))

	// Existing content untouched.
	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, "crate: custom\n", string(data))
}

func TestInitCmd_ForceOverwrites(t *testing.T) {
	t.Cleanup(resetFlags)
	resetFlags()
	initForce = false

	path := filepath.Join(t.TempDir(), "trigger.yaml")
	require.NoError(t, os.WriteFile(path, []byte("crate: custom\n"), 0o644))

	require.NoError(t, execInit(t, "--config", path, "--force"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "crate: "+config.DefaultCrate)
}
