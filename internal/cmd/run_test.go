package cmd

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRunCmd(t *testing.T) {
	cmd := NewRunCmd()

	assert.Equal(t, "run", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotNil(t, cmd.Flags().Lookup("dry-run"))
}

func TestNewCheckCmd(t *testing.T) {
	cmd := NewCheckCmd()

	assert.Equal(t, "check", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
}

// TestRunCmd_AlreadyPublished exercises the full command path against a
// stub registry: the published branch never touches git or gh, so it is
// safe to run anywhere.
func TestRunCmd_AlreadyPublished(t *testing.T) {
	t.Cleanup(resetFlags)
	resetFlags()
	runDryRun = false

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"version": {"crate": "bootloader", "num": "0.11.9"}}`))
	}))
	defer srv.Close()

	manifestPath := filepath.Join(t.TempDir(), "Cargo.toml")
	require.NoError(t, os.WriteFile(manifestPath, []byte("[workspace.package]\nversion = \"0.11.9\"\n"), 0o644))

	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"run", "--manifest", manifestPath, "--registry", srv.URL})

	assert.NoError(t, cmd.Execute())
}

// TestCheckCmd_NotPublished exercises the query-only path; check never
// creates anything regardless of status.
func TestCheckCmd_NotPublished(t *testing.T) {
	t.Cleanup(resetFlags)
	resetFlags()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	manifestPath := filepath.Join(t.TempDir(), "Cargo.toml")
	require.NoError(t, os.WriteFile(manifestPath, []byte("[workspace.package]\nversion = \"0.12.0\"\n"), 0o644))

	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"check", "--manifest", manifestPath, "--registry", srv.URL})

	assert.NoError(t, cmd.Execute())
}

func TestRunCmd_MismatchedRegistryPayloadFails(t *testing.T) {
	t.Cleanup(resetFlags)
	resetFlags()
	runDryRun = false

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"version": {"crate": "bootimage", "num": "0.11.9"}}`))
	}))
	defer srv.Close()

	manifestPath := filepath.Join(t.TempDir(), "Cargo.toml")
	require.NoError(t, os.WriteFile(manifestPath, []byte("[workspace.package]\nversion = \"0.11.9\"\n"), 0o644))

	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"run", "--manifest", manifestPath, "--registry", srv.URL})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitInvariantError, ExitCodeFromError(err))
}
