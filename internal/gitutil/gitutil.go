// Package gitutil resolves source-control state via the git CLI.
package gitutil

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	oerrors "github.com/rust-osdev/trigger-release/internal/errors"
)

// runFunc executes an external command and returns its stdout.
type runFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

// runCommand is the real executor. Stderr is captured so failures carry
// the tool's diagnostics.
func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%w: %s", err, msg)
		}
		return nil, err
	}

	return stdout.Bytes(), nil
}

// Git runs git commands in the current working directory.
type Git struct {
	run runFunc
}

// New creates a Git executor.
func New() *Git {
	return &Git{run: runCommand}
}

// Head resolves the current commit hash (`git rev-parse HEAD`), trimmed
// to the bare full hash.
func (g *Git) Head(ctx context.Context) (string, error) {
	out, err := g.run(ctx, "git", "rev-parse", "HEAD")
	if err != nil {
		return "", oerrors.Wrap(oerrors.ErrCommand, fmt.Sprintf("git rev-parse HEAD: %v", err))
	}

	sha := strings.TrimSpace(string(out))
	if sha == "" {
		return "", oerrors.Wrap(oerrors.ErrCommand, "git rev-parse HEAD produced no output")
	}

	return sha, nil
}
