// Package forge creates tags and releases on GitHub through the
// authenticated gh CLI. Credentials are gh's problem, not ours.
package forge

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	oerrors "github.com/rust-osdev/trigger-release/internal/errors"
)

// Accept headers for the GitHub REST API.
const (
	acceptRefs     = "Accept: application/vnd.github.v3+json"
	acceptReleases = "Accept: application/vnd.github+json"
)

// ReleaseRequest contains the information needed to create a release.
// Fields mirror the POST /repos/{owner}/{repo}/releases payload.
type ReleaseRequest struct {
	// TagName is the tag the release is cut from.
	TagName string

	// TargetCommitish is the commit the tag points at.
	TargetCommitish string

	// Name is the display name of the release.
	Name string

	// Body is the release body text.
	Body string

	// Draft marks the release as a draft.
	Draft bool

	// Prerelease marks the release as a prerelease.
	Prerelease bool

	// GenerateNotes asks GitHub to auto-generate release notes.
	GenerateNotes bool
}

// runFunc executes an external command and returns its stdout.
type runFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

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

// Client creates tags and releases on a single repository.
type Client struct {
	repo string // "owner/name"
	run  runFunc
}

// NewClient creates a forge client for the given "owner/name" repository.
func NewClient(repo string) (*Client, error) {
	if owner, name, ok := strings.Cut(repo, "/"); !ok || owner == "" || name == "" {
		return nil, oerrors.NewConfigError(
			fmt.Sprintf("invalid repository %q", repo),
			"",
			`Use the "owner/name" form, e.g. rust-osdev/bootloader.`,
		)
	}

	return &Client{repo: repo, run: runCommand}, nil
}

// Repo returns the "owner/name" repository this client targets.
func (c *Client) Repo() string {
	return c.repo
}

// CreateTagRef creates a lightweight tag reference pointing at sha.
// A non-zero gh exit is fatal; the tag and release are created together
// or not at all, so a failure here stops the run before the release call.
func (c *Client) CreateTagRef(ctx context.Context, tag, sha string) error {
	_, err := c.run(ctx, "gh", "api",
		fmt.Sprintf("/repos/%s/git/refs", c.repo),
		"-X", "POST",
		"-H", acceptRefs,
		"-F", "ref=refs/tags/"+tag,
		"-F", "sha="+sha,
	)
	if err != nil {
		return oerrors.Wrap(oerrors.ErrCommand, fmt.Sprintf("creating tag ref %s: %v", tag, err))
	}

	return nil
}

// CreateRelease creates a release for an existing tag.
func (c *Client) CreateRelease(ctx context.Context, req ReleaseRequest) error {
	_, err := c.run(ctx, "gh", "api",
		"--method", "POST",
		"-H", acceptReleases,
		fmt.Sprintf("/repos/%s/releases", c.repo),
		"-f", "tag_name="+req.TagName,
		"-f", "target_commitish="+req.TargetCommitish,
		"-f", "name="+req.Name,
		"-f", "body="+req.Body,
		"-F", "draft="+strconv.FormatBool(req.Draft),
		"-F", "prerelease="+strconv.FormatBool(req.Prerelease),
		"-F", "generate_release_notes="+strconv.FormatBool(req.GenerateNotes),
	)
	if err != nil {
		return oerrors.Wrap(oerrors.ErrCommand, fmt.Sprintf("creating release %s: %v", req.Name, err))
	}

	return nil
}
