// Package trigger implements the release trigger workflow: detect the
// declared crate version, check whether it is published, and if not,
// tag the current commit and create a release.
package trigger

import (
	"context"

	"github.com/rust-osdev/trigger-release/internal/forge"
	"github.com/rust-osdev/trigger-release/internal/manifest"
	"github.com/rust-osdev/trigger-release/internal/output"
	"github.com/rust-osdev/trigger-release/internal/registry"
)

// Registry looks up a crate version on the package registry.
type Registry interface {
	Lookup(ctx context.Context, crate, version string) (*registry.Version, error)
}

// Commits resolves the current source-control commit.
type Commits interface {
	Head(ctx context.Context) (string, error)
}

// Forge creates tags and releases on the hosted git forge.
type Forge interface {
	CreateTagRef(ctx context.Context, tag, sha string) error
	CreateRelease(ctx context.Context, req forge.ReleaseRequest) error
}

// Trigger runs the release trigger workflow. Everything is resolved per
// run; nothing is cached between invocations.
type Trigger struct {
	// Manifest is the path to the Cargo manifest.
	Manifest string

	// Crate is the crate name expected on the registry.
	Crate string

	// Changelog is the URL linked from the release body.
	Changelog string

	// DryRun resolves everything but performs no tag/release creation.
	DryRun bool

	Registry Registry
	Commits  Commits
	Forge    Forge
}

// CheckResult is the outcome of the publication check.
type CheckResult struct {
	// Version is the declared workspace version.
	Version string

	// Published reports whether the registry already lists Version.
	Published bool
}

// Result is the outcome of a full trigger run.
type Result struct {
	// Version is the declared workspace version.
	Version string

	// Published reports whether the version was already on the registry
	// (in which case nothing was created).
	Published bool

	// TagName is the created tag, "v" + Version. Empty when Published.
	TagName string

	// Commit is the tagged commit hash. Empty when Published.
	Commit string

	// DryRun reports that creation calls were skipped.
	DryRun bool
}

// TagName builds the tag for a version: the literal "v" concatenated
// with the version string, nothing else.
func TagName(version string) string {
	return "v" + version
}

// Check reads the declared version and asks the registry whether it is
// already published. If the registry returns a version payload it must
// name exactly the expected crate and version; anything else aborts the
// run before any tag or release is created.
func (t *Trigger) Check(ctx context.Context) (*CheckResult, error) {
	version, err := manifest.Version(t.Manifest)
	if err != nil {
		return nil, err
	}
	output.Debug("detected crate version", "crate", t.Crate, "version", version)

	published, err := t.Registry.Lookup(ctx, t.Crate, version)
	if err != nil {
		return nil, err
	}

	if published != nil {
		if err := published.Verify(t.Crate, version); err != nil {
			return nil, err
		}
		return &CheckResult{Version: version, Published: true}, nil
	}

	return &CheckResult{Version: version}, nil
}

// Release tags the current commit as "v" + version and creates the
// release. The tag and release are created together or not at all: the
// release call never runs if tagging failed.
func (t *Trigger) Release(ctx context.Context, version string) (*Result, error) {
	tag := TagName(version)

	sha, err := t.Commits.Head(ctx)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Version: version,
		TagName: tag,
		Commit:  sha,
		DryRun:  t.DryRun,
	}

	if t.DryRun {
		output.Info("dry run: would tag and release", "tag", tag, "commit", sha)
		return result, nil
	}

	output.Info("tagging commit", "tag", tag, "commit", sha)
	if err := t.Forge.CreateTagRef(ctx, tag, sha); err != nil {
		return nil, err
	}

	output.Info("creating release", "name", tag)
	if err := t.Forge.CreateRelease(ctx, forge.ReleaseRequest{
		TagName:         tag,
		TargetCommitish: sha,
		Name:            tag,
		Body:            "[Changelog](" + t.Changelog + ")",
		Draft:           false,
		Prerelease:      false,
		GenerateNotes:   false,
	}); err != nil {
		return nil, err
	}

	return result, nil
}

// Run performs the whole workflow: check, then release if needed.
func (t *Trigger) Run(ctx context.Context) (*Result, error) {
	check, err := t.Check(ctx)
	if err != nil {
		return nil, err
	}

	if check.Published {
		return &Result{Version: check.Version, Published: true}, nil
	}

	return t.Release(ctx, check.Version)
}
