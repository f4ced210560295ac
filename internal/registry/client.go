// Package registry queries a crates.io-style package registry for
// published versions.
package registry

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/carlmjohnson/requests"

	oerrors "github.com/rust-osdev/trigger-release/internal/errors"
)

// Version is the `version` object of a registry lookup response.
type Version struct {
	// Crate is the crate name the registry answered for.
	Crate string `json:"crate"`

	// Num is the published version number.
	Num string `json:"num"`
}

// lookupResponse is the body of GET /api/v1/crates/<crate>/<version>.
// A missing `version` key (including the registry's 404 errors payload)
// means the version is not published.
type lookupResponse struct {
	Version *Version `json:"version"`
}

// Verify checks that the payload names the expected crate and version.
// A mismatch is a fatal invariant violation, not a recoverable condition.
func (v *Version) Verify(crate, num string) error {
	if v.Crate != crate {
		return oerrors.NewInvariantError("registry answered for a different crate", map[string]string{
			"want": crate,
			"got":  v.Crate,
		})
	}
	if v.Num != num {
		return oerrors.NewInvariantError("registry answered with a different version", map[string]string{
			"want": num,
			"got":  v.Num,
		})
	}
	return nil
}

// Client looks up crate versions on a registry.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for lookups.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// NewClient creates a registry client for the given base URL
// (e.g. https://crates.io).
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Lookup queries the registry for the given crate version. It returns the
// version payload if the registry lists it, or nil if it does not. No
// retries: a transport failure surfaces immediately.
func (c *Client) Lookup(ctx context.Context, crate, version string) (*Version, error) {
	var payload lookupResponse

	err := requests.
		URL(c.baseURL).
		Pathf("/api/v1/crates/%s/%s", crate, version).
		Client(c.http).
		CheckStatus(http.StatusOK, http.StatusNotFound).
		ToJSON(&payload).
		Fetch(ctx)
	if err != nil {
		return nil, oerrors.NewRegistryError(
			fmt.Sprintf("lookup failed: %v", err),
			map[string]string{
				"crate":    crate,
				"version":  version,
				"registry": c.baseURL,
			},
		)
	}

	return payload.Version, nil
}
