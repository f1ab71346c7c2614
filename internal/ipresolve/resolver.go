// Package ipresolve looks up the caller's public address through an
// external echo service.
package ipresolve

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"cddns/internal/httputil"
)

const (
	DefaultIPv4URL = "https://4.ident.me/"
	DefaultIPv6URL = "https://6.ident.me/"
)

// ErrLookupFailed is returned when the echo service could not be reached or
// answered with a non-2xx status.
var ErrLookupFailed = errors.New("public IP lookup failed")

// Family selects the address family to resolve.
type Family int

const (
	IPv4 Family = iota
	IPv6
)

func (f Family) String() string {
	if f == IPv6 {
		return "IPv6"
	}
	return "IPv4"
}

// Resolver fetches the public address from plain-text echo endpoints.
// The zero value uses the ident.me endpoints and httputil.DefaultClient.
type Resolver struct {
	IPv4URL    string
	IPv6URL    string
	HTTPClient *http.Client
}

// New returns a Resolver with the default endpoints and the given client.
func New(client *http.Client) *Resolver {
	return &Resolver{
		IPv4URL:    DefaultIPv4URL,
		IPv6URL:    DefaultIPv6URL,
		HTTPClient: client,
	}
}

func (r *Resolver) endpoint(f Family) string {
	if f == IPv6 {
		if r.IPv6URL != "" {
			return r.IPv6URL
		}
		return DefaultIPv6URL
	}
	if r.IPv4URL != "" {
		return r.IPv4URL
	}
	return DefaultIPv4URL
}

// Resolve returns the whitespace-trimmed response body of the endpoint for f.
// The body is not validated as an address.
func (r *Resolver) Resolve(ctx context.Context, f Family) (string, error) {
	url := r.endpoint(f)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Cache-Control", "no-cache")

	client := r.HTTPClient
	if client == nil {
		client = httputil.DefaultClient()
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %s request to %s: %v", ErrLookupFailed, f, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: %s returned %s", ErrLookupFailed, url, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading response from %s: %v", ErrLookupFailed, url, err)
	}
	return strings.TrimSpace(string(body)), nil
}
