// Package httputil builds the HTTP clients shared by the Cloudflare provider
// and the public IP resolver.
package httputil

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	// DefaultTimeout bounds a single request, including reading the body.
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent is sent when ClientConfig.UserAgent is empty.
	DefaultUserAgent = "cddns"
)

// ClientConfig contains configuration for creating an HTTP client.
type ClientConfig struct {
	// Timeout is the per-request timeout. Defaults to 30 seconds.
	Timeout time.Duration

	// UserAgent is the User-Agent header set on requests that lack one.
	UserAgent string

	// Transport is the underlying round tripper. Defaults to http.DefaultTransport.
	Transport http.RoundTripper

	// Logger receives a trace entry per request and response. Nil disables it.
	Logger *logrus.Entry
}

// userAgentTransport sets the User-Agent header and traces each round trip.
type userAgentTransport struct {
	base      http.RoundTripper
	userAgent string
	logger    *logrus.Entry
}

// RoundTrip implements http.RoundTripper.
func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" && t.userAgent != "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", t.userAgent)
	}

	if t.logger != nil {
		t.logger.WithFields(logrus.Fields{
			"method": req.Method,
			"url":    req.URL.Redacted(),
		}).Trace("HTTP request")
	}

	start := time.Now()
	resp, err := t.base.RoundTrip(req)

	if t.logger != nil && resp != nil {
		t.logger.WithFields(logrus.Fields{
			"method":   req.Method,
			"url":      req.URL.Redacted(),
			"status":   resp.StatusCode,
			"duration": time.Since(start).Round(time.Millisecond),
		}).Trace("HTTP response")
	}

	return resp, err
}

// NewClient creates an HTTP client with the specified configuration.
// A nil cfg yields the defaults.
func NewClient(cfg *ClientConfig) *http.Client {
	if cfg == nil {
		cfg = &ClientConfig{}
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	base := cfg.Transport
	if base == nil {
		base = http.DefaultTransport
	}

	return &http.Client{
		Timeout: timeout,
		Transport: &userAgentTransport{
			base:      base,
			userAgent: userAgent,
			logger:    cfg.Logger,
		},
	}
}

// DefaultClient returns a new HTTP client with default settings.
func DefaultClient() *http.Client {
	return NewClient(nil)
}
